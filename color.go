// Package cellpager provides a small character-cell display model shared by the
// terminal backends (ANSI over a raw host terminal, tcell) and the programs that
// draw on them.
//
// This package contains:
//   - Color types and palettes
//   - Cell and attribute representation
//   - A bounded screen Buffer with a cursor, line wrap and clearing
//   - The Surface interface the pager and demos draw through
//   - Key events and border character sets
//
// Backend packages (cli, tscreen) own session setup and teardown, rendering and
// keyboard input; everything else talks to a Surface.
package cellpager

import (
	"strconv"
	"strings"
)

// ColorType indicates how a color was specified
type ColorType uint8

const (
	ColorTypeDefault   ColorType = iota // Use terminal default fg/bg (SGR 39/49)
	ColorTypeStandard                   // Standard 16 ANSI colors (0-15)
	ColorTypePalette                    // 256-color palette (0-255)
	ColorTypeTrueColor                  // 24-bit RGB
)

// Color represents a terminal color with its original specification preserved,
// so a backend can emit the same kind of escape it was given.
type Color struct {
	Type    ColorType // How the color was specified
	Index   uint8     // For Standard (0-15) or Palette (0-255)
	R, G, B uint8     // For TrueColor, or resolved RGB for display
}

// Predefined colors
var (
	DefaultForeground = Color{Type: ColorTypeDefault, R: 212, G: 212, B: 212}
	DefaultBackground = Color{Type: ColorTypeDefault, R: 30, G: 30, B: 30}
)

// StandardColor creates a standard 16-color ANSI color (index 0-15)
func StandardColor(index int) Color {
	if index < 0 || index > 15 {
		index = 7 // Default to white
	}
	rgb := ANSIColorsRGB[index]
	return Color{Type: ColorTypeStandard, Index: uint8(index), R: rgb.R, G: rgb.G, B: rgb.B}
}

// PaletteColor creates a 256-color palette color (index 0-255)
func PaletteColor(index int) Color {
	if index < 0 || index > 255 {
		index = 7
	}
	rgb := Get256ColorRGB(index)
	return Color{Type: ColorTypePalette, Index: uint8(index), R: rgb.R, G: rgb.G, B: rgb.B}
}

// TrueColor creates a 24-bit true color
func TrueColor(r, g, b uint8) Color {
	return Color{Type: ColorTypeTrueColor, R: r, G: g, B: b}
}

// IsDefault returns true if this is the default fg/bg color
func (c Color) IsDefault() bool {
	return c.Type == ColorTypeDefault
}

// ToSGRCode returns the SGR color code(s) for this color (foreground if isFg=true)
func (c Color) ToSGRCode(isFg bool) string {
	switch c.Type {
	case ColorTypeDefault:
		if isFg {
			return "39"
		}
		return "49"
	case ColorTypeStandard:
		idx := int(c.Index)
		if idx < 8 {
			// Normal colors: 30-37 or 40-47
			if isFg {
				return strconv.Itoa(30 + idx)
			}
			return strconv.Itoa(40 + idx)
		}
		// Bright colors: 90-97 or 100-107
		if isFg {
			return strconv.Itoa(90 + idx - 8)
		}
		return strconv.Itoa(100 + idx - 8)
	case ColorTypePalette:
		if isFg {
			return "38;5;" + strconv.Itoa(int(c.Index))
		}
		return "48;5;" + strconv.Itoa(int(c.Index))
	case ColorTypeTrueColor:
		prefix := "48;2;"
		if isFg {
			prefix = "38;2;"
		}
		return prefix + strconv.Itoa(int(c.R)) + ";" + strconv.Itoa(int(c.G)) + ";" + strconv.Itoa(int(c.B))
	}
	return ""
}

// RGB holds just the red, green, blue components (used internally)
type RGB struct {
	R, G, B uint8
}

// Standard ANSI 16-color palette RGB values (in ANSI order for escape code compatibility)
var ANSIColorsRGB = []RGB{
	{R: 0, G: 0, B: 0},       // ANSI 0: Black
	{R: 170, G: 0, B: 0},     // ANSI 1: Red
	{R: 0, G: 170, B: 0},     // ANSI 2: Green
	{R: 170, G: 85, B: 0},    // ANSI 3: Yellow/Brown
	{R: 0, G: 0, B: 170},     // ANSI 4: Blue
	{R: 170, G: 0, B: 170},   // ANSI 5: Magenta/Purple
	{R: 0, G: 170, B: 170},   // ANSI 6: Cyan
	{R: 170, G: 170, B: 170}, // ANSI 7: White/Silver
	// Bright variants (8-15)
	{R: 85, G: 85, B: 85},    // ANSI 8: Bright Black (Dark Gray)
	{R: 255, G: 85, B: 85},   // ANSI 9: Bright Red
	{R: 85, G: 255, B: 85},   // ANSI 10: Bright Green
	{R: 255, G: 255, B: 85},  // ANSI 11: Bright Yellow
	{R: 85, G: 85, B: 255},   // ANSI 12: Bright Blue
	{R: 255, G: 85, B: 255},  // ANSI 13: Bright Magenta/Pink
	{R: 85, G: 255, B: 255},  // ANSI 14: Bright Cyan
	{R: 255, G: 255, B: 255}, // ANSI 15: White
}

// Get256ColorRGB returns the RGB values for a 256-color palette index
func Get256ColorRGB(idx int) RGB {
	if idx < 0 {
		idx = 0
	} else if idx > 255 {
		idx = 255
	}
	if idx < 16 {
		return ANSIColorsRGB[idx]
	} else if idx < 232 {
		idx -= 16
		b := idx % 6
		g := (idx / 6) % 6
		r := idx / 36
		return RGB{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51)}
	}
	gray := uint8((idx-232)*10 + 8)
	return RGB{R: gray, G: gray, B: gray}
}

// ParseHexColor parses a hex color string in "#RRGGBB" or "#RGB" format
// Returns a TrueColor type
func ParseHexColor(s string) (Color, bool) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, false
	}
	s = s[1:]
	for i := 0; i < len(s); i++ {
		if _, ok := hexNibble(s[i]); !ok {
			return Color{}, false
		}
	}
	var r, g, b uint8
	switch len(s) {
	case 3:
		r = parseHexNibble(s[0]) * 17
		g = parseHexNibble(s[1]) * 17
		b = parseHexNibble(s[2]) * 17
	case 6:
		r = parseHexNibble(s[0])<<4 | parseHexNibble(s[1])
		g = parseHexNibble(s[2])<<4 | parseHexNibble(s[3])
		b = parseHexNibble(s[4])<<4 | parseHexNibble(s[5])
	default:
		return Color{}, false
	}
	return TrueColor(r, g, b), true
}

func parseHexNibble(c byte) uint8 {
	n, _ := hexNibble(c)
	return n
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ColorNames maps curses-style color names to their ANSI indices (0-15)
var ColorNames = map[string]int{
	"black": 0, "red": 1, "green": 2, "yellow": 3,
	"blue": 4, "magenta": 5, "cyan": 6, "white": 7,
	"bright_black": 8, "bright_red": 9, "bright_green": 10, "bright_yellow": 11,
	"bright_blue": 12, "bright_magenta": 13, "bright_cyan": 14, "bright_white": 15,
}

// ParseColor accepts "default", a name from ColorNames, a palette index
// ("0" through "255") or a hex color ("#RGB", "#RRGGBB"). "default" yields
// DefaultForeground when isFg is set and DefaultBackground otherwise.
func ParseColor(s string, isFg bool) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "default" {
		if isFg {
			return DefaultForeground, true
		}
		return DefaultBackground, true
	}
	if idx, ok := ColorNames[s]; ok {
		return StandardColor(idx), true
	}
	if s[0] == '#' {
		return ParseHexColor(s)
	}
	idx, err := strconv.Atoi(s)
	if err != nil || idx < 0 || idx > 255 {
		return Color{}, false
	}
	if idx < 16 {
		return StandardColor(idx), true
	}
	return PaletteColor(idx), true
}

// ColorScheme defines how default and standard colors resolve to concrete
// colors on a backend that cannot defer to the host terminal.
type ColorScheme struct {
	Foreground Color
	Background Color
	Palette    []Color // 16 ANSI colors
}

// DefaultColorScheme returns the stock light-on-dark scheme with the standard palette.
func DefaultColorScheme() ColorScheme {
	palette := make([]Color, 16)
	for i := range palette {
		palette[i] = StandardColor(i)
	}
	return ColorScheme{
		Foreground: TrueColor(212, 212, 212),
		Background: TrueColor(30, 30, 30),
		Palette:    palette,
	}
}

// ResolveColor resolves a color using the scheme.
// For ColorTypeStandard (0-15), looks up the color in the scheme's palette.
// For ColorTypeDefault, returns the scheme's foreground (if isFg) or background.
// For other types, returns the color unchanged.
func (s ColorScheme) ResolveColor(c Color, isFg bool) Color {
	switch c.Type {
	case ColorTypeDefault:
		if isFg {
			return s.Foreground
		}
		return s.Background
	case ColorTypeStandard:
		idx := int(c.Index)
		if idx < len(s.Palette) {
			return s.Palette[idx]
		}
	}
	return c
}
