package cellpager

import (
	"fmt"
	"strings"
)

// BorderStyle defines the visual style for a box border
type BorderStyle int

const (
	BorderNone    BorderStyle = iota // No border
	BorderSingle                     // Single-line box drawing characters
	BorderDouble                     // Double-line box drawing characters
	BorderHeavy                      // Heavy/thick box drawing characters
	BorderRounded                    // Rounded corners (single line)
)

// BorderChars contains the characters for drawing a border
type BorderChars struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
	TitleLeft   rune
	TitleRight  rune
}

var borderStyles = map[BorderStyle]BorderChars{
	BorderSingle: {
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
		Horizontal: '─', Vertical: '│', TitleLeft: '┤', TitleRight: '├',
	},
	BorderDouble: {
		TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
		Horizontal: '═', Vertical: '║', TitleLeft: '╡', TitleRight: '╞',
	},
	BorderHeavy: {
		TopLeft: '┏', TopRight: '┓', BottomLeft: '┗', BottomRight: '┛',
		Horizontal: '━', Vertical: '┃', TitleLeft: '┫', TitleRight: '┣',
	},
	BorderRounded: {
		TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
		Horizontal: '─', Vertical: '│', TitleLeft: '┤', TitleRight: '├',
	},
}

// Chars returns the character set for the style; BorderNone yields blanks.
func (s BorderStyle) Chars() BorderChars {
	if bc, ok := borderStyles[s]; ok {
		return bc
	}
	return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
}

var borderNames = []string{"none", "single", "double", "heavy", "rounded"}

func (s BorderStyle) String() string {
	if s >= 0 && int(s) < len(borderNames) {
		return borderNames[s]
	}
	return fmt.Sprintf("BorderStyle(%d)", int(s))
}

// ParseBorderStyle parses a border style name ("none", "single", ...)
func ParseBorderStyle(name string) (BorderStyle, error) {
	for i, n := range borderNames {
		if strings.EqualFold(name, n) {
			return BorderStyle(i), nil
		}
	}
	return BorderNone, fmt.Errorf("unknown border style %q", name)
}

// DrawBox draws a width x height box with its top-left corner at (x, y).
// A non-empty title is centred in the top edge when it fits. The cursor is
// left just inside the top-left corner.
func DrawBox(s Surface, x, y, width, height int, style BorderStyle, title string, attr Attr) {
	if width < 2 || height < 2 {
		return
	}
	bc := style.Chars()
	inner := width - 2

	top := []rune(strings.Repeat(string(bc.Horizontal), inner))
	if title != "" && len([]rune(title))+4 <= inner {
		label := []rune(string(bc.TitleLeft) + " " + title + " " + string(bc.TitleRight))
		copy(top[(inner-len(label))/2:], label)
	}

	s.SetCursor(x, y)
	s.WriteString(string(bc.TopLeft)+string(top)+string(bc.TopRight), attr)
	for row := 1; row < height-1; row++ {
		s.SetCursor(x, y+row)
		s.WriteString(string(bc.Vertical), attr)
		s.SetCursor(x+width-1, y+row)
		s.WriteString(string(bc.Vertical), attr)
	}
	s.SetCursor(x, y+height-1)
	s.WriteString(string(bc.BottomLeft)+strings.Repeat(string(bc.Horizontal), inner)+string(bc.BottomRight), attr)
	s.SetCursor(x+1, y+1)
}
