// Package theme maps highlight categories to display attributes and loads
// overrides from TOML theme files.
package theme

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/phroun/cellpager"
	"github.com/phroun/cellpager/lexer"
)

// Palette holds one display attribute per highlight category.
type Palette map[lexer.Category]cellpager.Attr

// Default returns the stock palette: one distinct foreground per category on
// the terminal's default background.
func Default() Palette {
	fg := func(idx int, bold bool) cellpager.Attr {
		return cellpager.Attr{
			Foreground: cellpager.StandardColor(idx),
			Background: cellpager.DefaultBackground,
			Bold:       bold,
		}
	}
	return Palette{
		lexer.Default: cellpager.DefaultAttr(),
		lexer.Keyword: fg(3, true),  // yellow
		lexer.Type:    fg(2, false), // green
		lexer.Storage: fg(6, false), // cyan
		lexer.Comment: fg(4, false), // blue
		lexer.String:  fg(1, false), // red
		lexer.Char:    fg(5, false), // magenta
		lexer.Number:  fg(13, false),
	}
}

// Attr returns the attribute for c. None and any unregistered category use
// the Default attribute.
func (p Palette) Attr(c lexer.Category) cellpager.Attr {
	if attr, ok := p[c]; ok && c != lexer.None {
		return attr
	}
	if attr, ok := p[lexer.Default]; ok {
		return attr
	}
	return cellpager.DefaultAttr()
}

// entry is one [category.<name>] table in a theme file.
type entry struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

type file struct {
	Category map[string]entry `toml:"category"`
}

// Decode reads a theme from r and applies it on top of the default palette.
// Settings left out of the file keep their default values.
//
//	[category.keyword]
//	fg = "yellow"    # name, 0-255 index or "#RRGGBB"
//	bold = true
func Decode(r io.Reader) (Palette, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("theme: unknown keys: %s", strings.Join(keys, ", "))
	}

	p := Default()
	names := make([]string, 0, len(f.Category))
	for name := range f.Category {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c, err := lexer.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("theme: %w", err)
		}
		if c == lexer.None {
			return nil, fmt.Errorf("theme: category %q has no attribute of its own", name)
		}
		attr, err := f.Category[name].apply(p.Attr(c))
		if err != nil {
			return nil, fmt.Errorf("theme: category %q: %w", name, err)
		}
		p[c] = attr
	}
	return p, nil
}

// Load reads a theme file. See Decode for the format.
func Load(path string) (Palette, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	defer fp.Close()
	return Decode(fp)
}

func (e entry) apply(attr cellpager.Attr) (cellpager.Attr, error) {
	if e.Fg != nil {
		c, ok := cellpager.ParseColor(*e.Fg, true)
		if !ok {
			return attr, fmt.Errorf("invalid fg color %q", *e.Fg)
		}
		attr.Foreground = c
	}
	if e.Bg != nil {
		c, ok := cellpager.ParseColor(*e.Bg, false)
		if !ok {
			return attr, fmt.Errorf("invalid bg color %q", *e.Bg)
		}
		attr.Background = c
	}
	for _, flag := range []struct {
		src *bool
		dst *bool
	}{
		{e.Bold, &attr.Bold},
		{e.Italic, &attr.Italic},
		{e.Underline, &attr.Underline},
		{e.Reverse, &attr.Reverse},
	} {
		if flag.src != nil {
			*flag.dst = *flag.src
		}
	}
	return attr, nil
}
