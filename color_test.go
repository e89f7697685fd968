package cellpager_test

import (
	"testing"

	"github.com/phroun/cellpager"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want cellpager.Color
		ok   bool
	}{
		{"default", cellpager.DefaultForeground, true},
		{"", cellpager.DefaultForeground, true},
		{"Yellow", cellpager.StandardColor(3), true},
		{"bright_magenta", cellpager.StandardColor(13), true},
		{"4", cellpager.StandardColor(4), true},
		{"208", cellpager.PaletteColor(208), true},
		{"#ff8000", cellpager.TrueColor(255, 128, 0), true},
		{"#F80", cellpager.TrueColor(255, 136, 0), true},
		{"256", cellpager.Color{}, false},
		{"-1", cellpager.Color{}, false},
		{"#12345", cellpager.Color{}, false},
		{"#gg0000", cellpager.Color{}, false},
		{"mauve", cellpager.Color{}, false},
	}
	for _, tc := range tests {
		got, ok := cellpager.ParseColor(tc.in, true)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseColor(%q) = %+v, %v, want %+v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
	if got, _ := cellpager.ParseColor("Default", false); got != cellpager.DefaultBackground {
		t.Errorf("ParseColor(Default, bg) = %+v, want DefaultBackground", got)
	}
}

func TestColor_ToSGRCode(t *testing.T) {
	tests := []struct {
		c  cellpager.Color
		fg string
		bg string
	}{
		{cellpager.DefaultForeground, "39", "49"},
		{cellpager.StandardColor(1), "31", "41"},
		{cellpager.StandardColor(12), "94", "104"},
		{cellpager.PaletteColor(208), "38;5;208", "48;5;208"},
		{cellpager.TrueColor(1, 2, 3), "38;2;1;2;3", "48;2;1;2;3"},
	}
	for _, tc := range tests {
		if got := tc.c.ToSGRCode(true); got != tc.fg {
			t.Errorf("%+v fg = %q, want %q", tc.c, got, tc.fg)
		}
		if got := tc.c.ToSGRCode(false); got != tc.bg {
			t.Errorf("%+v bg = %q, want %q", tc.c, got, tc.bg)
		}
	}
}

func TestGet256ColorRGB(t *testing.T) {
	tests := []struct {
		idx  int
		want cellpager.RGB
	}{
		{1, cellpager.ANSIColorsRGB[1]},
		{16, cellpager.RGB{}},
		{231, cellpager.RGB{R: 255, G: 255, B: 255}},
		{232, cellpager.RGB{R: 8, G: 8, B: 8}},
		{255, cellpager.RGB{R: 238, G: 238, B: 238}},
	}
	for _, tc := range tests {
		if got := cellpager.Get256ColorRGB(tc.idx); got != tc.want {
			t.Errorf("Get256ColorRGB(%d) = %+v, want %+v", tc.idx, got, tc.want)
		}
	}
}

func TestColorScheme_ResolveColor(t *testing.T) {
	scheme := cellpager.DefaultColorScheme()
	scheme.Palette[2] = cellpager.TrueColor(0, 200, 0)

	if got := scheme.ResolveColor(cellpager.StandardColor(2), true); got != cellpager.TrueColor(0, 200, 0) {
		t.Errorf("standard 2 = %+v", got)
	}
	if got := scheme.ResolveColor(cellpager.DefaultForeground, true); got != scheme.Foreground {
		t.Errorf("default fg = %+v", got)
	}
	if got := scheme.ResolveColor(cellpager.DefaultBackground, false); got != scheme.Background {
		t.Errorf("default bg = %+v", got)
	}
	if c := cellpager.PaletteColor(99); scheme.ResolveColor(c, true) != c {
		t.Errorf("palette color changed")
	}
}
