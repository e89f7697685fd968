package cli

import (
	"errors"
	"io"
	"testing"

	"github.com/phroun/cellpager"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  cellpager.Key
		used  int
	}{
		{"rune", "q", cellpager.RuneKey('q'), 1},
		{"multibyte rune", "ö!", cellpager.RuneKey('ö'), 2},
		{"enter", "\r", cellpager.Key{Code: cellpager.KeyEnter}, 1},
		{"line feed", "\n", cellpager.Key{Code: cellpager.KeyEnter}, 1},
		{"tab", "\t", cellpager.Key{Code: cellpager.KeyTab}, 1},
		{"backspace", "\x7f", cellpager.Key{Code: cellpager.KeyBackspace}, 1},
		{"ctrl-c", "\x03", cellpager.Key{Code: cellpager.KeyCtrl, Rune: 'c', Mods: cellpager.ModCtrl}, 1},
		{"lone escape", "\x1b", cellpager.Key{Code: cellpager.KeyEscape}, 1},
		{"double escape", "\x1b\x1b", cellpager.Key{Code: cellpager.KeyEscape}, 1},
		{"alt-x", "\x1bx", cellpager.Key{Code: cellpager.KeyRune, Rune: 'x', Mods: cellpager.ModAlt}, 2},
		{"up", "\x1b[A", cellpager.Key{Code: cellpager.KeyUp}, 3},
		{"down then more", "\x1b[Bq", cellpager.Key{Code: cellpager.KeyDown}, 3},
		{"ss3 right", "\x1bOC", cellpager.Key{Code: cellpager.KeyRight}, 3},
		{"ss3 f1", "\x1bOP", cellpager.Key{Code: cellpager.KeyF1}, 3},
		{"home", "\x1b[H", cellpager.Key{Code: cellpager.KeyHome}, 3},
		{"delete", "\x1b[3~", cellpager.Key{Code: cellpager.KeyDelete}, 4},
		{"page down", "\x1b[6~", cellpager.Key{Code: cellpager.KeyPageDown}, 4},
		{"f5", "\x1b[15~", cellpager.Key{Code: cellpager.KeyF5}, 5},
		{"f12", "\x1b[24~", cellpager.Key{Code: cellpager.KeyF12}, 5},
		{"shift-up", "\x1b[1;2A", cellpager.Key{Code: cellpager.KeyUp, Mods: cellpager.ModShift}, 6},
		{"ctrl-right", "\x1b[1;5C", cellpager.Key{Code: cellpager.KeyRight, Mods: cellpager.ModCtrl}, 6},
		{"back tab", "\x1b[Z", cellpager.Key{Code: cellpager.KeyTab, Mods: cellpager.ModShift}, 3},
		{"truncated csi", "\x1b[1;", cellpager.Key{Code: cellpager.KeyEscape}, 1},
		{"unknown csi", "\x1b[99x", cellpager.Key{}, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, used := decodeKey([]byte(tc.input))
			if got != tc.want {
				t.Errorf("key = %+v (%v), want %+v (%v)", got, got, tc.want, tc.want)
			}
			if used != tc.used {
				t.Errorf("used = %d, want %d", used, tc.used)
			}
		})
	}
}

// chunkReader returns one chunk per Read call, like a terminal delivering
// separate key presses.
type chunkReader struct {
	chunks []string
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.chunks[0])
	c.chunks = c.chunks[1:]
	return n, nil
}

func TestInputHandler_ReadKey(t *testing.T) {
	h := NewInputHandler(&chunkReader{chunks: []string{"ab", "\x1b[A", "\x1b[99x", "", "\x1b"}})
	want := []cellpager.Key{
		cellpager.RuneKey('a'),
		cellpager.RuneKey('b'),
		{Code: cellpager.KeyUp},
		{Code: cellpager.KeyEscape},
	}
	for i, w := range want {
		got, err := h.ReadKey()
		if err != nil {
			t.Fatalf("key %d: %v", i, err)
		}
		if got != w {
			t.Fatalf("key %d = %v, want %v", i, got, w)
		}
	}
	if _, err := h.ReadKey(); !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want io.EOF", err)
	}
}
