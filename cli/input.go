package cli

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/phroun/cellpager"
)

// InputHandler decodes key presses from the host terminal's input stream
type InputHandler struct {
	r       io.Reader
	buf     []byte
	pending []byte
}

// NewInputHandler creates a new input handler reading from r
func NewInputHandler(r io.Reader) *InputHandler {
	return &InputHandler{
		r:   r,
		buf: make([]byte, 256),
	}
}

// ReadKey blocks until a complete key has been read. Unrecognized escape
// sequences are skipped. The reader's error (io.EOF for a closed input) is
// returned once no buffered input remains.
func (h *InputHandler) ReadKey() (cellpager.Key, error) {
	for {
		for len(h.pending) > 0 {
			key, n := decodeKey(h.pending)
			h.pending = h.pending[n:]
			if key.Code != cellpager.KeyNone {
				return key, nil
			}
		}

		n, err := h.r.Read(h.buf)
		if n > 0 {
			h.pending = append(h.pending[:0], h.buf[:n]...)
			continue
		}
		if err != nil {
			return cellpager.Key{}, err
		}
	}
}

// decodeKey decodes the first key in data and returns it with the number of
// bytes it used. Escape sequences are expected to arrive whole, so a lone or
// truncated ESC decodes as the Escape key. Always consumes at least one byte.
func decodeKey(data []byte) (cellpager.Key, int) {
	b := data[0]
	switch {
	case b == 0x1b:
		return decodeEscape(data)
	case b == '\r' || b == '\n':
		return cellpager.Key{Code: cellpager.KeyEnter}, 1
	case b == '\t':
		return cellpager.Key{Code: cellpager.KeyTab}, 1
	case b == 0x7f || b == 0x08:
		return cellpager.Key{Code: cellpager.KeyBackspace}, 1
	case b == 0:
		return cellpager.Key{Code: cellpager.KeyCtrl, Rune: ' ', Mods: cellpager.ModCtrl}, 1
	case b < 0x20:
		return cellpager.Key{Code: cellpager.KeyCtrl, Rune: rune('a' + b - 1), Mods: cellpager.ModCtrl}, 1
	}

	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size <= 1 {
		return cellpager.RuneKey(rune(b)), 1
	}
	return cellpager.RuneKey(r), size
}

func decodeEscape(data []byte) (cellpager.Key, int) {
	if len(data) < 2 {
		return cellpager.Key{Code: cellpager.KeyEscape}, 1
	}
	switch data[1] {
	case '[':
		return parseCSISequence(data)
	case 'O':
		if len(data) >= 3 {
			return parseSS3Sequence(data)
		}
	case 0x1b:
		return cellpager.Key{Code: cellpager.KeyEscape}, 1
	}

	// Alt+key: ESC followed by a regular key
	key, n := decodeKey(data[1:])
	key.Mods |= cellpager.ModAlt
	return key, n + 1
}

var csiKeys = map[byte]cellpager.KeyCode{
	'A': cellpager.KeyUp,
	'B': cellpager.KeyDown,
	'C': cellpager.KeyRight,
	'D': cellpager.KeyLeft,
	'H': cellpager.KeyHome,
	'F': cellpager.KeyEnd,
	'P': cellpager.KeyF1,
	'Q': cellpager.KeyF2,
	'R': cellpager.KeyF3,
	'S': cellpager.KeyF4,
	'Z': cellpager.KeyTab,
}

// Parameters of ESC [ <n> ~ sequences
var tildeKeys = map[int]cellpager.KeyCode{
	1:  cellpager.KeyHome,
	2:  cellpager.KeyInsert,
	3:  cellpager.KeyDelete,
	4:  cellpager.KeyEnd,
	5:  cellpager.KeyPageUp,
	6:  cellpager.KeyPageDown,
	7:  cellpager.KeyHome,
	8:  cellpager.KeyEnd,
	11: cellpager.KeyF1,
	12: cellpager.KeyF2,
	13: cellpager.KeyF3,
	14: cellpager.KeyF4,
	15: cellpager.KeyF5,
	17: cellpager.KeyF6,
	18: cellpager.KeyF7,
	19: cellpager.KeyF8,
	20: cellpager.KeyF9,
	21: cellpager.KeyF10,
	23: cellpager.KeyF11,
	24: cellpager.KeyF12,
}

// parseCSISequence parses CSI (ESC [) sequences
func parseCSISequence(data []byte) (cellpager.Key, int) {
	// Find the final byte
	end := -1
	for i := 2; i < len(data); i++ {
		if data[i] >= 0x40 && data[i] <= 0x7e {
			end = i
			break
		}
	}
	if end < 0 {
		// Truncated sequence - treat the ESC as a key on its own
		return cellpager.Key{Code: cellpager.KeyEscape}, 1
	}

	var params []int
	if end > 2 {
		for _, p := range strings.Split(string(data[2:end]), ";") {
			n, _ := strconv.Atoi(p)
			params = append(params, n)
		}
	}

	var key cellpager.Key
	final := data[end]
	if final == '~' {
		if len(params) > 0 {
			key.Code = tildeKeys[params[0]]
		}
	} else {
		key.Code = csiKeys[final]
		if final == 'Z' {
			key.Mods |= cellpager.ModShift
		}
	}

	// Modifiers in extended format: ESC [ 1 ; <mod> <key>
	if len(params) >= 2 && params[1] >= 2 && params[1] <= 8 {
		key.Mods |= decodeModifier(params[1])
	}
	return key, end + 1
}

// parseSS3Sequence parses SS3 (ESC O) sequences
func parseSS3Sequence(data []byte) (cellpager.Key, int) {
	switch data[2] {
	case 'A', 'B', 'C', 'D', 'H', 'F', 'P', 'Q', 'R', 'S':
		return cellpager.Key{Code: csiKeys[data[2]]}, 3
	}
	// Unknown - skip it
	return cellpager.Key{}, 3
}

func decodeModifier(param int) cellpager.Modifier {
	var mods cellpager.Modifier
	modNum := param - 1
	if modNum&1 != 0 {
		mods |= cellpager.ModShift
	}
	if modNum&2 != 0 {
		mods |= cellpager.ModAlt
	}
	if modNum&4 != 0 {
		mods |= cellpager.ModCtrl
	}
	return mods
}
