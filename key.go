package cellpager

import (
	"fmt"
	"unicode"
)

// KeyCode identifies a key. Printable input arrives as KeyRune with the
// character in Key.Rune.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrl // Control combination; Rune holds the lower-case letter
)

// Modifier flags
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// Key is a single decoded key press
type Key struct {
	Code KeyCode
	Rune rune
	Mods Modifier
}

var keyNames = map[KeyCode]string{
	KeyNone:      "None",
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDn",
	KeyInsert:    "Insert",
	KeyDelete:    "Delete",
}

// String returns a readable name such as "q", "Up", "Ctrl+C" or "Shift+F5"
func (k Key) String() string {
	var prefix string
	if k.Mods&ModCtrl != 0 && k.Code != KeyCtrl {
		prefix += "Ctrl+"
	}
	if k.Mods&ModAlt != 0 {
		prefix += "Alt+"
	}
	if k.Mods&ModShift != 0 {
		prefix += "Shift+"
	}

	switch {
	case k.Code == KeyRune:
		return prefix + string(k.Rune)
	case k.Code == KeyCtrl:
		return prefix + "Ctrl+" + string(unicode.ToUpper(k.Rune))
	case k.Code >= KeyF1 && k.Code <= KeyF12:
		return fmt.Sprintf("%sF%d", prefix, int(k.Code-KeyF1)+1)
	}
	if name, ok := keyNames[k.Code]; ok {
		return prefix + name
	}
	return fmt.Sprintf("%sKey(%d)", prefix, int(k.Code))
}

// RuneKey returns the key for a printable character
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}
