// Package demos holds small interactive programs that exercise a
// cellpager.Surface: a greeting, a single keypress echo, a movable window
// and a selection menu.
package demos

import (
	"errors"
	"fmt"

	"github.com/phroun/cellpager"
)

// ErrNoItems is returned by Menu when there is nothing to choose from
var ErrNoItems = errors.New("menu has no items")

var (
	boldAttr    = cellpager.Attr{Foreground: cellpager.DefaultForeground, Background: cellpager.DefaultBackground, Bold: true}
	reverseAttr = cellpager.Attr{Foreground: cellpager.DefaultForeground, Background: cellpager.DefaultBackground, Reverse: true}
)

// Hello prints a greeting and waits for a key
func Hello(s cellpager.Surface) error {
	s.ClearScreen()
	s.WriteString("Hello, world!", cellpager.DefaultAttr())
	if _, err := s.ReadKey(); err != nil {
		return fmt.Errorf("read key: %w", err)
	}
	return nil
}

// Keypress asks for one key, echoes its name in bold and waits for another
// key before returning the first one.
func Keypress(s cellpager.Surface) (cellpager.Key, error) {
	s.ClearScreen()
	s.WriteString("Type any character to see it in bold\n", cellpager.DefaultAttr())
	key, err := s.ReadKey()
	if err != nil {
		return cellpager.Key{}, fmt.Errorf("read key: %w", err)
	}

	if key.Code == cellpager.KeyRune && key.Mods == 0 {
		s.WriteString("The pressed key is ", cellpager.DefaultAttr())
	} else {
		s.WriteString("The pressed key is the special key ", cellpager.DefaultAttr())
	}
	s.WriteString(key.String(), boldAttr)
	s.WriteString("\n", cellpager.DefaultAttr())
	if _, err := s.ReadKey(); err != nil {
		return cellpager.Key{}, fmt.Errorf("read key: %w", err)
	}
	return key, nil
}

const (
	windowWidth  = 10
	windowHeight = 3
)

// Window draws a bordered box that the arrow keys move around the surface.
// F1 or q ends the demo. The box never leaves the surface; row 0 holds the
// help line.
func Window(s cellpager.Surface, style cellpager.BorderStyle) error {
	if style == cellpager.BorderNone {
		style = cellpager.BorderSingle
	}
	cols, rows := s.GetSize()
	w, h := min(windowWidth, cols), min(windowHeight, rows-1)
	x, y := (cols-w)/2, 1+(rows-1-h)/2

	for {
		s.ClearScreen()
		s.WriteString("Arrows move, F1 or q exits", cellpager.DefaultAttr())
		drawBox(s, x, y, w, h, style)

		key, err := s.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		switch {
		case key.Code == cellpager.KeyF1, key == cellpager.RuneKey('q'):
			return nil
		case key.Code == cellpager.KeyLeft:
			x--
		case key.Code == cellpager.KeyRight:
			x++
		case key.Code == cellpager.KeyUp:
			y--
		case key.Code == cellpager.KeyDown:
			y++
		}

		// the surface may have been resized while waiting
		cols, rows = s.GetSize()
		w, h = min(windowWidth, cols), min(windowHeight, rows-1)
		x = clamp(x, 0, cols-w)
		y = clamp(y, 1, rows-h)
	}
}

func drawBox(s cellpager.Surface, x, y, w, h int, style cellpager.BorderStyle) {
	cellpager.DrawBox(s, x, y, w, h, style, "", cellpager.DefaultAttr())
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}

// Menu shows items as a vertical list with the current choice highlighted.
// Up and Down move the highlight and wrap at either end, Enter selects, q
// quits. After a selection the choice is printed and confirmed with a key.
// The index of the chosen item is returned, or -1 when the user quit.
func Menu(s cellpager.Surface, items []string) (int, error) {
	if len(items) == 0 {
		return -1, ErrNoItems
	}
	selected := 0
	for {
		s.ClearScreen()
		s.WriteString("Use arrow keys to go up and down, Enter to select, q to quit", cellpager.DefaultAttr())
		for i, item := range items {
			s.SetCursor(2, i+2)
			attr := cellpager.DefaultAttr()
			if i == selected {
				attr = reverseAttr
			}
			s.WriteString(item, attr)
		}

		key, err := s.ReadKey()
		if err != nil {
			return -1, fmt.Errorf("read key: %w", err)
		}
		switch {
		case key == cellpager.RuneKey('q'):
			return -1, nil
		case key.Code == cellpager.KeyUp:
			selected = (selected + len(items) - 1) % len(items)
		case key.Code == cellpager.KeyDown:
			selected = (selected + 1) % len(items)
		case key.Code == cellpager.KeyEnter:
			s.ClearScreen()
			s.WriteString(fmt.Sprintf("You chose %q\n", items[selected]), cellpager.DefaultAttr())
			s.WriteString("Press any key to exit", cellpager.DefaultAttr())
			if _, err := s.ReadKey(); err != nil {
				return -1, fmt.Errorf("read key: %w", err)
			}
			return selected, nil
		}
	}
}
