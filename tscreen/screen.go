// Package tscreen provides a cellpager.Surface backed by a tcell screen.
//
// Drawing goes to a cellpager.Buffer; each ReadKey paints the buffer onto
// the tcell screen, shows it, and then waits for a key event. Resize events
// received while waiting resize the buffer and repaint.
package tscreen

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/phroun/cellpager"
)

// Options configures a Screen
type Options struct {
	// Screen to draw on (default: tcell.NewScreen). Tests pass a
	// tcell.SimulationScreen.
	Screen tcell.Screen

	// Scheme resolves the standard 16 colors; default colors are left to
	// the terminal.
	Scheme cellpager.ColorScheme
}

// Screen is a cellpager.Surface drawn through tcell
type Screen struct {
	*cellpager.Buffer

	mu      sync.Mutex
	screen  tcell.Screen
	scheme  cellpager.ColorScheme
	started bool
}

// New creates a tcell-backed surface. The screen is initialized by Start.
func New(opts Options) (*Screen, error) {
	if opts.Screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("failed to create screen: %w", err)
		}
		opts.Screen = s
	}
	if len(opts.Scheme.Palette) == 0 {
		opts.Scheme = cellpager.DefaultColorScheme()
	}
	return &Screen{
		Buffer: cellpager.NewBuffer(1, 1),
		screen: opts.Screen,
		scheme: opts.Scheme,
	}, nil
}

// Start initializes the tcell screen and sizes the buffer to match it
func (s *Screen) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return fmt.Errorf("screen already started")
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	s.screen.SetStyle(tcell.StyleDefault)
	s.screen.Clear()
	cols, rows := s.screen.Size()
	s.Buffer.Resize(cols, rows)
	s.started = true
	return nil
}

// Stop restores the terminal. It is safe to call more than once.
func (s *Screen) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return nil
	}
	s.started = false
	s.screen.Fini()
	return nil
}

// ReadKey shows the buffer and blocks until a key event arrives
func (s *Screen) ReadKey() (cellpager.Key, error) {
	s.Flush()
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return cellpager.Key{}, fmt.Errorf("screen closed")
		case *tcell.EventResize:
			cols, rows := ev.Size()
			s.Buffer.Resize(cols, rows)
			s.screen.Sync()
			s.Flush()
		case *tcell.EventKey:
			if key := convertKey(ev); key.Code != cellpager.KeyNone {
				return key, nil
			}
		}
	}
}

// Flush paints the buffer onto the tcell screen and shows it
func (s *Screen) Flush() {
	cols, rows := s.Buffer.GetSize()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := s.Buffer.GetCell(x, y)
			if cell.IsContinuation() {
				if x > 0 && s.Buffer.GetCell(x-1, y).Wide {
					continue
				}
				cell.Char = ' '
			}
			var combining []rune
			if cell.Combining != "" {
				combining = []rune(cell.Combining)
			}
			s.screen.SetContent(x, y, cell.Char, combining, s.style(cell.Attr))
		}
	}

	if s.Buffer.IsCursorVisible() {
		x, y := s.Buffer.GetCursor()
		if x >= cols {
			x = cols - 1
		}
		s.screen.ShowCursor(x, y)
	} else {
		s.screen.HideCursor()
	}
	s.screen.Show()
	s.Buffer.ClearDirty()
}

func (s *Screen) style(attr cellpager.Attr) tcell.Style {
	return tcell.StyleDefault.
		Foreground(s.color(attr.Foreground, true)).
		Background(s.color(attr.Background, false)).
		Bold(attr.Bold).
		Italic(attr.Italic).
		Underline(attr.Underline).
		Reverse(attr.Reverse)
}

func (s *Screen) color(c cellpager.Color, isFg bool) tcell.Color {
	switch c.Type {
	case cellpager.ColorTypeDefault:
		return tcell.ColorDefault
	case cellpager.ColorTypeStandard:
		c = s.scheme.ResolveColor(c, isFg)
		if c.Type == cellpager.ColorTypeStandard {
			return tcell.PaletteColor(int(c.Index))
		}
	case cellpager.ColorTypePalette:
		return tcell.PaletteColor(int(c.Index))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var tcellKeys = map[tcell.Key]cellpager.KeyCode{
	tcell.KeyEnter:      cellpager.KeyEnter,
	tcell.KeyEscape:     cellpager.KeyEscape,
	tcell.KeyTab:        cellpager.KeyTab,
	tcell.KeyBacktab:    cellpager.KeyTab,
	tcell.KeyBackspace:  cellpager.KeyBackspace,
	tcell.KeyBackspace2: cellpager.KeyBackspace,
	tcell.KeyUp:         cellpager.KeyUp,
	tcell.KeyDown:       cellpager.KeyDown,
	tcell.KeyLeft:       cellpager.KeyLeft,
	tcell.KeyRight:      cellpager.KeyRight,
	tcell.KeyHome:       cellpager.KeyHome,
	tcell.KeyEnd:        cellpager.KeyEnd,
	tcell.KeyPgUp:       cellpager.KeyPageUp,
	tcell.KeyPgDn:       cellpager.KeyPageDown,
	tcell.KeyInsert:     cellpager.KeyInsert,
	tcell.KeyDelete:     cellpager.KeyDelete,
	tcell.KeyF1:         cellpager.KeyF1,
	tcell.KeyF2:         cellpager.KeyF2,
	tcell.KeyF3:         cellpager.KeyF3,
	tcell.KeyF4:         cellpager.KeyF4,
	tcell.KeyF5:         cellpager.KeyF5,
	tcell.KeyF6:         cellpager.KeyF6,
	tcell.KeyF7:         cellpager.KeyF7,
	tcell.KeyF8:         cellpager.KeyF8,
	tcell.KeyF9:         cellpager.KeyF9,
	tcell.KeyF10:        cellpager.KeyF10,
	tcell.KeyF11:        cellpager.KeyF11,
	tcell.KeyF12:        cellpager.KeyF12,
}

// convertKey maps a tcell key event to a cellpager key
func convertKey(ev *tcell.EventKey) cellpager.Key {
	var mods cellpager.Modifier
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= cellpager.ModShift
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods |= cellpager.ModAlt
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= cellpager.ModCtrl
	}

	if ev.Key() == tcell.KeyRune {
		return cellpager.Key{Code: cellpager.KeyRune, Rune: ev.Rune(), Mods: mods}
	}
	if code, ok := tcellKeys[ev.Key()]; ok {
		if ev.Key() == tcell.KeyBacktab {
			mods |= cellpager.ModShift
		}
		return cellpager.Key{Code: code, Mods: mods}
	}
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return cellpager.Key{Code: cellpager.KeyCtrl, Rune: rune('a' + ev.Key() - tcell.KeyCtrlA), Mods: cellpager.ModCtrl}
	}
	return cellpager.Key{}
}
