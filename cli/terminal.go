package cli

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/phroun/cellpager"
	"golang.org/x/term"
)

// Options configures terminal creation
type Options struct {
	Cols int // Surface width in columns (default: host width or 80)
	Rows int // Surface height in rows (default: host height or 24)

	// Display options
	BorderStyle cellpager.BorderStyle // Border style around the surface
	Title       string                // Title shown in the top border
	OffsetX     int                   // X offset from top-left of actual terminal (0 = left edge)
	OffsetY     int                   // Y offset from top-left of actual terminal (0 = top edge)

	// If true, the surface sizes itself to fill the host terminal and follows
	// it when the host is resized
	AutoSize bool

	Input  io.Reader // Key source (default: os.Stdin)
	Output io.Writer // Frame destination (default: os.Stdout)
}

// Terminal is a cellpager.Surface drawn onto the host terminal with ANSI
// escape sequences. Output is rendered each time ReadKey is called.
type Terminal struct {
	*cellpager.Buffer

	mu      sync.Mutex
	options Options

	renderer *Renderer
	input    *InputHandler

	// Original terminal state for restoration
	oldState *term.State
	started  bool

	// Actual terminal size
	hostCols int
	hostRows int

	resize     <-chan os.Signal
	stopResize func()
}

// New creates a new CLI terminal surface. Nothing is written to the host
// terminal until Start.
func New(opts Options) (*Terminal, error) {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.OffsetX < 0 || opts.OffsetY < 0 {
		return nil, fmt.Errorf("negative offset %d,%d", opts.OffsetX, opts.OffsetY)
	}

	hostCols, hostRows := getHostTerminalSize(opts.Output)
	if opts.AutoSize {
		opts.Cols, opts.Rows = fitHost(opts, hostCols, hostRows)
	}
	if opts.Cols <= 0 {
		opts.Cols = 80
	}
	if opts.Rows <= 0 {
		opts.Rows = 24
	}

	t := &Terminal{
		Buffer:   cellpager.NewBuffer(opts.Cols, opts.Rows),
		options:  opts,
		hostCols: hostCols,
		hostRows: hostRows,
	}
	t.renderer = NewRenderer(t)
	t.input = NewInputHandler(opts.Input)
	return t, nil
}

// fitHost returns the surface size that fills a host of the given size
func fitHost(opts Options, hostCols, hostRows int) (cols, rows int) {
	borderOffset := 0
	if opts.BorderStyle != cellpager.BorderNone {
		borderOffset = 2
	}
	cols = hostCols - opts.OffsetX*2 - borderOffset
	rows = hostRows - opts.OffsetY*2 - borderOffset
	if cols < 20 {
		cols = 20
	}
	if rows < 5 {
		rows = 5
	}
	return cols, rows
}

// getHostTerminalSize returns the current size of the host terminal
func getHostTerminalSize(w io.Writer) (cols, rows int) {
	f, ok := w.(*os.File)
	if !ok {
		return 80, 24
	}
	cols, rows, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 80, 24
	}
	return cols, rows
}

// Start enters raw mode (when the input is a terminal), switches to the
// alternate screen and clears it.
func (t *Terminal) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return fmt.Errorf("terminal already started")
	}

	if f, ok := t.options.Input.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		oldState, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		t.oldState = oldState
	}

	// Alternate screen, hidden cursor, cleared
	if _, err := io.WriteString(t.options.Output, "\033[?1049h\033[?25l\033[2J\033[H"); err != nil {
		t.restoreLocked()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	t.resize, t.stopResize = notifyResize()
	t.started = true
	return nil
}

// Stop restores the original terminal state. It is safe to call more than once.
func (t *Terminal) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.started {
		return nil
	}
	t.started = false
	t.stopResize()

	// Reset attributes, show cursor, leave the alternate screen
	_, err := io.WriteString(t.options.Output, "\033[0m\033[?25h\033[?1049l")
	if rerr := t.restoreLocked(); rerr != nil && err == nil {
		err = rerr
	}
	return err
}

func (t *Terminal) restoreLocked() error {
	if t.oldState == nil {
		return nil
	}
	f := t.options.Input.(*os.File)
	err := term.Restore(int(f.Fd()), t.oldState)
	t.oldState = nil
	return err
}

// ReadKey renders the surface to the host terminal and blocks until a key
// is read.
func (t *Terminal) ReadKey() (cellpager.Key, error) {
	t.checkResize()
	if err := t.renderer.Render(); err != nil {
		return cellpager.Key{}, fmt.Errorf("render: %w", err)
	}
	return t.input.ReadKey()
}

// Flush renders the surface without waiting for input
func (t *Terminal) Flush() error {
	t.checkResize()
	return t.renderer.Render()
}

// checkResize applies a pending host resize, if any, without blocking
func (t *Terminal) checkResize() {
	t.mu.Lock()
	ch := t.resize
	t.mu.Unlock()
	select {
	case <-ch:
		t.handleResize()
	default:
	}
}

// handleResize updates the surface size when the host terminal is resized.
// The renderer locks itself before t.mu, so t.mu is released before the
// redraw is requested.
func (t *Terminal) handleResize() {
	t.mu.Lock()
	newCols, newRows := getHostTerminalSize(t.options.Output)
	if newCols == t.hostCols && newRows == t.hostRows {
		t.mu.Unlock()
		return
	}
	t.hostCols = newCols
	t.hostRows = newRows

	if t.options.AutoSize {
		cols, rows := fitHost(t.options, newCols, newRows)
		t.Buffer.Resize(cols, rows)
		t.options.Cols = cols
		t.options.Rows = rows
	}
	out := t.options.Output
	t.mu.Unlock()

	// Force full redraw on a cleared host screen
	io.WriteString(out, "\033[2J")
	t.renderer.ForceFullRedraw()
}
