package cellpager

import "sync"

// Buffer manages a bounded grid of character cells and the cursor that
// writes into it. It implements every Surface operation except key input,
// which belongs to the backend that owns the real terminal.
type Buffer struct {
	mu sync.RWMutex

	cols int
	rows int

	cursorX       int
	cursorY       int
	cursorVisible bool

	// Attribute applied to characters written from now on
	current Attr

	// Screen storage, rows x cols
	screen [][]Cell

	dirty bool
}

// NewBuffer creates a new buffer of the given size. Sizes below one cell are
// raised to one.
func NewBuffer(cols, rows int) *Buffer {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	b := &Buffer{
		cols:          cols,
		rows:          rows,
		cursorVisible: true,
		current:       DefaultAttr(),
	}
	b.initScreen()
	return b
}

func (b *Buffer) initScreen() {
	b.screen = make([][]Cell, b.rows)
	for i := range b.screen {
		b.screen[i] = b.makeEmptyLine()
	}
}

func (b *Buffer) makeEmptyLine() []Cell {
	line := make([]Cell, b.cols)
	for i := range line {
		line[i] = EmptyCell()
	}
	return line
}

// markDirty must be called with the lock held.
func (b *Buffer) markDirty() {
	b.dirty = true
}

// GetSize returns the buffer dimensions
func (b *Buffer) GetSize() (cols, rows int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cols, b.rows
}

// Resize changes the buffer dimensions, keeping the top-left content that
// still fits and clamping the cursor into the new bounds.
func (b *Buffer) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if cols == b.cols && rows == b.rows {
		return
	}

	old := b.screen
	b.cols, b.rows = cols, rows
	b.initScreen()
	for y := 0; y < rows && y < len(old); y++ {
		copy(b.screen[y], old[y])
	}

	if b.cursorX > cols {
		b.cursorX = cols
	}
	if b.cursorY >= rows {
		b.cursorY = rows - 1
	}
	b.markDirty()
}

// IsDirty returns true if the buffer changed since the last ClearDirty
func (b *Buffer) IsDirty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dirty
}

// ClearDirty resets the dirty flag, typically after a render
func (b *Buffer) ClearDirty() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dirty = false
}
