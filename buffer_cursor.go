package cellpager

// --- Cursor Position Methods ---

// GetCursor returns the current cursor position. After a write fills the last
// column x equals the width until the next character wraps the line.
func (b *Buffer) GetCursor() (x, y int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursorX, b.cursorY
}

// SetCursor sets the cursor position (clamped to valid range)
func (b *Buffer) SetCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.setCursorInternal(x, y)
}

func (b *Buffer) setCursorInternal(x, y int) {
	if x < 0 {
		x = 0
	}
	if x >= b.cols {
		x = b.cols - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= b.rows {
		y = b.rows - 1
	}
	b.cursorX = x
	b.cursorY = y
	b.markDirty()
}

// --- Cursor Visibility ---

// SetCursorVisible sets cursor visibility
func (b *Buffer) SetCursorVisible(visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorVisible = visible
	b.markDirty()
}

// IsCursorVisible returns cursor visibility
func (b *Buffer) IsCursorVisible() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursorVisible
}
