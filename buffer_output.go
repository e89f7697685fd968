package cellpager

import "github.com/mattn/go-runewidth"

// --- Character Writing ---

// WriteString writes s at the cursor with attr, advancing the cursor as it
// goes. Line feeds move to column 0 of the next row, carriage returns to
// column 0 of the current row. Writing past the last column wraps. The
// screen never scrolls: a line feed or wrap on the last row returns to
// column 0 of that row, as curses does with scrolling disabled.
func (b *Buffer) WriteString(s string, attr Attr) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = attr
	for _, ch := range s {
		b.writeRuneInternal(ch)
	}
}

func (b *Buffer) writeRuneInternal(ch rune) {
	switch ch {
	case 0:
		return
	case '\n':
		b.newlineInternal()
		return
	case '\r':
		b.cursorX = 0
		b.markDirty()
		return
	case '\t':
		b.tabInternal()
		return
	case '\b':
		if b.cursorX > 0 {
			b.cursorX--
		}
		b.markDirty()
		return
	}

	// Remaining control characters are shown in caret notation
	if ch < 0x20 || ch == 0x7f {
		b.writeCharInternal('^')
		b.writeCharInternal(ch ^ 0x40)
		return
	}
	b.writeCharInternal(ch)
}

func (b *Buffer) writeCharInternal(ch rune) {
	width := runewidth.RuneWidth(ch)
	if width == 0 {
		b.appendCombiningMark(ch)
		return
	}
	if width > b.cols {
		width = 1
	}

	// The wrap is deferred until a character actually needs the next row.
	if b.cursorX+width > b.cols {
		b.newlineInternal()
	}

	line := b.screen[b.cursorY]
	line[b.cursorX] = Cell{Char: ch, Attr: b.current, Wide: width == 2}
	if width == 2 {
		line[b.cursorX+1] = Cell{Char: 0, Attr: b.current}
	}
	b.cursorX += width
	b.markDirty()
}

// appendCombiningMark attaches ch to the most recently written cell on the
// cursor row. Marks at column 0 have nothing to attach to and are dropped.
func (b *Buffer) appendCombiningMark(ch rune) {
	x := b.cursorX - 1
	if x < 0 {
		return
	}
	line := b.screen[b.cursorY]
	if line[x].IsContinuation() && x > 0 {
		x--
	}
	line[x].Combining += string(ch)
	b.markDirty()
}

func (b *Buffer) tabInternal() {
	b.cursorX = ((b.cursorX / 8) + 1) * 8
	if b.cursorX >= b.cols {
		b.cursorX = b.cols - 1
	}
	b.markDirty()
}

// --- Line Navigation ---

func (b *Buffer) newlineInternal() {
	b.cursorX = 0
	if b.cursorY < b.rows-1 {
		b.cursorY++
	}
	b.markDirty()
}

// --- Screen Clearing ---

// ClearScreen clears the entire screen and moves the cursor to the top-left
func (b *Buffer) ClearScreen() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initScreen()
	b.cursorX = 0
	b.cursorY = 0
	b.markDirty()
}
