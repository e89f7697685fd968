package cellpager

import "strings"

// --- Cell Access ---

// GetCell returns the cell at the given position. Positions outside the
// buffer read as empty cells.
func (b *Buffer) GetCell(x, y int) Cell {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.getCellInternal(x, y)
}

func (b *Buffer) getCellInternal(x, y int) Cell {
	if y < 0 || y >= len(b.screen) {
		return EmptyCell()
	}
	line := b.screen[y]
	if x < 0 || x >= len(line) {
		return EmptyCell()
	}
	return line[x]
}

// GetLineText returns the text of row y with trailing blanks removed.
// The right halves of wide characters contribute nothing.
func (b *Buffer) GetLineText(y int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if y < 0 || y >= len(b.screen) {
		return ""
	}
	var sb strings.Builder
	for _, cell := range b.screen[y] {
		if cell.IsContinuation() {
			continue
		}
		sb.WriteString(cell.String())
	}
	return strings.TrimRight(sb.String(), " ")
}

// GetText returns every row joined by newlines, trailing blank rows removed.
func (b *Buffer) GetText() string {
	_, rows := b.GetSize()
	lines := make([]string, rows)
	for y := range lines {
		lines[y] = b.GetLineText(y)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
