package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/phroun/cellpager"
)

// Renderer handles rendering the surface buffer to the actual CLI terminal
type Renderer struct {
	term *Terminal
	mu   sync.Mutex

	lastCells [][]renderedCell // Previous frame for differential rendering

	// Output buffer for batching writes
	output strings.Builder
}

// renderedCell stores the last rendered state of a cell for diff comparison
type renderedCell struct {
	char      rune
	combining string
	attr      cellpager.Attr
}

// NewRenderer creates a new renderer for the terminal
func NewRenderer(term *Terminal) *Renderer {
	return &Renderer{term: term}
}

// ForceFullRedraw discards the previous frame so the next render repaints
// every cell and the border
func (r *Renderer) ForceFullRedraw() {
	r.mu.Lock()
	r.lastCells = nil
	r.mu.Unlock()
}

// Render performs a full or differential render of the surface
func (r *Renderer) Render() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.term.mu.Lock()
	opts := r.term.options
	r.term.mu.Unlock()
	buffer := r.term.Buffer

	cols, rows := buffer.GetSize()
	cursorX, cursorY := buffer.GetCursor()
	cursorVisible := buffer.IsCursorVisible()

	// Account for border
	contentStartX := opts.OffsetX
	contentStartY := opts.OffsetY
	if opts.BorderStyle != cellpager.BorderNone {
		contentStartX++
		contentStartY++
	}

	prevCells := r.lastCells
	needsFullRender := prevCells == nil || len(prevCells) != rows
	if !needsFullRender && !buffer.IsDirty() {
		return nil
	}

	r.output.Reset()

	// Hide cursor during rendering to prevent flicker
	r.output.WriteString("\033[?25l")

	if needsFullRender && opts.BorderStyle != cellpager.BorderNone {
		r.renderBorder(opts.OffsetX, opts.OffsetY, cols, rows, opts.BorderStyle.Chars(), opts.Title)
	}

	newCells := make([][]renderedCell, rows)
	var current cellpager.Attr
	firstAttr := true
	lastX, lastY := -1, -1

	for y := 0; y < rows; y++ {
		newCells[y] = make([]renderedCell, cols)
		rowChanged := needsFullRender || len(prevCells[y]) != cols

		for x := 0; x < cols; x++ {
			cell := buffer.GetCell(x, y)
			rc := renderedCell{char: cell.Char, combining: cell.Combining, attr: cell.Attr}
			newCells[y][x] = rc

			if !rowChanged && prevCells[y][x] == rc {
				continue
			}

			// The left half of a wide character already painted this column
			if cell.IsContinuation() {
				if x > 0 && buffer.GetCell(x-1, y).Wide {
					continue
				}
				cell.Char = ' '
			}

			if x != lastX || y != lastY {
				fmt.Fprintf(&r.output, "\033[%d;%dH", contentStartY+y+1, contentStartX+x+1)
			}

			if firstAttr || cell.Attr != current {
				r.output.WriteString("\033[")
				r.output.WriteString(sgrFor(cell.Attr))
				r.output.WriteString("m")
				current = cell.Attr
				firstAttr = false
			}

			r.output.WriteRune(cell.Char)
			r.output.WriteString(cell.Combining)
			lastX, lastY = x+1, y
			if cell.Wide {
				lastX++
			}
		}
	}

	// Reset attributes
	r.output.WriteString("\033[0m")

	if cursorVisible {
		if cursorX >= cols {
			cursorX = cols - 1
		}
		fmt.Fprintf(&r.output, "\033[%d;%dH", contentStartY+cursorY+1, contentStartX+cursorX+1)
		r.output.WriteString("\033[?25h")
	}

	if _, err := io.WriteString(opts.Output, r.output.String()); err != nil {
		return err
	}

	r.lastCells = newCells
	buffer.ClearDirty()
	return nil
}

// sgrFor returns the SGR parameters that select attr from a reset state
func sgrFor(attr cellpager.Attr) string {
	sgr := []string{"0"}
	if attr.Bold {
		sgr = append(sgr, "1")
	}
	if attr.Italic {
		sgr = append(sgr, "3")
	}
	if attr.Underline {
		sgr = append(sgr, "4")
	}
	if attr.Reverse {
		sgr = append(sgr, "7")
	}
	if !attr.Foreground.IsDefault() {
		sgr = append(sgr, attr.Foreground.ToSGRCode(true))
	}
	if !attr.Background.IsDefault() {
		sgr = append(sgr, attr.Background.ToSGRCode(false))
	}
	return strings.Join(sgr, ";")
}

// renderBorder draws the surface border with an optional centred title
func (r *Renderer) renderBorder(x, y, innerCols, innerRows int, bc cellpager.BorderChars, title string) {
	r.output.WriteString("\033[0m")

	// Top border
	fmt.Fprintf(&r.output, "\033[%d;%dH", y+1, x+1)
	r.output.WriteRune(bc.TopLeft)
	titleRunes := []rune(title)
	if len(titleRunes) > 0 && len(titleRunes)+4 <= innerCols {
		left := (innerCols - len(titleRunes) - 4) / 2
		r.output.WriteString(strings.Repeat(string(bc.Horizontal), left))
		r.output.WriteRune(bc.TitleLeft)
		r.output.WriteString(" " + title + " ")
		r.output.WriteRune(bc.TitleRight)
		r.output.WriteString(strings.Repeat(string(bc.Horizontal), innerCols-left-len(titleRunes)-4))
	} else {
		r.output.WriteString(strings.Repeat(string(bc.Horizontal), innerCols))
	}
	r.output.WriteRune(bc.TopRight)

	// Side borders
	for row := 1; row <= innerRows; row++ {
		fmt.Fprintf(&r.output, "\033[%d;%dH", y+row+1, x+1)
		r.output.WriteRune(bc.Vertical)
		fmt.Fprintf(&r.output, "\033[%d;%dH", y+row+1, x+innerCols+2)
		r.output.WriteRune(bc.Vertical)
	}

	// Bottom border
	fmt.Fprintf(&r.output, "\033[%d;%dH", y+innerRows+2, x+1)
	r.output.WriteRune(bc.BottomLeft)
	r.output.WriteString(strings.Repeat(string(bc.Horizontal), innerCols))
	r.output.WriteRune(bc.BottomRight)
}
