package cellpager

// Attr is the set of display attributes applied to written characters.
// The zero value renders with the terminal's default colors.
type Attr struct {
	Foreground Color
	Background Color
	Bold       bool
	Italic     bool
	Underline  bool
	Reverse    bool
}

// DefaultAttr returns the attribute used for plain, unhighlighted text.
func DefaultAttr() Attr {
	return Attr{Foreground: DefaultForeground, Background: DefaultBackground}
}

// Cell represents a single character cell on the surface
type Cell struct {
	Char      rune   // Base character (0 for the right half of a wide character)
	Combining string // Combining marks (vowel points, diacritics, etc.)
	Attr
	Wide bool // True if Char occupies this cell and the next one
}

// String returns the full character including any combining marks
func (c *Cell) String() string {
	if c.Combining == "" {
		return string(c.Char)
	}
	return string(c.Char) + c.Combining
}

// IsContinuation reports whether the cell is the right half of a wide character.
func (c *Cell) IsContinuation() bool {
	return c.Char == 0
}

// EmptyCell returns an empty cell with default attributes
func EmptyCell() Cell {
	return Cell{Char: ' ', Attr: DefaultAttr()}
}
