package cellpager

// Surface is a bounded character grid with a movable cursor and blocking key
// input. The pager and the demos draw only through this interface, so they
// run unchanged on any backend and against in-memory fakes in tests.
//
// Session setup and teardown are not part of Surface; they belong to the
// concrete backend.
type Surface interface {
	// ClearScreen blanks the whole surface and moves the cursor to (0, 0).
	ClearScreen()
	// WriteString writes s at the cursor with attr and advances the cursor,
	// wrapping at the right margin and moving to the next row on '\n'.
	WriteString(s string, attr Attr)
	GetCursor() (x, y int)
	SetCursor(x, y int)
	GetSize() (cols, rows int)
	// ReadKey makes pending output visible, then blocks until a key arrives.
	ReadKey() (Key, error)
}
