// Package cli provides a cellpager.Surface drawn directly onto the host
// terminal with ANSI escape sequences.
//
// The surface is a cellpager.Buffer. Nothing reaches the host terminal until
// a key is requested: ReadKey renders the buffer (only cells that changed
// since the previous frame), positions the host cursor, and then blocks on
// input. There are no background goroutines.
//
// # Basic Usage
//
//	term, err := cli.New(cli.Options{
//	    AutoSize:    true,
//	    BorderStyle: cellpager.BorderRounded,
//	    Title:       "main.rs",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Enter raw mode and the alternate screen
//	if err := term.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer term.Stop()
//
//	term.WriteString("Hello, world!", cellpager.DefaultAttr())
//	term.ReadKey()
//
// # Architecture
//
//   - Terminal: owns the buffer, raw mode and the alternate screen
//   - Renderer: turns buffer cells into cursor moves, SGR attributes and text
//   - InputHandler: reads raw input and decodes keys and escape sequences
//
// On Unix systems the surface follows host resizes (SIGWINCH) when AutoSize
// is set; the check happens before each render.
package cli
