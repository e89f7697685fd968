package cli_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/phroun/cellpager"
	"github.com/phroun/cellpager/cli"
)

func newTerminal(t *testing.T, opts cli.Options) (*cli.Terminal, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	opts.Output = &out
	if opts.Input == nil {
		opts.Input = strings.NewReader("")
	}
	term, err := cli.New(opts)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := term.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(func() { term.Stop() })
	return term, &out
}

func TestTerminal_SizeDefaults(t *testing.T) {
	term, err := cli.New(cli.Options{Output: io.Discard, Input: strings.NewReader("")})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cols, rows := term.GetSize(); cols != 80 || rows != 24 {
		t.Fatalf("size = %dx%d, want 80x24", cols, rows)
	}

	// a writer that is not a terminal reports 80x24; the border takes two of each
	term, err = cli.New(cli.Options{Output: io.Discard, AutoSize: true, BorderStyle: cellpager.BorderSingle})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cols, rows := term.GetSize(); cols != 78 || rows != 22 {
		t.Fatalf("auto size = %dx%d, want 78x22", cols, rows)
	}
}

func TestTerminal_RendersOnReadKey(t *testing.T) {
	term, out := newTerminal(t, cli.Options{Cols: 20, Rows: 4, Input: strings.NewReader("q")})
	if !strings.Contains(out.String(), "\033[?1049h") {
		t.Fatalf("start did not switch to the alternate screen: %q", out)
	}
	out.Reset()

	attr := cellpager.Attr{Foreground: cellpager.StandardColor(1), Background: cellpager.DefaultBackground, Bold: true}
	term.WriteString("hi", attr)
	if out.Len() != 0 {
		t.Fatalf("wrote %q before ReadKey", out)
	}

	key, err := term.ReadKey()
	if err != nil {
		t.Fatalf("read key: %v", err)
	}
	if key != cellpager.RuneKey('q') {
		t.Fatalf("key = %v, want q", key)
	}
	frame := out.String()
	if !strings.Contains(frame, "\033[1;1H\033[0;1;31mhi") {
		t.Fatalf("frame missing bold red text: %q", frame)
	}
	// cursor is shown after the text
	if !strings.HasSuffix(frame, "\033[1;3H\033[?25h") {
		t.Fatalf("frame does not end with the cursor: %q", frame)
	}

	if _, err := term.ReadKey(); !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want io.EOF", err)
	}
}

func TestTerminal_DifferentialRender(t *testing.T) {
	term, out := newTerminal(t, cli.Options{Cols: 10, Rows: 3})
	term.WriteString("abc", cellpager.DefaultAttr())
	if err := term.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	out.Reset()

	term.SetCursor(0, 1)
	term.WriteString("z", cellpager.DefaultAttr())
	if err := term.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	frame := out.String()
	if strings.Contains(frame, "abc") {
		t.Fatalf("unchanged row repainted: %q", frame)
	}
	if !strings.Contains(frame, "\033[2;1H\033[0mz") {
		t.Fatalf("changed cell not painted: %q", frame)
	}
}

func TestTerminal_UnchangedFlushWritesNothing(t *testing.T) {
	term, out := newTerminal(t, cli.Options{Cols: 10, Rows: 3})
	term.WriteString("abc", cellpager.DefaultAttr())
	if err := term.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	out.Reset()

	if err := term.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("idle flush wrote %q", out)
	}

	// a cursor move alone is still drawn
	term.SetCursor(5, 2)
	if err := term.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if !strings.Contains(out.String(), "\033[3;6H") {
		t.Fatalf("cursor move not drawn: %q", out)
	}
}

func TestTerminal_BorderAndTitle(t *testing.T) {
	term, out := newTerminal(t, cli.Options{Cols: 20, Rows: 3, BorderStyle: cellpager.BorderSingle, Title: "main.rs"})
	out.Reset()
	term.WriteString("x", cellpager.DefaultAttr())
	if err := term.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	frame := out.String()
	for _, want := range []string{"┌", "┤ main.rs ├", "┘", "\033[2;2H\033[0mx"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q: %q", want, frame)
		}
	}
}

func TestTerminal_StopRestores(t *testing.T) {
	var out bytes.Buffer
	term, err := cli.New(cli.Options{Cols: 10, Rows: 3, Output: &out, Input: strings.NewReader("")})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := term.Stop(); err != nil {
		t.Fatalf("stop before start: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("stop before start wrote %q", out)
	}
	if err := term.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := term.Start(); err == nil {
		t.Fatalf("second start: want error")
	}
	if err := term.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if !strings.HasSuffix(out.String(), "\033[?1049l") {
		t.Fatalf("stop did not leave the alternate screen: %q", out)
	}
	if err := term.Stop(); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}
