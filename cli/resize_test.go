package cli

import (
	"io"
	"sync"
	"testing"
	"time"
)

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func TestTerminal_ResizeDuringRender(t *testing.T) {
	term, err := New(Options{Cols: 10, Rows: 3, Output: &lockedWriter{w: io.Discard}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			term.mu.Lock()
			term.hostCols = 0
			term.mu.Unlock()
			term.handleResize()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			term.SetCursor(i%10, i%3)
			if err := term.renderer.Render(); err != nil {
				t.Errorf("render: %v", err)
				return
			}
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("resize and render deadlocked")
	}
}
