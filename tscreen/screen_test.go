package tscreen_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phroun/cellpager"
	"github.com/phroun/cellpager/tscreen"
)

func newScreen(t *testing.T) (*tscreen.Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	scr, err := tscreen.New(tscreen.Options{Screen: sim})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := scr.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(func() { scr.Stop() })
	return scr, sim
}

func TestScreen_SizeFollowsTcell(t *testing.T) {
	scr, sim := newScreen(t)
	wantCols, wantRows := sim.Size()
	if cols, rows := scr.GetSize(); cols != wantCols || rows != wantRows {
		t.Fatalf("size = %dx%d, want %dx%d", cols, rows, wantCols, wantRows)
	}
}

func TestScreen_PaintsOnReadKey(t *testing.T) {
	scr, sim := newScreen(t)
	attr := cellpager.Attr{Foreground: cellpager.StandardColor(3), Background: cellpager.DefaultBackground, Bold: true}
	scr.WriteString("fn", attr)
	scr.WriteString(" main", cellpager.DefaultAttr())

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	key, err := scr.ReadKey()
	if err != nil {
		t.Fatalf("read key: %v", err)
	}
	if key != cellpager.RuneKey('q') {
		t.Fatalf("key = %v, want q", key)
	}

	cells, width, _ := sim.GetContents()
	var text []rune
	for x := 0; x < 7; x++ {
		text = append(text, cells[x].Runes[0])
	}
	if got := string(text); got != "fn main" {
		t.Fatalf("row 0 = %q, want %q", got, "fn main")
	}
	fg, _, attrs := cells[0].Style.Decompose()
	if fg != tcell.PaletteColor(3) {
		t.Errorf("fg = %v, want palette 3", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Errorf("first cell not bold")
	}
	if _, _, attrs := cells[3].Style.Decompose(); attrs&tcell.AttrBold != 0 {
		t.Errorf("plain cell is bold")
	}
	if width == 0 {
		t.Fatalf("empty simulation screen")
	}
}

func TestScreen_ConvertsKeys(t *testing.T) {
	scr, sim := newScreen(t)
	tests := []struct {
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want cellpager.Key
	}{
		{tcell.KeyUp, 0, tcell.ModNone, cellpager.Key{Code: cellpager.KeyUp}},
		{tcell.KeyEnter, '\r', tcell.ModNone, cellpager.Key{Code: cellpager.KeyEnter}},
		{tcell.KeyF1, 0, tcell.ModNone, cellpager.Key{Code: cellpager.KeyF1}},
		{tcell.KeyLeft, 0, tcell.ModShift, cellpager.Key{Code: cellpager.KeyLeft, Mods: cellpager.ModShift}},
		{tcell.KeyRune, 'x', tcell.ModAlt, cellpager.Key{Code: cellpager.KeyRune, Rune: 'x', Mods: cellpager.ModAlt}},
	}
	for _, tc := range tests {
		sim.InjectKey(tc.key, tc.r, tc.mod)
		got, err := scr.ReadKey()
		if err != nil {
			t.Fatalf("read key: %v", err)
		}
		if got != tc.want {
			t.Errorf("key %v = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestScreen_ResizeWhileWaiting(t *testing.T) {
	scr, sim := newScreen(t)
	sim.SetSize(30, 10)
	if err := sim.PostEvent(tcell.NewEventResize(30, 10)); err != nil {
		t.Fatalf("post resize: %v", err)
	}
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	if _, err := scr.ReadKey(); err != nil {
		t.Fatalf("read key: %v", err)
	}
	if cols, rows := scr.GetSize(); cols != 30 || rows != 10 {
		t.Fatalf("size = %dx%d, want 30x10", cols, rows)
	}
}

func TestScreen_StopTwice(t *testing.T) {
	scr, _ := newScreen(t)
	if err := scr.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := scr.Stop(); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}
