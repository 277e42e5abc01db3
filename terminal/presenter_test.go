package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particlefield/parameter"
	"github.com/lixenwraith/particlefield/render"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestCanvasSize(t *testing.T) {
	w, h := CanvasSize(80, 24)
	if w != 80 || h != 48 {
		t.Errorf("Expected 80x48, got %dx%d", w, h)
	}
	if w, h := CanvasSize(-1, -1); w != 0 || h != 0 {
		t.Errorf("Expected 0x0 for negative size, got %dx%d", w, h)
	}
	if CellOf(5) != 2 {
		t.Errorf("Expected pixel row 5 in cell row 2, got %d", CellOf(5))
	}
}

func TestPresenterHalfBlocks(t *testing.T) {
	screen := newSimScreen(t, 4, 2)
	p := NewPresenter(screen)
	if w, h := p.Size(); w != 4 || h != 4 {
		t.Fatalf("Expected 4x4 canvas, got %dx%d", w, h)
	}

	red := render.RGB{R: 255}
	p.FillRect(1, 0, 1, 1, red, 1) // top pixel of cell (1, 0)
	p.Present()

	mainc, _, style, _ := screen.GetContent(1, 0)
	if mainc != parameter.HalfBlock {
		t.Errorf("Expected half block, got %q", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected red foreground, got %v", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("Expected black background, got %v", bg)
	}

	mainc, _, style, _ = screen.GetContent(0, 1)
	if mainc != ' ' {
		t.Errorf("Expected blank cell for uniform pixels, got %q", mainc)
	}
	if _, bg, _ := style.Decompose(); bg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("Expected black background, got %v", bg)
	}
}

func TestPresenterStatusLine(t *testing.T) {
	screen := newSimScreen(t, 10, 3)
	p := NewPresenter(screen)
	p.SetStatus("fps 60")
	p.Present()

	for i, want := range "fps 60" {
		if got, _, _, _ := screen.GetContent(i, 0); got != want {
			t.Errorf("Column %d: expected %q, got %q", i, want, got)
		}
	}

	p.SetStatus("")
	p.Present()
	if got, _, _, _ := screen.GetContent(0, 0); got == 'f' {
		t.Error("Expected status line hidden")
	}
}

func TestPresenterResizeFollowsCanvas(t *testing.T) {
	screen := newSimScreen(t, 6, 3)
	p := NewPresenter(screen)
	p.Resize(CanvasSize(3, 2))
	if w, h := p.Size(); w != 3 || h != 4 {
		t.Errorf("Expected 3x4 canvas, got %dx%d", w, h)
	}
	// Presenting a canvas smaller than the screen must not panic
	p.Present()
}
