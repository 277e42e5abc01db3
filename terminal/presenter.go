package terminal

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particlefield/parameter"
	"github.com/lixenwraith/particlefield/render"
)

// CanvasSize maps a cell grid to the pixel grid, each cell holds two vertical pixels
func CanvasSize(cols, rows int) (width, height int) {
	return max(cols, 0), max(rows, 0) * 2
}

// CellOf maps a pixel row to its cell row
func CellOf(y int) int {
	return y / 2
}

// Presenter is a render surface backed by a Canvas that presents to a tcell screen
// Each cell draws an upper half block with the top pixel as foreground and the bottom as background
type Presenter struct {
	*render.Canvas
	screen tcell.Screen
	status atomic.Pointer[string]
}

// NewPresenter sizes the canvas from the current screen size
func NewPresenter(screen tcell.Screen) *Presenter {
	cols, rows := screen.Size()
	return &Presenter{
		Canvas: render.NewCanvas(CanvasSize(cols, rows)),
		screen: screen,
	}
}

// SetStatus sets a single line of text drawn over the top row, empty hides it
func (p *Presenter) SetStatus(s string) {
	p.status.Store(&s)
}

// Present writes the canvas to the screen and shows it
func (p *Presenter) Present() {
	w, h := p.Canvas.Size()
	cols, rows := p.screen.Size()
	cols = min(cols, w)
	rows = min(rows, (h+1)/2)

	for row := 0; row < rows; row++ {
		for x := 0; x < cols; x++ {
			top := p.Canvas.At(x, row*2)
			bottom := p.Canvas.At(x, row*2+1)
			if top == bottom {
				p.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault.Background(color(bottom)))
				continue
			}
			style := tcell.StyleDefault.Foreground(color(top)).Background(color(bottom))
			p.screen.SetContent(x, row, parameter.HalfBlock, nil, style)
		}
	}

	if s := p.status.Load(); s != nil && *s != "" {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
		x := 0
		for _, r := range *s {
			if x >= cols {
				break
			}
			p.screen.SetContent(x, 0, r, nil, style)
			x++
		}
	}
	p.screen.Show()
}

func color(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
