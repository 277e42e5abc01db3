package render

import (
	"image"
	"image/color"
	"math"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"
)

// Canvas is an in-memory raster implementing Surface on the HTML5-style software canvas
// Clear fills with an opaque background, so every pixel read back is opaque
type Canvas struct {
	backend    *softwarebackend.SoftwareBackend
	cv         *canvas.Canvas
	width      int
	height     int
	background RGB
}

// NewCanvas creates a canvas with the specified dimensions cleared to black
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{background: RGBBlack}
	c.Resize(width, height)
	return c
}

// Resize adjusts canvas dimensions and clears, the backend is rebuilt only on a size change
// A zero-area canvas has no backend and ignores drawing calls
func (c *Canvas) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	if width != c.width || height != c.height || (c.cv == nil && width*height > 0) {
		c.width, c.height = width, height
		c.backend, c.cv = nil, nil
		if width > 0 && height > 0 {
			c.backend = softwarebackend.New(width, height)
			c.cv = canvas.New(c.backend)
		}
	}
	c.Clear()
}

// SetBackground sets the color Clear resets to
func (c *Canvas) SetBackground(bg RGB) {
	c.background = bg
}

// Size implements Surface
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear implements Surface by filling the whole canvas with the background
func (c *Canvas) Clear() {
	if c.cv == nil {
		return
	}
	c.cv.SetFillStyle(rgba(c.background, 1))
	c.cv.FillRect(0, 0, float64(c.width), float64(c.height))
}

// At returns the pixel at (x, y), background when out of bounds
func (c *Canvas) At(x, y int) RGB {
	if c.backend == nil || x < 0 || y < 0 || x >= c.width || y >= c.height {
		return c.background
	}
	p := c.backend.Image.RGBAAt(x, y)
	return RGB{R: p.R, G: p.G, B: p.B}
}

// Image exposes the backing raster, valid until the next Resize
func (c *Canvas) Image() *image.RGBA {
	if c.backend == nil {
		return image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	}
	return c.backend.Image
}

// FillRect implements Surface
func (c *Canvas) FillRect(x, y, w, h float64, col RGB, alpha float64) {
	if c.cv == nil || alpha <= 0 || w <= 0 || h <= 0 {
		return
	}
	c.cv.SetFillStyle(rgba(col, alpha))
	c.cv.FillRect(x, y, w, h)
}

// StrokeLine implements Surface
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col RGB, alpha float64) {
	if c.cv == nil || width <= 0 || alpha <= 0 {
		return
	}
	c.cv.SetStrokeStyle(rgba(col, alpha))
	c.cv.SetLineWidth(width)
	c.cv.BeginPath()
	c.cv.MoveTo(x0, y0)
	c.cv.LineTo(x1, y1)
	c.cv.Stroke()
}

// FillCircle implements Surface
func (c *Canvas) FillCircle(cx, cy, r float64, col RGB, alpha float64) {
	if c.cv == nil || r <= 0 || alpha <= 0 {
		return
	}
	c.cv.SetFillStyle(rgba(col, alpha))
	c.disc(cx, cy, r)
}

// FillRadialGradient implements Surface, stops map offset 0 to the centre and 1 to the rim
func (c *Canvas) FillRadialGradient(cx, cy, r float64, stops []GradientStop) {
	if c.cv == nil || r <= 0 || len(stops) == 0 {
		return
	}
	g := c.cv.CreateRadialGradient(cx, cy, 0, cx, cy, r)
	for _, s := range stops {
		g.AddColorStop(s.Offset, rgba(s.Color, s.Alpha))
	}
	c.cv.SetFillStyle(g)
	c.disc(cx, cy, r)
}

func (c *Canvas) disc(cx, cy, r float64) {
	c.cv.BeginPath()
	c.cv.Arc(cx, cy, r, 0, 2*math.Pi, false)
	c.cv.ClosePath()
	c.cv.Fill()
}

// rgba converts to the non-premultiplied color the canvas styles expect
func rgba(c RGB, alpha float64) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}
