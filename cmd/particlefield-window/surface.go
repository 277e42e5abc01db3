package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/particlefield/render"
)

// gradientRings is the number of concentric discs approximating a radial gradient
const gradientRings = 8

// imageSurface draws render.Surface calls onto an ebiten image
type imageSurface struct {
	img *ebiten.Image
	bg  color.Color
}

func (s *imageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *imageSurface) Clear() {
	s.img.Fill(s.bg)
}

func (s *imageSurface) FillRect(x, y, w, h float64, c render.RGB, alpha float64) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), nrgba(c, alpha), false)
}

func (s *imageSurface) StrokeLine(x0, y0, x1, y1, width float64, c render.RGB, alpha float64) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), nrgba(c, alpha), true)
}

func (s *imageSurface) FillCircle(cx, cy, r float64, c render.RGB, alpha float64) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), nrgba(c, alpha), true)
}

func (s *imageSurface) FillRadialGradient(cx, cy, r float64, stops []render.GradientStop) {
	for _, ring := range gradientDiscs(r, stops, gradientRings) {
		if ring.alpha <= 0 {
			continue
		}
		vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(ring.radius), nrgba(ring.color, ring.alpha), true)
	}
}

type disc struct {
	radius float64
	color  render.RGB
	alpha  float64
}

// gradientDiscs returns discs from the outside in, each sampled at its rim
// Inner discs stack over outer ones, so per-disc alpha is divided across the rings
func gradientDiscs(r float64, stops []render.GradientStop, rings int) []disc {
	if r <= 0 || len(stops) == 0 || rings <= 0 {
		return nil
	}
	out := make([]disc, 0, rings)
	for i := rings; i >= 1; i-- {
		t := float64(i) / float64(rings)
		c, a := render.SampleStops(stops, t)
		out = append(out, disc{radius: r * t, color: c, alpha: a / float64(rings) * 2})
	}
	return out
}

func nrgba(c render.RGB, alpha float64) color.NRGBA {
	alpha = min(max(alpha, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}
