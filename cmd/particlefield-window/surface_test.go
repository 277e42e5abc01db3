package main

import (
	"testing"

	"github.com/lixenwraith/particlefield/render"
)

func TestGradientDiscs(t *testing.T) {
	stops := []render.GradientStop{
		{Offset: 0, Color: render.RGBWhite, Alpha: 0.8},
		{Offset: 1, Color: render.RGBWhite, Alpha: 0},
	}
	discs := gradientDiscs(10, stops, 4)
	if len(discs) != 4 {
		t.Fatalf("Expected 4 discs, got %d", len(discs))
	}
	if discs[0].radius != 10 {
		t.Errorf("Expected outer disc radius 10, got %f", discs[0].radius)
	}
	if discs[3].radius != 2.5 {
		t.Errorf("Expected inner disc radius 2.5, got %f", discs[3].radius)
	}
	if discs[0].alpha != 0 {
		t.Errorf("Expected transparent rim, got alpha %f", discs[0].alpha)
	}
	for i := 1; i < len(discs); i++ {
		if discs[i].radius >= discs[i-1].radius {
			t.Errorf("Expected discs ordered outside in, disc %d radius %f", i, discs[i].radius)
		}
		if discs[i].alpha <= discs[i-1].alpha {
			t.Errorf("Expected alpha to rise towards the centre, disc %d alpha %f", i, discs[i].alpha)
		}
	}

	if gradientDiscs(0, stops, 4) != nil {
		t.Error("Expected no discs for zero radius")
	}
	if gradientDiscs(10, nil, 4) != nil {
		t.Error("Expected no discs without stops")
	}
}

func TestNRGBA(t *testing.T) {
	c := render.RGB{R: 10, G: 20, B: 30}
	tests := []struct {
		alpha float64
		want  uint8
	}{
		{1, 255},
		{0, 0},
		{0.5, 128},
		{2, 255},
		{-1, 0},
	}
	for _, tt := range tests {
		got := nrgba(c, tt.alpha)
		if got.A != tt.want {
			t.Errorf("nrgba alpha %f: Expected %d, got %d", tt.alpha, tt.want, got.A)
		}
		if got.R != 10 || got.G != 20 || got.B != 30 {
			t.Errorf("Expected channels kept, got %+v", got)
		}
	}
}
