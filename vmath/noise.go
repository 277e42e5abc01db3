package vmath

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
	"gonum.org/v1/gonum/spatial/r2"
)

// FlowField maps positions to slowly evolving unit directions from 3D simplex noise
// The third noise axis is time, so the field drifts without discontinuities
type FlowField struct {
	noise opensimplex.Noise
	scale float64
	t     float64
}

// NewFlowField creates a field with scale mapping surface pixels to noise space
func NewFlowField(seed int64, scale float64) *FlowField {
	return &FlowField{
		noise: opensimplex.NewNormalized(seed),
		scale: scale,
	}
}

// Advance moves the field along its time axis
func (f *FlowField) Advance(dt float64) {
	f.t += dt
}

// Direction returns the unit flow vector at p
func (f *FlowField) Direction(p r2.Vec) r2.Vec {
	n := f.noise.Eval3(p.X*f.scale, p.Y*f.scale, f.t)
	return FromAngle(n*4*math.Pi, 1)
}
