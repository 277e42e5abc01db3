package vmath

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestClampMagnitude(t *testing.T) {
	v := ClampMagnitude(r2.Vec{X: 3, Y: 4}, 2.5)
	if math.Abs(Len(v)-2.5) > 1e-12 {
		t.Errorf("Expected length 2.5, got %f", Len(v))
	}
	if math.Abs(v.X/v.Y-0.75) > 1e-12 {
		t.Errorf("Expected direction preserved, got %v", v)
	}
	if got := ClampMagnitude(r2.Vec{X: 1}, 2); got != (r2.Vec{X: 1}) {
		t.Errorf("Expected short vector unchanged, got %v", got)
	}
}

func TestFloorMagnitude(t *testing.T) {
	if got := FloorMagnitude(r2.Vec{}, 1); got != (r2.Vec{}) {
		t.Errorf("Expected zero vector unchanged, got %v", got)
	}
	if got := FloorMagnitude(r2.Vec{Y: 0.1}, 1); math.Abs(got.Y-1) > 1e-12 {
		t.Errorf("Expected (0, 1), got %v", got)
	}
}

func TestUnit(t *testing.T) {
	u, l := Unit(r2.Vec{X: 0, Y: -5})
	if l != 5 || u != (r2.Vec{Y: -1}) {
		t.Errorf("Expected (0, -1) and 5, got %v and %f", u, l)
	}
	u, l = Unit(r2.Vec{})
	if l != 0 || u != (r2.Vec{}) {
		t.Errorf("Expected zero for zero input, got %v and %f", u, l)
	}
}

func TestCellIndex(t *testing.T) {
	tests := []struct {
		v, cell float64
		want    int
	}{
		{0, 10, 0},
		{9.99, 10, 0},
		{10, 10, 1},
		{-0.1, 10, -1},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := CellIndex(tt.v, tt.cell); got != tt.want {
			t.Errorf("CellIndex(%f, %f): expected %d, got %d", tt.v, tt.cell, tt.want, got)
		}
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(0)
	for range 1000 {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
		if c := r.Centered(4); c < -2 || c >= 2 {
			t.Fatalf("Centered out of range: %f", c)
		}
		if n := r.Intn(7); n < 0 || n >= 7 {
			t.Fatalf("Intn out of range: %d", n)
		}
	}
	if r.Intn(0) != 0 {
		t.Errorf("Expected Intn(0) to return 0")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(123), NewFastRand(123)
	for range 10 {
		if a.Next() != b.Next() {
			t.Fatalf("Expected identical sequences for equal seeds")
		}
	}
}

func TestFlowFieldUnitAndContinuous(t *testing.T) {
	f := NewFlowField(7, 0.004)
	p := r2.Vec{X: 120, Y: 80}
	d0 := f.Direction(p)
	if math.Abs(Len(d0)-1) > 1e-9 {
		t.Errorf("Expected unit direction, got length %f", Len(d0))
	}

	f.Advance(0.0001)
	d1 := f.Direction(p)
	if Dist(d0, d1) > 0.1 {
		t.Errorf("Expected small change for small time step, got %f", Dist(d0, d1))
	}
}
