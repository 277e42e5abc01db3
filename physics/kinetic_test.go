package physics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const eps = 1e-9

func TestIntegrate(t *testing.T) {
	b := Body{Pos: r2.Vec{X: 1, Y: 2}, Vel: r2.Vec{X: 0.5, Y: -1}}
	Integrate(&b, 2)
	if b.Pos != (r2.Vec{X: 2, Y: 0}) {
		t.Errorf("Expected (2, 0), got %v", b.Pos)
	}
}

func TestApplyFriction(t *testing.T) {
	b := Body{Vel: r2.Vec{X: 1, Y: 0}}
	ApplyFriction(&b, 0.5, 2)
	if math.Abs(b.Vel.X-0.25) > eps {
		t.Errorf("Expected 0.25 after two frames at 0.5, got %f", b.Vel.X)
	}

	b.Vel.X = 1
	ApplyFriction(&b, 0.5, 0)
	if b.Vel.X != 1 {
		t.Errorf("Expected no decay at dt 0, got %f", b.Vel.X)
	}
	ApplyFriction(&b, 1, 3)
	if b.Vel.X != 1 {
		t.Errorf("Expected no decay at friction 1, got %f", b.Vel.X)
	}
}

func TestLimitSpeed(t *testing.T) {
	tests := []struct {
		name     string
		vel      r2.Vec
		min, max float64
		want     float64
	}{
		{"above max", r2.Vec{X: 3, Y: 4}, 0, 2, 2},
		{"within", r2.Vec{X: 0.6, Y: 0.8}, 0.5, 2, 1},
		{"below min", r2.Vec{X: 0.1, Y: 0}, 0.5, 2, 0.5},
		{"at rest", r2.Vec{}, 0.5, 2, 0},
		{"min above max", r2.Vec{X: 0.1, Y: 0}, 5, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Body{Vel: tt.vel}
			got := LimitSpeed(&b, tt.min, tt.max)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("Expected speed %f, got %f", tt.want, got)
			}
			if math.Abs(math.Hypot(b.Vel.X, b.Vel.Y)-got) > eps {
				t.Errorf("Returned speed does not match velocity %v", b.Vel)
			}
		})
	}
}

func TestReflectBoundsOutwardOnly(t *testing.T) {
	tests := []struct {
		name    string
		pos     float64
		vel     float64
		wantPos float64
		wantVel float64
		reflect bool
	}{
		{"left outward", -1, -2, 0, 1, true},
		{"left inward", -1, 2, 0, 2, false},
		{"right outward", 11, 2, 10, -1, true},
		{"right inward", 11, -2, 10, -2, false},
		{"inside", 5, 2, 5, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Body{Pos: r2.Vec{X: tt.pos, Y: tt.pos}, Vel: r2.Vec{X: tt.vel, Y: tt.vel}}
			gotX := ReflectBoundsX(&b, 0, 10, 0.5)
			gotY := ReflectBoundsY(&b, 0, 10, 0.5)
			if gotX != tt.reflect || gotY != tt.reflect {
				t.Errorf("Expected reflect %v, got x=%v y=%v", tt.reflect, gotX, gotY)
			}
			if b.Pos.X != tt.wantPos || b.Pos.Y != tt.wantPos {
				t.Errorf("Expected pos %f, got %v", tt.wantPos, b.Pos)
			}
			if b.Vel.X != tt.wantVel || b.Vel.Y != tt.wantVel {
				t.Errorf("Expected vel %f, got %v", tt.wantVel, b.Vel)
			}
		})
	}
}

func TestClampBounds(t *testing.T) {
	b := Body{Pos: r2.Vec{X: -3, Y: 12}, Vel: r2.Vec{X: -1, Y: 1}}
	ClampBounds(&b, 10, 10)
	if b.Pos != (r2.Vec{X: 0, Y: 10}) {
		t.Errorf("Expected (0, 10), got %v", b.Pos)
	}
	if b.Vel != (r2.Vec{X: -1, Y: 1}) {
		t.Errorf("Expected velocity untouched, got %v", b.Vel)
	}
}
