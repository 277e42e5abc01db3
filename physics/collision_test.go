package physics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestApplyRadialForce(t *testing.T) {
	b := Body{Pos: r2.Vec{X: 5, Y: 0}}
	if !ApplyRadialForce(&b, r2.Vec{}, 10, 2, PolarityRepel, 1) {
		t.Fatalf("Expected force applied inside radius")
	}
	if math.Abs(b.Vel.X-1) > eps || b.Vel.Y != 0 {
		t.Errorf("Expected velocity (1, 0), got %v", b.Vel)
	}

	b.Vel = r2.Vec{}
	ApplyRadialForce(&b, r2.Vec{}, 10, 2, PolarityAttract, 0.5)
	if math.Abs(b.Vel.X+0.5) > eps {
		t.Errorf("Expected attract velocity -0.5, got %f", b.Vel.X)
	}

	b = Body{Pos: r2.Vec{X: 10, Y: 0}}
	if ApplyRadialForce(&b, r2.Vec{}, 10, 2, PolarityRepel, 1) {
		t.Errorf("Expected no force at radius edge")
	}
	b = Body{}
	if ApplyRadialForce(&b, r2.Vec{}, 10, 2, PolarityRepel, 1) {
		t.Errorf("Expected no force at zero distance")
	}
}

func TestTouching(t *testing.T) {
	a := Body{Pos: r2.Vec{X: 0}, Radius: 2}
	b := Body{Pos: r2.Vec{X: 3}, Radius: 2}
	if !Touching(&a, &b) {
		t.Errorf("Expected overlap at distance 3 with radii 2+2")
	}
	b.Pos.X = 4
	if Touching(&a, &b) {
		t.Errorf("Expected no overlap at exactly the radius sum")
	}
	b.Pos.X = 0
	if Touching(&a, &b) {
		t.Errorf("Expected coincident centres to be ignored")
	}
}

func TestResolveElasticSeparatingNoImpulse(t *testing.T) {
	a := Body{Pos: r2.Vec{X: 0}, Vel: r2.Vec{X: -1}, Radius: 2, Mass: 1}
	b := Body{Pos: r2.Vec{X: 3}, Vel: r2.Vec{X: 1}, Radius: 2, Mass: 1}

	if got := ResolveElastic(&a, &b, 1); got != ContactTouching {
		t.Fatalf("Expected ContactTouching, got %d", got)
	}
	if a.Vel.X != -1 || b.Vel.X != 1 {
		t.Errorf("Expected velocities untouched, got %f and %f", a.Vel.X, b.Vel.X)
	}
	if math.Abs((b.Pos.X-a.Pos.X)-4) > eps {
		t.Errorf("Expected bodies separated to radius sum, got gap %f", b.Pos.X-a.Pos.X)
	}
}

func TestResolveElasticMassWeighted(t *testing.T) {
	a := Body{Pos: r2.Vec{X: 0}, Vel: r2.Vec{X: 1}, Radius: 2, Mass: 3}
	b := Body{Pos: r2.Vec{X: 2}, Vel: r2.Vec{}, Radius: 2, Mass: 1}

	if got := ResolveElastic(&a, &b, 1); got != ContactResolved {
		t.Fatalf("Expected ContactResolved, got %d", got)
	}
	// Overlap 2 split 1:3, heavier body moves less
	if math.Abs(a.Pos.X+0.5) > eps || math.Abs(b.Pos.X-3.5) > eps {
		t.Errorf("Expected positions -0.5 and 3.5, got %f and %f", a.Pos.X, b.Pos.X)
	}

	before := 3*1.0 + 1*0.0
	after := a.Mass*a.Vel.X + b.Mass*b.Vel.X
	if math.Abs(before-after) > eps {
		t.Errorf("Expected momentum %f conserved, got %f", before, after)
	}
	// 1D elastic: va' = (m1-m2)/(m1+m2) * va, vb' = 2m1/(m1+m2) * va
	if math.Abs(a.Vel.X-0.5) > eps || math.Abs(b.Vel.X-1.5) > eps {
		t.Errorf("Expected velocities 0.5 and 1.5, got %f and %f", a.Vel.X, b.Vel.X)
	}
}

func TestResolveElasticDamping(t *testing.T) {
	a := Body{Pos: r2.Vec{X: 0}, Vel: r2.Vec{X: 1}, Radius: 2, Mass: 1}
	b := Body{Pos: r2.Vec{X: 3}, Vel: r2.Vec{X: -1}, Radius: 2, Mass: 1}
	ResolveElastic(&a, &b, 0.5)

	// j = 2 * -2 / 2 * 0.5 = -1
	if math.Abs(a.Vel.X) > eps || math.Abs(b.Vel.X) > eps {
		t.Errorf("Expected damped bodies at rest, got %f and %f", a.Vel.X, b.Vel.X)
	}
}

func TestResolveElasticNonPositiveMass(t *testing.T) {
	a := Body{Pos: r2.Vec{X: 0}, Vel: r2.Vec{X: 1}, Radius: 2}
	b := Body{Pos: r2.Vec{X: 3}, Vel: r2.Vec{X: -1}, Radius: 2}
	ResolveElastic(&a, &b, 1)
	if math.IsNaN(a.Vel.X) || math.IsNaN(b.Vel.X) {
		t.Fatalf("Expected finite velocities with zero mass")
	}
	if math.Abs(a.Vel.X+1) > eps || math.Abs(b.Vel.X-1) > eps {
		t.Errorf("Expected unit masses to swap velocities, got %f and %f", a.Vel.X, b.Vel.X)
	}
}
