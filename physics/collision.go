package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/particlefield/vmath"
)

// Polarity selects the direction of the pointer force
type Polarity int8

const (
	// PolarityRepel pushes bodies away from the pointer
	PolarityRepel Polarity = 1
	// PolarityAttract pulls bodies towards the pointer
	PolarityAttract Polarity = -1
)

// ApplyRadialForce adds a linear-falloff radial impulse from origin, returns true if applied
// Magnitude is (1 - d/radius) * strength * dt; zero distance has no direction and is skipped
func ApplyRadialForce(b *Body, origin r2.Vec, radius, strength float64, polarity Polarity, dt float64) bool {
	if radius <= 0 || strength == 0 || dt == 0 {
		return false
	}
	dir, d := vmath.Unit(r2.Sub(b.Pos, origin))
	if d == 0 || d >= radius {
		return false
	}
	force := (1 - d/radius) * strength * float64(polarity) * dt
	ApplyImpulse(b, r2.Scale(force, dir))
	return true
}

// Contact is the outcome of a pairwise contact test
type Contact uint8

const (
	// ContactNone means the bodies do not overlap or are coincident
	ContactNone Contact = iota
	// ContactTouching means the bodies overlap but no impulse was applied
	// (proximity-only policy, or bodies already moving apart)
	ContactTouching
	// ContactResolved means an impulse was exchanged
	ContactResolved
)

// Touching reports whether two bodies overlap, coincident centres never touch
func Touching(a, b *Body) bool {
	d := vmath.Dist(a.Pos, b.Pos)
	return d > 0 && d < a.Radius+b.Radius
}

// ResolveElastic separates overlapping bodies along the contact normal and exchanges a damped
// elastic impulse when they approach each other
//
// Separation is split in inverse proportion to mass. The impulse is j = 2*rel/(m1+m2) where rel
// is the relative normal velocity; rel >= 0 means separating and no impulse is applied
func ResolveElastic(a, b *Body, damping float64) Contact {
	n, d := vmath.Unit(r2.Sub(b.Pos, a.Pos))
	if d == 0 || d >= a.Radius+b.Radius {
		return ContactNone
	}

	ma, mb := a.Mass, b.Mass
	if ma <= 0 {
		ma = 1
	}
	if mb <= 0 {
		mb = 1
	}
	total := ma + mb

	overlap := a.Radius + b.Radius - d
	a.Pos = r2.Sub(a.Pos, r2.Scale(overlap*mb/total, n))
	b.Pos = r2.Add(b.Pos, r2.Scale(overlap*ma/total, n))

	rel := r2.Dot(r2.Sub(b.Vel, a.Vel), n)
	if rel >= 0 {
		return ContactTouching
	}

	j := 2 * rel / total * damping
	a.Vel = r2.Add(a.Vel, r2.Scale(j*mb, n))
	b.Vel = r2.Sub(b.Vel, r2.Scale(j*ma, n))
	return ContactResolved
}
