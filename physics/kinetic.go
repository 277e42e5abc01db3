package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/particlefield/vmath"
)

// Body is the kinematic state shared by integration and collision response
type Body struct {
	Pos    r2.Vec
	Vel    r2.Vec
	Radius float64
	Mass   float64
}

// Integrate performs explicit Euler integration: p = p + v*dt
func Integrate(b *Body, dt float64) {
	b.Pos.X += b.Vel.X * dt
	b.Pos.Y += b.Vel.Y * dt
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(b *Body, dv r2.Vec) {
	b.Vel = r2.Add(b.Vel, dv)
}

// ApplyFriction decays velocity by friction per nominal frame, scaled to dt frames
// dt == 0 leaves velocity untouched
func ApplyFriction(b *Body, friction, dt float64) {
	if friction >= 1 || dt == 0 {
		return
	}
	f := math.Pow(friction, dt)
	b.Vel.X *= f
	b.Vel.Y *= f
}

// LimitSpeed rescales velocity into [minSpeed, maxSpeed] and returns the resulting speed
// The floor only applies to moving bodies and only when minSpeed > 0
func LimitSpeed(b *Body, minSpeed, maxSpeed float64) float64 {
	b.Vel = vmath.ClampMagnitude(b.Vel, maxSpeed)
	if minSpeed > 0 {
		b.Vel = vmath.FloorMagnitude(b.Vel, min(minSpeed, maxSpeed))
	}
	return vmath.Len(b.Vel)
}

// ReflectBoundsX handles horizontal boundary collision, returns true if reflection occurred
// Clamps to [minX, maxX]; velocity is negated and scaled by retain only when moving outward
func ReflectBoundsX(b *Body, minX, maxX, retain float64) bool {
	if b.Pos.X <= minX {
		b.Pos.X = minX
		if b.Vel.X < 0 {
			b.Vel.X = -b.Vel.X * retain
			return true
		}
		return false
	}
	if b.Pos.X >= maxX {
		b.Pos.X = maxX
		if b.Vel.X > 0 {
			b.Vel.X = -b.Vel.X * retain
			return true
		}
	}
	return false
}

// ReflectBoundsY handles vertical boundary collision, returns true if reflection occurred
func ReflectBoundsY(b *Body, minY, maxY, retain float64) bool {
	if b.Pos.Y <= minY {
		b.Pos.Y = minY
		if b.Vel.Y < 0 {
			b.Vel.Y = -b.Vel.Y * retain
			return true
		}
		return false
	}
	if b.Pos.Y >= maxY {
		b.Pos.Y = maxY
		if b.Vel.Y > 0 {
			b.Vel.Y = -b.Vel.Y * retain
			return true
		}
	}
	return false
}

// ReflectBounds handles both axis boundary collisions, returns true if any reflection occurred
func ReflectBounds(b *Body, width, height, retain float64) bool {
	rx := ReflectBoundsX(b, 0, width, retain)
	ry := ReflectBoundsY(b, 0, height, retain)
	return rx || ry
}

// ClampBounds pulls position back into [0, width] x [0, height] without touching velocity
func ClampBounds(b *Body, width, height float64) {
	b.Pos.X = vmath.Clamp(b.Pos.X, 0, width)
	b.Pos.Y = vmath.Clamp(b.Pos.Y, 0, height)
}
