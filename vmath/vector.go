package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Len returns the euclidean length of v
func Len(v r2.Vec) float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared length of v without sqrt
func LenSq(v r2.Vec) float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dist returns the distance between a and b
func Dist(a, b r2.Vec) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Unit returns v scaled to length 1 and its original length, zero vector for zero input
func Unit(v r2.Vec) (r2.Vec, float64) {
	l := Len(v)
	if l == 0 {
		return r2.Vec{}, 0
	}
	return r2.Vec{X: v.X / l, Y: v.Y / l}, l
}

// ClampMagnitude limits v to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(v r2.Vec, maxMag float64) r2.Vec {
	l := Len(v)
	if l <= maxMag || l == 0 {
		return v
	}
	return r2.Scale(maxMag/l, v)
}

// FloorMagnitude raises a non-zero v to minMag while preserving direction
// Zero vectors stay zero, there is no direction to scale along
func FloorMagnitude(v r2.Vec, minMag float64) r2.Vec {
	l := Len(v)
	if l == 0 || l >= minMag {
		return v
	}
	return r2.Scale(minMag/l, v)
}

// FromAngle returns a vector of length mag at angle radians
func FromAngle(angle, mag float64) r2.Vec {
	s, c := math.Sincos(angle)
	return r2.Vec{X: c * mag, Y: s * mag}
}
