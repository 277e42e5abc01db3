package field

import "math"

// Link is an unordered pair of store indices with A < B and their centre distance
type Link struct {
	A, B int
	Dist float64
}

// NeighborFinder reports every unordered pair of particles closer than distance
// Each pair appears exactly once; results are appended to dst[:0] so callers can reuse scratch
type NeighborFinder interface {
	Pairs(ps []Particle, distance float64, dst []Link) []Link
}

// PairwiseFinder is the direct O(n²) scan, adequate for a few hundred particles
type PairwiseFinder struct{}

// Pairs implements NeighborFinder
func (PairwiseFinder) Pairs(ps []Particle, distance float64, dst []Link) []Link {
	dst = dst[:0]
	if distance <= 0 {
		return dst
	}
	limitSq := distance * distance
	for i := 0; i < len(ps); i++ {
		a := ps[i].Pos
		for j := i + 1; j < len(ps); j++ {
			dx := ps[j].Pos.X - a.X
			dy := ps[j].Pos.Y - a.Y
			dSq := dx*dx + dy*dy
			if dSq < limitSq {
				dst = append(dst, Link{A: i, B: j, Dist: math.Sqrt(dSq)})
			}
		}
	}
	return dst
}

// CountConnections resets every particle's connection count and adds one per link endpoint
func CountConnections(ps []Particle, links []Link) {
	for i := range ps {
		ps[i].Connections = 0
	}
	for _, l := range links {
		ps[l.A].Connections++
		ps[l.B].Connections++
	}
}
