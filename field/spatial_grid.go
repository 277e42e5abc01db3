package field

import (
	"math"

	"github.com/lixenwraith/particlefield/vmath"
)

// maxGridCellsPerParticle bounds grid memory when the query distance is tiny relative to the spread
// Cells are enlarged until the grid fits, which keeps the 3x3 scan correct
const maxGridCellsPerParticle = 16

// GridFinder is a dense uniform bucket grid keyed by floor(x/cell), floor(y/cell)
// Buckets are rebuilt every query with a counting sort into flat slices reused across frames,
// so steady-state queries do not allocate. Evenly spread particles cost near O(n);
// heavy clustering degrades towards the pairwise bound
type GridFinder struct {
	cols, rows int
	cell       float64
	originX    float64
	originY    float64

	cellOf []int32 // particle index -> cell index
	start  []int32 // cell index -> first slot in items, len = cells+1
	items  []int32 // particle indices grouped by cell
}

// Pairs implements NeighborFinder
func (g *GridFinder) Pairs(ps []Particle, distance float64, dst []Link) []Link {
	dst = dst[:0]
	if distance <= 0 || len(ps) < 2 {
		return dst
	}
	g.build(ps, distance)

	limitSq := distance * distance
	for i := range ps {
		c := int(g.cellOf[i])
		cx, cy := c%g.cols, c/g.cols
		a := ps[i].Pos

		for ny := max(cy-1, 0); ny <= min(cy+1, g.rows-1); ny++ {
			for nx := max(cx-1, 0); nx <= min(cx+1, g.cols-1); nx++ {
				n := ny*g.cols + nx
				for _, j32 := range g.items[g.start[n]:g.start[n+1]] {
					j := int(j32)
					if j <= i {
						continue
					}
					dx := ps[j].Pos.X - a.X
					dy := ps[j].Pos.Y - a.Y
					dSq := dx*dx + dy*dy
					if dSq < limitSq {
						dst = append(dst, Link{A: i, B: j, Dist: math.Sqrt(dSq)})
					}
				}
			}
		}
	}
	return dst
}

// build buckets ps by cell
func (g *GridFinder) build(ps []Particle, distance float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range ps {
		p := ps[i].Pos
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	cell := distance
	limit := maxGridCellsPerParticle * len(ps)
	for {
		g.cols = vmath.CellIndex(maxX-minX, cell) + 1
		g.rows = vmath.CellIndex(maxY-minY, cell) + 1
		if g.cols*g.rows <= limit {
			break
		}
		cell *= 2
	}
	g.cell = cell
	g.originX, g.originY = minX, minY

	cells := g.cols * g.rows
	g.start = resize(g.start, cells+1)
	clear(g.start)
	g.cellOf = resize(g.cellOf, len(ps))
	g.items = resize(g.items, len(ps))

	// Counting sort: histogram shifted by one, prefix sum, scatter
	for i := range ps {
		cx := vmath.CellIndex(ps[i].Pos.X-minX, cell)
		cy := vmath.CellIndex(ps[i].Pos.Y-minY, cell)
		c := int32(cy*g.cols + cx)
		g.cellOf[i] = c
		g.start[c+1]++
	}
	for c := 1; c <= cells; c++ {
		g.start[c] += g.start[c-1]
	}
	// start[c] now holds the first slot of cell c
	for i := range ps {
		c := g.cellOf[i]
		g.items[g.start[c]] = int32(i)
		g.start[c]++
	}
	// Scatter advanced each start by its cell size, shift back
	for c := cells; c > 0; c-- {
		g.start[c] = g.start[c-1]
	}
	g.start[0] = 0
}

func resize(s []int32, n int) []int32 {
	if cap(s) < n {
		return make([]int32, n)
	}
	return s[:n]
}
