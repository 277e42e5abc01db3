package field

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/particlefield/render"
	"github.com/lixenwraith/particlefield/vmath"
)

// FrameStats summarizes one Frame call
type FrameStats struct {
	Particles   int
	Connections int
	Contacts    int
	Collisions  int
	UpdateTime  time.Duration
	RenderTime  time.Duration
}

// Field owns the particle store and orders Stepper -> neighbor finder -> Renderer
// It is not safe for concurrent use; the engine driver serializes access
type Field struct {
	cfg           Config
	width, height float64

	particles []Particle
	pointer   Pointer
	nextID    int
	rng       *vmath.FastRand

	stepper  Stepper
	renderer *Renderer
	pairwise PairwiseFinder
	grid     GridFinder
	links    []Link
}

// New validates cfg and generates a store sized for width x height
func New(cfg Config, width, height float64) (*Field, error) {
	f := &Field{width: width, height: height}
	if err := f.apply(cfg.Clone()); err != nil {
		return nil, err
	}
	f.Regenerate()
	return f, nil
}

// apply validates and installs cfg without touching the store
func (f *Field) apply(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	r, err := NewRenderer(&cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	f.cfg = cfg
	f.renderer = r
	f.rng = vmath.NewFastRand(seed)
	f.pointer.Radius = cfg.PointerRadius
	f.stepper.Policy = policyFor(cfg.Collision)
	f.stepper.Flow = nil
	if cfg.Drift > 0 {
		f.stepper.Flow = vmath.NewFlowField(int64(seed), cfg.DriftScale)
	}
	return nil
}

// Config returns a snapshot of the current configuration
func (f *Field) Config() Config {
	return f.cfg.Clone()
}

// Reconfigure merges p over the current configuration and regenerates the store
// On validation failure the field is left unchanged
func (f *Field) Reconfigure(p Patch) error {
	if err := f.apply(f.cfg.Merge(p)); err != nil {
		return err
	}
	f.Regenerate()
	return nil
}

// Resize changes the bounds and regenerates the store
func (f *Field) Resize(width, height float64) {
	f.width, f.height = max(width, 0), max(height, 0)
	f.Regenerate()
}

// Size returns the current bounds
func (f *Field) Size() (float64, float64) {
	return f.width, f.height
}

// Regenerate replaces the store with ParticleCount fresh particles
func (f *Field) Regenerate() {
	f.particles = f.particles[:0]
	f.links = f.links[:0]
	f.Grow(f.cfg.ParticleCount)
}

// Clear empties the store, used on teardown
func (f *Field) Clear() {
	f.particles = nil
	f.links = nil
}

// Grow appends up to n fresh particles, returns the number added
func (f *Field) Grow(n int) int {
	if n <= 0 {
		return 0
	}
	for range n {
		f.particles = append(f.particles, spawn(f.rng, &f.cfg, f.nextID, f.width, f.height))
		f.nextID++
	}
	return n
}

// Shrink removes up to n of the oldest particles, returns the number removed
func (f *Field) Shrink(n int) int {
	n = min(max(n, 0), len(f.particles))
	if n == 0 {
		return 0
	}
	f.particles = append(f.particles[:0], f.particles[n:]...)
	f.links = f.links[:0]
	return n
}

// Len returns the current store size
func (f *Field) Len() int {
	return len(f.particles)
}

// Target returns the configured store size
func (f *Field) Target() int {
	return f.cfg.ParticleCount
}

// Particles returns a copy of the store
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Links returns the links of the last neighbor pass, valid until the next pass
func (f *Field) Links() []Link {
	return f.links
}

// SetPointer activates the pointer at (x, y)
func (f *Field) SetPointer(x, y float64) {
	f.pointer = pointerAt(x, y, f.cfg.PointerRadius)
}

// ClearPointer deactivates the pointer
func (f *Field) ClearPointer() {
	f.pointer.Active = false
}

// Pointer returns the pointer position and whether it is active
func (f *Field) Pointer() (r2.Vec, bool) {
	return f.pointer.Pos, f.pointer.Active
}

// finder selects the neighbor strategy for the current store size
func (f *Field) finder() NeighborFinder {
	switch f.cfg.Neighbors {
	case NeighborsGrid:
		return &f.grid
	case NeighborsAuto:
		if len(f.particles) > f.cfg.GridThreshold {
			return &f.grid
		}
	}
	return f.pairwise
}

// Step advances the store by dt nominal frames
func (f *Field) Step(dt float64) StepResult {
	f.stepper.Finder = f.finder()
	return f.stepper.Step(f.particles, f.pointer, &f.cfg, f.width, f.height, dt)
}

// UpdateNeighbors recomputes links within ConnectionDistance and per-particle connection counts
func (f *Field) UpdateNeighbors() int {
	f.links = f.finder().Pairs(f.particles, f.cfg.ConnectionDistance, f.links)
	CountConnections(f.particles, f.links)
	return len(f.links)
}

// Render paints the current state onto s
func (f *Field) Render(s render.Surface) {
	f.renderer.Render(s, f.particles, f.links, &f.cfg)
}

// Frame runs one full Step -> UpdateNeighbors -> Render pass
func (f *Field) Frame(dt float64, s render.Surface) FrameStats {
	start := time.Now()
	res := f.Step(dt)
	conns := f.UpdateNeighbors()
	mid := time.Now()
	f.Render(s)

	return FrameStats{
		Particles:   len(f.particles),
		Connections: conns,
		Contacts:    res.Contacts,
		Collisions:  res.Collisions,
		UpdateTime:  mid.Sub(start),
		RenderTime:  time.Since(mid),
	}
}
