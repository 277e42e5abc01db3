package field

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/particlefield/physics"
	"github.com/lixenwraith/particlefield/vmath"
)

// Particle is a single simulated point mass, owned by the field store
type Particle struct {
	physics.Body

	// ID is stable for the particle lifetime, used for palette coloring
	ID int

	// Speed and Connections are per-frame scratch, recomputed every frame
	Speed       float64
	Connections int
}

// Pointer is the optional pointer/touch position and its interaction radius
type Pointer struct {
	Pos    r2.Vec
	Active bool
	Radius float64
}

// spawn creates a particle with random position in [0,w]x[0,h] and random velocity
func spawn(rng *vmath.FastRand, cfg *Config, id int, width, height float64) Particle {
	radius := cfg.ParticleRadius
	if cfg.RadiusJitter > 0 {
		radius += rng.Centered(cfg.RadiusJitter)
	}
	mass := 1.0
	if cfg.MassFromRadius {
		mass = radius * radius
	}

	p := Particle{
		Body: physics.Body{
			Pos:    r2.Vec{X: rng.Float64() * width, Y: rng.Float64() * height},
			Vel:    r2.Vec{X: rng.Centered(cfg.InitialSpeed), Y: rng.Centered(cfg.InitialSpeed)},
			Radius: radius,
			Mass:   mass,
		},
		ID: id,
	}
	p.Speed = physics.LimitSpeed(&p.Body, cfg.MinSpeed, cfg.MaxSpeed)
	return p
}
