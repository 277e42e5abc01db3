package field

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/lixenwraith/particlefield/parameter"
	"github.com/lixenwraith/particlefield/render"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid field config")

// NeighborStrategy selects how candidate pairs are found
type NeighborStrategy string

const (
	NeighborsPairwise NeighborStrategy = "pairwise"
	NeighborsGrid     NeighborStrategy = "grid"
	// NeighborsAuto uses the grid once the store exceeds GridThreshold
	NeighborsAuto NeighborStrategy = "auto"
)

// CollisionMode selects the pairwise response in the stepper
type CollisionMode string

const (
	// CollisionProximity tallies contacts without touching positions or velocities
	CollisionProximity CollisionMode = "proximity"
	// CollisionElastic separates overlapping bodies and exchanges a damped impulse
	CollisionElastic CollisionMode = "elastic"
)

// ColorMode selects body coloring
type ColorMode string

const (
	// ColorSpeed buckets speed ratio into slow/medium/fast colors
	ColorSpeed ColorMode = "speed"
	// ColorPalette cycles a fixed palette by particle id
	ColorPalette ColorMode = "palette"
)

// PointerMode selects pointer force polarity
type PointerMode string

const (
	PointerRepel   PointerMode = "repel"
	PointerAttract PointerMode = "attract"
)

// Colors holds hex encoded visual colors
type Colors struct {
	Slow       string
	Medium     string
	Fast       string
	Connection string
	// Background, when set, turns the per-frame clear into an opaque fill
	Background      string
	ConnectionAlpha float64
	Palette         []string
}

// Config is the immutable-per-run field configuration
// Speeds and forces are in surface pixels per nominal frame
type Config struct {
	ParticleCount  int
	ParticleRadius float64
	// RadiusJitter spreads radii uniformly over [r - j/2, r + j/2]
	RadiusJitter float64
	// MassFromRadius derives mass from r², otherwise every mass is 1
	MassFromRadius bool
	InitialSpeed   float64

	MaxSpeed         float64
	MinSpeed         float64
	Friction         float64
	BounceEnergy     float64
	CollisionDamping float64

	ConnectionDistance float64

	PointerRadius float64
	PointerForce  float64
	PointerMode   PointerMode

	Neighbors     NeighborStrategy
	GridThreshold int
	Collision     CollisionMode

	Connections bool
	Glow        bool
	GlowScale   float64
	ColorMode   ColorMode
	Colors      Colors

	Drift      float64
	DriftScale float64

	// Seed for store generation, 0 picks a time based seed
	Seed uint64
}

// DefaultConfig returns the desktop defaults
func DefaultConfig() Config {
	return Config{
		ParticleCount:      parameter.ParticleCount,
		ParticleRadius:     parameter.ParticleRadius,
		RadiusJitter:       parameter.ParticleRadiusJitter,
		InitialSpeed:       parameter.ParticleInitialSpeed,
		MaxSpeed:           parameter.MaxSpeed,
		MinSpeed:           parameter.MinSpeed,
		Friction:           parameter.Friction,
		BounceEnergy:       parameter.BounceEnergy,
		CollisionDamping:   parameter.CollisionDamping,
		ConnectionDistance: parameter.ConnectionDistance,
		PointerRadius:      parameter.PointerRadius,
		PointerForce:       parameter.PointerForce,
		PointerMode:        PointerRepel,
		Neighbors:          NeighborsAuto,
		GridThreshold:      parameter.GridThreshold,
		Collision:          CollisionProximity,
		Connections:        true,
		GlowScale:          parameter.GlowScale,
		ColorMode:          ColorSpeed,
		Colors: Colors{
			Slow:            parameter.ColorSlow,
			Medium:          parameter.ColorMedium,
			Fast:            parameter.ColorFast,
			Connection:      parameter.ColorConnection,
			ConnectionAlpha: parameter.ConnectionAlpha,
			Palette:         slices.Clone(parameter.Palette),
		},
		Drift:      parameter.DriftStrength,
		DriftScale: parameter.DriftScale,
	}
}

// Clone returns a deep copy, slices are not shared
func (c Config) Clone() Config {
	c.Colors.Palette = slices.Clone(c.Colors.Palette)
	return c
}

// Scaled returns c with every length and speed multiplied by k
// Hosts whose pixels are coarser than logical pixels use it to keep the field proportions
func (c Config) Scaled(k float64) Config {
	if k <= 0 {
		return c.Clone()
	}
	out := c.Clone()
	out.ParticleRadius *= k
	out.RadiusJitter *= k
	out.InitialSpeed *= k
	out.MaxSpeed *= k
	out.MinSpeed *= k
	out.ConnectionDistance *= k
	out.PointerRadius *= k
	out.PointerForce *= k
	out.Drift *= k
	out.DriftScale /= k
	return out
}

type namedFloat struct {
	name string
	v    float64
}

func (c *Config) floats() []namedFloat {
	return []namedFloat{
		{"particle radius", c.ParticleRadius},
		{"radius jitter", c.RadiusJitter},
		{"initial speed", c.InitialSpeed},
		{"max speed", c.MaxSpeed},
		{"min speed", c.MinSpeed},
		{"friction", c.Friction},
		{"bounce energy", c.BounceEnergy},
		{"collision damping", c.CollisionDamping},
		{"connection distance", c.ConnectionDistance},
		{"pointer radius", c.PointerRadius},
		{"pointer force", c.PointerForce},
		{"glow scale", c.GlowScale},
		{"connection alpha", c.Colors.ConnectionAlpha},
		{"drift", c.Drift},
		{"drift scale", c.DriftScale},
	}
}

// Validate checks ranges and enum values
// NaN and infinities are rejected before range checks, NaN compares false against every bound
func (c *Config) Validate() error {
	for _, f := range c.floats() {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s %g is not finite", ErrInvalidConfig, f.name, f.v)
		}
	}

	switch {
	case c.ParticleCount < 0:
		return fmt.Errorf("%w: particle count %d < 0", ErrInvalidConfig, c.ParticleCount)
	case c.ParticleRadius <= 0:
		return fmt.Errorf("%w: particle radius %g must be positive", ErrInvalidConfig, c.ParticleRadius)
	case c.RadiusJitter < 0 || c.RadiusJitter >= 2*c.ParticleRadius:
		return fmt.Errorf("%w: radius jitter %g outside [0, 2r)", ErrInvalidConfig, c.RadiusJitter)
	case c.InitialSpeed < 0:
		return fmt.Errorf("%w: initial speed %g < 0", ErrInvalidConfig, c.InitialSpeed)
	case c.MaxSpeed <= 0:
		return fmt.Errorf("%w: max speed %g must be positive", ErrInvalidConfig, c.MaxSpeed)
	case c.MinSpeed < 0 || c.MinSpeed > c.MaxSpeed:
		return fmt.Errorf("%w: min speed %g outside [0, max speed]", ErrInvalidConfig, c.MinSpeed)
	case c.Friction <= 0 || c.Friction > 1:
		return fmt.Errorf("%w: friction %g outside (0, 1]", ErrInvalidConfig, c.Friction)
	case c.BounceEnergy < 0 || c.BounceEnergy > 1:
		return fmt.Errorf("%w: bounce energy %g outside [0, 1]", ErrInvalidConfig, c.BounceEnergy)
	case c.CollisionDamping < 0 || c.CollisionDamping > 1:
		return fmt.Errorf("%w: collision damping %g outside [0, 1]", ErrInvalidConfig, c.CollisionDamping)
	case c.ConnectionDistance <= 0:
		return fmt.Errorf("%w: connection distance %g must be positive", ErrInvalidConfig, c.ConnectionDistance)
	case c.PointerRadius < 0:
		return fmt.Errorf("%w: pointer radius %g < 0", ErrInvalidConfig, c.PointerRadius)
	case c.PointerForce < 0:
		return fmt.Errorf("%w: pointer force %g < 0", ErrInvalidConfig, c.PointerForce)
	case c.GridThreshold < 0:
		return fmt.Errorf("%w: grid threshold %d < 0", ErrInvalidConfig, c.GridThreshold)
	case c.GlowScale < 1:
		return fmt.Errorf("%w: glow scale %g < 1", ErrInvalidConfig, c.GlowScale)
	case c.Colors.ConnectionAlpha < 0 || c.Colors.ConnectionAlpha > 1:
		return fmt.Errorf("%w: connection alpha %g outside [0, 1]", ErrInvalidConfig, c.Colors.ConnectionAlpha)
	case c.Drift < 0:
		return fmt.Errorf("%w: drift %g < 0", ErrInvalidConfig, c.Drift)
	}

	switch c.PointerMode {
	case PointerRepel, PointerAttract:
	default:
		return fmt.Errorf("%w: pointer mode %q", ErrInvalidConfig, c.PointerMode)
	}
	switch c.Neighbors {
	case NeighborsPairwise, NeighborsGrid, NeighborsAuto:
	default:
		return fmt.Errorf("%w: neighbor strategy %q", ErrInvalidConfig, c.Neighbors)
	}
	switch c.Collision {
	case CollisionProximity, CollisionElastic:
	default:
		return fmt.Errorf("%w: collision mode %q", ErrInvalidConfig, c.Collision)
	}
	switch c.ColorMode {
	case ColorSpeed:
	case ColorPalette:
		if len(c.Colors.Palette) == 0 {
			return fmt.Errorf("%w: palette color mode with empty palette", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: color mode %q", ErrInvalidConfig, c.ColorMode)
	}

	for _, hex := range []string{c.Colors.Slow, c.Colors.Medium, c.Colors.Fast, c.Colors.Connection} {
		if _, err := render.ParseColor(hex); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if c.Colors.Background != "" {
		if _, err := render.ParseColor(c.Colors.Background); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	for _, hex := range c.Colors.Palette {
		if _, err := render.ParseColor(hex); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// ColorsPatch is the partial form of Colors
type ColorsPatch struct {
	Slow            *string  `toml:"slow"`
	Medium          *string  `toml:"medium"`
	Fast            *string  `toml:"fast"`
	Connection      *string  `toml:"connection"`
	Background      *string  `toml:"background"`
	ConnectionAlpha *float64 `toml:"connection_alpha"`
	Palette         []string `toml:"palette"`
}

// Patch is a partial configuration update, nil fields keep the current value
type Patch struct {
	ParticleCount      *int              `toml:"particle_count"`
	ParticleRadius     *float64          `toml:"particle_radius"`
	RadiusJitter       *float64          `toml:"radius_jitter"`
	MassFromRadius     *bool             `toml:"mass_from_radius"`
	InitialSpeed       *float64          `toml:"initial_speed"`
	MaxSpeed           *float64          `toml:"max_speed"`
	MinSpeed           *float64          `toml:"min_speed"`
	Friction           *float64          `toml:"friction"`
	BounceEnergy       *float64          `toml:"bounce_energy"`
	CollisionDamping   *float64          `toml:"collision_damping"`
	ConnectionDistance *float64          `toml:"connection_distance"`
	PointerRadius      *float64          `toml:"pointer_radius"`
	PointerForce       *float64          `toml:"pointer_force"`
	PointerMode        *PointerMode      `toml:"pointer_mode"`
	Neighbors          *NeighborStrategy `toml:"neighbors"`
	GridThreshold      *int              `toml:"grid_threshold"`
	Collision          *CollisionMode    `toml:"collision"`
	Connections        *bool             `toml:"connections"`
	Glow               *bool             `toml:"glow"`
	GlowScale          *float64          `toml:"glow_scale"`
	ColorMode          *ColorMode        `toml:"color_mode"`
	Colors             ColorsPatch       `toml:"colors"`
	Drift              *float64          `toml:"drift"`
	DriftScale         *float64          `toml:"drift_scale"`
	Seed               *uint64           `toml:"seed"`
}

// Merge returns c with every non-nil field of p applied
func (c Config) Merge(p Patch) Config {
	out := c.Clone()
	set(&out.ParticleCount, p.ParticleCount)
	set(&out.ParticleRadius, p.ParticleRadius)
	set(&out.RadiusJitter, p.RadiusJitter)
	set(&out.MassFromRadius, p.MassFromRadius)
	set(&out.InitialSpeed, p.InitialSpeed)
	set(&out.MaxSpeed, p.MaxSpeed)
	set(&out.MinSpeed, p.MinSpeed)
	set(&out.Friction, p.Friction)
	set(&out.BounceEnergy, p.BounceEnergy)
	set(&out.CollisionDamping, p.CollisionDamping)
	set(&out.ConnectionDistance, p.ConnectionDistance)
	set(&out.PointerRadius, p.PointerRadius)
	set(&out.PointerForce, p.PointerForce)
	set(&out.PointerMode, p.PointerMode)
	set(&out.Neighbors, p.Neighbors)
	set(&out.GridThreshold, p.GridThreshold)
	set(&out.Collision, p.Collision)
	set(&out.Connections, p.Connections)
	set(&out.Glow, p.Glow)
	set(&out.GlowScale, p.GlowScale)
	set(&out.ColorMode, p.ColorMode)
	set(&out.Drift, p.Drift)
	set(&out.DriftScale, p.DriftScale)
	set(&out.Seed, p.Seed)

	set(&out.Colors.Slow, p.Colors.Slow)
	set(&out.Colors.Medium, p.Colors.Medium)
	set(&out.Colors.Fast, p.Colors.Fast)
	set(&out.Colors.Connection, p.Colors.Connection)
	set(&out.Colors.Background, p.Colors.Background)
	set(&out.Colors.ConnectionAlpha, p.Colors.ConnectionAlpha)
	if p.Colors.Palette != nil {
		out.Colors.Palette = slices.Clone(p.Colors.Palette)
	}
	return out
}

// Combine layers q over p, q wins where both are set
func (p Patch) Combine(q Patch) Patch {
	out := p
	setPtr(&out.ParticleCount, q.ParticleCount)
	setPtr(&out.ParticleRadius, q.ParticleRadius)
	setPtr(&out.RadiusJitter, q.RadiusJitter)
	setPtr(&out.MassFromRadius, q.MassFromRadius)
	setPtr(&out.InitialSpeed, q.InitialSpeed)
	setPtr(&out.MaxSpeed, q.MaxSpeed)
	setPtr(&out.MinSpeed, q.MinSpeed)
	setPtr(&out.Friction, q.Friction)
	setPtr(&out.BounceEnergy, q.BounceEnergy)
	setPtr(&out.CollisionDamping, q.CollisionDamping)
	setPtr(&out.ConnectionDistance, q.ConnectionDistance)
	setPtr(&out.PointerRadius, q.PointerRadius)
	setPtr(&out.PointerForce, q.PointerForce)
	setPtr(&out.PointerMode, q.PointerMode)
	setPtr(&out.Neighbors, q.Neighbors)
	setPtr(&out.GridThreshold, q.GridThreshold)
	setPtr(&out.Collision, q.Collision)
	setPtr(&out.Connections, q.Connections)
	setPtr(&out.Glow, q.Glow)
	setPtr(&out.GlowScale, q.GlowScale)
	setPtr(&out.ColorMode, q.ColorMode)
	setPtr(&out.Drift, q.Drift)
	setPtr(&out.DriftScale, q.DriftScale)
	setPtr(&out.Seed, q.Seed)
	setPtr(&out.Colors.Slow, q.Colors.Slow)
	setPtr(&out.Colors.Medium, q.Colors.Medium)
	setPtr(&out.Colors.Fast, q.Colors.Fast)
	setPtr(&out.Colors.Connection, q.Colors.Connection)
	setPtr(&out.Colors.Background, q.Colors.Background)
	setPtr(&out.Colors.ConnectionAlpha, q.Colors.ConnectionAlpha)
	if q.Colors.Palette != nil {
		out.Colors.Palette = q.Colors.Palette
	}
	return out
}

// Ptr returns a pointer to v, for building patches inline
func Ptr[T any](v T) *T {
	return &v
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setPtr[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}
