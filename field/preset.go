package field

import (
	"fmt"

	"github.com/lixenwraith/particlefield/parameter"
)

// Preset names a tuning profile for a class of viewport
type Preset string

const (
	PresetDesktop Preset = "desktop"
	PresetTablet  Preset = "tablet"
	PresetMobile  Preset = "mobile"
)

// Viewport width breakpoints for PresetFor, in surface pixels
const (
	tabletMinWidth  = 768
	desktopMinWidth = 1024
)

// PresetFor picks a preset from viewport width and logical CPU count
// Low-end hardware is held to tablet at most, cpus <= 0 means unknown and is ignored
func PresetFor(width, cpus int) Preset {
	switch {
	case width < tabletMinWidth:
		return PresetMobile
	case width < desktopMinWidth:
		return PresetTablet
	case cpus > 0 && cpus <= parameter.LowEndCPUs:
		return PresetTablet
	default:
		return PresetDesktop
	}
}

// Patch returns the configuration delta of the preset
// Desktop is the default configuration and yields an empty patch
func (p Preset) Patch() (Patch, error) {
	switch p {
	case PresetDesktop, "":
		return Patch{}, nil
	case PresetTablet:
		return Patch{
			ParticleCount:      Ptr(150),
			ConnectionDistance: Ptr(110.0),
		}, nil
	case PresetMobile:
		return Patch{
			ParticleCount:      Ptr(80),
			ConnectionDistance: Ptr(100.0),
			PointerForce:       Ptr(0.0),
			Glow:               Ptr(false),
		}, nil
	default:
		return Patch{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, p)
	}
}

// Mode returns the performance mode label reported in stats
func (p Preset) Mode() string {
	switch p {
	case PresetMobile:
		return "low"
	case PresetTablet:
		return "medium"
	default:
		return "high"
	}
}

// ReducedMotionPatch scales speed and caps the store of cfg for users preferring less motion
func ReducedMotionPatch(cfg Config) Patch {
	maxSpeed := cfg.MaxSpeed * parameter.ReducedMotionSpeedFactor
	return Patch{
		MaxSpeed:      Ptr(maxSpeed),
		MinSpeed:      Ptr(min(cfg.MinSpeed, maxSpeed)),
		InitialSpeed:  Ptr(cfg.InitialSpeed * parameter.ReducedMotionSpeedFactor),
		ParticleCount: Ptr(min(cfg.ParticleCount, parameter.ReducedMotionParticleCount)),
	}
}
