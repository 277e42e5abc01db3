package engine

import (
	"time"

	"github.com/lixenwraith/particlefield/field"
	"github.com/lixenwraith/particlefield/parameter"
)

// Adaptor shrinks the store when measured FPS is low and grows it back towards target when high
// Decisions are taken only at FPS window boundaries
type Adaptor struct {
	LowFPS         float64
	HighFPS        float64
	ShrinkFraction float64
	GrowStep       int
	MinParticles   int
}

// NewAdaptor returns the default thresholds
func NewAdaptor() *Adaptor {
	return &Adaptor{
		LowFPS:         parameter.AdaptiveLowFPS,
		HighFPS:        parameter.AdaptiveHighFPS,
		ShrinkFraction: parameter.AdaptiveShrinkFraction,
		GrowStep:       parameter.AdaptiveGrowStep,
		MinParticles:   parameter.AdaptiveMinParticles,
	}
}

// Adjust applies one window decision to f and returns the signed change in particle count
func (a *Adaptor) Adjust(fps float64, f *field.Field) int {
	n, target := f.Len(), f.Target()
	switch {
	case fps < a.LowFPS && n > a.MinParticles:
		cut := max(int(float64(n)*a.ShrinkFraction), 1)
		cut = min(cut, n-a.MinParticles)
		return -f.Shrink(cut)
	case fps > a.HighFPS && n < target:
		return f.Grow(min(a.GrowStep, target-n))
	}
	return 0
}

// fpsMeter counts frames over a fixed window
type fpsMeter struct {
	window int
	frames int
	start  time.Time
	fps    float64
}

// reset starts a new window at now, the last measurement is kept
func (m *fpsMeter) reset(now time.Time) {
	m.frames = 0
	m.start = now
}

// tick records a frame at now and reports whether a window closed
func (m *fpsMeter) tick(now time.Time) bool {
	m.frames++
	if m.frames < m.window {
		return false
	}
	if elapsed := now.Sub(m.start); elapsed > 0 {
		m.fps = float64(m.frames) / elapsed.Seconds()
	}
	m.reset(now)
	return true
}

// modeFor degrades the preset mode one level while the adaptor holds the store below target
func modeFor(p field.Preset, n, target int) string {
	mode := p.Mode()
	if n >= target {
		return mode
	}
	switch mode {
	case "high":
		return "medium"
	default:
		return "low"
	}
}
