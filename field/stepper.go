package field

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/particlefield/parameter"
	"github.com/lixenwraith/particlefield/physics"
	"github.com/lixenwraith/particlefield/vmath"
)

// StepResult counts events of one stepper pass
type StepResult struct {
	Reflections int
	Contacts    int
	Collisions  int
}

// Stepper advances particle kinematics by one frame
// It holds only reusable scratch; all state lives in the particle slice
type Stepper struct {
	Finder NeighborFinder
	Policy CollisionPolicy
	Flow   *vmath.FlowField

	pairs []Link
}

// Step mutates every particle in place
//
// dt is the elapsed-time scale in nominal frames, clamped to [0, MaxElapsedScale].
// A zero dt or empty bounds leaves positions and velocities unchanged and only refreshes scratch speed
func (s *Stepper) Step(ps []Particle, ptr Pointer, cfg *Config, width, height, dt float64) StepResult {
	var res StepResult
	dt = vmath.Clamp(dt, 0, parameter.MaxElapsedScale)

	if dt == 0 || width <= 0 || height <= 0 {
		for i := range ps {
			ps[i].Speed = vmath.Len(ps[i].Vel)
		}
		return res
	}

	polarity := physics.PolarityRepel
	if cfg.PointerMode == PointerAttract {
		polarity = physics.PolarityAttract
	}
	pointerOn := ptr.Active && cfg.PointerForce > 0 && ptr.Radius > 0

	driftOn := cfg.Drift > 0 && s.Flow != nil
	if driftOn {
		s.Flow.Advance(parameter.DriftEvolution * dt)
	}

	maxRadius := 0.0
	for i := range ps {
		p := &ps[i]
		b := &p.Body

		if pointerOn {
			physics.ApplyRadialForce(b, ptr.Pos, ptr.Radius, cfg.PointerForce, polarity, dt)
		}
		if driftOn {
			physics.ApplyImpulse(b, r2.Scale(cfg.Drift*dt, s.Flow.Direction(b.Pos)))
		}

		physics.ApplyFriction(b, cfg.Friction, dt)
		physics.LimitSpeed(b, cfg.MinSpeed, cfg.MaxSpeed)
		physics.Integrate(b, dt)
		if physics.ReflectBounds(b, width, height, cfg.BounceEnergy) {
			res.Reflections++
		}

		maxRadius = max(maxRadius, b.Radius)
	}

	if s.Policy != nil && s.Finder != nil && len(ps) > 1 {
		s.pairs = s.Finder.Pairs(ps, 2*maxRadius, s.pairs)
		for _, l := range s.pairs {
			a, b := &ps[l.A], &ps[l.B]
			switch s.Policy.Resolve(a, b, cfg) {
			case physics.ContactTouching:
				res.Contacts++
			case physics.ContactResolved:
				res.Contacts++
				res.Collisions++
			}
		}
		// Separation may push bodies past an edge
		for i := range ps {
			physics.ClampBounds(&ps[i].Body, width, height)
		}
	}

	// Impulses between unequal masses can exceed the ceiling, limit again
	for i := range ps {
		ps[i].Speed = physics.LimitSpeed(&ps[i].Body, cfg.MinSpeed, cfg.MaxSpeed)
	}
	return res
}

// pointerAt builds an active pointer
func pointerAt(x, y, radius float64) Pointer {
	return Pointer{Pos: r2.Vec{X: x, Y: y}, Active: true, Radius: radius}
}
