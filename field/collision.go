package field

import "github.com/lixenwraith/particlefield/physics"

// CollisionPolicy resolves a candidate pair found by the stepper's pairwise pass
type CollisionPolicy interface {
	Resolve(a, b *Particle, cfg *Config) physics.Contact
}

// ProximityPolicy only reports contact, positions and velocities are untouched
type ProximityPolicy struct{}

// Resolve implements CollisionPolicy
func (ProximityPolicy) Resolve(a, b *Particle, _ *Config) physics.Contact {
	if physics.Touching(&a.Body, &b.Body) {
		return physics.ContactTouching
	}
	return physics.ContactNone
}

// ElasticPolicy separates overlapping particles and exchanges a damped elastic impulse
type ElasticPolicy struct{}

// Resolve implements CollisionPolicy
func (ElasticPolicy) Resolve(a, b *Particle, cfg *Config) physics.Contact {
	return physics.ResolveElastic(&a.Body, &b.Body, cfg.CollisionDamping)
}

// policyFor maps the configured mode to its policy
func policyFor(mode CollisionMode) CollisionPolicy {
	if mode == CollisionElastic {
		return ElasticPolicy{}
	}
	return ProximityPolicy{}
}
