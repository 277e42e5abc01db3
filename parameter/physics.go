package parameter

// Kinematics, all per nominal frame
const (
	// MaxSpeed is the speed ceiling in pixels per nominal frame
	MaxSpeed = 1.6

	// MinSpeed is the speed floor applied to moving particles (0 disables the floor)
	MinSpeed = 0.0

	// Friction is the velocity retention factor per nominal frame
	Friction = 0.999

	// BounceEnergy is the velocity retained on wall reflection
	BounceEnergy = 0.95

	// CollisionDamping scales the elastic impulse applied to both bodies
	CollisionDamping = 0.9
)

// Pointer Interaction
const (
	// PointerRadius is the pointer interaction radius in pixels
	PointerRadius = 150.0

	// PointerForce is the peak velocity change per nominal frame at the pointer centre
	PointerForce = 0.5
)

// Drift Flow Field
const (
	// DriftStrength is the flow field acceleration per nominal frame (0 disables drift)
	DriftStrength = 0.0

	// DriftScale maps surface pixels to noise space
	DriftScale = 0.004

	// DriftEvolution is the noise time axis advance per nominal frame
	DriftEvolution = 0.002
)
