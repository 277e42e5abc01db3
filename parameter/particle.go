package parameter

// Particle Store Defaults
const (
	// ParticleCount is the default configured store size
	ParticleCount = 250

	// ParticleRadius is the default body radius in surface pixels
	ParticleRadius = 2.0

	// ParticleRadiusJitter is the default random radius spread (0 = uniform radius)
	ParticleRadiusJitter = 0.0

	// ParticleInitialSpeed is the spread of initial velocity components, each drawn from [-s/2, s/2]
	ParticleInitialSpeed = 0.8
)

// Neighbor Search
const (
	// ConnectionDistance is the default link radius, also the grid cell size
	ConnectionDistance = 120.0

	// GridThreshold is the store size above which the auto strategy switches to the bucket grid
	GridThreshold = 150
)

// Reduced Motion
const (
	// ReducedMotionSpeedFactor scales max speed when reduced motion is requested
	ReducedMotionSpeedFactor = 0.375

	// ReducedMotionParticleCount caps the store when reduced motion is requested
	ReducedMotionParticleCount = 50
)
