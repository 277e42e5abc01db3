package parameter

import "time"

// Frame Loop & Timing
const (
	// FrameInterval is the nominal display refresh interval (~60 FPS)
	// Elapsed-time scale factors are expressed in multiples of this interval
	FrameInterval = 16670 * time.Microsecond

	// MaxElapsedScale caps the elapsed-time scale factor after a stall (2 nominal frames)
	MaxElapsedScale = 2.0

	// SchedulerMaxBehind is how far the ticker scheduler may fall behind before it resyncs its deadline
	SchedulerMaxBehind = 2 * FrameInterval
)

// Adaptive Performance Scaling
const (
	// AdaptiveWindowFrames is the number of frames per FPS checkpoint
	AdaptiveWindowFrames = 60

	// AdaptiveLowFPS triggers store shrink when measured FPS drops below it
	AdaptiveLowFPS = 30.0

	// AdaptiveHighFPS allows store growth back towards target when exceeded
	AdaptiveHighFPS = 55.0

	// AdaptiveShrinkFraction is the fraction of the store removed per low checkpoint
	AdaptiveShrinkFraction = 0.1

	// AdaptiveGrowStep is the maximum number of particles added per high checkpoint
	AdaptiveGrowStep = 10

	// AdaptiveMinParticles is the floor below which the store is never shrunk
	AdaptiveMinParticles = 50

	// LowEndCPUs is the logical CPU count at or below which a desktop viewport gets the tablet preset
	LowEndCPUs = 4
)

// Terminal Host
const (
	// TerminalCellPixels is the logical pixel width one terminal column stands for
	// Configuration lengths are in logical pixels and are divided by it on the terminal
	TerminalCellPixels = 8.0

	// FPSHistoryLength is the number of FPS checkpoints kept for the exit summary
	FPSHistoryLength = 120
)
