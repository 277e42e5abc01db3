package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
)

// Collision Chime
const (
	// ChimeThreshold is the per-frame elastic collision count that triggers a chime
	ChimeThreshold = 3

	// ChimeMinGap is the minimum time between consecutive chimes
	ChimeMinGap = 250 * time.Millisecond

	ChimeFrequency = 880.0
	ChimeOvertone  = 1760.0
	ChimeDuration  = 180 * time.Millisecond
	ChimeAttack    = 5 * time.Millisecond
	ChimeRelease   = 150 * time.Millisecond
	ChimeVolume    = 0.25
)
