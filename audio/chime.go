package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/particlefield/parameter"
)

// Player queues a streamer for playback
type Player interface {
	Play(s beep.Streamer)
}

// Chime plays a short two-partial bell when a frame has enough elastic collisions
// Calls are rate limited so a dense cluster does not turn into a drone
type Chime struct {
	player    Player
	rate      beep.SampleRate
	threshold int
	minGap    time.Duration
	volume    float64

	mu     sync.Mutex
	last   time.Time
	played atomic.Int64
}

// NewChime creates a chime with default threshold, gap and volume
func NewChime(player Player, rate beep.SampleRate) *Chime {
	return &Chime{
		player:    player,
		rate:      rate,
		threshold: parameter.ChimeThreshold,
		minGap:    parameter.ChimeMinGap,
		volume:    parameter.ChimeVolume,
	}
}

// SetThreshold changes the per-frame collision count that triggers the chime
func (c *Chime) SetThreshold(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.threshold = max(n, 1)
}

// Observe reports one frame's collision count at now and plays when due, returns true if played
func (c *Chime) Observe(collisions int, now time.Time) bool {
	c.mu.Lock()
	if collisions < c.threshold || (!c.last.IsZero() && now.Sub(c.last) < c.minGap) {
		c.mu.Unlock()
		return false
	}
	c.last = now
	c.mu.Unlock()

	c.player.Play(c.Sound())
	c.played.Add(1)
	return true
}

// Played returns the number of chimes played
func (c *Chime) Played() int64 {
	return c.played.Load()
}

// Sound builds a fresh chime streamer
func (c *Chime) Sound() beep.Streamer {
	fund := NewEnvelope(NewSine(parameter.ChimeFrequency, parameter.ChimeDuration, c.rate),
		parameter.ChimeDuration, parameter.ChimeAttack, parameter.ChimeRelease, c.rate)
	over := NewEnvelope(NewSine(parameter.ChimeOvertone, parameter.ChimeDuration, c.rate),
		parameter.ChimeDuration, parameter.ChimeAttack, parameter.ChimeRelease/2, c.rate)

	return newVolume(beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)), c.volume)
}
