package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// sine is a fixed-length sine oscillator
type sine struct {
	step     float64
	phase    float64
	position int
	length   int
}

// NewSine creates a sine streamer of freq Hz lasting duration
func NewSine(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sine{
		step:   freq / float64(rate),
		length: rate.N(duration),
	}
}

func (o *sine) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.length {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.length {
			return i, true
		}
		v := math.Sin(2 * math.Pi * o.phase)
		samples[i][0], samples[i][1] = v, v

		o.phase += o.step
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sine) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer: s,
		attack:   att,
		release:  rel,
		total:    total,
	}
}

// gain returns the envelope level at sample pos
func (e *envelope) gain(pos int) float64 {
	if pos < e.attack {
		return float64(pos) / float64(e.attack)
	}
	if start := e.total - e.release; pos >= start && e.release > 0 {
		return max(float64(e.total-pos)/float64(e.release), 0)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples[:min(len(samples), e.total-e.position)])
	for i := 0; i < n; i++ {
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly, math.Log2(0) is -Inf so zero volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
