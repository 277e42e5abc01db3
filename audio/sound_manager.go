package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/particlefield/parameter"
)

// SoundManager owns the speaker and a mixer that Play feeds
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates an uninitialized manager at the default sample rate
func NewSoundManager() *SoundManager {
	return &SoundManager{
		rate:  beep.SampleRate(parameter.AudioSampleRate),
		mixer: &beep.Mixer{},
	}
}

// SampleRate returns the output rate streamers must be generated at
func (sm *SoundManager) SampleRate() beep.SampleRate {
	return sm.rate
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play implements Player, no-op until initialized
func (sm *SoundManager) Play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Close clears pending sounds and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
