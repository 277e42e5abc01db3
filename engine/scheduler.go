package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/particlefield/parameter"
)

// FrameFunc is the recurring task run by a Scheduler, now is the tick time
type FrameFunc func(now time.Time)

// Scheduler is a start/stop repeating task
// Start is idempotent. Stop prevents further calls and must not be called from inside the task
type Scheduler interface {
	Start(fn FrameFunc)
	Stop()
	Running() bool
}

// TickerScheduler runs the task on its own goroutine at a fixed interval
// Deadlines advance by the interval for drift correction, resyncing when too far behind
type TickerScheduler struct {
	interval time.Duration
	clock    Clock

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}

	running atomic.Bool
	ticks   atomic.Uint64
}

// NewTickerScheduler creates a stopped scheduler, interval <= 0 uses the nominal frame interval
func NewTickerScheduler(interval time.Duration, clock Clock) *TickerScheduler {
	if interval <= 0 {
		interval = parameter.FrameInterval
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &TickerScheduler{interval: interval, clock: clock}
}

// Start launches the tick loop, no-op when already running
func (s *TickerScheduler) Start(fn FrameFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	stop, done := make(chan struct{}), make(chan struct{})
	s.stop, s.done = stop, done
	s.running.Store(true)
	Go(func() { s.loop(fn, stop, done) })
}

// Stop halts the loop and waits for an in-flight task call to return
func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
	s.running.Store(false)
}

// Running implements Scheduler
func (s *TickerScheduler) Running() bool {
	return s.running.Load()
}

// Ticks returns the number of task invocations since creation
func (s *TickerScheduler) Ticks() uint64 {
	return s.ticks.Load()
}

func (s *TickerScheduler) loop(fn FrameFunc, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	deadline := s.clock.Now().Add(s.interval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	maxBehind := max(parameter.SchedulerMaxBehind, 2*s.interval)
	for {
		now := s.clock.Now()
		if wait := deadline.Sub(now); wait > 0 {
			timer.Reset(wait)
			select {
			case <-timer.C:
			case <-stop:
				return
			}
			continue
		}

		select {
		case <-stop:
			return
		default:
		}

		fn(now)
		s.ticks.Add(1)

		deadline = deadline.Add(s.interval)
		if now.Sub(deadline) > maxBehind {
			deadline = now.Add(s.interval)
		}
	}
}

// ManualScheduler invokes the task only when Fire is called
// Used by tests and by hosts that own the refresh signal
type ManualScheduler struct {
	mu    sync.Mutex
	fn    FrameFunc
	fired atomic.Uint64
}

// NewManualScheduler creates a stopped manual scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Start implements Scheduler
func (s *ManualScheduler) Start(fn FrameFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fn == nil {
		s.fn = fn
	}
}

// Stop implements Scheduler, a concurrent Fire may still complete its call
func (s *ManualScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fn = nil
}

// Running implements Scheduler
func (s *ManualScheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fn != nil
}

// Fire runs the task once at now, returns false when stopped
func (s *ManualScheduler) Fire(now time.Time) bool {
	s.mu.Lock()
	fn := s.fn
	s.mu.Unlock()
	if fn == nil {
		return false
	}
	fn(now)
	s.fired.Add(1)
	return true
}

// Fired returns the number of task invocations
func (s *ManualScheduler) Fired() uint64 {
	return s.fired.Load()
}
