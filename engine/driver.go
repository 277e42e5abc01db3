package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/particlefield/field"
	"github.com/lixenwraith/particlefield/parameter"
	"github.com/lixenwraith/particlefield/render"
	"github.com/lixenwraith/particlefield/status"
)

// ErrClosed is returned by operations on a closed driver
var ErrClosed = errors.New("driver closed")

// Presenter is implemented by surfaces that flush a finished frame to a display
type Presenter interface {
	Present()
}

// Resizer is implemented by surfaces the driver resizes along with the field
type Resizer interface {
	Resize(width, height int)
}

// StatsSink receives a snapshot after every frame
// It runs on the scheduler goroutine and must not call Stop, Close or other control methods
type StatsSink func(Stats)

// ReducedMotionPolicy selects the reaction to a reduced-motion preference
type ReducedMotionPolicy string

const (
	// ReducedMotionIgnore keeps animating unchanged
	ReducedMotionIgnore ReducedMotionPolicy = "ignore"
	// ReducedMotionScale slows particles and caps the store
	ReducedMotionScale ReducedMotionPolicy = "scale"
	// ReducedMotionStop halts the animation while the preference is set
	ReducedMotionStop ReducedMotionPolicy = "stop"
)

// ParseReducedMotion validates a policy name, empty selects scale
func ParseReducedMotion(s string) (ReducedMotionPolicy, error) {
	switch p := ReducedMotionPolicy(s); p {
	case "":
		return ReducedMotionScale, nil
	case ReducedMotionIgnore, ReducedMotionScale, ReducedMotionStop:
		return p, nil
	default:
		return "", fmt.Errorf("unknown reduced motion policy %q", s)
	}
}

// Stats is the introspection snapshot of the driver
type Stats struct {
	Particles   int
	Target      int
	FPS         float64
	Running     bool
	Visible     bool
	Mode        string
	Connections int
	Contacts    int
	Collisions  int
	Frames      uint64

	UpdateTime time.Duration
	RenderTime time.Duration
	FrameTime  time.Duration

	Pointer       r2.Vec
	PointerActive bool
}

// DriverConfig wires the driver collaborators, zero fields take defaults
type DriverConfig struct {
	Scheduler     Scheduler
	Clock         Clock
	Logger        *slog.Logger
	Registry      *status.Registry
	Sink          StatsSink
	Adaptor       *Adaptor
	Preset        field.Preset
	ReducedMotion ReducedMotionPolicy
}

// Driver owns the frame loop: Step, neighbors and Render once per scheduler tick
// Control methods are safe for concurrent use; frames never run concurrently
type Driver struct {
	sched   Scheduler
	clock   Clock
	log     *slog.Logger
	sink    StatsSink
	adaptor *Adaptor
	preset  field.Preset
	policy  ReducedMotionPolicy

	// ctl serializes control operations so scheduler Start/Stop can run without mu held
	ctl sync.Mutex

	mu      sync.Mutex
	field   *field.Field
	surface render.Surface
	wanted  bool
	visible bool
	reduced bool
	closed  bool
	running bool
	last    time.Time
	meter   fpsMeter
	stats   Stats
	frames  uint64

	// Baseline restored when reduced motion scaling is lifted
	restore *field.Patch

	statFrames     *atomic.Int64
	statBlank      *atomic.Int64
	statClamped    *atomic.Int64
	statAdaptive   *atomic.Int64
	statParticles  *atomic.Int64
	statLinks      *atomic.Int64
	statCollisions *atomic.Int64
	statCfgErrors  *atomic.Int64
	statRunning    *atomic.Bool
	statFPS        *status.AtomicFloat
	statFPSPeak    *status.AtomicFloat
}

// NewDriver creates a stopped, visible driver rendering f onto s
func NewDriver(f *field.Field, s render.Surface, cfg DriverConfig) *Driver {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewTickerScheduler(parameter.FrameInterval, cfg.Clock)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Registry == nil {
		cfg.Registry = status.NewRegistry()
	}
	if cfg.ReducedMotion == "" {
		cfg.ReducedMotion = ReducedMotionScale
	}
	reg := cfg.Registry

	d := &Driver{
		sched:   cfg.Scheduler,
		clock:   cfg.Clock,
		log:     cfg.Logger.With("component", "driver"),
		sink:    cfg.Sink,
		adaptor: cfg.Adaptor,
		preset:  cfg.Preset,
		policy:  cfg.ReducedMotion,
		field:   f,
		surface: s,
		visible: true,
		meter:   fpsMeter{window: parameter.AdaptiveWindowFrames},

		statFrames:     reg.Ints.Get(status.FramesTotal),
		statBlank:      reg.Ints.Get(status.FramesBlank),
		statClamped:    reg.Ints.Get(status.FramesClamped),
		statAdaptive:   reg.Ints.Get(status.AdaptiveChanges),
		statParticles:  reg.Ints.Get(status.Particles),
		statLinks:      reg.Ints.Get(status.Connections),
		statCollisions: reg.Ints.Get(status.Collisions),
		statCfgErrors:  reg.Ints.Get(status.ConfigErrors),
		statRunning:    reg.Bools.Get(status.Running),
		statFPS:        reg.Floats.Get(status.FPS),
		statFPSPeak:    reg.Floats.Get(status.FPSPeak),
	}
	d.stats.Visible = true
	d.stats.Particles = f.Len()
	d.stats.Target = f.Target()
	d.stats.Mode = modeFor(d.preset, f.Len(), f.Target())
	return d
}

// Start begins animating, no-op when already started
// The animation only runs while the driver is also visible and not held by reduced motion
func (d *Driver) Start() {
	d.ctl.Lock()
	defer d.ctl.Unlock()

	d.mu.Lock()
	d.wanted = !d.closed
	d.mu.Unlock()
	d.reconcile()
}

// Stop halts animation; once it returns no frame mutates the store until Start
func (d *Driver) Stop() {
	d.ctl.Lock()
	defer d.ctl.Unlock()

	d.mu.Lock()
	d.wanted = false
	d.mu.Unlock()
	d.reconcile()
}

// SetVisible pauses the scheduler while hidden, resuming resets the elapsed-time baseline
func (d *Driver) SetVisible(visible bool) {
	d.ctl.Lock()
	defer d.ctl.Unlock()

	d.mu.Lock()
	d.visible = visible
	d.stats.Visible = visible
	d.mu.Unlock()
	d.log.Debug("visibility changed", "visible", visible)
	d.reconcile()
}

// SetReducedMotion applies the configured reduced-motion policy
// Under the scale policy, lifting restores only the fields the preference changed and
// that were not reconfigured in the meantime
func (d *Driver) SetReducedMotion(on bool) error {
	d.ctl.Lock()
	defer d.ctl.Unlock()

	d.mu.Lock()
	if d.reduced == on || d.policy == ReducedMotionIgnore {
		d.reduced = on
		d.mu.Unlock()
		return nil
	}
	d.reduced = on
	d.mu.Unlock()

	d.log.Info("reduced motion", "on", on, "policy", string(d.policy))
	if d.policy == ReducedMotionStop {
		d.reconcile()
		return nil
	}

	d.mu.Lock()
	var patch field.Patch
	if on {
		cfg := d.field.Config()
		patch = field.ReducedMotionPatch(cfg)
		d.restore = &field.Patch{
			MaxSpeed:      field.Ptr(cfg.MaxSpeed),
			MinSpeed:      field.Ptr(cfg.MinSpeed),
			InitialSpeed:  field.Ptr(cfg.InitialSpeed),
			ParticleCount: field.Ptr(cfg.ParticleCount),
		}
	} else if d.restore != nil {
		patch = *d.restore
		d.restore = nil
	}
	d.mu.Unlock()
	return d.reconfigure(patch)
}

// Reconfigure merges p over the current configuration and regenerates the store
// A running driver is stopped for the swap and restarted afterwards, also on error
func (d *Driver) Reconfigure(p field.Patch) error {
	d.ctl.Lock()
	defer d.ctl.Unlock()
	if err := d.reconfigure(p); err != nil {
		return err
	}

	d.mu.Lock()
	if d.restore != nil {
		d.restore = pruneRestore(*d.restore, p)
	}
	d.mu.Unlock()
	return nil
}

// pruneRestore drops from restore the fields set by p
func pruneRestore(restore, p field.Patch) *field.Patch {
	if p.MaxSpeed != nil {
		restore.MaxSpeed = nil
	}
	if p.MinSpeed != nil {
		restore.MinSpeed = nil
	}
	if p.InitialSpeed != nil {
		restore.InitialSpeed = nil
	}
	if p.ParticleCount != nil {
		restore.ParticleCount = nil
	}
	return &restore
}

func (d *Driver) reconfigure(p field.Patch) error {
	d.mu.Lock()
	closed := d.closed
	d.mu.Unlock()
	if closed {
		return ErrClosed
	}

	wasRunning := d.halt()

	d.mu.Lock()
	err := d.field.Reconfigure(p)
	if err != nil {
		d.statCfgErrors.Add(1)
	}
	target := d.field.Target()
	d.stats.Target = target
	d.stats.Particles = d.field.Len()
	d.stats.Mode = modeFor(d.preset, d.field.Len(), target)
	d.mu.Unlock()

	if err != nil {
		d.log.Warn("reconfigure rejected", "error", err)
	} else {
		d.log.Info("reconfigured", "particles", target)
	}
	if wasRunning {
		d.reconcile()
	}
	return err
}

// Resize changes the field bounds and the surface size, regenerating the store
func (d *Driver) Resize(width, height int) {
	d.ctl.Lock()
	defer d.ctl.Unlock()

	d.mu.Lock()
	closed := d.closed
	d.mu.Unlock()
	if closed {
		return
	}

	wasRunning := d.halt()

	d.mu.Lock()
	if r, ok := d.surface.(Resizer); ok {
		r.Resize(width, height)
	}
	d.field.Resize(float64(width), float64(height))
	d.stats.Particles = d.field.Len()
	d.mu.Unlock()
	d.log.Debug("resized", "width", width, "height", height)

	if wasRunning {
		d.reconcile()
	}
}

// SetPointer activates the pointer at surface coordinates (x, y)
func (d *Driver) SetPointer(x, y float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.field.SetPointer(x, y)
}

// ClearPointer deactivates the pointer
func (d *Driver) ClearPointer() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.field.ClearPointer()
}

// Config returns a snapshot of the field configuration
func (d *Driver) Config() field.Config {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.field.Config()
}

// Stats returns the latest snapshot
func (d *Driver) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.stats
	s.Running = d.running
	s.Pointer, s.PointerActive = d.field.Pointer()
	return s
}

// Running reports whether frames are being scheduled
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Do runs fn with exclusive access to the field, between frames
func (d *Driver) Do(fn func(f *field.Field)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(d.field)
}

// Close stops the driver and clears the store, later control calls are no-ops
func (d *Driver) Close() {
	d.ctl.Lock()
	defer d.ctl.Unlock()

	d.halt()
	d.mu.Lock()
	d.closed = true
	d.wanted = false
	d.field.Clear()
	d.stats.Particles = 0
	d.mu.Unlock()
	d.log.Info("closed", "frames", d.frames)
}

// halt stops the scheduler if running and reports whether it was; caller holds ctl
func (d *Driver) halt() bool {
	d.mu.Lock()
	was := d.running
	d.running = false
	d.mu.Unlock()
	if was {
		d.sched.Stop()
		d.statRunning.Store(false)
	}
	return was
}

// reconcile starts or stops the scheduler to match wanted, visible and reduced state; caller holds ctl
func (d *Driver) reconcile() {
	d.mu.Lock()
	should := d.wanted && d.visible && !d.closed && !(d.reduced && d.policy == ReducedMotionStop)
	if should == d.running {
		d.mu.Unlock()
		return
	}
	if !should {
		d.running = false
		d.mu.Unlock()
		d.sched.Stop()
		d.statRunning.Store(false)
		d.log.Debug("animation stopped")
		return
	}

	now := d.clock.Now()
	d.running = true
	d.last = now
	d.meter.reset(now)
	d.mu.Unlock()

	d.statRunning.Store(true)
	d.sched.Start(d.frame)
	d.log.Debug("animation started")
}

// frame is the scheduler task
func (d *Driver) frame(now time.Time) {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}

	frameTime := now.Sub(d.last)
	dt := float64(frameTime) / float64(parameter.FrameInterval)
	if dt > parameter.MaxElapsedScale {
		d.statClamped.Add(1)
		dt = parameter.MaxElapsedScale
	}
	dt = max(dt, 0)
	d.last = now

	if w, h := d.surface.Size(); w <= 0 || h <= 0 {
		d.statBlank.Add(1)
	}
	fs := d.field.Frame(dt, d.surface)
	if p, ok := d.surface.(Presenter); ok {
		p.Present()
	}
	d.frames++

	if d.meter.tick(now) {
		d.statFPS.Set(d.meter.fps)
		d.statFPSPeak.Max(d.meter.fps)
		if d.adaptor != nil {
			if delta := d.adaptor.Adjust(d.meter.fps, d.field); delta != 0 {
				d.statAdaptive.Add(1)
				d.log.Info("adaptive resize", "fps", d.meter.fps, "delta", delta, "particles", d.field.Len())
			}
		}
	}

	d.stats = Stats{
		Particles:   d.field.Len(),
		Target:      d.field.Target(),
		FPS:         d.meter.fps,
		Running:     true,
		Visible:     d.visible,
		Mode:        modeFor(d.preset, d.field.Len(), d.field.Target()),
		Connections: fs.Connections,
		Contacts:    fs.Contacts,
		Collisions:  fs.Collisions,
		Frames:      d.frames,
		UpdateTime:  fs.UpdateTime,
		RenderTime:  fs.RenderTime,
		FrameTime:   frameTime,
	}
	d.stats.Pointer, d.stats.PointerActive = d.field.Pointer()
	snapshot := d.stats
	d.mu.Unlock()

	d.statFrames.Add(1)
	d.statParticles.Store(int64(snapshot.Particles))
	d.statLinks.Store(int64(snapshot.Connections))
	d.statCollisions.Add(int64(snapshot.Collisions))

	if d.sink != nil {
		d.sink(snapshot)
	}
}
