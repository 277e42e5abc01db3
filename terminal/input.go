package terminal

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particlefield/field"
)

// particleStep is the store change per +/- key press
const particleStep = 25

// Target is the driver surface controlled by terminal input, *engine.Driver satisfies it
type Target interface {
	Start()
	Stop()
	Running() bool
	SetPointer(x, y float64)
	ClearPointer()
	Resize(width, height int)
	SetVisible(visible bool)
	Config() field.Config
	Reconfigure(p field.Patch) error
}

// Input translates tcell events into driver calls
type Input struct {
	target Target
	log    *slog.Logger
}

// NewInput creates an input handler for target
func NewInput(target Target, log *slog.Logger) *Input {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Input{target: target, log: log}
}

// Handle applies ev and reports whether the user asked to quit
func (in *Input) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		in.target.Resize(CanvasSize(cols, rows))
	case *tcell.EventFocus:
		in.target.SetVisible(ev.Focused)
		if !ev.Focused {
			in.target.ClearPointer()
		}
	case *tcell.EventMouse:
		in.handleMouse(ev)
	case *tcell.EventKey:
		return in.handleKey(ev)
	}
	return false
}

func (in *Input) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button2 != 0 {
		in.target.ClearPointer()
		return
	}
	x, y := ev.Position()
	// Pointer sits at the cell centre in pixel space
	in.target.SetPointer(float64(x)+0.5, float64(y*2)+1)
}

func (in *Input) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	cfg := in.target.Config()
	var patch field.Patch
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		if in.target.Running() {
			in.target.Stop()
		} else {
			in.target.Start()
		}
		return false
	case 'a':
		mode := field.PointerAttract
		if cfg.PointerMode == field.PointerAttract {
			mode = field.PointerRepel
		}
		patch.PointerMode = field.Ptr(mode)
	case 'c':
		mode := field.CollisionElastic
		if cfg.Collision == field.CollisionElastic {
			mode = field.CollisionProximity
		}
		patch.Collision = field.Ptr(mode)
	case 'g':
		patch.Glow = field.Ptr(!cfg.Glow)
	case 'l':
		patch.Connections = field.Ptr(!cfg.Connections)
	case '+', '=':
		patch.ParticleCount = field.Ptr(cfg.ParticleCount + particleStep)
	case '-', '_':
		patch.ParticleCount = field.Ptr(max(cfg.ParticleCount-particleStep, 0))
	case 'r':
		// Empty patch regenerates the store
	default:
		return false
	}

	if err := in.target.Reconfigure(patch); err != nil {
		in.log.Warn("key reconfigure failed", "key", string(ev.Rune()), "error", err)
	}
	return false
}
