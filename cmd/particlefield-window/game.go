package main

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/particlefield/engine"
	"github.com/lixenwraith/particlefield/field"
	"github.com/lixenwraith/particlefield/render"
)

// Game hosts the driver inside the ebiten loop
// Update fires one frame into the recorder and snapshots it, Draw replays the snapshot
// A Resize from Layout clears the recorder, the snapshot keeps the last finished frame on screen
type Game struct {
	driver *engine.Driver
	sched  *engine.ManualScheduler
	rec    *render.Recorder
	frame  *render.Recorder
	log    *slog.Logger
	bg     color.Color

	width, height int
	focused       bool
	reduced       bool
	hud           bool
	status        string
}

func (g *Game) Update() error {
	if quit := g.handleKeys(); quit {
		return ebiten.Termination
	}

	if focused := ebiten.IsFocused(); focused != g.focused {
		g.focused = focused
		g.driver.SetVisible(focused)
		if !focused {
			g.driver.ClearPointer()
		}
	}

	g.updatePointer()
	if g.sched.Fire(time.Now()) {
		g.frame.CopyFrom(g.rec)
	}
	return nil
}

func (g *Game) updatePointer() {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		g.driver.SetPointer(float64(x), float64(y))
		return
	}
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		g.driver.ClearPointer()
		return
	}

	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		g.driver.ClearPointer()
		return
	}
	g.driver.SetPointer(float64(x), float64(y))
}

func (g *Game) handleKeys() bool {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return true
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if g.driver.Running() {
			g.driver.Stop()
		} else {
			g.driver.Start()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.reduced = !g.reduced
		if err := g.driver.SetReducedMotion(g.reduced); err != nil {
			g.log.Warn("reduced motion toggle failed", "error", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.hud = !g.hud
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := g.driver.Reconfigure(field.Patch{}); err != nil {
			g.log.Warn("regenerate failed", "error", err)
		}
	}
	return false
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.Replay(&imageSurface{img: screen, bg: g.bg})
	if g.hud {
		ebitenutil.DebugPrint(screen, g.status)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.driver.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
