//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/payneba/wfc-visualizer/internal/core"
	"github.com/payneba/wfc-visualizer/internal/render"
	"github.com/payneba/wfc-visualizer/internal/ui"
)

// Game adapts a generator model to the ebiten.Game interface: it paces solver
// steps, redraws the evolving output, and handles playback keys.
//
// Keys: Space pause/resume, N single step, R reset, E entropy overlay,
// Q/Escape quit.
type Game struct {
	model   core.Model
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep

	pixels   []uint32
	scale    int
	paused   bool
	stepOnce bool
}

// New constructs a Game for the provided model. sps caps solver steps per
// second; scale is the integer pixel zoom.
func New(model core.Model, scale, sps int) *Game {
	surface := model.RenderSize()
	return &Game{
		model:   model,
		painter: render.NewGridPainter(surface.W, surface.H),
		overlay: ui.NewOverlay(model),
		hud:     ui.NewHUD(model),
		pacer:   core.NewFixedStep(sps),
		pixels:  make([]uint32, surface.W*surface.H),
		scale:   scale,
	}
}

// Update handles per-frame input and advances the run.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.pacer.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.model.Clear()
	}
	g.overlay.Update()

	if g.stepOnce {
		g.model.Step()
		g.stepOnce = false
		return nil
	}
	if !g.paused {
		for g.pacer.ShouldStep() {
			if g.model.Step() != core.StepContinue {
				break
			}
		}
	}
	return nil
}

// Draw renders the current output, the overlay, and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.model.Render(g.pixels)
	g.painter.Blit(screen, g.pixels, g.scale)
	g.overlay.Draw(screen, g.scale)
	g.hud.Draw(screen, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.model.RenderSize()
	return s.W * g.scale, s.H * g.scale
}
