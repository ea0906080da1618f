//go:build ebiten

package app

import (
	"conway-life/internal/core"
	"conway-life/internal/render"
	"conway-life/internal/ui"
	"conway-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts the frame loop to the ebiten.Game interface.
type Game struct {
	loop    *life.Loop
	pacer   *core.FixedStep
	source  eventSource
	painter *render.GridPainter
	hud     *ui.HUD
	layout  core.Layout
}

// New constructs a Game for the provided configuration.
func New(cfg *Config) *Game {
	layout := cfg.Layout()
	state := life.NewState(cfg.Cols, cfg.Rows)
	state.Reset(cfg.Seed, cfg.Density)
	return &Game{
		loop:    life.NewLoop(state, life.NewMapper(layout), nil),
		pacer:   core.NewFixedStep(cfg.FPS),
		painter: render.NewGridPainter(layout, render.DefaultPalette()),
		hud:     ui.NewHUD(state, cfg.HUDWidth),
		layout:  layout,
	}
}

// Update queues input every tick and runs a frame whenever one is due.
func (g *Game) Update() error {
	g.source.collect()
	if !g.pacer.ShouldStep() {
		return nil
	}
	if !g.loop.Frame(g.source.drain()) {
		return ebiten.Termination
	}
	g.hud.Update()
	return nil
}

// Draw renders the committed generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.loop.State().Current())
	g.hud.Draw(screen, g.layout.Screen.W, g.layout.Screen.H)
}

// Layout returns the logical screen size: the grid surface plus the panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Screen.W + g.hud.Width(), g.layout.Screen.H
}
