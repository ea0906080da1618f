//go:build ebiten

package render

import (
	"conway-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter draws a grid as one rectangle per cell: an outline for dead
// cells and a fill for live ones.
type GridPainter struct {
	layout  core.Layout
	palette Palette
}

// NewGridPainter returns a painter for the provided layout.
func NewGridPainter(layout core.Layout, palette Palette) *GridPainter {
	return &GridPainter{layout: layout, palette: palette}
}

// Draw paints the background and every cell of grid onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, grid *core.BoolGrid) {
	w, h := float32(gp.layout.Screen.W), float32(gp.layout.Screen.H)
	vector.DrawFilledRect(dst, 0, 0, w, h, gp.palette.Background, false)
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			r := CellRect(gp.layout, x, y)
			rx, ry := float32(r.Min.X), float32(r.Min.Y)
			rw, rh := float32(r.Dx()), float32(r.Dy())
			if grid.Get(x, y) {
				vector.DrawFilledRect(dst, rx, ry, rw, rh, gp.palette.Alive, false)
				continue
			}
			// strokes are centred on the path; inset half a pixel to stay crisp
			vector.StrokeRect(dst, rx+0.5, ry+0.5, rw-1, rh-1, 1, gp.palette.Dead, false)
		}
	}
}

// Layout returns the geometry the painter draws with.
func (gp *GridPainter) Layout() core.Layout { return gp.layout }
