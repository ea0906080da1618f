package render

import (
	"strings"

	"conway-life/internal/core"
)

// Text renders grid as one line per row, '#' for live cells and '.' for dead.
func Text(grid *core.BoolGrid) string {
	var b strings.Builder
	b.Grow((grid.W + 1) * grid.H)
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			if grid.Get(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
