package life

import (
	"fmt"

	"conway-life/internal/core"
)

// neighborhood lists the eight offsets around a cell.
var neighborhood = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors counts the live cells around (x, y), wrapping at the edges.
func Neighbors(g *core.BoolGrid, x, y int) int {
	n := 0
	for _, d := range neighborhood {
		if g.Get(x+d[0], y+d[1]) {
			n++
		}
	}
	return n
}

// Rule returns the next state of a cell and whether the rules force it.
// Unforced cells keep whatever value the next generation already holds.
func Rule(alive bool, neighbors int) (next bool, forced bool) {
	switch {
	case !alive && neighbors == 3:
		return true, true
	case alive && (neighbors < 2 || neighbors > 3):
		return false, true
	}
	return alive, false
}

// Step writes the rule-derived transitions of cur into next. Only cur is read,
// so the update is generation-synchronous. Cells flagged in skip keep their
// value in next; a nil skip applies the rules everywhere.
//
// next must already hold a copy of cur (plus any manual edits) and have the
// same dimensions; Step panics on a size mismatch.
func Step(cur, next *core.BoolGrid, skip []bool) {
	if cur.W != next.W || cur.H != next.H {
		panic(fmt.Sprintf("life.Step: grid sizes differ, %dx%d vs %dx%d", cur.W, cur.H, next.W, next.H))
	}
	cells := cur.Cells()
	for y := 0; y < cur.H; y++ {
		for x := 0; x < cur.W; x++ {
			idx := y*cur.W + x
			if skip != nil && skip[idx] {
				continue
			}
			v, forced := Rule(cells[idx], Neighbors(cur, x, y))
			if forced {
				next.Cells()[idx] = v
			}
		}
	}
}
