package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Layout maps a grid of cells onto a pixel surface.
type Layout struct {
	Grid   Size
	Screen Size
}

// CellSize returns the pixel width and height of a single cell.
func (l Layout) CellSize() (float64, float64) {
	if l.Grid.W <= 0 || l.Grid.H <= 0 {
		return 0, 0
	}
	return float64(l.Screen.W) / float64(l.Grid.W), float64(l.Screen.H) / float64(l.Grid.H)
}

// CellOrigin returns the top-left pixel corner of cell (col, row).
func (l Layout) CellOrigin(col, row int) (float64, float64) {
	if l.Grid.W <= 0 || l.Grid.H <= 0 {
		return 0, 0
	}
	return float64(col*l.Screen.W) / float64(l.Grid.W), float64(row*l.Screen.H) / float64(l.Grid.H)
}

// CellAt maps a pixel position to the cell underneath it. Positions outside
// the surface report ok=false.
func (l Layout) CellAt(px, py int) (col, row int, ok bool) {
	if px < 0 || py < 0 || px >= l.Screen.W || py >= l.Screen.H {
		return 0, 0, false
	}
	if l.Grid.W <= 0 || l.Grid.H <= 0 {
		return 0, 0, false
	}
	// floor(px / (screenW / gridW)) without the rounding of a float cell size
	return px * l.Grid.W / l.Screen.W, py * l.Grid.H / l.Screen.H, true
}
