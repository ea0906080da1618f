package core

// BoolGrid stores a 2D grid of alive/dead cells in row-major order. Every
// coordinate passed to Get or Set is wrapped, so the grid behaves as a torus.
type BoolGrid struct {
	W, H int
	data []bool
}

// NewBoolGrid allocates an all-dead grid with the given dimensions.
func NewBoolGrid(w, h int) *BoolGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BoolGrid{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BoolGrid) Cells() []bool { return g.data }

// Size returns the grid dimensions.
func (g *BoolGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for wrapped coordinates (x, y).
func (g *BoolGrid) Index(x, y int) int {
	x, y = g.Wrap(x, y)
	return y*g.W + x
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *BoolGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Get reports whether the cell at (x, y) is alive.
func (g *BoolGrid) Get(x, y int) bool { return g.data[g.Index(x, y)] }

// Set stores the state of the cell at (x, y).
func (g *BoolGrid) Set(x, y int, alive bool) { g.data[g.Index(x, y)] = alive }

// CopyFrom overwrites g with the contents of src. Grids of different
// dimensions are left untouched and false is returned.
func (g *BoolGrid) CopyFrom(src *BoolGrid) bool {
	if src == nil || src.W != g.W || src.H != g.H {
		return false
	}
	copy(g.data, src.data)
	return true
}

// Population counts the live cells.
func (g *BoolGrid) Population() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *BoolGrid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}
