package life

import (
	"sort"

	"conway-life/internal/core"
)

// Pattern is a named set of live cells relative to the pattern's top-left.
type Pattern struct {
	Name  string
	Cells [][2]int
}

var patterns = map[string]Pattern{
	"block":      {Name: "block", Cells: [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	"blinker":    {Name: "blinker", Cells: [][2]int{{0, 0}, {0, 1}, {0, 2}}},
	"toad":       {Name: "toad", Cells: [][2]int{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}}},
	"beacon":     {Name: "beacon", Cells: [][2]int{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}}},
	"glider":     {Name: "glider", Cells: [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
	"rpentomino": {Name: "rpentomino", Cells: [][2]int{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}},
}

// LookupPattern returns the pattern registered under name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the registered patterns in alphabetical order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() core.Size {
	var s core.Size
	for _, c := range p.Cells {
		if c[0]+1 > s.W {
			s.W = c[0] + 1
		}
		if c[1]+1 > s.H {
			s.H = c[1] + 1
		}
	}
	return s
}

// Script returns the inputs that paint the pattern with the primary button,
// one cell per frame, with the pattern centred on a grid of the given size.
// Cells that fall past an edge wrap around, as they would on the torus.
func (p Pattern) Script(m Mapper, grid core.Size) []Input {
	b := p.Bounds()
	ox := (grid.W - b.W) / 2
	oy := (grid.H - b.H) / 2
	inputs := make([]Input, 0, len(p.Cells))
	for _, c := range p.Cells {
		col := ((ox+c[0])%grid.W + grid.W) % grid.W
		row := ((oy+c[1])%grid.H + grid.H) % grid.H
		ptr := m.PointerAt(col, row)
		ptr.Primary = true
		inputs = append(inputs, Input{Pointer: ptr})
	}
	return inputs
}

// Place paints the pattern through the loop's manual-edit path. The loop is
// held paused while painting and the previous pause flag is restored after.
func Place(l *Loop, p Pattern) {
	s := l.State()
	was := s.Paused()
	s.SetPaused(true)
	l.Run(p.Script(l.Mapper(), s.Size()))
	s.SetPaused(was)
}
