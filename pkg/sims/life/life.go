package life

import (
	"conway-life/internal/core"
	rng "conway-life/pkg/core"
)

// State owns everything a running simulation needs: the committed grid, the
// grid being built for the upcoming frame, the cells edited by hand this frame
// and the running/paused flags.
type State struct {
	cur    *core.BoolGrid
	nxt    *core.BoolGrid
	edited []bool

	running    bool
	paused     bool
	generation int
	frame      int
}

// NewState returns a running, unpaused simulation with an all-dead w*h grid.
func NewState(w, h int) *State {
	cur := core.NewBoolGrid(w, h)
	return &State{
		cur:     cur,
		nxt:     core.NewBoolGrid(cur.W, cur.H),
		edited:  make([]bool, len(cur.Cells())),
		running: true,
	}
}

// Size returns the grid dimensions.
func (s *State) Size() core.Size { return s.cur.Size() }

// Current exposes the committed generation.
func (s *State) Current() *core.BoolGrid { return s.cur }

// Next exposes the generation being built during a frame.
func (s *State) Next() *core.BoolGrid { return s.nxt }

// Running reports whether the frame loop should keep going.
func (s *State) Running() bool { return s.running }

// Paused reports whether rule evaluation is suspended.
func (s *State) Paused() bool { return s.paused }

// SetPaused forces the paused flag.
func (s *State) SetPaused(paused bool) { s.paused = paused }

// TogglePause flips the paused flag.
func (s *State) TogglePause() { s.paused = !s.paused }

// Stop ends the frame loop after the current frame.
func (s *State) Stop() { s.running = false }

// Generation counts the rule steps executed so far.
func (s *State) Generation() int { return s.generation }

// Frame counts the frames committed so far.
func (s *State) Frame() int { return s.frame }

// Reset kills every cell, then marks cells alive with probability density
// using a generator seeded with seed. A zero density leaves the grid empty.
func (s *State) Reset(seed int64, density float64) {
	s.cur.Clear()
	s.nxt.Clear()
	if density > 0 {
		rng.FillDensity(rng.NewRNG(seed), s.cur.Cells(), density)
	}
	s.generation = 0
	s.frame = 0
}

// begin starts a frame: next becomes a copy of current with no edits.
func (s *State) begin() {
	s.nxt.CopyFrom(s.cur)
	for i := range s.edited {
		s.edited[i] = false
	}
}

// edit applies a manual edit to next and shields the cell from the rules
// for the rest of the frame.
func (s *State) edit(col, row int, alive bool) {
	s.nxt.Set(col, row, alive)
	s.edited[s.nxt.Index(col, row)] = true
}

// step evaluates the rules over every cell not edited this frame.
func (s *State) step() {
	Step(s.cur, s.nxt, s.edited)
	s.generation++
}

// commit makes next the new current generation.
func (s *State) commit() {
	s.cur, s.nxt = s.nxt, s.cur
	s.frame++
}
