package life

import "conway-life/internal/core"

// Renderer draws a generation. It is called once per committed frame with
// the grid that is about to become current.
type Renderer interface {
	Render(grid *core.BoolGrid)
}

// Loop orchestrates frames over an explicit State.
type Loop struct {
	state    *State
	mapper   Mapper
	renderer Renderer
}

// NewLoop wires a state, a mapper and an optional renderer together.
func NewLoop(state *State, mapper Mapper, renderer Renderer) *Loop {
	return &Loop{state: state, mapper: mapper, renderer: renderer}
}

// State exposes the simulation state owned by the loop.
func (l *Loop) State() *State { return l.state }

// Mapper exposes the loop's input mapper.
func (l *Loop) Mapper() Mapper { return l.mapper }

// Frame runs one iteration and reports whether the loop is still running.
// A close event stops the loop straight away: the frame is neither stepped,
// rendered nor committed. Manual edits are applied before the rules, and the
// rules leave edited cells alone.
func (l *Loop) Frame(in Input) bool {
	s := l.state
	if !s.running {
		return false
	}
	s.begin()
	for _, ev := range in.Events {
		switch ev.Kind {
		case EventClose:
			s.Stop()
		case EventKeyDown:
			s.TogglePause()
		}
	}
	if !s.running {
		return false
	}
	if e, ok := l.mapper.Edit(in.Pointer); ok {
		s.edit(e.Col, e.Row, e.Alive)
	}
	if !s.paused {
		s.step()
	}
	if l.renderer != nil {
		l.renderer.Render(s.nxt)
	}
	s.commit()
	return true
}

// Run drives frames from inputs until the source is exhausted or a close
// event arrives. It returns the number of frames committed.
func (l *Loop) Run(inputs []Input) int {
	start := l.state.frame
	for _, in := range inputs {
		if !l.Frame(in) {
			break
		}
	}
	return l.state.frame - start
}
