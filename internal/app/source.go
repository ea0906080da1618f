//go:build ebiten

package app

import (
	"conway-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// eventSource queues ebiten input between frames, the way a window system
// queues events until they are polled.
type eventSource struct {
	pending []life.Event
	keys    []ebiten.Key
}

// collect records the events of the current tick.
func (s *eventSource) collect() {
	if ebiten.IsWindowBeingClosed() {
		s.pending = append(s.pending, life.Event{Kind: life.EventClose})
	}
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for range s.keys {
		s.pending = append(s.pending, life.Event{Kind: life.EventKeyDown})
	}
}

// drain returns the queued events together with the current pointer
// snapshot and empties the queue.
func (s *eventSource) drain() life.Input {
	x, y := ebiten.CursorPosition()
	in := life.Input{
		Events: s.pending,
		Pointer: life.Pointer{
			X:         x,
			Y:         y,
			Primary:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			Middle:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
			Secondary: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		},
	}
	s.pending = nil
	return in
}
