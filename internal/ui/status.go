package ui

import (
	"fmt"

	"conway-life/pkg/sims/life"
)

// StatusLines summarises a simulation state for the HUD panel.
func StatusLines(s *life.State) []string {
	mode := "running"
	if s.Paused() {
		mode = "paused"
	}
	size := s.Size()
	return []string{
		fmt.Sprintf("Grid %dx%d", size.W, size.H),
		fmt.Sprintf("Generation %d", s.Generation()),
		fmt.Sprintf("Population %d", s.Current().Population()),
		fmt.Sprintf("State %s", mode),
		"",
		"Left: paint",
		"Right: erase",
		"Any key: pause",
	}
}
