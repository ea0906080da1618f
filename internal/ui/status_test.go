package ui

import (
	"strings"
	"testing"

	"conway-life/pkg/sims/life"
)

func TestStatusLines(t *testing.T) {
	s := life.NewState(8, 6)
	s.Current().Set(1, 1, true)
	s.SetPaused(true)
	got := strings.Join(StatusLines(s), "\n")
	for _, want := range []string{"Grid 8x6", "Generation 0", "Population 1", "State paused"} {
		if !strings.Contains(got, want) {
			t.Fatalf("status %q missing %q", got, want)
		}
	}
}
