package life

import (
	"testing"

	"conway-life/internal/core"
)

func TestRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		next, forced := Rule(false, n)
		if n == 3 {
			if !next || !forced {
				t.Fatalf("dead cell with 3 neighbours: next=%v forced=%v", next, forced)
			}
		} else if forced {
			t.Fatalf("dead cell with %d neighbours should not be forced", n)
		}

		next, forced = Rule(true, n)
		if n < 2 || n > 3 {
			if next || !forced {
				t.Fatalf("live cell with %d neighbours: next=%v forced=%v", n, next, forced)
			}
		} else if forced || !next {
			t.Fatalf("live cell with %d neighbours should survive unforced", n)
		}
	}
}

func TestNeighborsWrapDiagonal(t *testing.T) {
	g := core.NewBoolGrid(6, 4)
	g.Set(5, 3, true)
	if n := Neighbors(g, 0, 0); n != 1 {
		t.Fatalf("(0,0) counted %d neighbours, expected the (W-1,H-1) corner", n)
	}
	if n := Neighbors(g, 5, 3); n != 0 {
		t.Fatalf("cell must not count itself, got %d", n)
	}
}

func TestStepIsOrderIndependent(t *testing.T) {
	cur := core.NewBoolGrid(4, 4)
	// a row of three: if rules read next, evaluation order would leak
	cur.Set(0, 1, true)
	cur.Set(1, 1, true)
	cur.Set(2, 1, true)
	next := core.NewBoolGrid(4, 4)
	next.CopyFrom(cur)
	Step(cur, next, nil)

	want := map[[2]int]bool{{1, 0}: true, {1, 1}: true, {1, 2}: true}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := next.Get(x, y); got != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, got, want[[2]int{x, y}])
			}
		}
	}
}

func TestStepKeepsUnforcedValuesOfNext(t *testing.T) {
	cur := core.NewBoolGrid(5, 5)
	next := core.NewBoolGrid(5, 5)
	// an isolated edit already present in next has 0 neighbours in cur but
	// is dead in cur, so no rule fires and the edit stays
	next.Set(2, 2, true)
	Step(cur, next, nil)
	if !next.Get(2, 2) {
		t.Fatalf("unforced cell lost its value in next")
	}
}

func TestStepSkipsFlaggedCells(t *testing.T) {
	cur := core.NewBoolGrid(5, 5)
	cur.Set(2, 2, true) // dies of loneliness unless skipped
	next := core.NewBoolGrid(5, 5)
	next.CopyFrom(cur)
	skip := make([]bool, 25)
	skip[cur.Index(2, 2)] = true
	Step(cur, next, skip)
	if !next.Get(2, 2) {
		t.Fatalf("skipped cell was rewritten by the rules")
	}
}

func TestStepPanicsOnSizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("mismatched grids were stepped silently")
		}
	}()
	Step(core.NewBoolGrid(3, 3), core.NewBoolGrid(4, 3), nil)
}
