package life

import (
	"testing"

	"conway-life/internal/core"
)

func testMapper() Mapper {
	return NewMapper(core.Layout{Grid: core.Size{W: 50, H: 50}, Screen: core.Size{W: 600, H: 600}})
}

func TestMapperButtons(t *testing.T) {
	m := testMapper()
	cases := []struct {
		name      string
		ptr       Pointer
		wantOK    bool
		wantAlive bool
	}{
		{name: "none", ptr: Pointer{X: 30, Y: 30}},
		{name: "primary", ptr: Pointer{X: 30, Y: 30, Primary: true}, wantOK: true, wantAlive: true},
		{name: "middle", ptr: Pointer{X: 30, Y: 30, Middle: true}, wantOK: true, wantAlive: true},
		{name: "secondary", ptr: Pointer{X: 30, Y: 30, Secondary: true}, wantOK: true},
		{name: "primary+secondary", ptr: Pointer{X: 30, Y: 30, Primary: true, Secondary: true}, wantOK: true},
	}
	for _, tc := range cases {
		e, ok := m.Edit(tc.ptr)
		if ok != tc.wantOK {
			t.Fatalf("%s: ok=%v, expected %v", tc.name, ok, tc.wantOK)
		}
		if ok && e.Alive != tc.wantAlive {
			t.Fatalf("%s: alive=%v, expected %v", tc.name, e.Alive, tc.wantAlive)
		}
	}
}

func TestMapperCellCoordinates(t *testing.T) {
	m := testMapper()
	cases := []struct {
		x, y     int
		col, row int
	}{
		{0, 0, 0, 0},
		{11, 11, 0, 0},
		{12, 0, 1, 0},
		{599, 599, 49, 49},
		{300, 47, 25, 3},
	}
	for _, tc := range cases {
		e, ok := m.Edit(Pointer{X: tc.x, Y: tc.y, Primary: true})
		if !ok {
			t.Fatalf("(%d,%d) was discarded", tc.x, tc.y)
		}
		if e.Col != tc.col || e.Row != tc.row {
			t.Fatalf("(%d,%d) mapped to (%d,%d), expected (%d,%d)", tc.x, tc.y, e.Col, e.Row, tc.col, tc.row)
		}
	}
}

func TestMapperDiscardsOutsideSurface(t *testing.T) {
	m := testMapper()
	for _, p := range [][2]int{{-1, 10}, {10, -1}, {600, 10}, {10, 600}, {9000, 9000}} {
		if _, ok := m.Edit(Pointer{X: p[0], Y: p[1], Primary: true}); ok {
			t.Fatalf("(%d,%d) should be discarded", p[0], p[1])
		}
	}
}

func TestPointerAtRoundTrips(t *testing.T) {
	m := testMapper()
	for _, c := range [][2]int{{0, 0}, {49, 49}, {17, 3}} {
		ptr := m.PointerAt(c[0], c[1])
		ptr.Primary = true
		e, ok := m.Edit(ptr)
		if !ok || e.Col != c[0] || e.Row != c[1] {
			t.Fatalf("PointerAt(%d,%d) mapped back to (%d,%d) ok=%v", c[0], c[1], e.Col, e.Row, ok)
		}
	}
}
