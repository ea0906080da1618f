package life

import "conway-life/internal/core"

// EventKind enumerates the discrete events the frame loop reacts to.
type EventKind int

const (
	// EventClose asks the loop to stop.
	EventClose EventKind = iota
	// EventKeyDown toggles the pause flag, whatever key was pressed.
	EventKeyDown
)

// Event is a single queued window event.
type Event struct {
	Kind EventKind
}

// Pointer is a per-frame snapshot of the pointer position and buttons.
type Pointer struct {
	X, Y      int
	Primary   bool
	Middle    bool
	Secondary bool
}

// Held reports whether any button is down.
func (p Pointer) Held() bool { return p.Primary || p.Middle || p.Secondary }

// Input is everything the loop consumes in one frame: the events queued since
// the previous frame, in order, and the latest pointer snapshot.
type Input struct {
	Events  []Event
	Pointer Pointer
}

// Edit is a manual edit produced by the Mapper.
type Edit struct {
	Col, Row int
	Alive    bool
}

// Mapper translates pointer state into manual edits.
type Mapper struct {
	Layout core.Layout
}

// NewMapper returns a Mapper for the given layout.
func NewMapper(layout core.Layout) Mapper { return Mapper{Layout: layout} }

// Edit returns the edit requested by p. ok is false when no button is held
// or the pointer lies outside the grid surface. Holding the secondary button
// always asserts dead, any other button asserts alive.
func (m Mapper) Edit(p Pointer) (Edit, bool) {
	if !p.Held() {
		return Edit{}, false
	}
	col, row, ok := m.Layout.CellAt(p.X, p.Y)
	if !ok {
		return Edit{}, false
	}
	return Edit{Col: col, Row: row, Alive: !p.Secondary}, true
}

// PointerAt returns a pointer snapshot hovering the centre of (col, row).
func (m Mapper) PointerAt(col, row int) Pointer {
	cw, ch := m.Layout.CellSize()
	x, y := m.Layout.CellOrigin(col, row)
	return Pointer{X: int(x + cw/2), Y: int(y + ch/2)}
}
