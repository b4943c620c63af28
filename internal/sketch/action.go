package sketch

import "fmt"

// Action is a discrete user-triggered event. The set of actions is closed:
// every mutation of drawing state flows through one of the types below.
type Action interface {
	isAction()
	fmt.Stringer
}

// AddPoint places a vertex on the polyline under construction, starting a new
// polyline if none is in progress.
type AddPoint struct {
	Point Point
}

// SetCursor records the pointer position for preview rendering. It is
// invisible to undo/redo. A nil Point means the position is unknown.
type SetCursor struct {
	Point *Point
}

// FinishPolygon completes the polyline under construction. With no polyline
// in progress it is a no-op, not an error.
type FinishPolygon struct{}

// ClearAll discards every finished polyline and the one under construction.
// It is undoable.
type ClearAll struct{}

// Undo steps back to the previous undoable state, if any.
type Undo struct{}

// Redo steps forward to the state an Undo left, if any.
type Redo struct{}

func (AddPoint) isAction()      {}
func (SetCursor) isAction()     {}
func (FinishPolygon) isAction() {}
func (ClearAll) isAction()      {}
func (Undo) isAction()          {}
func (Redo) isAction()          {}

func (a AddPoint) String() string { return "add-point " + a.Point.String() }

func (a SetCursor) String() string {
	if a.Point == nil {
		return "set-cursor none"
	}
	return "set-cursor " + a.Point.String()
}

func (FinishPolygon) String() string { return "finish-polygon" }
func (ClearAll) String() string      { return "clear-all" }
func (Undo) String() string          { return "undo" }
func (Redo) String() string          { return "redo" }
