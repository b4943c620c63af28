package sketch

// State is the aggregate drawing state. It is a value: transitions derive new
// states rather than mutating the receiver, and slices are never written in
// place once a state holds them.
type State struct {
	// Finished holds completed polylines, newest first.
	Finished []Polyline

	// Current is the polyline under construction; nil means none.
	Current Polyline

	// Cursor is the last known pointer position, used only for preview
	// rendering. It is not part of undoable history. Nil means unknown.
	Cursor *Point
}

// NewState returns the empty drawing state.
func NewState() State {
	return State{}
}

// WithCursor returns a copy of the state with the cursor replaced.
func (st State) WithCursor(p *Point) State {
	st.Cursor = p
	return st
}

// VertexCount returns the number of vertices in the polyline under
// construction.
func (st State) VertexCount() int {
	return len(st.Current)
}

// PolygonCount returns the number of finished polylines.
func (st State) PolygonCount() int {
	return len(st.Finished)
}

// prependFinished returns a new finished list with pl as its newest entry.
func prependFinished(finished []Polyline, pl Polyline) []Polyline {
	out := make([]Polyline, 0, len(finished)+1)
	out = append(out, pl)
	return append(out, finished...)
}

// EqualDrawing reports whether two states describe the same drawing,
// ignoring the cursor.
func (st State) EqualDrawing(other State) bool {
	if len(st.Finished) != len(other.Finished) {
		return false
	}
	for i := range st.Finished {
		if !st.Finished[i].Equal(other.Finished[i]) {
			return false
		}
	}
	return st.Current.Equal(other.Current)
}
