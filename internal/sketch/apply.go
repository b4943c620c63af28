package sketch

// Apply is the pure transition function. It handles the drawing actions and
// returns every other action's state unchanged; cursor movement and undo/redo
// belong to the history wrapper. Every input is valid: degenerate requests
// such as finishing with no polyline in progress are identity, not errors.
func Apply(act Action, st State) State {
	switch a := act.(type) {
	case AddPoint:
		st.Current = st.Current.Prepend(a.Point)
		return st

	case FinishPolygon:
		if st.Current == nil {
			return st
		}
		st.Finished = prependFinished(st.Finished, st.Current)
		st.Current = nil
		return st

	case ClearAll:
		if st.Finished == nil && st.Current == nil {
			return st
		}
		st.Finished = nil
		st.Current = nil
		return st

	default:
		return st
	}
}
