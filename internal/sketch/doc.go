// Package sketch defines the drawing data model and the pure transition
// function that advances it.
//
// A drawing is a set of finished polylines plus an optional polyline under
// construction. Polylines store their vertices newest-first so that adding a
// vertex is a prepend; consumers reverse into drawing order at render time.
//
// Apply is a pure function from (Action, State) to State. It handles only the
// drawing actions; cursor movement and undo/redo are the concern of the
// history wrapper in the history subpackage. States are values and are never
// mutated in place: every transition allocates fresh slices for whatever it
// changes, so older states remain valid snapshots.
package sketch
