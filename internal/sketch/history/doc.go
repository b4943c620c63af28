// Package history wraps the sketch transition function with undo/redo.
//
// History keeps two snapshot stacks: undo holds the states an Undo would
// restore, redo holds the states an Undo departed from. Snapshots capture the
// drawing only; the cursor position is excluded by contract so the preview
// does not jump when stepping through history. Undo with an empty undo stack,
// and Redo with an empty redo stack, are silent no-ops.
//
// This is the externally indexed log formulation of a past/future chain:
// rather than each state embedding links to its neighbors, History owns the
// chain and the state stays a plain value.
package history
