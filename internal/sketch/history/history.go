package history

import (
	"sync"

	"github.com/dshills/polysketch/internal/sketch"
)

// DefaultMaxEntries bounds the undo stack when no limit is configured.
const DefaultMaxEntries = 1000

// snapshot captures the undoable portion of a drawing state. The cursor is
// deliberately excluded.
type snapshot struct {
	finished []sketch.Polyline
	current  sketch.Polyline
}

func capture(st sketch.State) snapshot {
	return snapshot{finished: st.Finished, current: st.Current}
}

// restore produces a state from the snapshot, carrying the given cursor
// forward.
func (s snapshot) restore(cursor *sketch.Point) sketch.State {
	return sketch.State{Finished: s.finished, Current: s.current, Cursor: cursor}
}

func (s snapshot) equal(other snapshot) bool {
	if len(s.finished) != len(other.finished) {
		return false
	}
	for i := range s.finished {
		if !s.finished[i].Equal(other.finished[i]) {
			return false
		}
	}
	return s.current.Equal(other.current)
}

// History manages the undo/redo chain around the sketch transition function.
type History struct {
	mu sync.Mutex

	undo []snapshot
	redo []snapshot

	maxEntries int
}

// New creates a history manager. maxEntries bounds the undo stack; values
// <= 0 select DefaultMaxEntries.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Apply processes an action against the current state and returns the next
// state. Cursor movement bypasses history, Undo/Redo walk it, and every other
// action delegates to sketch.Apply and records the departed state.
func (h *History) Apply(act sketch.Action, st sketch.State) sketch.State {
	switch a := act.(type) {
	case sketch.SetCursor:
		return st.WithCursor(a.Point)

	case sketch.Undo:
		return h.stepBack(st)

	case sketch.Redo:
		return h.stepForward(st)

	default:
		next := sketch.Apply(act, st)
		// A transition that changed nothing gets no history entry;
		// undoing it would be indistinguishable from a no-op.
		if capture(next).equal(capture(st)) {
			return next
		}
		h.push(capture(st))
		return next
	}
}

// CanUndo reports whether an Undo would change state.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo) > 0
}

// CanRedo reports whether a Redo would change state.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo) > 0
}

// Depth returns the number of undoable entries.
func (h *History) Depth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo)
}

// push records a departed state and invalidates the redo chain.
func (h *History) push(s snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undo = append(h.undo, s)
	h.redo = nil

	if len(h.undo) > h.maxEntries {
		excess := len(h.undo) - h.maxEntries
		h.undo = h.undo[excess:]
	}
}

func (h *History) stepBack(st sketch.State) sketch.State {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undo) == 0 {
		return st
	}

	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, capture(st))

	return prev.restore(st.Cursor)
}

func (h *History) stepForward(st sketch.State) sketch.State {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redo) == 0 {
		return st
	}

	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, capture(st))

	return next.restore(st.Cursor)
}
