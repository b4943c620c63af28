package sketch

// Polyline is an ordered sequence of vertices stored newest-first.
// The zero value (nil) is an empty polyline.
type Polyline []Point

// Prepend returns a new polyline with p as its newest vertex. The receiver is
// not modified, so earlier states holding it stay valid.
func (pl Polyline) Prepend(p Point) Polyline {
	out := make(Polyline, 0, len(pl)+1)
	out = append(out, p)
	return append(out, pl...)
}

// Newest returns the most recently added vertex.
func (pl Polyline) Newest() (Point, bool) {
	if len(pl) == 0 {
		return Point{}, false
	}
	return pl[0], true
}

// Reversed returns the vertices in drawing order (oldest first).
func (pl Polyline) Reversed() []Point {
	out := make([]Point, len(pl))
	for i, p := range pl {
		out[len(pl)-1-i] = p
	}
	return out
}

// Equal reports whether two polylines have the same vertices in the same
// order.
func (pl Polyline) Equal(other Polyline) bool {
	if len(pl) != len(other) {
		return false
	}
	for i := range pl {
		if pl[i] != other[i] {
			return false
		}
	}
	return true
}
