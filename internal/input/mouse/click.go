package mouse

import "time"

// clickTracker detects click sequences for double/triple click handling.
type clickTracker struct {
	maxTime     time.Duration
	maxDistance int

	lastX, lastY int
	lastTime     time.Time
	lastCount    int
}

func newClickTracker(maxTime time.Duration, maxDistance int) *clickTracker {
	return &clickTracker{maxTime: maxTime, maxDistance: maxDistance}
}

// recordClick records a primary-button press and returns its position in the
// click sequence (1, 2, or 3; a fourth click starts a new sequence).
func (t *clickTracker) recordClick(x, y int, when time.Time) int {
	if when.IsZero() {
		when = time.Now()
	}

	if t.partOfSequence(x, y, when) {
		t.lastCount++
		if t.lastCount > 3 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}

	t.lastX, t.lastY = x, y
	t.lastTime = when
	return t.lastCount
}

func (t *clickTracker) partOfSequence(x, y int, when time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() {
		return false
	}

	elapsed := when.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}

	// Manhattan distance in cells.
	return abs(x-t.lastX)+abs(y-t.lastY) <= t.maxDistance
}

func (t *clickTracker) reset() {
	t.lastCount = 0
	t.lastTime = time.Time{}
	t.lastX, t.lastY = 0, 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
