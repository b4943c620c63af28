package mouse

import (
	"time"

	"github.com/dshills/polysketch/internal/renderer/backend"
	"github.com/dshills/polysketch/internal/sketch"
)

// Default click sequencing thresholds.
const (
	DefaultDoubleClickTime     = 400 * time.Millisecond
	DefaultDoubleClickDistance = 1
)

// Options configures click sequencing.
type Options struct {
	// DoubleClickTime is the longest gap between clicks in a sequence.
	DoubleClickTime time.Duration

	// DoubleClickDistance is the largest Manhattan distance in cells
	// between clicks in a sequence.
	DoubleClickDistance int
}

// DefaultOptions returns the default click thresholds.
func DefaultOptions() Options {
	return Options{
		DoubleClickTime:     DefaultDoubleClickTime,
		DoubleClickDistance: DefaultDoubleClickDistance,
	}
}

// Translator converts backend mouse events into sketch actions.
type Translator struct {
	clicks *clickTracker
}

// NewTranslator creates a translator. Zero option fields select defaults.
func NewTranslator(opts Options) *Translator {
	if opts.DoubleClickTime <= 0 {
		opts.DoubleClickTime = DefaultDoubleClickTime
	}
	if opts.DoubleClickDistance <= 0 {
		opts.DoubleClickDistance = DefaultDoubleClickDistance
	}
	return &Translator{
		clicks: newClickTracker(opts.DoubleClickTime, opts.DoubleClickDistance),
	}
}

// Translate maps a mouse event to an action. The second return value is
// false when the event produces no action (non-mouse events, secondary
// buttons, triple clicks).
func (t *Translator) Translate(ev backend.Event) (sketch.Action, bool) {
	if ev.Type != backend.EventMouse {
		return nil, false
	}

	p := sketch.Pt(float64(ev.MouseX), float64(ev.MouseY))

	switch ev.Button {
	case backend.ButtonPrimary:
		switch t.clicks.recordClick(ev.MouseX, ev.MouseY, ev.When) {
		case 1:
			return sketch.AddPoint{Point: p}, true
		case 2:
			return sketch.FinishPolygon{}, true
		default:
			return nil, false
		}

	case backend.ButtonNone:
		return sketch.SetCursor{Point: &p}, true

	default:
		return nil, false
	}
}

// Reset clears click sequencing state, e.g. after a click lands on a toolbar
// button rather than the canvas.
func (t *Translator) Reset() {
	t.clicks.reset()
}
