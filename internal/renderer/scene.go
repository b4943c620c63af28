package renderer

import (
	"fmt"

	"github.com/dshills/polysketch/internal/sketch"
)

// SegmentKind classifies scene geometry for styling.
type SegmentKind int

const (
	// SegmentFinished belongs to a completed polyline.
	SegmentFinished SegmentKind = iota
	// SegmentCurrent belongs to the polyline under construction.
	SegmentCurrent
	// SegmentPreview is the rubber-band from the newest vertex to the
	// pointer.
	SegmentPreview
)

// Segment is a straight line between two points in drawing space.
type Segment struct {
	From, To sketch.Point
	Kind     SegmentKind
}

// Vertex is a single marked point in drawing space.
type Vertex struct {
	At   sketch.Point
	Kind SegmentKind
}

// Rect is a rectangle in cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Button is a clickable trigger surface on the toolbar.
type Button struct {
	Label  string
	Action sketch.Action
	Rect   Rect
}

// Scene is everything a frame displays.
type Scene struct {
	Width, Height int

	Segments []Segment
	Vertices []Vertex
	Buttons  []Button
	Status   string
}

// ButtonAt returns the action of the button under the given cell, if any.
func (s Scene) ButtonAt(x, y int) (sketch.Action, bool) {
	for _, b := range s.Buttons {
		if b.Rect.Contains(x, y) {
			return b.Action, true
		}
	}
	return nil, false
}

// BuildScene constructs the scene for a drawing state. Drawing space is the
// full cell grid; the toolbar and status line overlay the top and bottom
// rows.
func BuildScene(st sketch.State, canUndo, canRedo bool, width, height int) Scene {
	scene := Scene{Width: width, Height: height}

	scene.Buttons = buildToolbar()

	for _, pl := range st.Finished {
		appendPolyline(&scene, pl.Reversed(), SegmentFinished)
	}

	if st.Current != nil {
		appendPolyline(&scene, st.Current.Reversed(), SegmentCurrent)
		if st.Cursor != nil {
			if newest, ok := st.Current.Newest(); ok {
				scene.Segments = append(scene.Segments, Segment{
					From: newest,
					To:   *st.Cursor,
					Kind: SegmentPreview,
				})
				scene.Vertices = append(scene.Vertices, Vertex{At: *st.Cursor, Kind: SegmentPreview})
			}
		}
	}

	scene.Status = fmt.Sprintf("polygons:%d vertices:%d undo:%s redo:%s",
		st.PolygonCount(), st.VertexCount(), yesNo(canUndo), yesNo(canRedo))

	return scene
}

func appendPolyline(scene *Scene, pts []sketch.Point, kind SegmentKind) {
	for i, p := range pts {
		scene.Vertices = append(scene.Vertices, Vertex{At: p, Kind: kind})
		if i > 0 {
			scene.Segments = append(scene.Segments, Segment{From: pts[i-1], To: p, Kind: kind})
		}
	}
}

func buildToolbar() []Button {
	labels := []struct {
		label  string
		action sketch.Action
	}{
		{"[Undo]", sketch.Undo{}},
		{"[Redo]", sketch.Redo{}},
		{"[Clear]", sketch.ClearAll{}},
	}

	buttons := make([]Button, 0, len(labels))
	x := 1
	for _, l := range labels {
		buttons = append(buttons, Button{
			Label:  l.label,
			Action: l.action,
			Rect:   Rect{X: x, Y: 0, W: len(l.label), H: 1},
		})
		x += len(l.label) + 1
	}
	return buttons
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
