package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/polysketch/internal/sketch"
)

func TestBuildSceneReversesPolylines(t *testing.T) {
	st := sketch.NewState()
	st = sketch.Apply(sketch.AddPoint{Point: sketch.Pt(0, 0)}, st)
	st = sketch.Apply(sketch.AddPoint{Point: sketch.Pt(5, 0)}, st)
	st = sketch.Apply(sketch.AddPoint{Point: sketch.Pt(5, 5)}, st)
	st = sketch.Apply(sketch.FinishPolygon{}, st)

	scene := BuildScene(st, false, false, 80, 24)

	if len(scene.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(scene.Segments))
	}
	// Drawing order: oldest vertex first.
	if scene.Segments[0].From != sketch.Pt(0, 0) || scene.Segments[0].To != sketch.Pt(5, 0) {
		t.Errorf("first segment = %+v", scene.Segments[0])
	}
	if scene.Segments[1].From != sketch.Pt(5, 0) || scene.Segments[1].To != sketch.Pt(5, 5) {
		t.Errorf("second segment = %+v", scene.Segments[1])
	}
	for _, seg := range scene.Segments {
		if seg.Kind != SegmentFinished {
			t.Errorf("finished polyline segment has kind %v", seg.Kind)
		}
	}
}

func TestBuildScenePreviewSegment(t *testing.T) {
	cursor := sketch.Pt(10, 10)
	st := sketch.NewState()
	st = sketch.Apply(sketch.AddPoint{Point: sketch.Pt(2, 2)}, st)
	st = sketch.Apply(sketch.AddPoint{Point: sketch.Pt(4, 4)}, st)
	st.Cursor = &cursor

	scene := BuildScene(st, false, false, 80, 24)

	var preview *Segment
	for i := range scene.Segments {
		if scene.Segments[i].Kind == SegmentPreview {
			preview = &scene.Segments[i]
		}
	}
	if preview == nil {
		t.Fatal("expected a preview segment")
	}
	if preview.From != sketch.Pt(4, 4) || preview.To != cursor {
		t.Errorf("preview should run newest vertex to cursor, got %+v", *preview)
	}
}

func TestBuildSceneNoPreviewWithoutCurrent(t *testing.T) {
	cursor := sketch.Pt(10, 10)
	st := sketch.NewState().WithCursor(&cursor)

	scene := BuildScene(st, false, false, 80, 24)

	for _, seg := range scene.Segments {
		if seg.Kind == SegmentPreview {
			t.Fatal("no preview without a polyline in progress")
		}
	}
}

func TestBuildSceneToolbar(t *testing.T) {
	scene := BuildScene(sketch.NewState(), false, false, 80, 24)

	if len(scene.Buttons) != 3 {
		t.Fatalf("expected 3 buttons, got %d", len(scene.Buttons))
	}

	if act, ok := scene.ButtonAt(scene.Buttons[0].Rect.X, 0); !ok {
		t.Error("first button not hit")
	} else if _, isUndo := act.(sketch.Undo); !isUndo {
		t.Errorf("first button action = %v", act)
	}

	if act, ok := scene.ButtonAt(scene.Buttons[2].Rect.X+1, 0); !ok {
		t.Error("clear button not hit")
	} else if _, isClear := act.(sketch.ClearAll); !isClear {
		t.Errorf("clear button action = %v", act)
	}

	if _, ok := scene.ButtonAt(40, 10); ok {
		t.Error("canvas cell should not hit a button")
	}

	for i := 1; i < len(scene.Buttons); i++ {
		prev := scene.Buttons[i-1].Rect
		if scene.Buttons[i].Rect.X < prev.X+prev.W {
			t.Error("button rects overlap")
		}
	}
}

func TestBuildSceneStatus(t *testing.T) {
	st := sketch.NewState()
	st = sketch.Apply(sketch.AddPoint{Point: sketch.Pt(1, 1)}, st)

	scene := BuildScene(st, true, false, 80, 24)

	for _, want := range []string{"polygons:0", "vertices:1", "undo:yes", "redo:no"} {
		if !strings.Contains(scene.Status, want) {
			t.Errorf("status %q missing %q", scene.Status, want)
		}
	}
}
