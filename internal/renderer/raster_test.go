package renderer

import (
	"testing"

	"github.com/dshills/polysketch/internal/sketch"
)

func TestLineCellsEndpoints(t *testing.T) {
	cells := lineCells(sketch.Pt(0, 0), sketch.Pt(4, 2))

	if len(cells) == 0 {
		t.Fatal("no cells")
	}
	first, last := cells[0], cells[len(cells)-1]
	if first.x != 0 || first.y != 0 {
		t.Errorf("first cell = (%d,%d)", first.x, first.y)
	}
	if last.x != 4 || last.y != 2 {
		t.Errorf("last cell = (%d,%d)", last.x, last.y)
	}
}

func TestLineCellsContiguous(t *testing.T) {
	cells := lineCells(sketch.Pt(1, 9), sketch.Pt(9, 2))

	for i := 1; i < len(cells); i++ {
		dx := abs(cells[i].x - cells[i-1].x)
		dy := abs(cells[i].y - cells[i-1].y)
		if dx > 1 || dy > 1 {
			t.Fatalf("gap between cells %d and %d", i-1, i)
		}
	}
}

func TestLineCellsSinglePoint(t *testing.T) {
	cells := lineCells(sketch.Pt(3, 3), sketch.Pt(3, 3))
	if len(cells) != 1 || cells[0].x != 3 || cells[0].y != 3 {
		t.Errorf("degenerate segment cells = %v", cells)
	}
}

func TestLineRune(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   rune
	}{
		{10, 0, '-'},
		{10, 2, '-'},
		{0, 10, '|'},
		{2, 10, '|'},
		{5, 5, '\\'},
		{-5, -5, '\\'},
		{5, -5, '/'},
		{-5, 5, '/'},
	}
	for _, tt := range tests {
		if got := lineRune(tt.dx, tt.dy); got != tt.want {
			t.Errorf("lineRune(%d,%d) = %q, want %q", tt.dx, tt.dy, got, tt.want)
		}
	}
}
