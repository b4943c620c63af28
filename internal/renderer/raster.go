package renderer

import (
	"math"

	"github.com/dshills/polysketch/internal/sketch"
)

// cell is a single rasterized position.
type cell struct {
	x, y int
	r    rune
}

// lineCells rasterizes a segment onto the cell grid with Bresenham's
// algorithm. Endpoints round to the nearest cell.
func lineCells(from, to sketch.Point) []cell {
	x0, y0 := round(from.X), round(from.Y)
	x1, y1 := round(to.X), round(to.Y)

	r := lineRune(x1-x0, y1-y0)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := step(x0, x1)
	sy := step(y0, y1)
	err := dx + dy

	var out []cell
	for {
		out = append(out, cell{x: x0, y: y0, r: r})
		if x0 == x1 && y0 == y1 {
			return out
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// lineRune picks a glyph for a segment's dominant direction. Screen y grows
// downward, so a positive dx*dy slopes like a backslash.
func lineRune(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case ady == 0 || adx >= 2*ady:
		return '-'
	case adx == 0 || ady >= 2*adx:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func round(f float64) int {
	return int(math.Round(f))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func step(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}
