package sketch

import "fmt"

// Point is a position in drawing space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String returns a compact representation for logs and errors.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
