package mathbox

import "github.com/gogpu/mathbox/internal/stroke"

// Point represents a 2D point in surface pixel coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// toStroke converts points to the stroke package representation.
func toStroke(pts []Point) []stroke.Point {
	out := make([]stroke.Point, len(pts))
	for i, p := range pts {
		out[i] = stroke.Point{X: p.X, Y: p.Y}
	}
	return out
}

// fromStroke converts stroke package points back to Points.
func fromStroke(pts []stroke.Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}
