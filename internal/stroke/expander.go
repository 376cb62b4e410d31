// Package stroke converts stroked polylines into closed fill polygons.
//
// A stroke is expanded into a single outline:
//   - The forward offset path (+width/2 along the normal) goes forward
//   - The end cap connects forward to backward
//   - The backward offset path (-width/2) is appended in reverse
//   - The start cap closes the outline
//
// Only straight segments are supported. Joins are miter (bounded by the
// miter limit, falling back to bevel) or bevel; caps are butt or square.
package stroke

import "math"

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

// Add returns the point translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the difference between two points as a vector.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// LineCap specifies the shape of polyline endpoints.
type LineCap int

const (
	// LineCapButt ends the stroke exactly at the endpoint.
	LineCapButt LineCap = iota
	// LineCapSquare extends the stroke by width/2 beyond the endpoint.
	LineCapSquare
)

// LineJoin specifies how consecutive segments connect.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges to a sharp corner.
	LineJoinMiter LineJoin = iota
	// LineJoinBevel cuts the corner with a straight edge.
	LineJoinBevel
)

// Style defines the stroke parameters.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStyle returns a one pixel wide miter-joined butt-capped stroke.
func DefaultStyle() Style {
	return Style{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// Expand converts a polyline into a closed polygon covering its stroke.
// Consecutive duplicate points are skipped. The result is empty when the
// polyline has fewer than two distinct points or the width is not positive.
func Expand(points []Point, style Style) []Point {
	if style.Width <= 0 {
		return nil
	}
	pts := dedupe(points)
	if len(pts) < 2 {
		return nil
	}

	e := expander{style: style}
	for i := 1; i < len(pts); i++ {
		tangent := pts[i].Sub(pts[i-1])
		norm := e.normal(tangent)
		if i == 1 {
			e.forward = append(e.forward, pts[0].Add(norm.Neg()))
			e.backward = append(e.backward, pts[0].Add(norm))
			e.startNorm = norm
		} else {
			e.join(pts[i-1], e.lastTan, tangent)
		}
		e.forward = append(e.forward, pts[i].Add(norm.Neg()))
		e.backward = append(e.backward, pts[i].Add(norm))
		e.lastTan = tangent
		e.lastNorm = norm
	}

	return e.finish(pts[0], pts[len(pts)-1])
}

// expander holds the offset paths while a polyline is expanded.
type expander struct {
	style Style

	forward  []Point
	backward []Point

	startNorm Vec2
	lastTan   Vec2
	lastNorm  Vec2
}

// normal returns the tangent's perpendicular scaled to half the stroke width.
func (e *expander) normal(tangent Vec2) Vec2 {
	return tangent.Perp().Scale(0.5 * e.style.Width / tangent.Length())
}

// join connects the segment ending at p0 (tangent ab) to the next one (cd).
func (e *expander) join(p0 Point, ab, cd Vec2) {
	norm := e.normal(cd)
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	// Collinear continuation needs no corner.
	if dot > 0 && math.Abs(cross) < hypot*1e-9 {
		e.forward = append(e.forward, p0.Add(norm.Neg()))
		e.backward = append(e.backward, p0.Add(norm))
		return
	}

	if e.style.Join == LineJoinMiter {
		limitSq := e.style.MiterLimit * e.style.MiterLimit
		if 2*hypot < (hypot+dot)*limitSq {
			e.miter(p0, norm, ab, cd, cross)
		}
	}
	e.forward = append(e.forward, p0.Add(norm.Neg()))
	e.backward = append(e.backward, p0.Add(norm))
}

// miter appends the intersection of the outer offset edges.
func (e *expander) miter(p0 Point, norm, ab, cd Vec2, cross float64) {
	lastNorm := e.normal(ab)

	if cross > 0 {
		last := p0.Add(lastNorm.Neg())
		this := p0.Add(norm.Neg())
		h := ab.Cross(this.Sub(last)) / cross
		e.forward = append(e.forward, this.Add(cd.Scale(-h)))
		e.backward = append(e.backward, p0)
	} else if cross < 0 {
		last := p0.Add(lastNorm)
		this := p0.Add(norm)
		h := ab.Cross(this.Sub(last)) / cross
		e.backward = append(e.backward, this.Add(cd.Scale(-h)))
		e.forward = append(e.forward, p0)
	}
}

// finish stitches the offset paths and caps into the outline.
func (e *expander) finish(start, end Point) []Point {
	out := make([]Point, 0, len(e.forward)+len(e.backward)+4)
	out = append(out, e.forward...)
	if e.style.Cap == LineCapSquare {
		out = append(out, squareCap(end, e.lastNorm.Neg())...)
	}
	for i := len(e.backward) - 1; i >= 0; i-- {
		out = append(out, e.backward[i])
	}
	if e.style.Cap == LineCapSquare {
		out = append(out, squareCap(start, e.startNorm)...)
	}
	return out
}

// squareCap returns the two outer corners of a square cap at center.
// side is the offset of the outline side the cap starts from.
func squareCap(center Point, side Vec2) []Point {
	ext := side.Perp()
	return []Point{
		center.Add(Vec2{X: side.X + ext.X, Y: side.Y + ext.Y}),
		center.Add(Vec2{X: -side.X + ext.X, Y: -side.Y + ext.Y}),
	}
}

// dedupe drops consecutive duplicate points.
func dedupe(points []Point) []Point {
	out := make([]Point, 0, len(points))
	for i, p := range points {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}
