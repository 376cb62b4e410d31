package mathbox

import "image"

// PaintFunc draws a planned subtree into dst with the top-left corner of its
// box at (x, y).
type PaintFunc func(dst *Surface, x, y int)

// Plan is the frozen layout of one node: its box, its baseline and a
// deferred paint operation.
//
// Baseline is the distance from the top of the box to the alignment line,
// 0 <= Baseline <= Height. Plans are values; painting never changes them and
// writes only into the target surface.
type Plan struct {
	Width    int
	Height   int
	Baseline int

	paint PaintFunc
}

// NewPlan returns a plan with the given box and paint function.
// A nil paint function paints nothing.
func NewPlan(width, height, baseline int, paint PaintFunc) Plan {
	return Plan{Width: width, Height: height, Baseline: baseline, paint: paint}
}

// Descent returns the part of the box below the baseline.
func (p Plan) Descent() int {
	return p.Height - p.Baseline
}

// Bounds returns the box placed at (x, y).
func (p Plan) Bounds(x, y int) image.Rectangle {
	return image.Rect(x, y, x+p.Width, y+p.Height)
}

// Paint draws the plan into dst with its top-left corner at (x, y).
func (p Plan) Paint(dst *Surface, x, y int) {
	if p.paint == nil || dst == nil {
		return
	}
	p.paint(dst, x, y)
}

// Paints reports whether the plan has a paint operation.
func (p Plan) Paints() bool {
	return p.paint != nil
}
