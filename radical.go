package mathbox

// radicalSign returns the polyline of a radical sign inside a width x height
// box whose left hook is hook pixels wide, for a stroke of width lw.
//
// The sign starts with a short tick rising from the lower left, falls to the
// bottom of the box, climbs to the top-left corner of the radicand and runs
// as a bar over it. The bar's centre line sits lw/2 below the top so the
// stroke stays inside the box. The end points are inset by lw/2 because
// strokes are square capped.
func radicalSign(width, height, hook, lw int) []Point {
	w, h, r, l := float64(width), float64(height), float64(hook), float64(lw)
	return []Point{
		{X: min(l/2, r/8), Y: h * 5 / 8},
		{X: r / 4, Y: h / 2},
		{X: r / 2, Y: h - l/2},
		{X: r, Y: l / 2},
		{X: max(r, w-l/2), Y: l / 2},
	}
}

// translate returns pts moved by (x, y).
func translate(pts []Point, x, y int) []Point {
	d := Pt(float64(x), float64(y))
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(d)
	}
	return out
}
