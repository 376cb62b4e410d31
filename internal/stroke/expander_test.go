package stroke

import (
	"math"
	"testing"
)

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.Width != 1.0 || s.Cap != LineCapButt || s.Join != LineJoinMiter || s.MiterLimit != 4.0 {
		t.Errorf("DefaultStyle() = %+v", s)
	}
}

func TestExpand_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		width  float64
	}{
		{"empty", nil, 2},
		{"single point", []Point{{1, 1}}, 2},
		{"duplicate points", []Point{{1, 1}, {1, 1}, {1, 1}}, 2},
		{"zero width", []Point{{0, 0}, {10, 0}}, 0},
		{"negative width", []Point{{0, 0}, {10, 0}}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := DefaultStyle()
			style.Width = tt.width
			if got := Expand(tt.points, style); len(got) != 0 {
				t.Errorf("Expand() = %v, want empty", got)
			}
		})
	}
}

func TestExpand_SimpleLine(t *testing.T) {
	style := Style{Width: 2.0, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: 4.0}
	got := Expand([]Point{{0, 0}, {10, 0}}, style)

	want := []Point{{0, -1}, {10, -1}, {10, 1}, {0, 1}}
	assertPoints(t, got, want)
}

func TestExpand_SquareCap(t *testing.T) {
	style := Style{Width: 2.0, Cap: LineCapSquare, Join: LineJoinMiter, MiterLimit: 4.0}
	got := Expand([]Point{{0, 0}, {10, 0}}, style)

	want := []Point{
		{0, -1}, {10, -1},
		{11, -1}, {11, 1},
		{10, 1}, {0, 1},
		{-1, 1}, {-1, -1},
	}
	assertPoints(t, got, want)
}

func TestExpand_MiterJoin(t *testing.T) {
	style := Style{Width: 2.0, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: 4.0}
	got := Expand([]Point{{0, 0}, {10, 0}, {10, 10}}, style)

	if !containsPoint(got, Point{11, -1}) {
		t.Errorf("expected miter corner (11,-1) in outline %v", got)
	}
	if math.Abs(polygonArea(got)) < 19 {
		t.Errorf("outline area = %v, want about 20", polygonArea(got))
	}
}

func TestExpand_BevelJoin(t *testing.T) {
	style := Style{Width: 2.0, Cap: LineCapButt, Join: LineJoinBevel, MiterLimit: 4.0}
	got := Expand([]Point{{0, 0}, {10, 0}, {10, 10}}, style)

	if containsPoint(got, Point{11, -1}) {
		t.Errorf("bevel join should not produce the miter corner: %v", got)
	}
}

func TestExpand_MiterLimitFallsBackToBevel(t *testing.T) {
	style := Style{Width: 2.0, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: 1.0}
	sharp := Expand([]Point{{0, 0}, {10, 0}, {0, 1}}, style)
	bevel := Expand([]Point{{0, 0}, {10, 0}, {0, 1}}, Style{Width: 2.0, Join: LineJoinBevel})

	if len(sharp) != len(bevel) {
		t.Errorf("sharp miter beyond the limit should bevel: got %d points, want %d", len(sharp), len(bevel))
	}
}

func TestExpand_CollinearSegments(t *testing.T) {
	style := Style{Width: 2.0, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: 4.0}
	got := Expand([]Point{{0, 0}, {5, 0}, {10, 0}}, style)

	if area := math.Abs(polygonArea(got)); math.Abs(area-20) > 1e-9 {
		t.Errorf("outline area = %v, want 20", area)
	}
}

func assertPoints(t *testing.T, got, want []Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points %v, want %d points %v", len(got), got, len(want), want)
	}
	for i := range want {
		if math.Abs(got[i].X-want[i].X) > 1e-9 || math.Abs(got[i].Y-want[i].Y) > 1e-9 {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func containsPoint(pts []Point, p Point) bool {
	for _, q := range pts {
		if math.Abs(q.X-p.X) < 1e-9 && math.Abs(q.Y-p.Y) < 1e-9 {
			return true
		}
	}
	return false
}

// polygonArea returns the signed shoelace area.
func polygonArea(pts []Point) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}
