package mathbox

import "testing"

func TestRadicalSignShape(t *testing.T) {
	const width, height, hook, lw = 110, 112, 50, 4
	pts := radicalSign(width, height, hook, lw)

	if len(pts) != 5 {
		t.Fatalf("len = %d, want 5", len(pts))
	}
	for i, p := range pts {
		if p.X < 0 || p.X > width || p.Y < 0 || p.Y > height {
			t.Errorf("point %d %v outside %dx%d box", i, p, width, height)
		}
	}
	// Tick rises, then falls to the bottom, climbs to the top and runs right.
	if !(pts[1].Y < pts[0].Y) {
		t.Errorf("tick does not rise: %v -> %v", pts[0], pts[1])
	}
	if !(pts[2].Y > pts[1].Y) || pts[2].Y != height-lw/2 {
		t.Errorf("stroke does not fall to the bottom: %v", pts[2])
	}
	if pts[3].X != hook || pts[3].Y != lw/2 {
		t.Errorf("peak = %v, want (%d, %d)", pts[3], hook, lw/2)
	}
	if pts[4].Y != pts[3].Y || pts[4].X != width-lw/2 {
		t.Errorf("bar end = %v", pts[4])
	}
}

func TestTranslate(t *testing.T) {
	pts := []Point{Pt(1, 2), Pt(3, 4)}
	got := translate(pts, 10, 20)
	if got[0] != Pt(11, 22) || got[1] != Pt(13, 24) {
		t.Errorf("translate = %v", got)
	}
	if pts[0] != Pt(1, 2) {
		t.Error("translate modified its input")
	}
}
