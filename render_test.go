package mathbox

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"strings"
	"testing"
)

func TestRenderSize(t *testing.T) {
	p := NewPlanner(fixedMeasurer())
	plan := mustPlan(t, p, NewFraction(Num("1"), Num("2")), 100)

	s, err := Render(plan)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if s.Width() != plan.Width || s.Height() != plan.Height {
		t.Errorf("surface %dx%d, want %dx%d", s.Width(), s.Height(), plan.Width, plan.Height)
	}
}

func TestRenderInvalidSize(t *testing.T) {
	p := NewPlanner(fixedMeasurer())

	tests := []struct {
		name string
		plan Plan
	}{
		{"empty row", mustPlan(t, p, NewRow(), 12)},
		{"empty text", mustPlan(t, p, Txt(""), 12)},
		{"negative", NewPlan(-1, 10, 5, nil)},
		{"oversized", NewPlan(MaxSurfaceSize+1, 10, 5, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Render(tt.plan); !errors.Is(err, ErrInvalidSize) {
				t.Errorf("Render error = %v, want ErrInvalidSize", err)
			}
		})
	}
}

func TestRenderBackgroundAndInk(t *testing.T) {
	p := NewPlanner(fixedMeasurer())
	red := color.RGBA{R: 255, A: 255}

	// x is 50 wide; the operator's leaf starts after 10px of padding.
	s, err := p.Render(NewRow(Ident("x"), Op("+")), 100, WithBackground(White), WithInk(red))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	white := color.RGBA{255, 255, 255, 255}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{10, 50, red},
		{55, 50, white},
		{65, 50, red},
		{115, 50, white},
	}
	for _, tt := range tests {
		if got := s.Image().RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderFractionBar(t *testing.T) {
	p := NewPlanner(MeasurerFunc(func(s string, size float64) (Plan, error) {
		// Leaves without ink isolate the bar.
		return NewPlan(30, 40, 30, nil), nil
	}))

	s, err := p.Render(NewFraction(Num("1"), Num("2")), 100)
	if err != nil {
		t.Fatal(err)
	}
	// th = 40, lw = 4: bar covers rows 40..43.
	for x := 0; x < s.Width(); x++ {
		for y := 0; y < s.Height(); y++ {
			onBar := y >= 40 && y < 44
			inked := s.Image().RGBAAt(x, y).A != 0
			if onBar != inked {
				t.Fatalf("pixel (%d, %d) inked = %v, want %v", x, y, inked, onBar)
			}
		}
	}
}

func TestRenderRadical(t *testing.T) {
	p := NewPlanner(MeasurerFunc(func(s string, size float64) (Plan, error) {
		return NewPlan(60, 100, 80, nil), nil
	}))

	s, err := p.Render(NewSqrt(Ident("x")), 100)
	if err != nil {
		t.Fatal(err)
	}
	img := s.Image()

	// The bar runs over the radicand in the top stroke width.
	for x := 60; x < s.Width()-2; x += 7 {
		if img.RGBAAt(x, 1).A == 0 {
			t.Errorf("bar pixel (%d, 1) not inked", x)
		}
	}
	// The radicand area below the bar stays clear.
	for y := 8; y < s.Height(); y += 9 {
		if img.RGBAAt(80, y).A != 0 {
			t.Errorf("radicand pixel (80, %d) inked", y)
		}
	}
	// The sign reaches down to the bottom of the hook area.
	bottom := false
	for x := 0; x < 50; x++ {
		if img.RGBAAt(x, s.Height()-2).A != 0 {
			bottom = true
		}
	}
	if !bottom {
		t.Error("radical sign does not reach the bottom of the box")
	}
}

func TestRenderPhantomLeavesNoInk(t *testing.T) {
	p := NewPlanner(fixedMeasurer())

	s, err := p.Render(NewPhantom(Ident("x"), Op("+"), NewSqrt(NewFraction(Num("1"), Num("2")))), 60)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := s.Coverage(Transparent); got != 0 {
		t.Errorf("phantom coverage = %v, want 0", got)
	}

	bg, err := p.Render(NewPhantom(Ident("x")), 60, WithBackground(White))
	if err != nil {
		t.Fatal(err)
	}
	if got := bg.Coverage(White); got != 0 {
		t.Errorf("phantom coverage over white = %v, want 0", got)
	}
}

func TestRenderIdempotent(t *testing.T) {
	p := NewPlanner(fixedMeasurer())
	plan := mustPlan(t, p, NewRow(Ident("x"), Op("="), NewSqrt(NewFraction(Num("1"), Num("2")))), 50)

	a := newTestSurface(t, plan.Width, plan.Height)
	b := newTestSurface(t, plan.Width, plan.Height)
	plan.Paint(a, 0, 0)
	plan.Paint(a, 0, 0)
	plan.Paint(b, 0, 0)
	plan.Paint(b, 0, 0)

	if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
		t.Error("painting twice gave different pixels on identical surfaces")
	}
}

func TestPaintNilSafe(t *testing.T) {
	var plan Plan
	plan.Paint(nil, 0, 0)
	plan.Paint(newTestSurface(t, 1, 1), 0, 0)

	p := NewPlan(1, 1, 1, func(*Surface, int, int) { t.Error("paint called with nil surface") })
	p.Paint(nil, 0, 0)
}

func TestPlanBounds(t *testing.T) {
	p := NewPlan(10, 20, 15, nil)
	if got := p.Bounds(3, 4); got.Min.X != 3 || got.Min.Y != 4 || got.Dx() != 10 || got.Dy() != 20 {
		t.Errorf("Bounds = %v", got)
	}
	if p.Descent() != 5 {
		t.Errorf("Descent = %d, want 5", p.Descent())
	}
}

func TestPlannerRenderLogs(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	p := NewPlanner(fixedMeasurer(), WithLogger(l))
	if _, err := p.Render(Ident("x"), 20); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("render logged above debug level: %s", buf.String())
	}

	buf.Reset()
	l = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p = NewPlanner(fixedMeasurer(), WithLogger(l))
	if _, err := p.Render(Ident("x"), 20); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "render: painted surface") {
		t.Errorf("missing render record: %s", buf.String())
	}
}
