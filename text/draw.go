package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Draw renders the run to dst with its baseline origin at (x, y).
// Glyph outlines are filled with col using anti-aliased coverage and
// composited with draw.Over. Glyphs outside dst are clipped.
func (r *ShapedRun) Draw(dst draw.Image, x, y float64, col color.Color) {
	if r == nil || r.Face == nil || len(r.Glyphs) == 0 {
		return
	}
	source := r.Face.Source()
	size := r.Face.Size()
	src := image.NewUniform(col)

	for _, g := range r.Glyphs {
		outline, err := source.Outline(g.GID, size)
		if err != nil || outline.IsEmpty() {
			continue
		}
		drawOutline(dst, outline.Translate(float32(x+g.X), float32(y+g.Y)), src)
	}
}

// drawOutline fills an outline already positioned in dst coordinates.
func drawOutline(dst draw.Image, o *GlyphOutline, src image.Image) {
	bounds := image.Rect(
		int(math.Floor(o.Bounds.MinX)),
		int(math.Floor(o.Bounds.MinY)),
		int(math.Ceil(o.Bounds.MaxX)),
		int(math.Ceil(o.Bounds.MaxY)),
	).Intersect(dst.Bounds())
	if bounds.Empty() {
		return
	}

	ox, oy := float32(bounds.Min.X), float32(bounds.Min.Y)
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Over

	open := false
	for _, seg := range o.Segments {
		p := seg.Points
		switch seg.Op {
		case OutlineOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(p[0].X-ox, p[0].Y-oy)
			open = true
		case OutlineOpLineTo:
			z.LineTo(p[0].X-ox, p[0].Y-oy)
		case OutlineOpQuadTo:
			z.QuadTo(p[0].X-ox, p[0].Y-oy, p[1].X-ox, p[1].Y-oy)
		case OutlineOpCubicTo:
			z.CubeTo(p[0].X-ox, p[0].Y-oy, p[1].X-ox, p[1].Y-oy, p[2].X-ox, p[2].Y-oy)
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(dst, bounds, src, image.Point{})
}
