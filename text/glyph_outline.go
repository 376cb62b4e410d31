package text

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlinePoint represents a point in a glyph outline, in pixels relative to
// the glyph origin. Y points down.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// GlyphOutline represents the vector outline of a glyph at a fixed size.
// The outline consists of zero or more closed contours; whitespace glyphs
// have none.
type GlyphOutline struct {
	Segments []OutlineSegment

	// Bounds is the bounding box of all segment points.
	Bounds Rect

	GID GlyphID
}

// IsEmpty reports whether the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// Translate returns a copy of the outline moved by (dx, dy).
func (o *GlyphOutline) Translate(dx, dy float32) *GlyphOutline {
	if o == nil {
		return nil
	}
	out := &GlyphOutline{
		Segments: make([]OutlineSegment, len(o.Segments)),
		Bounds: Rect{
			MinX: o.Bounds.MinX + float64(dx),
			MinY: o.Bounds.MinY + float64(dy),
			MaxX: o.Bounds.MaxX + float64(dx),
			MaxY: o.Bounds.MaxY + float64(dy),
		},
		GID: o.GID,
	}
	for i, seg := range o.Segments {
		for j := range seg.Points {
			seg.Points[j].X += dx
			seg.Points[j].Y += dy
		}
		out.Segments[i] = seg
	}
	return out
}

// OutlineExtractor loads glyph outlines from a single parsed font and
// caches them per glyph and size.
//
// OutlineExtractor is safe for concurrent use.
type OutlineExtractor struct {
	cache *Cache[GlyphKey, *GlyphOutline]
}

// NewOutlineExtractor creates an extractor caching up to cacheSize outlines.
// A cacheSize of 0 means unlimited.
func NewOutlineExtractor(cacheSize int) *OutlineExtractor {
	return &OutlineExtractor{cache: NewCache[GlyphKey, *GlyphOutline](cacheSize)}
}

// ExtractOutline returns the outline of gid at the given pixel size.
// Only fonts parsed by the built-in parser expose outlines; other fonts
// return ErrUnsupportedFontType.
func (e *OutlineExtractor) ExtractOutline(font ParsedFont, gid GlyphID, size float64) (*GlyphOutline, error) {
	sf, ok := font.(*ximageParsedFont)
	if !ok {
		return nil, ErrUnsupportedFontType
	}
	return e.cache.GetOrCreate(GlyphKey{GID: gid, Size: size}, func() (*GlyphOutline, error) {
		segs, err := sf.loadGlyph(gid, size)
		if err != nil {
			return nil, err
		}
		return segmentsToOutline(gid, segs), nil
	})
}

func segmentsToOutline(gid GlyphID, segs sfnt.Segments) *GlyphOutline {
	out := &GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(segs)),
		GID:      gid,
	}
	first := true
	for _, s := range segs {
		var seg OutlineSegment
		n := 0
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			seg.Op, n = OutlineOpMoveTo, 1
		case sfnt.SegmentOpLineTo:
			seg.Op, n = OutlineOpLineTo, 1
		case sfnt.SegmentOpQuadTo:
			seg.Op, n = OutlineOpQuadTo, 2
		case sfnt.SegmentOpCubeTo:
			seg.Op, n = OutlineOpCubicTo, 3
		}
		for i := 0; i < n; i++ {
			p := fixedPointToOutline(s.Args[i])
			seg.Points[i] = p
			if first {
				out.Bounds = Rect{MinX: float64(p.X), MinY: float64(p.Y), MaxX: float64(p.X), MaxY: float64(p.Y)}
				first = false
				continue
			}
			updateBounds(p, &out.Bounds)
		}
		out.Segments = append(out.Segments, seg)
	}
	return out
}

func fixedPointToOutline(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: float32(p.X) / 64,
		Y: float32(p.Y) / 64,
	}
}

func updateBounds(p OutlinePoint, r *Rect) {
	r.MinX = min(r.MinX, float64(p.X))
	r.MinY = min(r.MinY, float64(p.Y))
	r.MaxX = max(r.MaxX, float64(p.X))
	r.MaxY = max(r.MaxY, float64(p.Y))
}
