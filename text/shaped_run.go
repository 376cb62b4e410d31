package text

import "unicode"

// ShapedRun is a sequence of shaped glyphs sharing one face, positioned on a
// single baseline.
type ShapedRun struct {
	// Glyphs is the sequence of positioned glyphs.
	Glyphs []ShapedGlyph

	// Advance is the total advance of all glyphs.
	Advance float64

	// Ascent is the font ascent above the baseline.
	Ascent float64

	// Descent is the font descent below the baseline (positive value).
	Descent float64

	// Face is the font face used for this run.
	Face Face
}

// ShapeRun shapes s with face and returns the resulting run.
// A nil shaper selects BuiltinShaper.
//
// Every non-space rune of s must have a glyph in the face, otherwise a
// *GlyphError is returned. When the shaper produces no glyphs for a
// non-empty string (e.g. it cannot parse the font), ShapeRun falls back to
// BuiltinShaper.
func ShapeRun(s string, face Face, shaper Shaper) (*ShapedRun, error) {
	if face == nil {
		return nil, ErrClosed
	}
	if face.Source().Parsed() == nil {
		return nil, ErrClosed
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if !face.HasGlyph(r) {
			return nil, &GlyphError{Rune: r, Font: face.Source().Name()}
		}
	}

	if shaper == nil {
		shaper = BuiltinShaper{}
	}
	glyphs := shaper.Shape(s, face)
	if len(glyphs) == 0 && s != "" {
		glyphs = BuiltinShaper{}.Shape(s, face)
	}

	m := face.Metrics()
	run := &ShapedRun{
		Glyphs:  glyphs,
		Ascent:  m.Ascent,
		Descent: m.Descent,
		Face:    face,
	}
	for _, g := range glyphs {
		run.Advance += g.XAdvance
	}
	return run, nil
}

// Width returns the total width of the run.
func (r *ShapedRun) Width() float64 {
	return r.Advance
}

// Height returns the ascent plus descent of the run.
func (r *ShapedRun) Height() float64 {
	return r.Ascent + r.Descent
}
