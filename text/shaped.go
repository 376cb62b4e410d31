package text

// ShapedGlyph represents a positioned glyph produced by a Shaper.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the source character index in the original text.
	Cluster int

	// X is the horizontal position relative to the run origin.
	X float64

	// Y is the vertical offset relative to the baseline (down is positive).
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}
