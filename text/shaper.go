package text

// Shaper converts text to positioned glyphs.
// Implementations provide different levels of text shaping support:
//   - BuiltinShaper: one glyph per rune, positioned by advance widths
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting
//
// Implementations must be safe for concurrent use.
type Shaper interface {
	// Shape converts text into glyphs positioned left to right on the baseline.
	// The font size is obtained from face.Size().
	Shape(text string, face Face) []ShapedGlyph
}
