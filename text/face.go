package text

// Face represents a font face at a specific size.
// This is a lightweight object created from a FontSource.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the sum of the glyph advances of text, in pixels.
	Advance(text string) float64

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels per em.
	Size() float64

	// Language returns the language tag used when shaping with this face.
	Language() string

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	parsed := f.source.Parsed()
	if parsed == nil {
		return Metrics{}
	}
	fm := parsed.Metrics(f.size, f.config.hinting)

	// FontMetrics.Descent is negative (below baseline),
	// Metrics.Descent is the positive distance.
	descent := fm.Descent
	if descent < 0 {
		descent = -descent
	}

	return Metrics{
		Ascent:  fm.Ascent,
		Descent: descent,
		LineGap: fm.LineGap,
	}
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	parsed := f.source.Parsed()
	if parsed == nil {
		return 0
	}

	total := 0.0
	for _, r := range text {
		total += parsed.GlyphAdvance(parsed.GlyphIndex(r), f.size, f.config.hinting)
	}
	return total
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	parsed := f.source.Parsed()
	return parsed != nil && parsed.GlyphIndex(r) != 0
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// Language implements Face.Language.
func (f *sourceFace) Language() string {
	return f.config.language
}

// private implements the Face interface.
func (f *sourceFace) private() {}
