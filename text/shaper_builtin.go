package text

// BuiltinShaper positions one glyph per rune using the font's advance widths.
// It handles Latin, Greek, Cyrillic and the mathematical symbols found in
// ordinary text fonts, without ligatures, kerning or reordering.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s BuiltinShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	parsed := face.Source().Parsed()
	if parsed == nil {
		return nil
	}
	hinting := HintingNone
	if sf, ok := face.(*sourceFace); ok {
		hinting = sf.config.hinting
	}

	result := make([]ShapedGlyph, 0, len(text))
	var x float64
	cluster := 0
	for _, r := range text {
		gid := parsed.GlyphIndex(r)
		advance := parsed.GlyphAdvance(gid, face.Size(), hinting)

		result = append(result, ShapedGlyph{
			GID:      gid,
			Cluster:  cluster,
			X:        x,
			XAdvance: advance,
		})

		x += advance
		cluster++
	}

	return result
}
