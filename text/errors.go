package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrMissingGlyph is returned when a font has no glyph for a rune.
	ErrMissingGlyph = errors.New("text: missing glyph")

	// ErrUnsupportedFontType is returned when a ParsedFont is not backed by sfnt.
	ErrUnsupportedFontType = errors.New("text: unsupported font type")

	// ErrClosed is returned when a closed FontSource is used.
	ErrClosed = errors.New("text: font source closed")
)

// GlyphError reports the rune a face could not map to a glyph.
type GlyphError struct {
	Rune rune
	Font string
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("text: font %q has no glyph for %q (U+%04X)", e.Font, e.Rune, e.Rune)
}

// Unwrap returns ErrMissingGlyph.
func (e *GlyphError) Unwrap() error {
	return ErrMissingGlyph
}
