package text

import "sync"

// FontParser is an interface for font parsing backends.
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// Sizes are given in pixels per em.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// FullName returns the full font name, or "" if not available.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// GlyphIndex returns the glyph index for a rune, or 0 if not found.
	GlyphIndex(r rune) GlyphID

	// GlyphAdvance returns the advance width of a glyph at the given size.
	GlyphAdvance(gid GlyphID, ppem float64, hinting Hinting) float64

	// Metrics returns the font metrics at the given size.
	Metrics(ppem float64, hinting Hinting) FontMetrics
}

// FontMetrics holds font-level metrics at a specific size.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (negative).
	Descent float64

	// LineGap is the recommended line gap between lines.
	LineGap float64
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		defaultParserName: &ximageParser{},
	}
)

// RegisterParser registers a custom font parser under name.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	parserMu.RLock()
	defer parserMu.RUnlock()
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
