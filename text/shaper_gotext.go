package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It applies kerning, ligatures and mark positioning from the font's
// OpenType tables.
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font objects
// (which are read-only) and creates a font.Face per Shape call, since
// font.Face is not safe for concurrent use. HarfbuzzShaper instances are
// pooled for the same reason.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a new GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface. It returns nil when the source font
// data cannot be parsed by go-text.
func (s *GoTextShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	source := face.Source()
	if source == nil {
		return nil
	}

	goTextFont, err := s.getOrCreateFont(source)
	if err != nil {
		return nil
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(goTextFont),
		Size:      floatToFixed(face.Size()),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(face.Language()),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return convertGlyphs(output.Glyphs)
}

// getOrCreateFont returns a cached go-text font.Font for the given source,
// parsing the source data on first use.
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	data := source.Data()
	if data == nil {
		return nil, ErrClosed
	}
	goTextFace, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	s.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// RemoveSource drops the cached parsed font for source.
// Call it when a FontSource is closed.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

// detectScript returns the script of the first letter in runes, skipping
// spaces, digits and common punctuation.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		script := language.LookupScript(r)
		if script != language.Common && script != language.Inherited {
			return script
		}
	}
	return language.Latin
}

// convertGlyphs converts go-text output glyphs to ShapedGlyphs.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))
	var x float64
	for i, g := range glyphs {
		adv := fixedToFloat(g.Advance)
		// go-text offsets point up; ShapedGlyph.Y points down.
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph IDs of sfnt fonts fit in 16 bits
			Cluster:  g.TextIndex(),
			X:        x + fixedToFloat(g.XOffset),
			Y:        -fixedToFloat(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}
	return result
}
