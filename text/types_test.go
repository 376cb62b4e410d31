package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestRect(t *testing.T) {
	r := Rect{MinX: 1, MinY: -8, MaxX: 5, MaxY: 2}
	if r.Width() != 4 || r.Height() != 10 {
		t.Errorf("size = %vx%v, want 4x10", r.Width(), r.Height())
	}
	if r.Empty() {
		t.Error("non-empty rect reported empty")
	}
	if !(Rect{MinX: 3, MaxX: 3, MaxY: 1}).Empty() {
		t.Error("zero-width rect not empty")
	}
}

// stubParser wraps the built-in parser so fonts parse but do not expose
// outlines.
type stubParser struct{}

type stubFont struct{ ParsedFont }

func (stubParser) Parse(data []byte) (ParsedFont, error) {
	f, err := (&ximageParser{}).Parse(data)
	if err != nil {
		return nil, err
	}
	return stubFont{f}, nil
}

func TestRegisterParser(t *testing.T) {
	RegisterParser("stub", stubParser{})

	source, err := NewFontSource(goregular.TTF, WithParser("stub"))
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	defer source.Close()

	if _, ok := source.Parsed().(stubFont); !ok {
		t.Fatalf("Parsed() = %T, want stubFont", source.Parsed())
	}
	if source.Face(12).Advance("x") <= 0 {
		t.Error("stub parser font has no advance")
	}
	if _, err := source.Outline(1, 12); !errors.Is(err, ErrUnsupportedFontType) {
		t.Errorf("Outline error = %v, want ErrUnsupportedFontType", err)
	}
}

func TestUnknownParserFallsBack(t *testing.T) {
	source, err := NewFontSource(goregular.TTF, WithParser("does-not-exist"))
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	defer source.Close()

	if _, ok := source.Parsed().(*ximageParsedFont); !ok {
		t.Errorf("Parsed() = %T, want the default parser's font", source.Parsed())
	}
}

func TestParsedFontBasics(t *testing.T) {
	source := newGoRegular(t)
	parsed := source.Parsed()

	if parsed.NumGlyphs() < 100 {
		t.Errorf("NumGlyphs = %d", parsed.NumGlyphs())
	}
	if parsed.GlyphIndex('世') != 0 {
		t.Error("GlyphIndex of a missing rune is not 0")
	}
	fm := parsed.Metrics(20, HintingNone)
	if fm.Ascent <= 0 || fm.Descent >= 0 {
		t.Errorf("FontMetrics = %+v, want positive ascent and negative descent", fm)
	}
}
