package mathbox

import (
	"math"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/mathbox/text"
)

// TextMeasurer measures a leaf's text at a font size and returns a paintable
// box for it. The baseline of the returned plan is the text's ascent line.
//
// The planner never inspects glyphs; it only positions and paints the
// returned plans. Implementations used with WithParallelism must be safe for
// concurrent use.
type TextMeasurer interface {
	MeasureText(s string, size float64) (Plan, error)
}

// MeasurerFunc adapts a function to the TextMeasurer interface.
type MeasurerFunc func(s string, size float64) (Plan, error)

// MeasureText implements TextMeasurer.
func (f MeasurerFunc) MeasureText(s string, size float64) (Plan, error) {
	return f(s, size)
}

// FontMeasurer is the default TextMeasurer. It shapes text with a font
// source and paints glyph outlines in the surface's ink color.
//
// FontMeasurer is safe for concurrent use.
type FontMeasurer struct {
	source *text.FontSource
	opts   measurerOptions
	runs   *text.Cache[text.RunKey, *text.ShapedRun]
}

// NewFontMeasurer creates a measurer for src.
// Panics if src is nil.
func NewFontMeasurer(src *text.FontSource, opts ...MeasurerOption) *FontMeasurer {
	if src == nil {
		panic("mathbox: NewFontMeasurer called with nil FontSource")
	}
	o := defaultMeasurerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &FontMeasurer{
		source: src,
		opts:   o,
		runs:   text.NewCache[text.RunKey, *text.ShapedRun](o.cacheSize),
	}
}

// MeasureText implements TextMeasurer.
//
// The text is normalized to NFC before shaping. It fails with an error
// wrapping text.ErrMissingGlyph when the font has no glyph for a non-space
// rune of s.
func (m *FontMeasurer) MeasureText(s string, size float64) (Plan, error) {
	s = norm.NFC.String(s)

	run, err := m.shape(s, size)
	if err != nil {
		return Plan{}, err
	}

	baseline := int(math.Ceil(run.Ascent))
	height := baseline + int(math.Ceil(run.Descent))
	width := int(math.Ceil(run.Advance))

	return NewPlan(width, height, baseline, func(dst *Surface, x, y int) {
		run.Draw(dst, float64(x), float64(y+baseline), dst.Ink())
	}), nil
}

// shape returns the cached run for (s, size), shaping it on a miss.
// Shaping runs outside the cache lock so concurrent planners do not queue
// behind each other; a run shaped twice is stored once.
func (m *FontMeasurer) shape(s string, size float64) (*text.ShapedRun, error) {
	key := text.RunKey{Text: s, Size: size}
	if run, ok := m.runs.Get(key); ok {
		return run, nil
	}
	run, err := text.ShapeRun(s, m.source.Face(size, m.opts.faceOptions...), m.opts.shaper)
	if err != nil {
		return nil, err
	}
	m.runs.Set(key, run)
	return run, nil
}

// Source returns the font source the measurer shapes with.
func (m *FontMeasurer) Source() *text.FontSource {
	return m.source
}

// CachedRuns returns the number of shaped runs currently cached.
func (m *FontMeasurer) CachedRuns() int {
	return m.runs.Len()
}
