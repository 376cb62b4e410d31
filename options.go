package mathbox

import (
	"image/color"
	"log/slog"

	"github.com/gogpu/mathbox/text"
)

// PlannerOption configures a Planner during creation.
//
// Example:
//
//	p := mathbox.NewPlanner(m,
//	    mathbox.WithScriptScale(0.6),
//	    mathbox.WithParallelism(4),
//	)
type PlannerOption func(*plannerOptions)

type plannerOptions struct {
	scriptScale float64
	parallelism int
	logger      *slog.Logger
}

func defaultPlannerOptions() plannerOptions {
	return plannerOptions{
		scriptScale: 0.7,
		parallelism: 1,
	}
}

// WithScriptScale sets the size ratio of subscripts and superscripts to
// their base. Values outside (0, 1] are ignored.
func WithScriptScale(f float64) PlannerOption {
	return func(o *plannerOptions) {
		if f > 0 && f <= 1 {
			o.scriptScale = f
		}
	}
}

// WithParallelism plans row and phantom children with at most n goroutines
// per Plan call, the calling goroutine included, however deeply rows nest.
// n <= 1 plans sequentially. The TextMeasurer must be safe for concurrent
// use.
func WithParallelism(n int) PlannerOption {
	return func(o *plannerOptions) {
		o.parallelism = max(n, 1)
	}
}

// WithLogger sets the planner's logger. By default the planner uses the
// package logger returned by Logger at the time of each call.
func WithLogger(l *slog.Logger) PlannerOption {
	return func(o *plannerOptions) {
		o.logger = l
	}
}

// RenderOption configures Render.
type RenderOption func(*renderOptions)

type renderOptions struct {
	background color.Color
	ink        color.Color
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		ink: Black,
	}
}

// WithBackground fills the surface with c before painting.
// Without it the surface starts transparent.
func WithBackground(c color.Color) RenderOption {
	return func(o *renderOptions) {
		o.background = c
	}
}

// WithInk sets the color glyphs, bars and radicals are painted in.
// The default is opaque black.
func WithInk(c color.Color) RenderOption {
	return func(o *renderOptions) {
		if c != nil {
			o.ink = c
		}
	}
}

// MeasurerOption configures a FontMeasurer.
type MeasurerOption func(*measurerOptions)

type measurerOptions struct {
	shaper      text.Shaper
	cacheSize   int
	faceOptions []text.FaceOption
}

func defaultMeasurerOptions() measurerOptions {
	return measurerOptions{
		shaper:    text.BuiltinShaper{},
		cacheSize: 512,
	}
}

// WithShaper sets the shaper used to position glyphs.
// The default is text.BuiltinShaper.
func WithShaper(s text.Shaper) MeasurerOption {
	return func(o *measurerOptions) {
		if s != nil {
			o.shaper = s
		}
	}
}

// WithCacheSize sets how many shaped runs the measurer keeps.
// Zero means unlimited.
func WithCacheSize(n int) MeasurerOption {
	return func(o *measurerOptions) {
		o.cacheSize = max(n, 0)
	}
}

// WithFaceOptions sets the options faces are created with.
func WithFaceOptions(opts ...text.FaceOption) MeasurerOption {
	return func(o *measurerOptions) {
		o.faceOptions = opts
	}
}
