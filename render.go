package mathbox

import (
	"fmt"
	"log/slog"
)

// Render allocates a surface of exactly the plan's size and paints the plan
// into it at the origin.
//
// It fails with ErrInvalidSize when the plan has a zero or oversized box,
// as an empty Row does. Sizes are never clamped.
func Render(plan Plan, opts ...RenderOption) (*Surface, error) {
	return render(plan, Logger(), opts)
}

// Render plans node at size and renders the result.
func (p *Planner) Render(node Node, size float64, opts ...RenderOption) (*Surface, error) {
	plan, err := p.Plan(node, size)
	if err != nil {
		return nil, err
	}
	return render(plan, p.logger(), opts)
}

func render(plan Plan, log *slog.Logger, opts []RenderOption) (*Surface, error) {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dst, err := NewSurface(plan.Width, plan.Height)
	if err != nil {
		return nil, fmt.Errorf("mathbox: render: %w", err)
	}
	if o.background != nil {
		dst.Fill(o.background)
	}
	dst.SetInk(o.ink)

	plan.Paint(dst, 0, 0)

	log.Debug("render: painted surface",
		"width", plan.Width,
		"height", plan.Height,
		"baseline", plan.Baseline)
	return dst, nil
}
