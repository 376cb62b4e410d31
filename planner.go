package mathbox

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Planner computes rendering plans for notation trees.
//
// A Planner holds no per-plan state and is safe for concurrent use when its
// TextMeasurer is.
type Planner struct {
	measurer TextMeasurer
	opts     plannerOptions

	// workers bounds the goroutines of one Plan call beyond the caller's.
	// Set only on the per-call copy made by Plan.
	workers *semaphore.Weighted
}

// NewPlanner creates a planner measuring leaves with m.
// Panics if m is nil.
func NewPlanner(m TextMeasurer, opts ...PlannerOption) *Planner {
	if m == nil {
		panic("mathbox: NewPlanner called with nil TextMeasurer")
	}
	o := defaultPlannerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Planner{measurer: m, opts: o}
}

// Plan lays out node at the given font size in pixels.
//
// It fails with ErrInvalidFontSize when size is not positive and finite,
// with ErrNilNode when the tree contains a nil node, and with a
// *MeasureError when the measurer rejects a leaf. An empty Row yields a
// zero-sized plan, which Render rejects.
func (p *Planner) Plan(node Node, size float64) (Plan, error) {
	if !(size > 0) || math.IsInf(size, 1) {
		return Plan{}, fmt.Errorf("%w: %v", ErrInvalidFontSize, size)
	}

	pass := *p
	if p.opts.parallelism > 1 {
		pass.workers = semaphore.NewWeighted(int64(p.opts.parallelism - 1))
	}
	plan, err := pass.plan(node, size)
	if err != nil {
		return Plan{}, err
	}

	if log := p.logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("planner: planned",
			"node", node.String(),
			"nodes", Count(node),
			"size", size,
			"width", plan.Width,
			"height", plan.Height,
			"baseline", plan.Baseline)
	}
	return plan, nil
}

func (p *Planner) logger() *slog.Logger {
	if p.opts.logger != nil {
		return p.opts.logger
	}
	return Logger()
}

func (p *Planner) plan(node Node, size float64) (Plan, error) {
	switch n := node.(type) {
	case *Leaf:
		if n == nil {
			return Plan{}, ErrNilNode
		}
		return p.planLeaf(n, size)
	case *Row:
		if n == nil {
			return Plan{}, ErrNilNode
		}
		return p.planRow(n.Children, size, true)
	case *Phantom:
		if n == nil {
			return Plan{}, ErrNilNode
		}
		return p.planRow(n.Children, size, false)
	case *Sub:
		if n == nil {
			return Plan{}, ErrNilNode
		}
		return p.planSub(n, size)
	case *Sup:
		if n == nil {
			return Plan{}, ErrNilNode
		}
		return p.planSup(n, size)
	case *Fraction:
		if n == nil {
			return Plan{}, ErrNilNode
		}
		return p.planFraction(n, size)
	case *Root:
		if n == nil {
			return Plan{}, ErrNilNode
		}
		return p.planRoot(n, size)
	case nil:
		return Plan{}, ErrNilNode
	default:
		return Plan{}, fmt.Errorf("mathbox: unsupported node %T", node)
	}
}

// lineWidth returns the thickness of fraction bars and radical strokes.
func lineWidth(size float64) int {
	return int(math.Ceil(size / 25))
}

// operatorPadding returns the space reserved on each side of an operator.
func operatorPadding(size float64) int {
	return int(math.Floor(size / 10))
}

func (p *Planner) scriptSize(size float64) float64 {
	return size * p.opts.scriptScale
}

func (p *Planner) planLeaf(n *Leaf, size float64) (Plan, error) {
	leaf, err := p.measurer.MeasureText(n.Text, size)
	if err != nil {
		return Plan{}, &MeasureError{Text: n.Text, Size: size, Err: err}
	}
	if n.Kind() != KindOperator {
		return leaf, nil
	}

	pad := operatorPadding(size)
	return NewPlan(leaf.Width+2*pad, leaf.Height, leaf.Baseline, func(dst *Surface, x, y int) {
		leaf.Paint(dst, x+pad, y)
	}), nil
}

// planRow lays children out left to right on the deepest child baseline.
// Phantoms share the box computation but do not paint.
func (p *Planner) planRow(children []Node, size float64, visible bool) (Plan, error) {
	plans, err := p.planChildren(children, size)
	if err != nil {
		return Plan{}, err
	}

	var width, baseline, below int
	for _, c := range plans {
		width += c.Width
		baseline = max(baseline, c.Baseline)
		below = max(below, c.Descent())
	}
	if !visible {
		return NewPlan(width, baseline+below, baseline, nil), nil
	}

	return NewPlan(width, baseline+below, baseline, func(dst *Surface, x, y int) {
		for _, c := range plans {
			c.Paint(dst, x, y+baseline-c.Baseline)
			x += c.Width
		}
	}), nil
}

// planChildren plans children in order, handing children to other
// goroutines while the pass has workers to spare and planning the rest on
// the calling goroutine. The result does not depend on the degree of
// parallelism.
func (p *Planner) planChildren(children []Node, size float64) ([]Plan, error) {
	plans := make([]Plan, len(children))
	if p.workers == nil || len(children) < 2 {
		for i, c := range children {
			plan, err := p.plan(c, size)
			if err != nil {
				return nil, err
			}
			plans[i] = plan
		}
		return plans, nil
	}

	var g errgroup.Group
	for i, c := range children {
		if !p.workers.TryAcquire(1) {
			plan, err := p.plan(c, size)
			if err != nil {
				_ = g.Wait()
				return nil, err
			}
			plans[i] = plan
			continue
		}
		g.Go(func() error {
			defer p.workers.Release(1)
			plan, err := p.plan(c, size)
			if err != nil {
				return err
			}
			plans[i] = plan
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}

func (p *Planner) planPair(a, b Node, sizeA, sizeB float64) (Plan, Plan, error) {
	pa, err := p.plan(a, sizeA)
	if err != nil {
		return Plan{}, Plan{}, err
	}
	pb, err := p.plan(b, sizeB)
	if err != nil {
		return Plan{}, Plan{}, err
	}
	return pa, pb, nil
}

// planSub hangs the subscript from the vertical middle of the base.
func (p *Planner) planSub(n *Sub, size float64) (Plan, error) {
	base, sub, err := p.planPair(n.Base, n.Subscript, size, p.scriptSize(size))
	if err != nil {
		return Plan{}, err
	}

	baseOff := max(0, sub.Height-base.Height/2)
	subOff := baseOff + base.Height/2
	height := max(base.Height, 2*sub.Height)

	return NewPlan(base.Width+sub.Width, height, base.Baseline+baseOff, func(dst *Surface, x, y int) {
		base.Paint(dst, x, y+baseOff)
		sub.Paint(dst, x+base.Width, y+subOff)
	}), nil
}

// planSup places the superscript at the top of the box and pushes the base
// down far enough for it.
func (p *Planner) planSup(n *Sup, size float64) (Plan, error) {
	base, sup, err := p.planPair(n.Base, n.Superscript, size, p.scriptSize(size))
	if err != nil {
		return Plan{}, err
	}

	baseOff := max(0, sup.Height-base.Height/2)
	height := max(base.Height, 2*sup.Height)

	return NewPlan(base.Width+sup.Width, height, base.Baseline+baseOff, func(dst *Surface, x, y int) {
		base.Paint(dst, x, y+baseOff)
		sup.Paint(dst, x+base.Width, y)
	}), nil
}

// planFraction stacks both operands in cells of equal height around a bar.
// The baseline is the middle of the bar.
func (p *Planner) planFraction(n *Fraction, size float64) (Plan, error) {
	num, den, err := p.planPair(n.Numerator, n.Denominator, size, size)
	if err != nil {
		return Plan{}, err
	}

	lw := lineWidth(size)
	th := max(num.Height, den.Height)
	width := max(num.Width, den.Width)
	numX := (width - num.Width) / 2
	denX := (width - den.Width) / 2

	return NewPlan(width, 2*th+lw, th+lw/2, func(dst *Surface, x, y int) {
		num.Paint(dst, x+numX, y+th-num.Height)
		dst.FillRect(x, y+th, width, lw)
		den.Paint(dst, x+denX, y+th+lw)
	}), nil
}

// planRoot reserves half the radicand height on the left for the radical
// sign and three stroke widths above it for the bar.
func (p *Planner) planRoot(n *Root, size float64) (Plan, error) {
	rad, err := p.plan(n.Radicand, size)
	if err != nil {
		return Plan{}, err
	}
	if n.Index != nil {
		if isNil(n.Index) {
			return Plan{}, ErrNilNode
		}
		if log := p.logger(); log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug("planner: radical index is not laid out", "index", n.Index.String())
		}
	}

	lw := lineWidth(size)
	hook := rad.Height / 2
	width := rad.Width + hook
	height := rad.Height + 3*lw
	sign := radicalSign(width, height, hook, lw)

	return NewPlan(width, height, rad.Baseline+lw, func(dst *Surface, x, y int) {
		dst.StrokePolyline(translate(sign, x, y), float64(lw))
		rad.Paint(dst, x+hook, y+2*lw)
	}), nil
}
