package flex

import (
	"fmt"
	"math"
)

// SizedBox wraps a widget to force an exact width and/or height
// irrespective of the computed size. When both dimensions are forced
// the forced constraint is passed down instead of the incoming one.
//
// A SizedBox may also enable the layout debug overlay, which outlines
// the measured bounding boxes of itself and all descendants without
// altering layout results.
type SizedBox[S any] struct {
	inner Widget[S] // nil for an empty box

	width, height       float64
	hasWidth, hasHeight bool
	overlay             bool

	size  Size
	frame Rect
}

// SizedOption configures a SizedBox at construction time.
type SizedOption func(*sizedConfig)

type sizedConfig struct {
	width, height       float64
	hasWidth, hasHeight bool
	overlay             bool
}

// WithFixedWidth forces the box's width. Negative or non-finite values
// panic.
func WithFixedWidth(w float64) SizedOption {
	checkDimension("width", w)
	return func(c *sizedConfig) {
		c.width = w
		c.hasWidth = true
	}
}

// WithFixedHeight forces the box's height. Negative or non-finite
// values panic.
func WithFixedHeight(h float64) SizedOption {
	checkDimension("height", h)
	return func(c *sizedConfig) {
		c.height = h
		c.hasHeight = true
	}
}

// WithDebugOverlay makes the box outline the measured bounds of itself
// and all descendants during painting. Layout results are unaffected.
func WithDebugOverlay() SizedOption {
	return func(c *sizedConfig) {
		c.overlay = true
	}
}

func checkDimension(name string, v float64) {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("flex: invalid fixed %s %v", name, v))
	}
}

// NewSizedBox wraps inner with the given sizing overrides.
func NewSizedBox[S any](inner Widget[S], opts ...SizedOption) *SizedBox[S] {
	var c sizedConfig
	for _, opt := range opts {
		opt(&c)
	}
	return &SizedBox[S]{
		inner:     inner,
		width:     c.width,
		height:    c.height,
		hasWidth:  c.hasWidth,
		hasHeight: c.hasHeight,
		overlay:   c.overlay,
	}
}

// NewEmpty returns a box with no content. Without sizing overrides it
// collapses to the constraint minimum, which makes it the conventional
// placeholder for a subtree that has not been built yet.
func NewEmpty[S any](opts ...SizedOption) *SizedBox[S] {
	return NewSizedBox[S](nil, opts...)
}

// Attach forwards the attachment notification to the wrapped widget.
func (b *SizedBox[S]) Attach(ctx *Context, state S) {
	if b.inner != nil {
		b.inner.Attach(ctx, state)
	}
}

// Update forwards the state change to the wrapped widget.
func (b *SizedBox[S]) Update(ctx *Context, old, new S) {
	if b.inner != nil {
		b.inner.Update(ctx, old, new)
	}
}

// Measure sizes the wrapped widget under the adjusted constraint and
// returns the box's own size.
func (b *SizedBox[S]) Measure(bc Constraint) Size {
	childBC := b.childConstraint(bc)
	if b.inner == nil {
		b.size = childBC.Constrain(Size{})
		return b.size
	}
	b.size = b.inner.Measure(childBC)
	b.inner.Place(NewRect(0, 0, b.size.Width, b.size.Height))
	return b.size
}

func (b *SizedBox[S]) childConstraint(bc Constraint) Constraint {
	switch {
	case b.hasWidth && b.hasHeight:
		return Tight(Size{Width: b.width, Height: b.height})
	case b.hasWidth:
		return NewConstraint(
			Size{Width: b.width, Height: bc.Min.Height},
			Size{Width: b.width, Height: bc.Max.Height},
		)
	case b.hasHeight:
		return NewConstraint(
			Size{Width: bc.Min.Width, Height: b.height},
			Size{Width: bc.Max.Width, Height: b.height},
		)
	default:
		return bc
	}
}

// Place assigns the box's frame in parent coordinates.
func (b *SizedBox[S]) Place(frame Rect) {
	b.frame = frame
}

// Paint paints the wrapped widget, enabling the debug overlay for the
// subtree when configured.
func (b *SizedBox[S]) Paint(pc *PaintContext, origin Point) {
	if b.overlay {
		prev := pc.overlay
		pc.overlay = true
		defer func() { pc.overlay = prev }()
	}
	pc.strokeOverlay(NewRect(origin.X, origin.Y, b.size.Width, b.size.Height))
	if b.inner != nil {
		b.inner.Paint(pc, origin)
	}
}

// Size returns the size computed by the last Measure.
func (b *SizedBox[S]) Size() Size {
	return b.size
}
