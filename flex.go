package flex

import (
	"fmt"
	"math"

	"github.com/grindlemire/go-flex/internal/debug"
	"github.com/grindlemire/go-flex/internal/layout"
)

// Flex arranges an ordered sequence of children along a main axis,
// distributing leftover main-axis space to flexible children by weight.
// Axis, alignments, and the fill flag are fixed at construction; a
// container is rebuilt, not mutated, when its configuration changes.
type Flex[S any] struct {
	params   layout.Params
	children []flexChild[S]

	// Computed by Measure.
	size   Size
	frames []Rect
	frame  Rect
}

type flexChild[S any] struct {
	widget Widget[S] // nil for spacers
	item   layout.Item
}

// Option configures a Flex container at construction time.
type Option func(*layout.Params)

// WithMainAlignment sets how children are distributed along the main
// axis when slack remains.
func WithMainAlignment(m MainAlignment) Option {
	return func(p *layout.Params) {
		p.MainAlign = m
	}
}

// WithCrossAlignment sets how children are aligned along the cross axis.
func WithCrossAlignment(c CrossAlignment) Option {
	return func(p *layout.Params) {
		p.CrossAlign = c
	}
}

// WithFillMainAxis makes the container take the full main-axis extent
// its constraint allows instead of hugging its content.
func WithFillMainAxis(fill bool) Option {
	return func(p *layout.Params) {
		p.FillMain = fill
	}
}

// NewRow creates a container whose main axis is horizontal.
func NewRow[S any](opts ...Option) *Flex[S] {
	return newFlex[S](Horizontal, opts)
}

// NewColumn creates a container whose main axis is vertical.
func NewColumn[S any](opts ...Option) *Flex[S] {
	return newFlex[S](Vertical, opts)
}

func newFlex[S any](axis Axis, opts []Option) *Flex[S] {
	params := layout.Params{Axis: axis}
	for _, opt := range opts {
		opt(&params)
	}
	return &Flex[S]{params: params}
}

// ItemOption configures a single child entry.
type ItemOption func(*layout.Item)

// WithFixedMainSize forces the child's main-axis extent, replacing its
// measured size. A fixed main-axis size makes the child non-flexible
// even if it carries a positive flex weight.
func WithFixedMainSize(v float64) ItemOption {
	return func(it *layout.Item) {
		it.HasFixedMain = true
		it.FixedMain = v
	}
}

// WithFixedCrossSize forces the child's cross-axis extent.
func WithFixedCrossSize(v float64) ItemOption {
	return func(it *layout.Item) {
		it.HasFixedCross = true
		it.FixedCross = v
	}
}

// AddChild appends a child with the given flex weight. Weight zero
// means the child is sized from its own measurement; a positive weight
// gives it that share of leftover main-axis space relative to the other
// flexible children. Insertion order is layout and paint order.
//
// Negative or non-finite weights and fixed extents panic: they are
// configuration bugs, not recoverable conditions.
func (f *Flex[S]) AddChild(w Widget[S], weight float64, opts ...ItemOption) *Flex[S] {
	if w == nil {
		panic("flex: nil child widget")
	}
	item := layout.Item{Flex: weight, Measure: w.Measure}
	for _, opt := range opts {
		opt(&item)
	}
	checkItem(item)
	f.children = append(f.children, flexChild[S]{widget: w, item: item})
	return f
}

func checkItem(item layout.Item) {
	check := func(name string, v float64) {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("flex: invalid %s %v", name, v))
		}
	}
	check("flex weight", item.Flex)
	if item.HasFixedMain {
		check("fixed main size", item.FixedMain)
	}
	if item.HasFixedCross {
		check("fixed cross size", item.FixedCross)
	}
}

// Attach forwards the attachment notification to every child in order.
func (f *Flex[S]) Attach(ctx *Context, state S) {
	for _, c := range f.children {
		if c.widget != nil {
			c.widget.Attach(ctx, state)
		}
	}
}

// Update forwards the state change to every child in order.
func (f *Flex[S]) Update(ctx *Context, old, new S) {
	for _, c := range f.children {
		if c.widget != nil {
			c.widget.Update(ctx, old, new)
		}
	}
}

// Measure lays out the children under bc and returns the container's
// size. Children are placed as a side effect. Measure is pure over its
// inputs and the children's measurements; calling it again with the
// same constraint yields identical frames.
func (f *Flex[S]) Measure(bc Constraint) Size {
	items := make([]layout.Item, len(f.children))
	for i, c := range f.children {
		items[i] = c.item
	}

	size, frames := layout.Arrange(f.params, items, bc)
	f.size = size
	f.frames = frames
	debug.Log("flex: arranged %d children in %v -> %v", len(items), bc, size)

	for i, c := range f.children {
		if c.widget != nil {
			c.widget.Place(frames[i])
		}
	}
	return size
}

// Place assigns the container's frame in parent coordinates.
func (f *Flex[S]) Place(frame Rect) {
	f.frame = frame
}

// Paint paints every child at its frame. With the debug overlay active
// it also outlines the container and each child's measured bounds.
func (f *Flex[S]) Paint(pc *PaintContext, origin Point) {
	pc.strokeOverlay(NewRect(origin.X, origin.Y, f.size.Width, f.size.Height))
	for i, c := range f.children {
		frame := f.frames[i]
		pc.strokeOverlay(frame.Translate(origin.X, origin.Y))
		if c.widget != nil {
			c.widget.Paint(pc, origin.Add(frame.Origin()))
		}
	}
}

// Size returns the container size computed by the last Measure.
func (f *Flex[S]) Size() Size {
	return f.size
}

// ChildFrame returns the frame assigned to the i'th entry (children and
// spacers alike) by the last Measure.
func (f *Flex[S]) ChildFrame(i int) Rect {
	return f.frames[i]
}

// Len returns the number of entries, spacers included.
func (f *Flex[S]) Len() int {
	return len(f.children)
}
