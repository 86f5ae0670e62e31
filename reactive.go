package flex

import (
	"reflect"

	"github.com/grindlemire/go-flex/internal/debug"
)

// ReactiveNode owns a subtree built by a pure function of a config
// value derived from application state. On each update it compares the
// new config against the memoized one: equal configs forward the update
// into the existing subtree untouched, a changed config discards the
// subtree, rebuilds it from scratch, and raises the structural-change
// signal exactly once.
//
// The builder must be a pure function of its config: safe to call
// repeatedly with the same input, no dependence on the previous
// subtree, no observable side effects beyond the returned widget. The
// node does not catch builder panics; there is no partial-subtree state
// to fall back to.
type ReactiveNode[S, C any] struct {
	extract func(S) C
	build   func(C) Widget[S]
	equal   func(a, b C) bool

	built  bool
	config C
	inner  Widget[S]
}

// ReactiveOption configures a ReactiveNode at construction time.
type ReactiveOption[S, C any] func(*ReactiveNode[S, C])

// WithEqual replaces the config comparison. The default is
// reflect.DeepEqual; the replacement must still be a deep, total
// structural comparison, since the rebuild decision depends on
// detecting any difference.
func WithEqual[S, C any](equal func(a, b C) bool) ReactiveOption[S, C] {
	return func(n *ReactiveNode[S, C]) {
		n.equal = equal
	}
}

// NewReactiveNode creates a node whose subtree is build(extract(state)).
// The subtree is not constructed until the node is attached.
func NewReactiveNode[S, C any](extract func(S) C, build func(C) Widget[S], opts ...ReactiveOption[S, C]) *ReactiveNode[S, C] {
	if extract == nil {
		panic("flex: nil config extractor")
	}
	if build == nil {
		panic("flex: nil builder")
	}
	n := &ReactiveNode[S, C]{
		extract: extract,
		build:   build,
		equal:   func(a, b C) bool { return reflect.DeepEqual(a, b) },
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Attach builds the initial subtree from the initial state's config and
// memoizes that config. Attaching twice is a host bug and panics.
func (n *ReactiveNode[S, C]) Attach(ctx *Context, state S) {
	if n.built {
		panic("flex: ReactiveNode attached twice")
	}
	n.config = n.extract(state)
	n.inner = n.build(n.config)
	n.built = true
	debug.Log("reactive: built initial subtree from %+v", n.config)
	n.inner.Attach(ctx, state)
}

// Update compares the new state's config against the memoized one. An
// unchanged config forwards the update to the existing subtree so it
// can react to unrelated state changes; a changed config rebuilds the
// subtree wholesale, memoizes the new config, and signals
// ctx.ChildrenChanged. The comparison and any rebuild complete before
// Update returns; a pass is never partially applied.
func (n *ReactiveNode[S, C]) Update(ctx *Context, old, new S) {
	if !n.built {
		panic("flex: ReactiveNode updated before attach")
	}
	config := n.extract(new)
	if n.equal(n.config, config) {
		n.inner.Update(ctx, old, new)
		return
	}
	debug.Log("reactive: config changed %+v -> %+v, rebuilding", n.config, config)
	n.config = config
	n.inner = n.build(config)
	n.inner.Attach(ctx, new)
	ctx.ChildrenChanged()
}

// Measure delegates to the current subtree.
func (n *ReactiveNode[S, C]) Measure(bc Constraint) Size {
	return n.subtree().Measure(bc)
}

// Place delegates to the current subtree.
func (n *ReactiveNode[S, C]) Place(frame Rect) {
	n.subtree().Place(frame)
}

// Paint delegates to the current subtree.
func (n *ReactiveNode[S, C]) Paint(pc *PaintContext, origin Point) {
	n.subtree().Paint(pc, origin)
}

// Subtree returns the currently-built subtree. The node exclusively
// owns it; callers must not retain the reference across updates.
func (n *ReactiveNode[S, C]) Subtree() Widget[S] {
	return n.inner
}

func (n *ReactiveNode[S, C]) subtree() Widget[S] {
	if !n.built {
		panic("flex: ReactiveNode used before attach")
	}
	return n.inner
}
