package flex

// Widget is the capability set a child element exposes to its container
// and to the host framework. S is the application state type delivered
// with update notifications.
//
// Lifecycle: the host calls Attach exactly once when the widget first
// enters the tree, then any number of Update calls with (old, new)
// state pairs. Measure and Place run during layout, top-down; Paint
// runs after layout. All calls arrive on the host's single event loop.
type Widget[S any] interface {
	// Attach notifies the widget of its first insertion into the tree.
	Attach(ctx *Context, state S)

	// Update delivers an application-state change. Widgets that derive
	// structure from state may rebuild here and must then signal
	// ctx.ChildrenChanged.
	Update(ctx *Context, old, new S)

	// Measure reports the widget's size under the given constraint.
	// Containers measure and place their children as a side effect.
	Measure(bc Constraint) Size

	// Place assigns the widget's frame in parent coordinates. The frame
	// size is authoritative: for flexible children it may differ from
	// the measured size.
	Place(frame Rect)

	// Paint draws the widget at the given absolute origin.
	Paint(pc *PaintContext, origin Point)
}

// Context carries per-notification bookkeeping between the host and the
// tree. A rebuilt node raises the structural-change signal so the host
// can re-derive identity-keyed state (focus chains, hit-test caches)
// before the next layout pass.
type Context struct {
	structureChanged bool
}

// NewContext returns a Context for a single attach or update pass.
func NewContext() *Context {
	return &Context{}
}

// ChildrenChanged records that a widget replaced part of its subtree
// during this pass.
func (c *Context) ChildrenChanged() {
	c.structureChanged = true
}

// StructureChanged reports whether any widget raised the
// structural-change signal during this pass.
func (c *Context) StructureChanged() bool {
	return c.structureChanged
}

// Reset clears the context for reuse on the next pass.
func (c *Context) Reset() {
	c.structureChanged = false
}

// Surface is the host's render target. The core only needs rectangle
// outlines for the layout debug overlay; hosts expose richer drawing to
// their own leaf widgets.
type Surface interface {
	StrokeRect(r Rect)
}

// PaintContext is passed down the tree during painting. It wraps the
// host Surface and tracks whether the layout debug overlay is active
// for the current subtree.
type PaintContext struct {
	surface Surface
	overlay bool
}

// NewPaintContext creates a PaintContext drawing onto surface.
// A nil surface is allowed; overlay strokes become no-ops.
func NewPaintContext(surface Surface) *PaintContext {
	return &PaintContext{surface: surface}
}

// NewDebugPaintContext creates a PaintContext with the layout debug
// overlay active for the whole tree, regardless of any [SizedBox]
// overlay configuration. Useful for offline layout inspection.
func NewDebugPaintContext(surface Surface) *PaintContext {
	return &PaintContext{surface: surface, overlay: true}
}

// Surface returns the host render target.
func (pc *PaintContext) Surface() Surface {
	return pc.surface
}

// OverlayEnabled reports whether the debug overlay is active for the
// subtree currently painting.
func (pc *PaintContext) OverlayEnabled() bool {
	return pc.overlay
}

// StrokeRect outlines r on the host surface if one is attached.
func (pc *PaintContext) StrokeRect(r Rect) {
	if pc.surface != nil {
		pc.surface.StrokeRect(r)
	}
}

// strokeOverlay outlines r only when the overlay is active.
func (pc *PaintContext) strokeOverlay(r Rect) {
	if pc.overlay {
		pc.StrokeRect(r)
	}
}
