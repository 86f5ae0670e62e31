package flex

import "testing"

// appState is the application state type used across the package tests.
type appState struct {
	Label  string
	Volume float64
}

// stub is a minimal leaf widget recording the calls it receives.
type stub struct {
	intrinsic Size

	attaches int
	updates  int
	paints   int
	frame    Rect
	lastBC   Constraint
	lastNew  appState
}

func newStub(w, h float64) *stub {
	return &stub{intrinsic: Size{Width: w, Height: h}}
}

func (s *stub) Attach(ctx *Context, state appState) { s.attaches++ }

func (s *stub) Update(ctx *Context, old, new appState) {
	s.updates++
	s.lastNew = new
}

func (s *stub) Measure(bc Constraint) Size {
	s.lastBC = bc
	return bc.Constrain(s.intrinsic)
}

func (s *stub) Place(frame Rect) { s.frame = frame }

func (s *stub) Paint(pc *PaintContext, origin Point) { s.paints++ }

// recordingSurface captures overlay strokes.
type recordingSurface struct {
	strokes []Rect
}

func (r *recordingSurface) StrokeRect(rect Rect) {
	r.strokes = append(r.strokes, rect)
}

func TestFlex_SpaceBetweenEndToEnd(t *testing.T) {
	// Row, must-fill, SpaceBetween, three non-flexible children of
	// widths 10/20/30 in a 100-wide container: children land at main
	// offsets 0, 30, and 70 with gaps of 20 between each pair.
	a, b, c := newStub(10, 5), newStub(20, 5), newStub(30, 5)
	row := NewRow[appState](
		WithMainAlignment(MainSpaceBetween),
		WithFillMainAxis(true),
	).AddChild(a, 0).AddChild(b, 0).AddChild(c, 0)

	size := row.Measure(Loose(Size{Width: 100, Height: 50}))

	if size.Width != 100 {
		t.Errorf("container width = %v, want 100", size.Width)
	}
	wantX := []float64{0, 30, 70}
	for i, s := range []*stub{a, b, c} {
		if s.frame.X != wantX[i] {
			t.Errorf("child %d placed at x=%v, want %v", i, s.frame.X, wantX[i])
		}
	}
}

func TestFlex_ForwardsAttachAndUpdate(t *testing.T) {
	a, b := newStub(10, 10), newStub(10, 10)
	row := NewRow[appState]().AddChild(a, 0).AddSpacer(DefaultSpacerLen).AddChild(b, 1)

	ctx := NewContext()
	row.Attach(ctx, appState{Label: "hello"})
	if a.attaches != 1 || b.attaches != 1 {
		t.Errorf("attaches = %d, %d, want 1, 1", a.attaches, b.attaches)
	}

	old := appState{Label: "hello"}
	new := appState{Label: "hello", Volume: 0.5}
	row.Update(ctx, old, new)
	if a.updates != 1 || b.updates != 1 {
		t.Errorf("updates = %d, %d, want 1, 1", a.updates, b.updates)
	}
	if b.lastNew != new {
		t.Errorf("child saw state %+v, want %+v", b.lastNew, new)
	}
	if ctx.StructureChanged() {
		t.Error("plain forwarding must not raise the structural-change signal")
	}
}

func TestFlex_FixedMainItemOption(t *testing.T) {
	// The fixed override replaces the measured extent and disables the
	// flex weight for distribution.
	fixed := newStub(999, 5)
	flexible := newStub(0, 5)
	row := NewRow[appState](WithFillMainAxis(true)).
		AddChild(fixed, 2, WithFixedMainSize(25)).
		AddChild(flexible, 1)

	row.Measure(Loose(Size{Width: 100, Height: 50}))

	if fixed.frame.Width != 25 {
		t.Errorf("fixed child width = %v, want 25", fixed.frame.Width)
	}
	if flexible.frame.Width != 75 {
		t.Errorf("flexible child width = %v, want 75", flexible.frame.Width)
	}
}

func TestFlex_ConstructionRejectsBadInputs(t *testing.T) {
	tests := map[string]func(){
		"negative weight":          func() { NewRow[appState]().AddChild(newStub(1, 1), -1) },
		"nil child":                func() { NewRow[appState]().AddChild(nil, 0) },
		"negative spacer":          func() { NewRow[appState]().AddSpacer(-4) },
		"zero flex spacer":         func() { NewRow[appState]().AddFlexSpacer(0) },
		"negative fixed main":      func() { NewRow[appState]().AddChild(newStub(1, 1), 0, WithFixedMainSize(-1)) },
		"negative fixed cross":     func() { NewRow[appState]().AddChild(newStub(1, 1), 0, WithFixedCrossSize(-1)) },
		"negative sized box width": func() { NewSizedBox[appState](newStub(1, 1), WithFixedWidth(-10)) },
	}

	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected construction to panic")
				}
			}()
			fn()
		})
	}
}

func TestFlex_ColumnMainAxisIsVertical(t *testing.T) {
	a, b := newStub(10, 20), newStub(10, 30)
	col := NewColumn[appState]().AddChild(a, 0).AddChild(b, 0)

	size := col.Measure(Loose(Size{Width: 50, Height: 100}))

	if size.Height != 50 {
		t.Errorf("column height = %v, want 50 (content total)", size.Height)
	}
	if a.frame.Y != 0 || b.frame.Y != 20 {
		t.Errorf("children at y=%v and y=%v, want 0 and 20", a.frame.Y, b.frame.Y)
	}
}

func TestFlex_MeasureIdempotent(t *testing.T) {
	a := newStub(10, 5)
	row := NewRow[appState](WithFillMainAxis(true)).AddChild(a, 0).AddFlexSpacer(1)
	bc := Loose(Size{Width: 100, Height: 50})

	row.Measure(bc)
	first := a.frame
	row.Measure(bc)

	if a.frame != first {
		t.Errorf("frame changed across identical Measure calls: %v vs %v", first, a.frame)
	}
}

func TestFlex_PaintWithoutOverlayStrokesNothing(t *testing.T) {
	a := newStub(10, 5)
	row := NewRow[appState]().AddChild(a, 0)
	row.Measure(Loose(Size{Width: 100, Height: 50}))

	surface := &recordingSurface{}
	row.Paint(NewPaintContext(surface), Point{})

	if len(surface.strokes) != 0 {
		t.Errorf("strokes = %v, want none without overlay", surface.strokes)
	}
	if a.paints != 1 {
		t.Errorf("child painted %d times, want 1", a.paints)
	}
}
