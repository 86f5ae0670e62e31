package flex

import "testing"

func TestSizedBox_BothForcedPassesTightConstraint(t *testing.T) {
	inner := newStub(5, 5)
	box := NewSizedBox[appState](inner, WithFixedWidth(60), WithFixedHeight(40))

	size := box.Measure(Loose(Size{Width: 200, Height: 200}))

	want := Tight(Size{Width: 60, Height: 40})
	if inner.lastBC != want {
		t.Errorf("inner constraint = %v, want %v", inner.lastBC, want)
	}
	if size != (Size{Width: 60, Height: 40}) {
		t.Errorf("box size = %v, want 60x40", size)
	}
}

func TestSizedBox_SingleAxisForced(t *testing.T) {
	inner := newStub(5, 30)
	box := NewSizedBox[appState](inner, WithFixedWidth(60))

	size := box.Measure(Loose(Size{Width: 200, Height: 200}))

	if inner.lastBC.Min.Width != 60 || inner.lastBC.Max.Width != 60 {
		t.Errorf("inner width bounds = [%v, %v], want tight 60",
			inner.lastBC.Min.Width, inner.lastBC.Max.Width)
	}
	if inner.lastBC.Max.Height != 200 {
		t.Errorf("inner max height = %v, want incoming 200", inner.lastBC.Max.Height)
	}
	if size != (Size{Width: 60, Height: 30}) {
		t.Errorf("box size = %v, want 60x30", size)
	}
}

func TestSizedBox_EmptyCollapsesToMinimum(t *testing.T) {
	box := NewEmpty[appState]()
	bc := NewConstraint(Size{Width: 3, Height: 4}, Size{Width: 100, Height: 100})

	if size := box.Measure(bc); size != (Size{Width: 3, Height: 4}) {
		t.Errorf("empty box size = %v, want constraint minimum 3x4", size)
	}
}

func TestSizedBox_EmptyWithForcedSize(t *testing.T) {
	box := NewEmpty[appState](WithFixedWidth(25), WithFixedHeight(10))

	if size := box.Measure(Loose(Size{Width: 100, Height: 100})); size != (Size{Width: 25, Height: 10}) {
		t.Errorf("box size = %v, want 25x10", size)
	}
}

func TestSizedBox_DebugOverlayStrokesSubtree(t *testing.T) {
	inner := newStub(10, 5)
	row := NewRow[appState]().AddChild(inner, 0)
	box := NewSizedBox[appState](row, WithDebugOverlay())

	box.Measure(Loose(Size{Width: 100, Height: 50}))

	surface := &recordingSurface{}
	pc := NewPaintContext(surface)
	box.Paint(pc, Point{})

	// Box bounds, row bounds, and the child frame.
	if len(surface.strokes) < 3 {
		t.Fatalf("overlay produced %d strokes, want at least 3: %v", len(surface.strokes), surface.strokes)
	}
	if pc.OverlayEnabled() {
		t.Error("overlay flag leaked out of the debug subtree")
	}
}

func TestSizedBox_OverlayDoesNotAlterLayout(t *testing.T) {
	makeBox := func(overlay bool) (*SizedBox[appState], *stub) {
		inner := newStub(10, 5)
		opts := []SizedOption{WithFixedWidth(80)}
		if overlay {
			opts = append(opts, WithDebugOverlay())
		}
		row := NewRow[appState](WithFillMainAxis(true)).AddChild(inner, 0).AddFlexSpacer(1)
		return NewSizedBox[appState](row, opts...), inner
	}

	plain, plainInner := makeBox(false)
	debug, debugInner := makeBox(true)
	bc := Loose(Size{Width: 200, Height: 50})

	if ps, ds := plain.Measure(bc), debug.Measure(bc); ps != ds {
		t.Errorf("overlay changed box size: %v vs %v", ps, ds)
	}
	if plainInner.frame != debugInner.frame {
		t.Errorf("overlay changed child frame: %v vs %v", plainInner.frame, debugInner.frame)
	}
}
