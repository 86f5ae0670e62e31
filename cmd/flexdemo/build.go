package main

import flex "github.com/grindlemire/go-flex"

// Fixed extents applied when the demo pins an axis, in cells.
const (
	fixedMinorRow    = 8.0
	fixedMinorColumn = 30.0
	fixedMajorRow    = 70.0
	fixedMajorColumn = 14.0
)

// extractParams is the ReactiveNode's config extractor.
func extractParams(s AppState) Params {
	return s.Params
}

// buildDemo is the pure builder: Params in, demo subtree out. It never
// reads DemoState; the leaves pick that up from attach and update
// notifications.
func buildDemo(p Params) flex.Widget[AppState] {
	opts := []flex.Option{
		flex.WithCrossAlignment(p.CrossAlignment),
		flex.WithMainAlignment(p.MainAlignment),
		flex.WithFillMainAxis(p.FillMainAxis),
	}

	var f *flex.Flex[AppState]
	if p.Axis == flex.Horizontal {
		f = flex.NewRow[AppState](opts...)
	} else {
		f = flex.NewColumn[AppState](opts...)
	}

	spaceIfNeeded := func() {
		switch p.Spacers {
		case SpacersFixed:
			f.AddSpacer(p.SpacerSize)
		case SpacersFlex:
			f.AddFlexSpacer(1)
		}
	}

	f.AddChild(&textBox{}, 0)
	spaceIfNeeded()
	f.AddChild(&echoLabel{}, 0)
	spaceIfNeeded()
	f.AddChild(&checkbox{}, 0)
	spaceIfNeeded()
	f.AddChild(&gauge{}, 0)
	spaceIfNeeded()
	f.AddChild(&volumeLabel{}, 0)

	var sized []flex.SizedOption
	if p.FixMinorAxis {
		if p.Axis == flex.Horizontal {
			sized = append(sized, flex.WithFixedHeight(fixedMinorRow))
		} else {
			sized = append(sized, flex.WithFixedWidth(fixedMinorColumn))
		}
	}
	if p.FixMajorAxis {
		if p.Axis == flex.Horizontal {
			sized = append(sized, flex.WithFixedWidth(fixedMajorRow))
		} else {
			sized = append(sized, flex.WithFixedHeight(fixedMajorColumn))
		}
	}
	if p.DebugLayout {
		sized = append(sized, flex.WithDebugOverlay())
	}
	return flex.NewSizedBox[AppState](f, sized...)
}

// makeRoot assembles the full tree: a parameter summary above the
// reactive demo area.
func makeRoot() flex.Widget[AppState] {
	return flex.NewColumn[AppState](flex.WithFillMainAxis(true)).
		AddChild(&controlPanel{}, 0).
		AddSpacer(1).
		AddChild(flex.NewReactiveNode(extractParams, buildDemo), 1)
}
