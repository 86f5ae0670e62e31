package main

import flex "github.com/grindlemire/go-flex"

// SpacerMode selects what gets inserted between demo children.
type SpacerMode uint8

const (
	SpacersNone SpacerMode = iota
	SpacersFixed
	SpacersFlex
)

func (m SpacerMode) String() string {
	switch m {
	case SpacersFixed:
		return "fixed"
	case SpacersFlex:
		return "flex"
	default:
		return "none"
	}
}

// DemoState is the data the demo children display. Changing it updates
// the existing subtree in place; it never triggers a rebuild.
type DemoState struct {
	InputText string
	Enabled   bool
	Volume    float64
}

// Params is the structural configuration of the demo container. Any
// change here reshapes the subtree, so it is the ReactiveNode's config.
type Params struct {
	Axis           flex.Axis
	CrossAlignment flex.CrossAlignment
	MainAlignment  flex.MainAlignment
	FillMainAxis   bool
	DebugLayout    bool
	FixMinorAxis   bool
	FixMajorAxis   bool
	Spacers        SpacerMode
	SpacerSize     float64
}

// AppState is the full application state delivered with every update.
type AppState struct {
	Demo   DemoState
	Params Params
}

func initialState() AppState {
	return AppState{
		Demo: DemoState{
			InputText: "hello",
			Volume:    0.4,
		},
		Params: Params{
			Axis:           flex.Horizontal,
			CrossAlignment: flex.CrossCenter,
			MainAlignment:  flex.MainStart,
			SpacerSize:     flex.DefaultSpacerLen,
		},
	}
}

func nextCross(c flex.CrossAlignment) flex.CrossAlignment {
	switch c {
	case flex.CrossStart:
		return flex.CrossCenter
	case flex.CrossCenter:
		return flex.CrossEnd
	case flex.CrossEnd:
		return flex.CrossFill
	default:
		return flex.CrossStart
	}
}

func nextMain(m flex.MainAlignment) flex.MainAlignment {
	switch m {
	case flex.MainStart:
		return flex.MainCenter
	case flex.MainCenter:
		return flex.MainEnd
	case flex.MainEnd:
		return flex.MainSpaceBetween
	case flex.MainSpaceBetween:
		return flex.MainSpaceEvenly
	case flex.MainSpaceEvenly:
		return flex.MainSpaceAround
	default:
		return flex.MainStart
	}
}

func nextSpacers(m SpacerMode) SpacerMode {
	switch m {
	case SpacersNone:
		return SpacersFixed
	case SpacersFixed:
		return SpacersFlex
	default:
		return SpacersNone
	}
}
