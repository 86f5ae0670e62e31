package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	flex "github.com/grindlemire/go-flex"
)

// model is the bubbletea model hosting the widget tree. bubbletea's
// single Update goroutine is the core's event loop: every state change
// flows to the tree as an (old, new) pair before the next one starts.
type model struct {
	state AppState
	root  flex.Widget[AppState]
	keys  keyMap
	help  help.Model

	width, height int
	rebuilds      int
	attached      bool
}

func newModel() model {
	return model{
		state: initialState(),
		root:  makeRoot(),
		keys:  newKeyMap(),
		help:  help.New(),
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.attached {
			ctx := flex.NewContext()
			m.root.Attach(ctx, m.state)
			m.attached = true
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m.apply(msg), nil
	}
	return m, nil
}

// apply mutates a copy of the state for the pressed key and delivers
// the (old, new) pair to the tree.
func (m model) apply(msg tea.KeyMsg) model {
	old := m.state
	new := old

	switch {
	case key.Matches(msg, m.keys.Axis):
		if new.Params.Axis == flex.Horizontal {
			new.Params.Axis = flex.Vertical
		} else {
			new.Params.Axis = flex.Horizontal
		}
	case key.Matches(msg, m.keys.Cross):
		new.Params.CrossAlignment = nextCross(new.Params.CrossAlignment)
	case key.Matches(msg, m.keys.Main):
		new.Params.MainAlignment = nextMain(new.Params.MainAlignment)
	case key.Matches(msg, m.keys.Fill):
		new.Params.FillMainAxis = !new.Params.FillMainAxis
	case key.Matches(msg, m.keys.Spacers):
		new.Params.Spacers = nextSpacers(new.Params.Spacers)
	case key.Matches(msg, m.keys.SpacerUp):
		new.Params.SpacerSize += 2
	case key.Matches(msg, m.keys.SpacerDown):
		new.Params.SpacerSize = max(0, new.Params.SpacerSize-2)
	case key.Matches(msg, m.keys.FixMinor):
		new.Params.FixMinorAxis = !new.Params.FixMinorAxis
	case key.Matches(msg, m.keys.FixMajor):
		new.Params.FixMajorAxis = !new.Params.FixMajorAxis
	case key.Matches(msg, m.keys.Debug):
		new.Params.DebugLayout = !new.Params.DebugLayout
	case key.Matches(msg, m.keys.Enabled):
		new.Demo.Enabled = !new.Demo.Enabled
	case key.Matches(msg, m.keys.VolumeUp):
		new.Demo.Volume = min(1, new.Demo.Volume+0.1)
	case key.Matches(msg, m.keys.VolumeDown):
		new.Demo.Volume = max(0, new.Demo.Volume-0.1)
	default:
		return m
	}

	if !m.attached {
		m.state = new
		return m
	}

	ctx := flex.NewContext()
	m.root.Update(ctx, old, new)
	if ctx.StructureChanged() {
		m.rebuilds++
	}
	m.state = new
	return m
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	helpView := m.help.View(m.keys)
	helpLines := 1
	if m.help.ShowAll {
		helpLines = 3
	}
	canvasHeight := max(1, m.height-helpLines-1)

	bc := flex.NewConstraint(
		flex.Size{},
		flex.Size{Width: float64(m.width), Height: float64(canvasHeight)},
	)
	size := m.root.Measure(bc)
	m.root.Place(flex.NewRect(0, 0, size.Width, size.Height))

	surface := newCellSurface(m.width, canvasHeight)
	m.root.Paint(flex.NewPaintContext(surface), flex.Point{})

	status := styleMuted.Render(fmt.Sprintf("rebuilds: %d", m.rebuilds))
	return surface.Render() + "\n" + status + "\n" + helpView
}
