package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	flex "github.com/grindlemire/go-flex"
)

var (
	styleText  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	styleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleBox   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	styleGauge = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// leaf carries the plumbing shared by the demo's leaf widgets: it
// memoizes the latest application state and its assigned frame.
type leaf struct {
	state AppState
	frame flex.Rect
}

func (l *leaf) Attach(ctx *flex.Context, state AppState) {
	l.state = state
}

func (l *leaf) Update(ctx *flex.Context, old, new AppState) {
	l.state = new
}

func (l *leaf) Place(frame flex.Rect) {
	l.frame = frame
}

// draw writes a styled string at the widget's absolute origin.
func draw(pc *flex.PaintContext, origin flex.Point, style lipgloss.Style, text string) {
	if s, ok := pc.Surface().(*cellSurface); ok {
		s.SetString(int(origin.X), int(origin.Y), text, style)
	}
}

// textBox displays the demo input text in a bracketed field.
type textBox struct{ leaf }

func (t *textBox) Measure(bc flex.Constraint) flex.Size {
	return bc.Constrain(flex.Size{Width: float64(len(t.state.Demo.InputText) + 2), Height: 1})
}

func (t *textBox) Paint(pc *flex.PaintContext, origin flex.Point) {
	draw(pc, origin, styleBox, "["+t.state.Demo.InputText+"]")
}

// echoLabel mirrors the input text as an unadorned label.
type echoLabel struct{ leaf }

func (l *echoLabel) Measure(bc flex.Constraint) flex.Size {
	return bc.Constrain(flex.Size{Width: float64(len(l.state.Demo.InputText)), Height: 1})
}

func (l *echoLabel) Paint(pc *flex.PaintContext, origin flex.Point) {
	draw(pc, origin, styleText, l.state.Demo.InputText)
}

// checkbox reflects the Enabled flag.
type checkbox struct{ leaf }

func (c *checkbox) Measure(bc flex.Constraint) flex.Size {
	return bc.Constrain(flex.Size{Width: 8, Height: 1})
}

func (c *checkbox) Paint(pc *flex.PaintContext, origin flex.Point) {
	mark := "[ ]"
	if c.state.Demo.Enabled {
		mark = "[x]"
	}
	draw(pc, origin, styleText, mark+" demo")
}

// gauge is a fixed-width progress bar bound to Volume.
type gauge struct{ leaf }

const gaugeWidth = 12

func (g *gauge) Measure(bc flex.Constraint) flex.Size {
	return bc.Constrain(flex.Size{Width: gaugeWidth, Height: 1})
}

func (g *gauge) Paint(pc *flex.PaintContext, origin flex.Point) {
	filled := int(g.state.Demo.Volume*gaugeWidth + 0.5)
	if filled > gaugeWidth {
		filled = gaugeWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled)
	draw(pc, origin, styleGauge, bar)
}

// volumeLabel shows the volume as a percentage.
type volumeLabel struct{ leaf }

func (v *volumeLabel) Measure(bc flex.Constraint) flex.Size {
	return bc.Constrain(flex.Size{Width: 4, Height: 1})
}

func (v *volumeLabel) Paint(pc *flex.PaintContext, origin flex.Point) {
	draw(pc, origin, styleMuted, fmt.Sprintf("%3.0f%%", v.state.Demo.Volume*100))
}

// controlPanel summarizes the current structural parameters. It lives
// outside the ReactiveNode, so it only ever sees forwarded updates.
type controlPanel struct{ leaf }

func (p *controlPanel) Measure(bc flex.Constraint) flex.Size {
	return bc.Constrain(flex.Size{Width: bc.Max.Width, Height: 3})
}

func (p *controlPanel) Paint(pc *flex.PaintContext, origin flex.Point) {
	params := p.state.Params
	axis := "row"
	if params.Axis == flex.Vertical {
		axis = "column"
	}
	line1 := fmt.Sprintf("axis:%s  cross:%s  main:%s", axis, params.CrossAlignment, params.MainAlignment)
	line2 := fmt.Sprintf("fill:%v  spacers:%s(%g)  fix-minor:%v  fix-major:%v  debug:%v",
		params.FillMainAxis, params.Spacers, params.SpacerSize,
		params.FixMinorAxis, params.FixMajorAxis, params.DebugLayout)

	draw(pc, origin, styleText, line1)
	draw(pc, flex.Point{X: origin.X, Y: origin.Y + 1}, styleMuted, line2)
}
