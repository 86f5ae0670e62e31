package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	flex "github.com/grindlemire/go-flex"
)

var styleOverlay = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

// cellSurface is a terminal cell grid implementing flex.Surface.
// Layout coordinates map 1:1 onto cells, rounded to the nearest cell.
// Each cell holds an already-styled rune so rows join into a frame
// string without tracking escape-sequence state.
type cellSurface struct {
	width, height int
	cells         [][]string
}

var _ flex.Surface = (*cellSurface)(nil)

func newCellSurface(width, height int) *cellSurface {
	cells := make([][]string, height)
	for y := range cells {
		cells[y] = make([]string, width)
		for x := range cells[y] {
			cells[y][x] = " "
		}
	}
	return &cellSurface{width: width, height: height, cells: cells}
}

func (s *cellSurface) set(x, y int, cell string) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = cell
}

// SetString writes text starting at (x, y), styling each rune in place.
func (s *cellSurface) SetString(x, y int, text string, style lipgloss.Style) {
	col := x
	for _, r := range text {
		s.set(col, y, style.Render(string(r)))
		col += runewidth.RuneWidth(r)
	}
}

// StrokeRect outlines r with box-drawing characters. Rects thinner than
// one cell are skipped.
func (s *cellSurface) StrokeRect(r flex.Rect) {
	x0 := int(math.Round(r.X))
	y0 := int(math.Round(r.Y))
	x1 := int(math.Round(r.X+r.Width)) - 1
	y1 := int(math.Round(r.Y+r.Height)) - 1
	if x1 <= x0 || y1 <= y0 {
		return
	}

	for x := x0 + 1; x < x1; x++ {
		s.set(x, y0, styleOverlay.Render("─"))
		s.set(x, y1, styleOverlay.Render("─"))
	}
	for y := y0 + 1; y < y1; y++ {
		s.set(x0, y, styleOverlay.Render("│"))
		s.set(x1, y, styleOverlay.Render("│"))
	}
	s.set(x0, y0, styleOverlay.Render("┌"))
	s.set(x1, y0, styleOverlay.Render("┐"))
	s.set(x0, y1, styleOverlay.Render("└"))
	s.set(x1, y1, styleOverlay.Render("┘"))
}

// Render joins the grid into the final frame string.
func (s *cellSurface) Render() string {
	lines := make([]string, s.height)
	for y, row := range s.cells {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}
