// Package snapshot renders a laid-out widget tree's bounding boxes to
// an image. It implements the flex.Surface contract over a raster
// canvas, giving the debug overlay a file-based form: the same strokes
// a host would draw on screen land in a PNG instead.
package snapshot

import (
	"image"

	"github.com/fogleman/gg"

	flex "github.com/grindlemire/go-flex"
)

// Renderer draws overlay strokes onto a raster canvas.
type Renderer struct {
	dc *gg.Context
}

var _ flex.Surface = (*Renderer)(nil)

// NewRenderer creates a renderer with a white canvas of the given pixel
// dimensions.
func NewRenderer(width, height int) *Renderer {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetLineWidth(1)
	return &Renderer{dc: dc}
}

// StrokeRect outlines r on the canvas.
func (r *Renderer) StrokeRect(rect flex.Rect) {
	r.dc.SetRGB(0.25, 0.25, 0.25)
	r.dc.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
	r.dc.Stroke()
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the canvas to path.
func (r *Renderer) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}

// Capture lays out root under a tight constraint of the canvas size and
// paints it with the debug overlay forced on, returning the renderer
// for saving or inspection.
func Capture[S any](root flex.Widget[S], width, height int) *Renderer {
	r := NewRenderer(width, height)
	size := root.Measure(flex.Tight(flex.Size{Width: float64(width), Height: float64(height)}))
	root.Place(flex.NewRect(0, 0, size.Width, size.Height))
	root.Paint(flex.NewDebugPaintContext(r), flex.Point{})
	return r
}
