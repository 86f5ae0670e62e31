// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flex

import "github.com/grindlemire/go-flex/internal/layout"

// Axis specifies the main axis for laying out children.
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// MainAlignment specifies how children are distributed along the main axis.
type MainAlignment = layout.MainAlignment

const (
	MainStart        = layout.MainStart
	MainCenter       = layout.MainCenter
	MainEnd          = layout.MainEnd
	MainSpaceBetween = layout.MainSpaceBetween
	MainSpaceEvenly  = layout.MainSpaceEvenly
	MainSpaceAround  = layout.MainSpaceAround
)

// CrossAlignment specifies how children are aligned along the cross axis.
type CrossAlignment = layout.CrossAlignment

const (
	CrossStart  = layout.CrossStart
	CrossCenter = layout.CrossCenter
	CrossEnd    = layout.CrossEnd
	CrossFill   = layout.CrossFill
)

// Constraint is a box constraint passed top-down during layout.
type Constraint = layout.Constraint

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// NewConstraint creates a Constraint with the given bounds.
// Malformed bounds panic.
func NewConstraint(minSize, maxSize Size) Constraint {
	return layout.NewConstraint(minSize, maxSize)
}

// Tight returns a Constraint that admits exactly one size.
func Tight(size Size) Constraint {
	return layout.Tight(size)
}

// Loose returns a Constraint with zero minimums and the given maximums.
func Loose(maxSize Size) Constraint {
	return layout.Loose(maxSize)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}
