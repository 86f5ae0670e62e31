package layout

// Axis specifies the main axis for laying out children.
type Axis uint8

const (
	Horizontal Axis = iota // Children laid out left-to-right (a row)
	Vertical               // Children laid out top-to-bottom (a column)
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Major returns the size's extent along the main axis.
func (a Axis) Major(s Size) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// Minor returns the size's extent along the cross axis.
func (a Axis) Minor(s Size) float64 {
	if a == Horizontal {
		return s.Height
	}
	return s.Width
}

// Pack builds a Size from main- and cross-axis extents.
func (a Axis) Pack(main, cross float64) Size {
	if a == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// PackPoint builds a Point from main- and cross-axis offsets.
func (a Axis) PackPoint(main, cross float64) Point {
	if a == Horizontal {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}

// Constraint builds a Constraint from main- and cross-axis bounds.
func (a Axis) Constraint(minMain, maxMain, minCross, maxCross float64) Constraint {
	return NewConstraint(a.Pack(minMain, minCross), a.Pack(maxMain, maxCross))
}
