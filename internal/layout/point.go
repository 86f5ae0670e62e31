package layout

// Point represents an (X, Y) coordinate in device-independent pixels.
type Point struct {
	X, Y float64
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(other Size) Size {
	return Size{
		Width:  max(s.Width, other.Width),
		Height: max(s.Height, other.Height),
	}
}
