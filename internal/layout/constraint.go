package layout

import (
	"fmt"
	"math"
)

// Constraint is a box constraint passed top-down during layout: the
// minimum and maximum size a child may take. All bounds are finite and
// non-negative, and Min never exceeds Max on either axis. Constructors
// panic on malformed bounds; silently clamping would mask configuration
// bugs in the caller.
type Constraint struct {
	Min, Max Size
}

// NewConstraint creates a Constraint with the given bounds.
func NewConstraint(minSize, maxSize Size) Constraint {
	c := Constraint{Min: minSize, Max: maxSize}
	c.check()
	return c
}

// Tight returns a Constraint that admits exactly one size.
func Tight(size Size) Constraint {
	return NewConstraint(size, size)
}

// Loose returns a Constraint with zero minimums and the given maximums.
func Loose(maxSize Size) Constraint {
	return NewConstraint(Size{}, maxSize)
}

func (c Constraint) check() {
	for _, b := range []float64{c.Min.Width, c.Min.Height, c.Max.Width, c.Max.Height} {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			panic(fmt.Sprintf("flex: non-finite constraint bound %v", c))
		}
		if b < 0 {
			panic(fmt.Sprintf("flex: negative constraint bound %v", c))
		}
	}
	if c.Min.Width > c.Max.Width || c.Min.Height > c.Max.Height {
		panic(fmt.Sprintf("flex: constraint min exceeds max %v", c))
	}
}

// Loosen returns a copy of the constraint with zero minimums.
func (c Constraint) Loosen() Constraint {
	return Constraint{Max: c.Max}
}

// IsTight returns true if the constraint admits exactly one size.
func (c Constraint) IsTight() bool {
	return c.Min == c.Max
}

// Constrain clamps size into the constraint's bounds.
func (c Constraint) Constrain(size Size) Size {
	return Size{
		Width:  clamp(size.Width, c.Min.Width, c.Max.Width),
		Height: clamp(size.Height, c.Min.Height, c.Max.Height),
	}
}

func (c Constraint) String() string {
	return fmt.Sprintf("[%gx%g, %gx%g]", c.Min.Width, c.Min.Height, c.Max.Width, c.Max.Height)
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
