package flex

import (
	"fmt"
	"math"

	"github.com/grindlemire/go-flex/internal/layout"
)

// DefaultSpacerLen is the fixed spacer length used when the caller has
// no better value, in device-independent pixels.
const DefaultSpacerLen = 8.0

// AddSpacer appends a fixed gap of the given main-axis length. The
// spacer has zero cross extent and contributes its length to the
// container's content size like any non-flexible item. A negative or
// non-finite length panics.
func (f *Flex[S]) AddSpacer(length float64) *Flex[S] {
	if length < 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		panic(fmt.Sprintf("flex: invalid spacer length %v", length))
	}
	f.children = append(f.children, flexChild[S]{
		item: layout.Item{HasFixedMain: true, FixedMain: length},
	})
	return f
}

// AddFlexSpacer appends a flexible gap that takes the given share of
// leftover main-axis space, behaving as a zero-content item with that
// flex weight. A non-positive or non-finite weight panics.
func (f *Flex[S]) AddFlexSpacer(weight float64) *Flex[S] {
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		panic(fmt.Sprintf("flex: invalid flex spacer weight %v", weight))
	}
	f.children = append(f.children, flexChild[S]{
		item: layout.Item{Flex: weight},
	})
	return f
}
