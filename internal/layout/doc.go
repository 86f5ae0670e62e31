// Package layout implements the constraint-based flex layout engine.
//
// It arranges an ordered sequence of items along a main axis (row or
// column), distributing leftover space to flexible items by weight and
// positioning the remainder according to main- and cross-axis alignment
// policies. Types are re-exported through the root flex package for
// public consumption.
//
// The main entry point is [Arrange], which takes [Params], a slice of
// [Item], and a [Constraint], and returns the container size plus a
// frame for every item.
package layout
