package layout

import (
	"fmt"
	"math"
	"sort"
)

// Item is one entry in a flex container: an opaque measurable plus the
// layout inputs the container needs to size and place it.
type Item struct {
	// Flex is the item's share weight for leftover main-axis space.
	// Zero means the item is sized from its own measurement.
	Flex float64

	// HasFixedMain forces the item's main-axis extent to FixedMain,
	// replacing its measured extent. A fixed main-axis size makes the
	// item non-flexible regardless of Flex.
	HasFixedMain bool
	FixedMain    float64

	// HasFixedCross forces the item's cross-axis extent to FixedCross.
	HasFixedCross bool
	FixedCross    float64

	// Measure reports the item's intrinsic size under a constraint.
	// A nil Measure marks a contentless item (a spacer): zero cross
	// extent and no intrinsic main extent of its own.
	Measure func(Constraint) Size
}

// flexible reports whether the item participates in leftover-space
// distribution. A fixed main-axis override wins over a flex weight.
func (it Item) flexible() bool {
	return it.Flex > 0 && !it.HasFixedMain
}

// Params is the immutable configuration of a flex container.
type Params struct {
	Axis       Axis
	MainAlign  MainAlignment
	CrossAlign CrossAlignment
	FillMain   bool // container takes the full main-axis extent allowed
}

// Arrange computes the container size and a frame for every item under
// the given constraint. Frames are in container-local coordinates and
// parallel the items slice. Arrange is a pure function of its inputs:
// calling it twice with the same arguments yields identical results.
//
// Negative flex weights and fixed extents are programmer errors and
// panic.
func Arrange(p Params, items []Item, bc Constraint) (Size, []Rect) {
	bc.check()
	for i, it := range items {
		if it.Flex < 0 || math.IsNaN(it.Flex) || math.IsInf(it.Flex, 0) {
			panic(fmt.Sprintf("flex: item %d has invalid flex weight %v", i, it.Flex))
		}
		if it.HasFixedMain && (it.FixedMain < 0 || math.IsNaN(it.FixedMain) || math.IsInf(it.FixedMain, 0)) {
			panic(fmt.Sprintf("flex: item %d has invalid fixed main extent %v", i, it.FixedMain))
		}
		if it.HasFixedCross && (it.FixedCross < 0 || math.IsNaN(it.FixedCross) || math.IsInf(it.FixedCross, 0)) {
			panic(fmt.Sprintf("flex: item %d has invalid fixed cross extent %v", i, it.FixedCross))
		}
	}

	axis := p.Axis
	mainMin, mainMax := axis.Major(bc.Min), axis.Major(bc.Max)
	crossMin, crossMax := axis.Minor(bc.Min), axis.Minor(bc.Max)

	mains := make([]float64, len(items))
	crosses := make([]float64, len(items))

	// Measurement pass: size every non-flexible item against the cross
	// constraint and the main-axis space not yet consumed.
	nonFlexTotal := 0.0
	for i, it := range items {
		if it.flexible() {
			continue
		}
		remaining := max(0, mainMax-nonFlexTotal)
		mains[i], crosses[i] = measureItem(p, it, bc, remaining)
		nonFlexTotal += mains[i]
	}

	// Distribution pass: flexible items split the leftover by weight.
	flexTotal := 0.0
	if leftover := max(0, mainMax-nonFlexTotal); hasFlexible(items) {
		weights := make([]float64, 0, len(items))
		for _, it := range items {
			if it.flexible() {
				weights = append(weights, it.Flex)
			}
		}
		shares := distribute(leftover, weights)

		k := 0
		for i, it := range items {
			if !it.flexible() {
				continue
			}
			mains[i] = shares[k]
			crosses[i] = measureFlexItem(p, it, bc, shares[k])
			flexTotal += shares[k]
			k++
		}
	}

	used := nonFlexTotal + flexTotal
	mainExtent := clamp(used, mainMin, mainMax)
	if p.FillMain {
		mainExtent = mainMax
	}

	maxCross := 0.0
	for _, c := range crosses {
		maxCross = max(maxCross, c)
	}
	crossExtent := clamp(maxCross, crossMin, crossMax)

	// Placement pass.
	slack := max(0, mainExtent-used)
	leading, between := p.MainAlign.spacing(slack, len(items))

	frames := make([]Rect, len(items))
	offset := leading
	for i, it := range items {
		crossSize := crosses[i]
		if p.CrossAlign == CrossFill && it.Measure != nil && !it.HasFixedCross {
			crossSize = crossExtent
		}
		origin := axis.PackPoint(offset, p.CrossAlign.offset(crossExtent, crossSize))
		size := axis.Pack(mains[i], crossSize)
		frames[i] = Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
		offset += mains[i] + between
	}

	return axis.Pack(mainExtent, crossExtent), frames
}

// measureItem returns the main and cross extents of a non-flexible item.
// The child constraint is the container's cross constraint, loosened,
// with the main axis capped by the space still unconsumed.
func measureItem(p Params, it Item, bc Constraint, remaining float64) (main, cross float64) {
	if it.Measure != nil {
		childBC := childConstraint(p, it, bc, 0, remaining)
		sz := it.Measure(childBC)
		main, cross = p.Axis.Major(sz), p.Axis.Minor(sz)
	}
	if it.HasFixedMain {
		main = it.FixedMain
	}
	if it.HasFixedCross {
		cross = it.FixedCross
	}
	return main, cross
}

// measureFlexItem returns the cross extent of a flexible item whose
// main-axis allocation is already decided. The item is re-measured with
// a tight main constraint so its content can adapt to the share.
func measureFlexItem(p Params, it Item, bc Constraint, share float64) float64 {
	cross := 0.0
	if it.Measure != nil {
		childBC := childConstraint(p, it, bc, share, share)
		cross = p.Axis.Minor(it.Measure(childBC))
	}
	if it.HasFixedCross {
		cross = it.FixedCross
	}
	return cross
}

// childConstraint builds the constraint an item is measured under.
func childConstraint(p Params, it Item, bc Constraint, minMain, maxMain float64) Constraint {
	if it.HasFixedMain {
		minMain, maxMain = it.FixedMain, it.FixedMain
	}

	minCross, maxCross := 0.0, p.Axis.Minor(bc.Max)
	if it.HasFixedCross {
		minCross, maxCross = it.FixedCross, it.FixedCross
	} else if p.CrossAlign == CrossFill {
		minCross = maxCross
	}

	return p.Axis.Constraint(minMain, maxMain, minCross, maxCross)
}

// hasFlexible reports whether any item participates in distribution.
func hasFlexible(items []Item) bool {
	for _, it := range items {
		if it.flexible() {
			return true
		}
	}
	return false
}

// distribute splits leftover across weights using largest-remainder
// allocation at whole-pixel granularity: each weight's ideal share is
// floored, then the remaining pixels are handed out one at a time in
// descending order of fractional remainder (ties resolve in item
// order), with any final sub-pixel residue going to the next item in
// that order. The returned shares sum to exactly leftover.
func distribute(leftover float64, weights []float64) []float64 {
	shares := make([]float64, len(weights))
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 || leftover <= 0 {
		return shares
	}

	type frac struct {
		index int
		rem   float64
	}
	fracs := make([]frac, len(weights))
	allocated := 0.0
	for i, w := range weights {
		ideal := leftover * w / total
		shares[i] = math.Floor(ideal)
		fracs[i] = frac{index: i, rem: ideal - shares[i]}
		allocated += shares[i]
	}

	sort.SliceStable(fracs, func(a, b int) bool { return fracs[a].rem > fracs[b].rem })
	for i := 0; allocated < leftover; i = (i + 1) % len(fracs) {
		give := min(1, leftover-allocated)
		shares[fracs[i].index] += give
		allocated += give
	}
	return shares
}
