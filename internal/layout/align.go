package layout

// MainAlignment specifies how items are distributed along the main axis
// when slack remains after sizing.
type MainAlignment uint8

const (
	MainStart        MainAlignment = iota // Pack at the leading edge
	MainCenter                            // Center the whole run
	MainEnd                               // Pack at the trailing edge
	MainSpaceBetween                      // Equal gaps strictly between items, none at edges
	MainSpaceEvenly                       // Equal gaps before, between, and after items
	MainSpaceAround                       // Gaps between items, half-size gaps at each edge
)

func (m MainAlignment) String() string {
	switch m {
	case MainStart:
		return "start"
	case MainCenter:
		return "center"
	case MainEnd:
		return "end"
	case MainSpaceBetween:
		return "space-between"
	case MainSpaceEvenly:
		return "space-evenly"
	case MainSpaceAround:
		return "space-around"
	default:
		return "unknown"
	}
}

// spacing returns the gap before the first item and between adjacent
// items for the given slack and item count. Slack at or below zero and
// degenerate counts produce no gaps: SpaceBetween with one item behaves
// as Start.
func (m MainAlignment) spacing(slack float64, itemCount int) (leading, between float64) {
	if slack <= 0 || itemCount == 0 {
		return 0, 0
	}

	switch m {
	case MainEnd:
		return slack, 0
	case MainCenter:
		return slack / 2, 0
	case MainSpaceBetween:
		if itemCount <= 1 {
			return 0, 0
		}
		return 0, slack / float64(itemCount-1)
	case MainSpaceEvenly:
		gap := slack / float64(itemCount+1)
		return gap, gap
	case MainSpaceAround:
		gap := slack / float64(itemCount)
		return gap / 2, gap
	default: // MainStart
		return 0, 0
	}
}

// CrossAlignment specifies how items are positioned along the cross axis
// within the container's cross extent.
type CrossAlignment uint8

const (
	CrossStart  CrossAlignment = iota // Flush to the leading edge
	CrossCenter                       // Centered
	CrossEnd                          // Flush to the trailing edge
	CrossFill                         // Stretched to the full cross extent
)

func (c CrossAlignment) String() string {
	switch c {
	case CrossStart:
		return "start"
	case CrossCenter:
		return "center"
	case CrossEnd:
		return "end"
	case CrossFill:
		return "fill"
	default:
		return "unknown"
	}
}

// offset returns the cross-axis position of an item of the given extent
// within the container's cross extent.
func (c CrossAlignment) offset(containerCross, itemCross float64) float64 {
	switch c {
	case CrossEnd:
		return containerCross - itemCross
	case CrossCenter:
		return (containerCross - itemCross) / 2
	default: // CrossStart, CrossFill
		return 0
	}
}
