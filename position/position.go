// Package position computes where a floating hint sits relative to its host
// element, including viewport-fit adjustment.
package position

import "fmt"

// Placement is the desired side of the host element.
type Placement int

const (
	Top Placement = iota
	Right
	Bottom
	Left
	Start // leading side, resolves to Left in left-to-right terminals
	End   // trailing side, resolves to Right
)

var placementNames = map[Placement]string{
	Top:    "top",
	Right:  "right",
	Bottom: "bottom",
	Left:   "left",
	Start:  "start",
	End:    "end",
}

// String returns the lowercase name of the placement.
func (p Placement) String() string {
	if name, ok := placementNames[p]; ok {
		return name
	}
	return fmt.Sprintf("placement(%d)", int(p))
}

// Resolve maps the logical Start/End placements onto physical sides.
func (p Placement) Resolve() Placement {
	switch p {
	case Start:
		return Left
	case End:
		return Right
	default:
		return p
	}
}

// ParsePlacement parses a placement name.
func ParsePlacement(s string) (Placement, error) {
	for p, name := range placementNames {
		if name == s {
			return p, nil
		}
	}
	return Top, fmt.Errorf("unknown placement %q", s)
}

// Adjustment is the rotation order attempted when the preferred placement
// does not fit the viewport.
type Adjustment int

const (
	None Adjustment = iota
	Clockwise
	Counterclockwise
)

var adjustmentNames = map[Adjustment]string{
	None:             "none",
	Clockwise:        "clockwise",
	Counterclockwise: "counterclockwise",
}

// String returns the lowercase name of the adjustment policy.
func (a Adjustment) String() string {
	if name, ok := adjustmentNames[a]; ok {
		return name
	}
	return fmt.Sprintf("adjustment(%d)", int(a))
}

// ParseAdjustment parses an adjustment policy name.
func ParseAdjustment(s string) (Adjustment, error) {
	for a, name := range adjustmentNames {
		if name == s {
			return a, nil
		}
	}
	return None, fmt.Errorf("unknown adjustment %q", s)
}
