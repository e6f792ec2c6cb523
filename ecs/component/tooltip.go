package component

// Tooltip places an entity off a side of its parent, trying directions in
// order until the resolved rectangle fits inside the frame.
type Tooltip struct {
	Directions []AnchorDirection
}

// NewTooltip returns a tooltip preferring above, then below, then the sides.
func NewTooltip() Tooltip {
	return Tooltip{Directions: []AnchorDirection{
		DirectionTop, DirectionBottom, DirectionLeft, DirectionRight,
	}}
}

var TooltipComponent = NewComponent[Tooltip]()
