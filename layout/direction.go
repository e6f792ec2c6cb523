package layout

import "github.com/jakecoffman/cp"

// Direction is the main axis of a flow layout.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
	BottomToTop
	TopToBottom
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	case BottomToTop:
		return "BottomToTop"
	case TopToBottom:
		return "TopToBottom"
	}
	return "Unknown"
}

func (d Direction) horizontal() bool {
	return d == LeftToRight || d == RightToLeft
}

// reversed reports whether the flow runs against the axis (x grows right,
// y grows up).
func (d Direction) reversed() bool {
	return d == RightToLeft || d == TopToBottom
}

// main extracts the main-axis component of v.
func (d Direction) main(v cp.Vector) float64 {
	if d.horizontal() {
		return v.X
	}
	return v.Y
}

// cross extracts the cross-axis component of v.
func (d Direction) cross(v cp.Vector) float64 {
	if d.horizontal() {
		return v.Y
	}
	return v.X
}

// flowAnchor converts a main-axis anchor component into flow coordinates,
// where the flow always starts at the low end.
func (d Direction) flowAnchor(anc float64) float64 {
	if d.reversed() {
		return -anc
	}
	return anc
}

// compose builds a vector from main and cross axis components.
func (d Direction) compose(main, cross float64) cp.Vector {
	if d.horizontal() {
		return cp.Vector{X: main, Y: cross}
	}
	return cp.Vector{X: cross, Y: main}
}

// orthogonal returns a valid cross direction for d, preferring want when it
// is on the other axis.
func (d Direction) orthogonal(want Direction) Direction {
	if d.horizontal() != want.horizontal() {
		return want
	}
	if d.horizontal() {
		return TopToBottom
	}
	return LeftToRight
}
