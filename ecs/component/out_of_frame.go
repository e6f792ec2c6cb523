package component

import "github.com/milk9111/framerect"

// OutOfFrameMode selects what happens when a resolved rectangle escapes its
// frame.
type OutOfFrameMode int

const (
	// OutOfFrameNone leaves the rectangle where it resolved.
	OutOfFrameNone OutOfFrameMode = iota
	// OutOfFrameNudge translates the rectangle the minimal distance back
	// inside the frame.
	OutOfFrameNudge
	// OutOfFrameAnchorSwap retries the listed directions in order and keeps
	// the first whose rectangle fits; falls back to the original placement.
	OutOfFrameAnchorSwap
)

// AnchorDirection names a side of the parent to hang the rectangle off.
type AnchorDirection int

const (
	DirectionTop AnchorDirection = iota
	DirectionBottom
	DirectionLeft
	DirectionRight
)

// Anchors returns the child anchor and parent anchor that hang the rectangle
// off the direction's side.
func (d AnchorDirection) Anchors() (anchor, parentAnchor framerect.Anchor) {
	switch d {
	case DirectionTop:
		return framerect.BottomCenter, framerect.TopCenter
	case DirectionBottom:
		return framerect.TopCenter, framerect.BottomCenter
	case DirectionLeft:
		return framerect.CenterRight, framerect.CenterLeft
	default:
		return framerect.CenterLeft, framerect.CenterRight
	}
}

// OutOfFrame is the escape behavior for an entity's resolved rectangle.
type OutOfFrame struct {
	Mode OutOfFrameMode
	// Directions tried by AnchorSwap, in order.
	Directions []AnchorDirection
}

var OutOfFrameComponent = NewComponent[OutOfFrame]()
