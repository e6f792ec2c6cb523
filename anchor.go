package framerect

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Anchor is a point in a rectangle's unit space, ranging from (-0.5, -0.5)
// at the bottom left to (0.5, 0.5) at the top right.
type Anchor struct {
	X, Y float64
}

var (
	// Inherit falls back to another anchor when resolved. See Anchor.Or.
	Inherit = Anchor{math.NaN(), math.NaN()}

	BottomLeft   = Anchor{-0.5, -0.5}
	BottomCenter = Anchor{0, -0.5}
	BottomRight  = Anchor{0.5, -0.5}
	CenterLeft   = Anchor{-0.5, 0}
	Center       = Anchor{0, 0}
	CenterRight  = Anchor{0.5, 0}
	TopLeft      = Anchor{-0.5, 0.5}
	TopCenter    = Anchor{0, 0.5}
	TopRight     = Anchor{0.5, 0.5}
)

// AnchorAt creates a custom anchor.
func AnchorAt(x, y float64) Anchor {
	return Anchor{X: x, Y: y}
}

// IsInherit reports whether this anchor defers to a fallback.
func (a Anchor) IsInherit() bool {
	return math.IsNaN(a.X) || math.IsNaN(a.Y)
}

// Or returns a, or other if a is Inherit.
func (a Anchor) Or(other Anchor) Anchor {
	if a.IsInherit() {
		return other
	}
	return a
}

// Vector returns the anchor as a plain vector.
func (a Anchor) Vector() cp.Vector {
	return cp.Vector{X: a.X, Y: a.Y}
}

// Unit shifts the anchor into 0..1 space.
func (a Anchor) Unit() cp.Vector {
	return cp.Vector{X: a.X + 0.5, Y: a.Y + 0.5}
}

// Neg mirrors the anchor through the center.
func (a Anchor) Neg() Anchor {
	return Anchor{X: -a.X, Y: -a.Y}
}

// ScaleBy multiplies the anchor componentwise by a dimension, yielding the
// offset of the anchor point from the rectangle's center.
func (a Anchor) ScaleBy(dim cp.Vector) cp.Vector {
	return cp.Vector{X: a.X * dim.X, Y: a.Y * dim.Y}
}

// anchorEpsilon buckets near-axis anchors when naming and when layouts sort
// items into start/center/end groups.
const anchorEpsilon = 0.16

// Name returns the nearest named anchor, or "Inherit".
func (a Anchor) Name() string {
	if a.IsInherit() {
		return "Inherit"
	}
	switch {
	case a.X < -anchorEpsilon && a.Y < -anchorEpsilon:
		return "BottomLeft"
	case a.X < -anchorEpsilon && a.Y > anchorEpsilon:
		return "TopLeft"
	case a.X < -anchorEpsilon:
		return "CenterLeft"
	case a.X > anchorEpsilon && a.Y < -anchorEpsilon:
		return "BottomRight"
	case a.X > anchorEpsilon && a.Y > anchorEpsilon:
		return "TopRight"
	case a.X > anchorEpsilon:
		return "CenterRight"
	case a.Y < -anchorEpsilon:
		return "BottomCenter"
	case a.Y > anchorEpsilon:
		return "TopCenter"
	default:
		return "Center"
	}
}

// ParseAnchor maps a snake_case anchor name to its value. Used by prefab
// specs; unknown names report false.
func ParseAnchor(name string) (Anchor, bool) {
	switch name {
	case "bottom_left":
		return BottomLeft, true
	case "bottom_center", "bottom":
		return BottomCenter, true
	case "bottom_right":
		return BottomRight, true
	case "center_left", "left":
		return CenterLeft, true
	case "center", "":
		return Center, true
	case "center_right", "right":
		return CenterRight, true
	case "top_left":
		return TopLeft, true
	case "top_center", "top":
		return TopCenter, true
	case "top_right":
		return TopRight, true
	case "inherit":
		return Inherit, true
	}
	return Anchor{}, false
}
