package framerect

import "github.com/jakecoffman/cp"

// Transform2D describes where a child rectangle sits relative to its parent.
//
// If Offset is zero, Anchor on this rectangle and ParentAnchor on the parent
// rectangle overlap exactly.
type Transform2D struct {
	// Anchor matched on the child side.
	Anchor Anchor
	// ParentAnchor matched on the parent side. Inherit means same as Anchor.
	ParentAnchor Anchor
	// Center is the pivot of Rotation and Scale and the position of the
	// produced Transform. Inherit means same as Anchor.
	Center Anchor
	// Offset from the parent's anchor.
	Offset cp.Vector
	// Z depth relative to the parent.
	Z float64
	// Rotation around Center, radians.
	Rotation float64
	// Scale around Center.
	Scale cp.Vector
}

// Identity2D returns the identity placement: centered, no offset, unit scale,
// and a small positive z so siblings stack predictably.
func Identity2D() Transform2D {
	return Transform2D{
		Anchor:       Center,
		ParentAnchor: Inherit,
		Center:       Center,
		Z:            0.01,
		Scale:        cp.Vector{X: 1, Y: 1},
	}
}

// GetCenter resolves the pivot, falling back to Anchor.
func (t Transform2D) GetCenter() Anchor {
	return t.Center.Or(t.Anchor)
}

// GetParentAnchor resolves the parent-side anchor, falling back to Anchor.
func (t Transform2D) GetParentAnchor() Anchor {
	return t.ParentAnchor.Or(t.Anchor)
}

// WithAnchor sets the child-side anchor.
func (t Transform2D) WithAnchor(a Anchor) Transform2D {
	t.Anchor = a
	return t
}

// WithParentAnchor sets the parent-side anchor.
func (t Transform2D) WithParentAnchor(a Anchor) Transform2D {
	t.ParentAnchor = a
	return t
}

// WithCenter sets the pivot anchor.
func (t Transform2D) WithCenter(a Anchor) Transform2D {
	t.Center = a
	return t
}

// WithOffset sets the offset from the parent anchor.
func (t Transform2D) WithOffset(offset cp.Vector) Transform2D {
	t.Offset = offset
	return t
}

// WithZ sets the z depth.
func (t Transform2D) WithZ(z float64) Transform2D {
	t.Z = z
	return t
}

// WithRotation sets the rotation in radians.
func (t Transform2D) WithRotation(rot float64) Transform2D {
	t.Rotation = rot
	return t
}

// WithScale sets the scale.
func (t Transform2D) WithScale(scale cp.Vector) Transform2D {
	t.Scale = scale
	return t
}

// Transform is the resolved local transform of a child, the middle layer of a
// host-transform / Transform2D / host-transform sandwich. The host composes it
// between the frame entity's transform and the child's own.
type Transform struct {
	// Translation within the parent's plane.
	Translation cp.Vector
	// Z depth added to the parent's.
	Z float64
	// Rotation about the local z axis, radians.
	Rotation float64
	// Scale within the parent's plane.
	Scale cp.Vector
}

// IdentityTransform returns the no-op transform.
func IdentityTransform() Transform {
	return Transform{Scale: cp.Vector{X: 1, Y: 1}}
}
