package framerect

import (
	"math"

	"github.com/jakecoffman/cp"
)

// RotatedRect is the resolved placement of a child: a rectangle in frame
// space with a rotation about its center.
//
// Scale is independent from Dimension; hit tests and bounds use both.
type RotatedRect struct {
	// Center of the rect.
	Center cp.Vector
	// Dimension of the rect.
	Dimension cp.Vector
	// Rotation of the rect, radians.
	Rotation float64
	// Z depth of the rect.
	Z float64
	// Scale of the rect.
	Scale cp.Vector
}

// ParentInfo is the part of a parent rectangle a child needs to resolve
// against.
type ParentInfo struct {
	// Dimension of the parent rect.
	Dimension cp.Vector
	// Anchor overrides the child's parent-side anchor when set. Containers
	// use this to pin laid-out children.
	Anchor *cp.Vector
}

// WithAnchor returns a copy with the anchor override set.
func (p ParentInfo) WithAnchor(anchor cp.Vector) ParentInfo {
	p.Anchor = &anchor
	return p
}

// Resolve computes a child's RotatedRect in its parent's anchor space.
//
// The child's anchor point lands on the parent's anchor point plus Offset;
// the rect center is then derived from the gap between the child's pivot and
// its own anchor.
func Resolve(parent ParentInfo, t Transform2D, dim cp.Vector) RotatedRect {
	parentAnchor := t.GetParentAnchor().Vector()
	if parent.Anchor != nil {
		parentAnchor = *parent.Anchor
	}
	root := hadamard(parent.Dimension, parentAnchor)
	gap := t.GetCenter().Vector().Sub(t.Anchor.Vector())
	center := root.Add(t.Offset).Add(hadamard(gap, dim))
	return RotatedRect{
		Center:    center,
		Dimension: dim,
		Rotation:  t.Rotation,
		Z:         t.Z,
		Scale:     t.Scale,
	}
}

// ResolveAt is Resolve with both anchors overridden, used when trying
// alternate anchor pairs for tooltips.
func ResolveAt(parent ParentInfo, t Transform2D, parentAnchor, anchor Anchor, dim cp.Vector) RotatedRect {
	t.Anchor = anchor
	t.ParentAnchor = parentAnchor
	if t.Center.IsInherit() {
		t.Center = anchor
	}
	return Resolve(parent, t, dim)
}

// AnchorPoint returns the position of an anchor on the rect, accounting for
// rotation.
func (r RotatedRect) AnchorPoint(a Anchor) cp.Vector {
	return a.ScaleBy(r.Dimension).Rotate(cp.ForAngle(r.Rotation)).Add(r.Center)
}

// HalfExtent returns half the scaled dimension.
func (r RotatedRect) HalfExtent() cp.Vector {
	return cp.Vector{
		X: math.Abs(r.Dimension.X*r.Scale.X) / 2,
		Y: math.Abs(r.Dimension.Y*r.Scale.Y) / 2,
	}
}

// LocalSpace maps a point into the rect's unrotated local space, centered on
// the rect center.
func (r RotatedRect) LocalSpace(p cp.Vector) cp.Vector {
	return p.Sub(r.Center).Rotate(cp.ForAngle(-r.Rotation))
}

// Contains reports whether a point lies inside the scaled, rotated rect.
func (r RotatedRect) Contains(p cp.Vector) bool {
	local := r.LocalSpace(p)
	half := r.HalfExtent()
	return math.Abs(local.X) <= half.X && math.Abs(local.Y) <= half.Y
}

// BB returns the axis-aligned bounds of the scaled, rotated rect.
func (r RotatedRect) BB() cp.BB {
	half := r.HalfExtent()
	cos := math.Abs(math.Cos(r.Rotation))
	sin := math.Abs(math.Sin(r.Rotation))
	ex := half.X*cos + half.Y*sin
	ey := half.X*sin + half.Y*cos
	return cp.BB{L: r.Center.X - ex, B: r.Center.Y - ey, R: r.Center.X + ex, T: r.Center.Y + ey}
}

// Inside reports whether the rect's bounds lie fully inside frame.
func (r RotatedRect) Inside(frame cp.BB) bool {
	return frame.Contains(r.BB())
}

// NudgeInside returns the smallest translation that moves the rect's bounds
// into frame. Axes where the rect is wider than the frame center instead.
func (r RotatedRect) NudgeInside(frame cp.BB) cp.Vector {
	bb := r.BB()
	return cp.Vector{
		X: nudgeAxis(bb.L, bb.R, frame.L, frame.R),
		Y: nudgeAxis(bb.B, bb.T, frame.B, frame.T),
	}
}

func nudgeAxis(lo, hi, frameLo, frameHi float64) float64 {
	if hi-lo > frameHi-frameLo {
		return (frameLo+frameHi)/2 - (lo+hi)/2
	}
	if lo < frameLo {
		return frameLo - lo
	}
	if hi > frameHi {
		return frameHi - hi
	}
	return 0
}

// TransformAt produces the output Transform for this rect with the given
// pivot anchor.
func (r RotatedRect) TransformAt(center Anchor) Transform {
	return Transform{
		Translation: r.AnchorPoint(center.Neg()),
		Z:           r.Z,
		Rotation:    r.Rotation,
		Scale:       r.Scale,
	}
}

func hadamard(a, b cp.Vector) cp.Vector {
	return cp.Vector{X: a.X * b.X, Y: a.Y * b.Y}
}
