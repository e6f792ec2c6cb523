package framerect

import "github.com/jakecoffman/cp"

// Affine is a translate/rotate/scale chain accumulated while walking from a
// frame root down to a child. It carries the rect outputs from parent anchor
// space into frame space.
type Affine struct {
	Translation cp.Vector
	Z           float64
	Rotation    float64
	Scale       cp.Vector
}

// IdentityAffine returns the identity chain.
func IdentityAffine() Affine {
	return Affine{Scale: cp.Vector{X: 1, Y: 1}}
}

// Apply maps a point from local space into this chain's space.
func (a Affine) Apply(v cp.Vector) cp.Vector {
	return hadamard(v, a.Scale).Rotate(cp.ForAngle(a.Rotation)).Add(a.Translation)
}

// Unapply maps a point from this chain's space back into local space.
// Zero scale axes collapse to zero.
func (a Affine) Unapply(v cp.Vector) cp.Vector {
	local := v.Sub(a.Translation).Rotate(cp.ForAngle(-a.Rotation))
	return cp.Vector{X: safeDiv(local.X, a.Scale.X), Y: safeDiv(local.Y, a.Scale.Y)}
}

// Mul composes a child chain inside this one.
func (a Affine) Mul(child Affine) Affine {
	return Affine{
		Translation: a.Apply(child.Translation),
		Z:           a.Z + child.Z,
		Rotation:    a.Rotation + child.Rotation,
		Scale:       hadamard(a.Scale, child.Scale),
	}
}

// ApplyRect carries a rect resolved in local space into this chain's space.
func (a Affine) ApplyRect(r RotatedRect) RotatedRect {
	return RotatedRect{
		Center:    a.Apply(r.Center),
		Dimension: r.Dimension,
		Rotation:  r.Rotation + a.Rotation,
		Z:         r.Z + a.Z,
		Scale:     hadamard(r.Scale, a.Scale),
	}
}

// ChainAt returns the chain a rect contributes for its children, pivoting at
// the given center anchor.
func (r RotatedRect) ChainAt(center Anchor) Affine {
	return Affine{
		Translation: r.AnchorPoint(center.Neg()),
		Z:           r.Z,
		Rotation:    r.Rotation,
		Scale:       r.Scale,
	}
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
