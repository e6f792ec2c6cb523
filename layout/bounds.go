package layout

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Bounds is a dynamically sized layout: its dimension is the maximum of its
// children, clamped to Min and Max. Children keep their own anchors. With no
// constraints it acts as pure padding and is the default Container layout.
type Bounds struct {
	// Fixed axes use the container dimension instead of the children's.
	Fixed [2]bool
	// Min bounds of the computed dimension.
	Min cp.Vector
	// Max bounds of the computed dimension.
	Max cp.Vector
}

// DefaultBounds returns an unconstrained Bounds.
func DefaultBounds() Bounds {
	return Bounds{Max: cp.Vector{X: math.Inf(1), Y: math.Inf(1)}}
}

// BoundsFromMax returns a Bounds clamped from above.
func BoundsFromMax(max cp.Vector) Bounds {
	return Bounds{Max: max}
}

// BoundsFromMin returns a Bounds clamped from below.
func BoundsFromMin(min cp.Vector) Bounds {
	return Bounds{Min: min, Max: cp.Vector{X: math.Inf(1), Y: math.Inf(1)}}
}

func (b Bounds) Place(info Info, items []Item, rng *Range) Output {
	rng.Resolve(len(items))
	lo, hi := rng.Span(len(items))

	var maxDim cp.Vector
	anchors := make([]Placed, 0, hi-lo)
	for _, item := range items[lo:hi] {
		maxDim.X = maxf(maxDim.X, item.Dimension.X)
		maxDim.Y = maxf(maxDim.Y, item.Dimension.Y)
		anchors = append(anchors, Placed{Index: item.Index, Anchor: item.Anchor})
	}

	dim := cp.Vector{
		X: clampAxis(maxDim.X, b.Min.X, b.Max.X),
		Y: clampAxis(maxDim.Y, b.Min.Y, b.Max.Y),
	}
	if b.Fixed[0] {
		dim.X = info.Dimension.X
	}
	if b.Fixed[1] {
		dim.Y = info.Dimension.Y
	}
	return Output{Anchors: anchors, Dimension: dim, MaxCount: len(items)}
}

func (b Bounds) SizeAgnostic() bool {
	return !b.Fixed[0] && !b.Fixed[1]
}

func clampAxis(v, lo, hi float64) float64 {
	if hi != 0 && v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
