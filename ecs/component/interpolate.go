package component

import "github.com/milk9111/framerect"

// InterpolateMode selects how the output transform approaches its target.
type InterpolateMode int

const (
	// InterpolateNone snaps to the target every frame.
	InterpolateNone InterpolateMode = iota
	// InterpolateExponentialDecay moves a fixed fraction of the remaining
	// distance toward the target each frame.
	InterpolateExponentialDecay
)

// Interpolate smooths an entity's output transform across frames.
type Interpolate struct {
	Mode InterpolateMode
	// Factor is the per-frame fraction covered, 0..1. 1 snaps.
	Factor float64

	// Last is the smoothed transform of the previous frame. The layout
	// system owns it; Started is false until the first placement.
	Last    framerect.Transform
	Started bool
}

var InterpolateComponent = NewComponent[Interpolate]()
