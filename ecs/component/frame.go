package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/framerect"
)

// Frame is the root region of a layout tree. Descendants of a Frame entity
// resolve their rectangles in the frame's space; the frame itself sits so
// that its At anchor lands on the origin.
type Frame struct {
	Dimension cp.Vector
	At        framerect.Anchor
	Z         float64
}

// FrameFromDimension returns a frame of the given size centered on the origin.
func FrameFromDimension(dim cp.Vector) Frame {
	return Frame{Dimension: dim, At: framerect.Center}
}

// FrameFromAnchorDimension returns a frame whose at anchor sits on the origin.
func FrameFromAnchorDimension(at framerect.Anchor, dim cp.Vector) Frame {
	return Frame{Dimension: dim, At: at}
}

func (f Frame) WithZ(z float64) Frame {
	f.Z = z
	return f
}

// Rect returns the frame's resolved rectangle.
func (f Frame) Rect() framerect.RotatedRect {
	return framerect.RotatedRect{
		Center:    f.At.ScaleBy(f.Dimension).Neg(),
		Dimension: f.Dimension,
		Z:         f.Z,
		Scale:     cp.Vector{X: 1, Y: 1},
	}
}

var FrameComponent = NewComponent[Frame]()
