package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/framerect/ecs"
	"github.com/milk9111/framerect/ecs/component"
)

// WindowFrameSystem sizes frames marked WindowFrame to the host's layout
// size. The host calls SetSize from its layout callback each frame.
type WindowFrameSystem struct {
	size cp.Vector
}

func NewWindowFrameSystem() *WindowFrameSystem { return &WindowFrameSystem{} }

// SetSize records the current layout size in pixels.
func (s *WindowFrameSystem) SetSize(width, height float64) {
	s.size = cp.Vector{X: width, Y: height}
}

func (s *WindowFrameSystem) Update(w *ecs.World) {
	if w == nil || s.size == (cp.Vector{}) {
		return
	}
	ecs.ForEach2(w, component.WindowFrameComponent, component.FrameComponent,
		func(e ecs.Entity, _ *component.WindowFrame, frame *component.Frame) {
			frame.Dimension = s.size
		})
}
