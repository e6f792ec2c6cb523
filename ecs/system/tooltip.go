package system

import (
	"github.com/milk9111/framerect/ecs"
	"github.com/milk9111/framerect/ecs/component"
)

// TooltipSystem translates Tooltip direction preferences into the anchor-swap
// out-of-frame behavior the layout pass applies. Runs before LayoutSystem.
type TooltipSystem struct{}

func NewTooltipSystem() *TooltipSystem { return &TooltipSystem{} }

func (s *TooltipSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.TooltipComponent, func(e ecs.Entity, tip *component.Tooltip) {
		if len(tip.Directions) == 0 {
			return
		}
		if oof, ok := ecs.Get(w, e, component.OutOfFrameComponent); ok {
			oof.Mode = component.OutOfFrameAnchorSwap
			oof.Directions = tip.Directions
			return
		}
		setComponent(w, e, component.OutOfFrameComponent, component.OutOfFrame{
			Mode:       component.OutOfFrameAnchorSwap,
			Directions: tip.Directions,
		})
	})
}
