package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/framerect/ecs"
	"github.com/milk9111/framerect/ecs/component"
)

// SpriteSyncSystem keeps sprite sizes and entity Dimensions in agreement,
// per each sprite's SyncDimension mode. Runs before the layout pass so
// containers see up-to-date item sizes.
type SpriteSyncSystem struct{}

func NewSpriteSyncSystem() *SpriteSyncSystem { return &SpriteSyncSystem{} }

func (s *SpriteSyncSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.SpriteComponent, func(e ecs.Entity, sprite *component.Sprite) {
		if sprite.Sync == component.SyncNone {
			return
		}

		if sprite.Sync == component.SyncToDimension {
			size := sprite.Size()
			if d, ok := ecs.Get(w, e, component.DimensionComponent); ok {
				d.Size = size
			} else {
				setComponent(w, e, component.DimensionComponent, component.Dimension{Size: size})
			}
			return
		}

		d, ok := ecs.Get(w, e, component.DimensionComponent)
		if !ok {
			return
		}
		switch sprite.Sync {
		case component.SyncFromDimension:
			size := d.Size
			sprite.CustomSize = &size
		case component.SyncFromAspect:
			ratio := sprite.AspectRatio()
			if ratio <= 0 {
				return
			}
			// largest box with the image aspect that fits the dimension
			width := d.Size.X
			if h := width / ratio; h > d.Size.Y {
				width = d.Size.Y * ratio
			}
			sprite.CustomSize = &cp.Vector{X: width, Y: width / ratio}
		case component.SyncFromAspectX:
			ratio := sprite.AspectRatio()
			if ratio <= 0 {
				return
			}
			d.Size.Y = d.Size.X / ratio
			size := d.Size
			sprite.CustomSize = &size
		case component.SyncFromAspectY:
			ratio := sprite.AspectRatio()
			if ratio <= 0 {
				return
			}
			d.Size.X = d.Size.Y * ratio
			size := d.Size
			sprite.CustomSize = &size
		}
	})
}
