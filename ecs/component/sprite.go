package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// SyncDimension selects how a sprite's size and the entity's Dimension feed
// each other.
type SyncDimension int

const (
	// SyncNone leaves both alone.
	SyncNone SyncDimension = iota
	// SyncToDimension writes the sprite's size into Dimension.
	SyncToDimension
	// SyncFromDimension sizes the sprite from Dimension.
	SyncFromDimension
	// SyncFromAspect sizes the sprite to fit inside Dimension keeping the
	// image aspect ratio.
	SyncFromAspect
	// SyncFromAspectX keeps Dimension's width and derives the height from
	// the image aspect ratio.
	SyncFromAspectX
	// SyncFromAspectY keeps Dimension's height and derives the width.
	SyncFromAspectY
)

// Sprite is a drawable image attached to an entity's rectangle.
type Sprite struct {
	Image *ebiten.Image
	// CustomSize overrides the image bounds as the sprite's size.
	CustomSize *cp.Vector
	Sync       SyncDimension
}

// Size returns the sprite's current size: the custom size if set, else the
// image bounds, else zero.
func (s Sprite) Size() cp.Vector {
	if s.CustomSize != nil {
		return *s.CustomSize
	}
	if s.Image == nil {
		return cp.Vector{}
	}
	b := s.Image.Bounds()
	return cp.Vector{X: float64(b.Dx()), Y: float64(b.Dy())}
}

// AspectRatio returns width over height of the backing image, or 0.
func (s Sprite) AspectRatio() float64 {
	if s.Image == nil {
		return 0
	}
	b := s.Image.Bounds()
	if b.Dy() == 0 {
		return 0
	}
	return float64(b.Dx()) / float64(b.Dy())
}

var SpriteComponent = NewComponent[Sprite]()
