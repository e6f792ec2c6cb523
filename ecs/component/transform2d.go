package component

import "github.com/milk9111/framerect"

// Transform2DComponent is the per-entity placement spec consumed by the
// layout pass.
var Transform2DComponent = NewComponent[framerect.Transform2D]()
