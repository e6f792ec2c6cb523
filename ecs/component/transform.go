package component

import "github.com/milk9111/framerect"

// TransformComponent is the parent-relative output transform, the layer a
// host composes between its own parent and child transforms.
var TransformComponent = NewComponent[framerect.Transform]()
