package component

import "github.com/jakecoffman/cp"

// Dimension is the suggested size of an entity's rectangle. Sprite and label
// sync systems write it; containers may override it during placement.
type Dimension struct {
	Size cp.Vector
}

var DimensionComponent = NewComponent[Dimension]()
