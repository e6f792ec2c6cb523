package component

import "github.com/milk9111/framerect/layout"

// Container marks an entity as laying out its children. The embedded
// layout.Container keeps the scroll range and last unit count across frames.
type Container struct {
	layout.Container
}

// NewContainer returns a container component using the given layout.
func NewContainer(l layout.Layout) Container {
	return Container{Container: layout.Container{Layout: l}}
}

var ContainerComponent = NewComponent[Container]()
