package component

// PickLayer is a bitmask matched against a pointer's layer mask.
type PickLayer uint32

// DefaultPickLayer is the layer pointers use unless told otherwise.
const DefaultPickLayer PickLayer = 1

// Matches reports whether any layer bit overlaps the mask.
func (l PickLayer) Matches(mask PickLayer) bool {
	return l&mask != 0
}

// Pickable makes an entity's resolved rectangle hit-testable.
type Pickable struct {
	Layer PickLayer
}

// NewPickable returns a pickable on the default layer.
func NewPickable() Pickable {
	return Pickable{Layer: DefaultPickLayer}
}

var PickableComponent = NewComponent[Pickable]()
