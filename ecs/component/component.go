package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
	ErrInvalidHandle  = errors.New("ecs: invalid component handle")
)

// ID identifies a component type at runtime. Ids are process-global and
// assigned in registration order; 0 is never issued.
type ID uint32

var nextID atomic.Uint32

// Handle is a typed key into a world's storage for one component type.
// Declare one package-level handle per component:
//
//	var FrameComponent = component.NewComponent[Frame]()
type Handle[T any] struct {
	id ID
}

// NewComponent registers a new component type and returns its handle.
func NewComponent[T any]() Handle[T] {
	return Handle[T]{id: ID(nextID.Add(1))}
}

func (h Handle[T]) ID() ID {
	return h.id
}

func (h Handle[T]) Valid() bool {
	return h.id != 0
}

// KindID is the type-erased view of a handle, for heterogeneous queries.
type KindID interface {
	ID() ID
}
