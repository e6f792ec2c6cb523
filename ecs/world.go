package ecs

import "github.com/milk9111/framerect/ecs/component"

// World owns entities, their components, and the hierarchy between them.
// Systems receive the world each frame through a Scheduler.
type World struct {
	entities entityStore
	stores   map[component.ID]*SparseSet
	events   EventQueue

	parents  map[Entity]Entity
	children map[Entity][]Entity
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		stores:   make(map[component.ID]*SparseSet),
		parents:  make(map[Entity]Entity),
		children: make(map[Entity][]Entity),
	}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes the entity, its components, and its hierarchy links.
// Children are orphaned, not destroyed. Returns false for dead handles.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	w.ClearParent(e)
	for _, child := range w.children[e] {
		delete(w.parents, child)
	}
	delete(w.children, e)
	return true
}

// IsAlive reports whether the handle refers to a live entity.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns all live entities in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// storage returns the set for a component id, creating it on demand.
func (w *World) storage(id component.ID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// HasComponent reports whether the entity has the component.
func (w *World) HasComponent(e Entity, kind component.KindID) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.storage(kind.ID(), false).Has(e)
}

// RemoveComponent deletes the component from the entity if present.
func (w *World) RemoveComponent(e Entity, kind component.KindID) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.storage(kind.ID(), false).Remove(e)
}

// Query returns the live entities holding every given component, iterating
// the smallest store. Order follows that store's insertion order.
func (w *World) Query(kinds ...component.KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, len(kinds))
	smallest := 0
	for i, k := range kinds {
		sets[i] = w.storage(k.ID(), false)
		if sets[i].Len() == 0 {
			return nil
		}
		if sets[i].Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	out := make([]Entity, 0, sets[smallest].Len())
outer:
	for _, e := range sets[smallest].Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		for i, s := range sets {
			if i != smallest && !s.Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetParent attaches child under parent, detaching any previous parent.
// Children keep insertion order, which downstream layout relies on.
func (w *World) SetParent(child, parent Entity) {
	if w == nil || !w.entities.isAlive(child) || !w.entities.isAlive(parent) || child == parent {
		return
	}
	w.ClearParent(child)
	w.parents[child] = parent
	w.children[parent] = append(w.children[parent], child)
}

// ClearParent detaches the entity from its parent, if any.
func (w *World) ClearParent(child Entity) {
	if w == nil {
		return
	}
	parent, ok := w.parents[child]
	if !ok {
		return
	}
	delete(w.parents, child)
	siblings := w.children[parent]
	for i, e := range siblings {
		if e == child {
			w.children[parent] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
}

// Parent returns the entity's parent.
func (w *World) Parent(e Entity) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	p, ok := w.parents[e]
	return p, ok
}

// Children returns the entity's children in attachment order. Dead children
// are skipped; the caller owns the returned slice.
func (w *World) Children(e Entity) []Entity {
	if w == nil {
		return nil
	}
	kids := w.children[e]
	out := make([]Entity, 0, len(kids))
	for _, c := range kids {
		if w.entities.isAlive(c) {
			out = append(out, c)
		}
	}
	return out
}
