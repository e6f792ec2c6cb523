package ecs

import "github.com/milk9111/framerect/ecs/component"

// Add attaches a component to an entity, replacing any existing value. The
// pointer is stored as-is, so later mutation through Get is visible to every
// reader.
func Add[T any](w *World, e Entity, h component.Handle[T], v *T) error {
	if !h.Valid() {
		return component.ErrInvalidHandle
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.storage(h.ID(), true).Set(e, v)
	return nil
}

// Get returns the entity's component, or false when absent.
func Get[T any](w *World, e Entity, h component.Handle[T]) (*T, bool) {
	if w == nil || !IsAlive(w, e) {
		return nil, false
	}
	v := w.storage(h.ID(), false).Get(e)
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether the entity has the component.
func Has[T any](w *World, e Entity, h component.Handle[T]) bool {
	return w.HasComponent(e, h)
}

// Remove deletes the component from the entity.
func Remove[T any](w *World, e Entity, h component.Handle[T]) bool {
	return w.RemoveComponent(e, h)
}

// ForEach visits every live entity holding the component in insertion order.
// The callback may add or remove components on the visited entity.
func ForEach[T any](w *World, h component.Handle[T], fn func(e Entity, v *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.storage(h.ID(), false)
	entities := append([]Entity(nil), s.Entities()...)
	for _, e := range entities {
		if v, ok := Get(w, e, h); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities holding both components.
func ForEach2[A, B any](w *World, ha component.Handle[A], hb component.Handle[B], fn func(e Entity, a *A, b *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ha, hb) {
		a, ok := Get(w, e, ha)
		if !ok {
			continue
		}
		b, ok := Get(w, e, hb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

// ForEach3 visits entities holding all three components.
func ForEach3[A, B, C any](w *World, ha component.Handle[A], hb component.Handle[B], hc component.Handle[C], fn func(e Entity, a *A, b *B, c *C)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ha, hb, hc) {
		a, ok := Get(w, e, ha)
		if !ok {
			continue
		}
		b, ok := Get(w, e, hb)
		if !ok {
			continue
		}
		c, ok := Get(w, e, hc)
		if !ok {
			continue
		}
		fn(e, a, b, c)
	}
}
