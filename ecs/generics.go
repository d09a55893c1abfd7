package ecs

import "github.com/milk9111/brawler/ecs/component"

// Add attaches value to e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

// Get returns e's component of the given kind.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !w.entities.isAlive(e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e.id()).(*T)
	return v, ok
}

// Has reports whether e has a component of the given kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.entities.isAlive(e) && w.store(kind.ID(), false).Has(e.id())
}

// Remove detaches e's component of the given kind.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.id())
}

// ForEach calls fn for every live entity with a component of kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := w.store(kind.ID(), false)
	for i, id := range s.ids() {
		e, ok := w.entities.entity(id)
		if !ok {
			continue
		}
		fn(e, s.denseValues[i].(*T))
	}
}

// ForEach2 calls fn for every entity holding both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range Query(w, ka.ID(), kb.ID()) {
		a, _ := Get(w, e, ka)
		b, _ := Get(w, e, kb)
		fn(e, a, b)
	}
}

// ForEach3 calls fn for every entity holding all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range Query(w, ka.ID(), kb.ID(), kc.ID()) {
		a, _ := Get(w, e, ka)
		b, _ := Get(w, e, kb)
		c, _ := Get(w, e, kc)
		fn(e, a, b, c)
	}
}
