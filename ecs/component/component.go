// Package component declares the brawler's ECS component types. Each type has
// a package-level handle used to attach, fetch and query it.
package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a component store within a world. Zero is never issued.
type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind ties a component ID to the Go type stored under it.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind issues a fresh ID. Kinds are process-wide, so worlds
// created later share them.
func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(lastComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

// Valid is false for the zero kind.
func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

func (k ComponentKind[T]) String() string {
	var zero T
	return fmt.Sprintf("%T#%d", zero, k.id)
}

// ComponentHandle is the package-level entry point for one component type,
// e.g. CharacterStatusComponent.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

// ID is shorthand for Kind().ID(), handy when building queries.
func (h ComponentHandle[T]) ID() ComponentID {
	return h.kind.id
}
