// Package ecs holds simulation entities and their components.
// It is single-threaded: the owning simulation is the only caller.
package ecs

import (
	"slices"

	"github.com/vovakirdan/tui-flappy/internal/component"
)

// Entity is an opaque handle. Handles are never reused within a World.
type Entity uint64

// World is the central entity registry and the typed component stores.
type World struct {
	nextID Entity
	alive  map[Entity]bool

	Players      *Store[component.Player]
	Transforms   *Store[component.Transform]
	Velocities   *Store[component.Velocity]
	Gravities    *Store[component.Gravity]
	Sprites      *Store[component.Sprite]
	Hitboxes     *Store[component.Hitbox]
	Pipes        *Store[component.Pipe]
	ScoreGates   *Store[component.ScoreGate]
	Despawnables *Store[component.Despawnable]
	Parallaxes   *Store[component.Parallax]
	Messages     *Store[component.Message]

	allStores []AnyStore
}

// NewWorld creates an empty World.
func NewWorld() *World {
	w := &World{
		nextID:       1,
		alive:        make(map[Entity]bool),
		Players:      NewStore[component.Player](),
		Transforms:   NewStore[component.Transform](),
		Velocities:   NewStore[component.Velocity](),
		Gravities:    NewStore[component.Gravity](),
		Sprites:      NewStore[component.Sprite](),
		Hitboxes:     NewStore[component.Hitbox](),
		Pipes:        NewStore[component.Pipe](),
		ScoreGates:   NewStore[component.ScoreGate](),
		Despawnables: NewStore[component.Despawnable](),
		Parallaxes:   NewStore[component.Parallax](),
		Messages:     NewStore[component.Message](),
	}
	w.allStores = []AnyStore{
		w.Players, w.Transforms, w.Velocities, w.Gravities, w.Sprites,
		w.Hitboxes, w.Pipes, w.ScoreGates, w.Despawnables, w.Parallaxes,
		w.Messages,
	}
	return w
}

// CreateEntity mints a new entity handle and marks it alive.
func (w *World) CreateEntity() Entity {
	e := w.nextID
	w.nextID++
	w.alive[e] = true
	return e
}

// DestroyEntity removes the entity and all of its components.
// Destroying a dead or unknown entity is a no-op.
func (w *World) DestroyEntity(e Entity) {
	if !w.alive[e] {
		return
	}
	delete(w.alive, e)
	for _, s := range w.allStores {
		s.Remove(e)
	}
}

// Alive reports whether the entity exists.
func (w *World) Alive(e Entity) bool {
	return w.alive[e]
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return len(w.alive)
}

// Player returns the player entity, if one exists.
func (w *World) Player() (Entity, bool) {
	if w.Players.Len() == 0 {
		return 0, false
	}
	return w.Players.entities[0], true
}

// Query returns live entities that carry every listed store's component,
// in ascending handle order. The smallest store supplies the candidates.
func (w *World) Query(stores ...AnyStore) []Entity {
	if len(stores) == 0 {
		return nil
	}
	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	var result []Entity
	for _, e := range smallest.Entities() {
		if !w.alive[e] {
			continue
		}
		match := true
		for _, s := range stores {
			if s != smallest && !s.Has(e) {
				match = false
				break
			}
		}
		if match {
			result = append(result, e)
		}
	}
	slices.Sort(result)
	return result
}
