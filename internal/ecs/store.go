package ecs

// AnyStore is the type-erased view of a component store used for uniform
// entity cleanup.
type AnyStore interface {
	Remove(e Entity)
	Has(e Entity) bool
	Len() int
	Entities() []Entity
}

// Store is a sparse-set container for one component type. Values live in a
// dense slice so iteration is cache friendly; the index map gives O(1)
// lookup. Removal swaps the last element into the hole, so iteration order
// is insertion order until the first removal.
type Store[T any] struct {
	index    map[Entity]int
	entities []Entity
	values   []T
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[Entity]int),
		entities: make([]Entity, 0, 16),
		values:   make([]T, 0, 16),
	}
}

// Set inserts or replaces the component of e.
func (s *Store[T]) Set(e Entity, v T) {
	if i, ok := s.index[e]; ok {
		s.values[i] = v
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, v)
}

// Get returns a copy of the component of e.
func (s *Store[T]) Get(e Entity) (T, bool) {
	if i, ok := s.index[e]; ok {
		return s.values[i], true
	}
	var zero T
	return zero, false
}

// Ptr returns a pointer to the stored component, valid until the next Set
// of a new entity or Remove on this store.
func (s *Store[T]) Ptr(e Entity) *T {
	if i, ok := s.index[e]; ok {
		return &s.values[i]
	}
	return nil
}

// Has reports whether e carries this component.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Remove detaches the component from e. Missing entities are ignored.
func (s *Store[T]) Remove(e Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		moved := s.entities[last]
		s.entities[i] = moved
		s.values[i] = s.values[last]
		s.index[moved] = i
	}
	var zero T
	s.values[last] = zero
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	delete(s.index, e)
}

// Len returns the number of entities in the store.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Entities returns a snapshot of the entities in iteration order. The
// snapshot stays valid while the caller removes entities.
func (s *Store[T]) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Each calls fn with a pointer to every component in iteration order.
// fn must not add or remove components of this type.
func (s *Store[T]) Each(fn func(e Entity, v *T)) {
	for i := range s.entities {
		fn(s.entities[i], &s.values[i])
	}
}
