// Package component implements per-node typed attachments.
//
// A Store holds at most one component per Kind. Components are live values:
// changing a field on a component returned by Get does not notify anyone, so
// owners that render from component state must signal changes themselves.
package component

import "sort"

// Kind identifies a component type.
type Kind string

// Component is a value that can be attached to a node.
type Component interface {
	Kind() Kind
}

// Store maps kinds to attached components.
type Store struct {
	slots map[Kind]Component
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{slots: make(map[Kind]Component)}
}

// Add attaches c, replacing any component of the same kind.
func (s *Store) Add(c Component) {
	if c == nil {
		return
	}
	if s.slots == nil {
		s.slots = make(map[Kind]Component)
	}
	s.slots[c.Kind()] = c
}

// Remove detaches the component of kind k and reports whether one was present.
func (s *Store) Remove(k Kind) bool {
	if _, ok := s.slots[k]; !ok {
		return false
	}
	delete(s.slots, k)
	return true
}

// Has reports whether a component of kind k is attached.
func (s *Store) Has(k Kind) bool {
	_, ok := s.slots[k]
	return ok
}

// Get returns the component of kind k.
func (s *Store) Get(k Kind) (Component, bool) {
	c, ok := s.slots[k]
	return c, ok
}

// Kinds lists the attached kinds in lexical order.
func (s *Store) Kinds() []Kind {
	kinds := make([]Kind, 0, len(s.slots))
	for k := range s.slots {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Len returns the number of attached components.
func (s *Store) Len() int {
	return len(s.slots)
}

// Clear detaches everything.
func (s *Store) Clear() {
	for k := range s.slots {
		delete(s.slots, k)
	}
}

// As returns the component of kind k asserted to T.
func As[T Component](s *Store, k Kind) (T, bool) {
	var zero T
	c, ok := s.Get(k)
	if !ok {
		return zero, false
	}
	typed, ok := c.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
