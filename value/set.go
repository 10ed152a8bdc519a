package value

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Set is a collection of unique comparable members that remembers insertion
// order. The zero value is an empty set ready to use.
type Set struct {
	items []any
	index map[any]struct{}
}

// NewSet creates a set from items, dropping duplicates and members that are
// not comparable.
func NewSet(items ...any) *Set {
	s := &Set{index: make(map[any]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.items) }

// Add inserts item and reports whether it was newly added.
func (s *Set) Add(item any) bool {
	if !Comparable(item) || s.Has(item) {
		return false
	}
	if s.index == nil {
		s.index = make(map[any]struct{})
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

// Has reports whether item is a member.
func (s *Set) Has(item any) bool {
	if !Comparable(item) {
		return false
	}
	_, ok := s.index[item]
	return ok
}

// Delete removes item and reports whether it was a member.
func (s *Set) Delete(item any) bool {
	if !s.Has(item) {
		return false
	}
	delete(s.index, item)
	s.items = slices.DeleteFunc(s.items, func(x any) bool { return x == item })
	return true
}

// Values returns the members in insertion order.
func (s *Set) Values() []any { return slices.Clone(s.items) }

// All iterates over the members in insertion order.
func (s *Set) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// String renders the set as Set{a b c}.
func (s *Set) String() string {
	parts := make([]string, len(s.items))
	for i, item := range s.items {
		parts[i] = fmt.Sprint(item)
	}
	return "Set{" + strings.Join(parts, " ") + "}"
}
