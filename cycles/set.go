// SPDX-License-Identifier: MIT
//
// File: set.go
// Role: Ordered set of canonical cycles backed by a red-black tree set.

package cycles

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// compareCycles adapts Compare to the gods comparator signature.
func compareCycles(a, b interface{}) int {
	return Compare(a.(Cycle), b.(Cycle))
}

// Set is a set of 4-cycles unique by canonical form. Iteration is in
// ascending canonical order regardless of insertion order.
// The zero value is not usable; call NewSet.
type Set struct {
	tree *treeset.Set
}

// NewSet returns a set holding the canonical forms of cs.
func NewSet(cs ...Cycle) *Set {
	s := &Set{tree: treeset.NewWith(compareCycles)}
	for _, c := range cs {
		s.Add(c)
	}

	return s
}

// Add inserts the canonical form of c and reports whether it was new.
// Inserting any variant of a present cycle is a no-op.
// Complexity: O(log K).
func (s *Set) Add(c Cycle) bool {
	k := Canonical(c)
	if s.tree.Contains(k) {
		return false
	}
	s.tree.Add(k)

	return true
}

// Contains reports whether c (in any of its 8 variants) is in the set.
func (s *Set) Contains(c Cycle) bool {
	return s.tree.Contains(Canonical(c))
}

// Len returns the number of distinct cycles.
func (s *Set) Len() int { return s.tree.Size() }

// Values returns the canonical cycles in ascending order.
func (s *Set) Values() []Cycle {
	out := make([]Cycle, 0, s.tree.Size())
	it := s.tree.Iterator()
	for it.Next() {
		out = append(out, it.Value().(Cycle))
	}

	return out
}

// Each calls fn for every cycle in ascending order, stopping at the first error.
func (s *Set) Each(fn func(c Cycle) error) error {
	it := s.tree.Iterator()
	for it.Next() {
		if err := fn(it.Value().(Cycle)); err != nil {
			return err
		}
	}

	return nil
}

// Equal reports whether s and o hold the same cycles. Two nil sets are
// equal; a nil set equals no non-nil set.
func (s *Set) Equal(o *Set) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.Len() != o.Len() {
		return false
	}
	a, b := s.Values(), o.Values()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
