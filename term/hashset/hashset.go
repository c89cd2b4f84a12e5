package hashset

import (
	"fmt"

	"github.com/cnf/structhash"
)

// Set is an unordered collection of values of type A, deduplicated by
// content rather than by Go equality. Iteration order over Values is
// unspecified; per spec §5, set equality is the only observable
// contract, not traversal order.
type Set[A any] struct {
	buckets map[string]A
}

// New creates an empty set.
func New[A any]() *Set[A] {
	return &Set[A]{buckets: make(map[string]A)}
}

// Of creates a set containing vs.
func Of[A any](vs ...A) *Set[A] {
	s := New[A]()
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

// key computes a stable digest for v. structhash.Hash fails only for
// values it cannot reflect over (e.g. containing channels or funcs);
// such values fall back to a %#v key, which is still stable for a
// given v within a process.
func key[A any](v A) string {
	h, err := structhash.Hash(v, 1)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return h
}

// Add inserts v, replacing any prior value hashing to the same key.
func (s *Set[A]) Add(v A) {
	if s.buckets == nil {
		s.buckets = make(map[string]A)
	}
	s.buckets[key(v)] = v
}

// Len returns the number of distinct values in the set.
func (s *Set[A]) Len() int {
	return len(s.buckets)
}

// Values returns the set's members in unspecified order.
func (s *Set[A]) Values() []A {
	out := make([]A, 0, len(s.buckets))
	for _, v := range s.buckets {
		out = append(out, v)
	}
	return out
}

// Union returns a new set containing the members of s and other.
func (s *Set[A]) Union(other *Set[A]) *Set[A] {
	r := New[A]()
	for k, v := range s.buckets {
		r.buckets[k] = v
	}
	if other != nil {
		for k, v := range other.buckets {
			r.buckets[k] = v
		}
	}
	return r
}

// Equal reports whether s and other contain the same values, by
// content digest, regardless of insertion order.
func (s *Set[A]) Equal(other *Set[A]) bool {
	if other == nil {
		return s.Len() == 0
	}
	if len(s.buckets) != len(other.buckets) {
		return false
	}
	for k := range s.buckets {
		if _, ok := other.buckets[k]; !ok {
			return false
		}
	}
	return true
}
