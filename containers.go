package aoc

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

type Set[T comparable] map[T]struct{}

func SetOf[T comparable](vs ...T) Set[T] {
	s := make(Set[T], len(vs))
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}

// Intersect returns the values present in both s and o.
func (s Set[T]) Intersect(o Set[T]) Set[T] {
	if len(o) < len(s) {
		s, o = o, s
	}
	out := make(Set[T])
	for v := range s {
		if o.Contains(v) {
			out.Add(v)
		}
	}
	return out
}

// SortedKeys returns the members of s in ascending order.
func SortedKeys[T constraints.Ordered](s Set[T]) []T {
	keys := maps.Keys(s)
	slices.Sort(keys)
	return keys
}

// TopN tracks the n largest values offered to it. Until n values have
// been offered, the untracked slots hold the zero value.
type TopN[T Number] struct {
	vals []T // ascending
}

func NewTopN[T Number](n int) *TopN[T] {
	if n < 1 {
		panic(fmt.Sprintf("NewTopN(%d): n must be positive", n))
	}
	return &TopN[T]{vals: make([]T, n)}
}

// Offer replaces the smallest tracked value with x if x is larger.
func (t *TopN[T]) Offer(x T) {
	if x > t.vals[0] {
		t.vals[0] = x
		slices.Sort(t.vals)
	}
}

// Max returns the largest tracked value.
func (t *TopN[T]) Max() T {
	return t.vals[len(t.vals)-1]
}

// Values returns a copy of the tracked values in ascending order.
func (t *TopN[T]) Values() []T {
	return slices.Clone(t.vals)
}

func (t *TopN[T]) Sum() T {
	return Sum(t.vals...)
}
