package ordset

import "iter"

// ForEach walks the elements in ascending order.
//
// Iteration stops early if callback returns false. The set must not be
// modified during the walk.
func (s *Set[T]) ForEach(fn func(v T) bool) {
	if s == nil || fn == nil {
		return
	}
	s.lazyInit()
	if s.IsEmpty() {
		return
	}
	for n := findMin(s.root()); !n.isAnchor(); n = findNext(n) {
		if !fn(n.value) {
			return
		}
	}
}

// All returns an iterator over the elements in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return s.ForEach
}

// Backward returns an iterator over the elements in descending order.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		s.lazyInit()
		for n := findPrev(&s.anchor); n != nil; n = findPrev(n) {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements in ascending order.
func (s *Set[T]) Values() []T {
	out := make([]T, 0, s.Len())
	s.ForEach(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
