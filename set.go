package ordset

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/ordset/internal/invariants"
)

// Set is an ordered set of distinct values.
//
// A set created by
//
//	Set[int]{}
//
// is a valid object and behaves like the empty set. A set must not be copied
// by value once it is in use, as its iterators refer to it by address; use
// Clone or Assign instead.
type Set[T cmp.Ordered] struct {
	anchor node[T]
	size   int
	cfg    Config
}

// New creates an empty set.
func New[T cmp.Ordered]() *Set[T] {
	s := &Set[T]{}
	s.lazyInit()
	return s
}

// NewWithConfig creates an empty set with a validated configuration.
func NewWithConfig[T cmp.Ordered](cfg Config) (*Set[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s := &Set[T]{cfg: cfg.normalized()}
	s.lazyInit()
	return s, nil
}

// lazyInit prepares the anchor. It is idempotent, making the zero value usable.
func (s *Set[T]) lazyInit() {
	if s.anchor.owner == s {
		return
	}
	assert(s.anchor.owner == nil, "ordset: set has been copied by value")
	s.anchor.kind = anchorNode
	s.anchor.owner = s
	if s.anchor.left == nil {
		s.anchor.left = &s.anchor
	}
	s.cfg = s.cfg.normalized()
}

func (s *Set[T]) root() *node[T] {
	return s.anchor.leftChild()
}

// setRoot installs n as the root of the tree. A nil root leaves the anchor
// pointing to itself.
func (s *Set[T]) setRoot(n *node[T]) {
	if n == nil {
		s.anchor.left = &s.anchor
		return
	}
	s.anchor.left = n
	n.parent = &s.anchor
}

func (s *Set[T]) checkInvariants() {
	invariants.Check(s.Check)
}

// Config returns the effective configuration of the set.
func (s *Set[T]) Config() Config {
	s.lazyInit()
	return s.cfg
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return s.size
}

// IsEmpty reports whether the set has no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.size == 0
}

// Begin returns an iterator to the smallest element, or End() for an empty
// set.
func (s *Set[T]) Begin() *Iterator[T] {
	s.lazyInit()
	if s.IsEmpty() {
		return s.End()
	}
	return newIterator(findMin(s.root()))
}

// End returns an iterator to the position after the largest element.
// End iterators are bound to the set itself and survive Swap.
func (s *Set[T]) End() *Iterator[T] {
	s.lazyInit()
	return newIterator(&s.anchor)
}

// RBegin returns a reverse iterator to the largest element.
func (s *Set[T]) RBegin() *ReverseIterator[T] {
	return &ReverseIterator[T]{base: s.End()}
}

// REnd returns a reverse iterator to the position before the smallest element.
func (s *Set[T]) REnd() *ReverseIterator[T] {
	return &ReverseIterator[T]{base: s.Begin()}
}

// Insert adds v to the set.
//
// It returns an iterator to the new element and true, or, if v is already
// present, an iterator to the existing element and false. If the node for v
// cannot be allocated, Insert returns an error and the set is unchanged.
func (s *Set[T]) Insert(v T) (*Iterator[T], bool, error) {
	s.lazyInit()
	parent := &s.anchor
	var c int
	for cur := s.root(); cur != nil; {
		parent = cur
		switch c = cmp.Compare(v, cur.value); {
		case c < 0:
			cur = cur.left
		case c > 0:
			cur = cur.right
		default:
			return newIterator(cur), false, nil
		}
	}
	if err := s.cfg.Allocator.Allocate(); err != nil {
		tracer().Errorf("ordset: cannot insert %v: %v", v, err)
		return nil, false, errors.Wrapf(err, "ordset: insert %v", v)
	}
	n := &node[T]{value: v, parent: parent}
	switch {
	case parent == &s.anchor:
		s.anchor.left = n
	case c < 0:
		parent.left = n
	default:
		parent.right = n
	}
	s.size++
	tracer().Debugf("ordset: inserted %v, size=%d", v, s.size)
	s.checkInvariants()
	return newIterator(n), true, nil
}

// Erase removes the element pos designates and returns an iterator to the
// element following it.
//
// Iterators positioned on the erased element become singular, all other
// iterators are unaffected. Erasing through a singular iterator, through an
// end iterator or through an iterator of another set panics. Erase on an
// empty set returns End(), as long as pos is that set's end position.
func (s *Set[T]) Erase(pos *Iterator[T]) *Iterator[T] {
	s.lazyInit()
	assert(pos.Valid(), "ordset: erase through singular iterator")
	assert(anchorOf(pos.node) == &s.anchor, "ordset: erase through iterator of another set")
	if s.IsEmpty() {
		return s.End()
	}
	n := pos.node
	assert(!n.isAnchor(), "ordset: erase through end iterator")
	next := findNext(n)
	parent := n.parent
	sub := merge(n.left, n.right)
	if parent.left == n {
		parent.left = sub
	} else {
		parent.right = sub
	}
	if sub != nil {
		sub.parent = parent
	} else if parent == &s.anchor {
		s.setRoot(nil)
	}
	tracer().Debugf("ordset: erasing %v", n.value)
	destroy(n, s.cfg.Allocator)
	s.size--
	s.checkInvariants()
	return newIterator(next)
}

// EraseValue removes v from the set and returns the number of elements
// removed, i.e. 0 or 1.
func (s *Set[T]) EraseValue(v T) int {
	s.lazyInit()
	n := find(s.root(), v)
	if n == nil {
		return 0
	}
	pos := newIterator(n)
	s.Erase(pos).Close()
	return 1
}

// Find returns an iterator to v, or End() if v is not in the set.
func (s *Set[T]) Find(v T) *Iterator[T] {
	s.lazyInit()
	if n := find(s.root(), v); n != nil {
		return newIterator(n)
	}
	return s.End()
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	s.lazyInit()
	return find(s.root(), v) != nil
}

// LowerBound returns an iterator to the first element not less than v, or
// End() if there is none.
func (s *Set[T]) LowerBound(v T) *Iterator[T] {
	s.lazyInit()
	if n := lowerBound(s.root(), v); n != nil {
		return newIterator(n)
	}
	return s.End()
}

// UpperBound returns an iterator to the first element greater than v, or
// End() if there is none.
func (s *Set[T]) UpperBound(v T) *Iterator[T] {
	s.lazyInit()
	if n := upperBound(s.root(), v); n != nil {
		return newIterator(n)
	}
	return s.End()
}

// Swap exchanges the contents of two sets in constant time.
//
// Iterators on elements keep designating their elements, which now belong
// to the other set. End iterators stay bound to their set. The sets also
// exchange their allocators, as nodes are owned by their allocator.
func (s *Set[T]) Swap(other *Set[T]) {
	s.lazyInit()
	other.lazyInit()
	if s == other {
		return
	}
	sroot, oroot := s.root(), other.root()
	s.setRoot(oroot)
	other.setRoot(sroot)
	s.size, other.size = other.size, s.size
	s.cfg, other.cfg = other.cfg, s.cfg
	tracer().Debugf("ordset: swapped sets of size %d and %d", s.size, other.size)
}

// Swap exchanges the contents of two sets. See Set.Swap.
func Swap[T cmp.Ordered](a, b *Set[T]) {
	a.Swap(b)
}

// Clone returns a deep copy of the set, using the same allocator.
//
// If allocation fails part way, every node allocated for the copy is released
// again and an error is returned.
func (s *Set[T]) Clone() (*Set[T], error) {
	s.lazyInit()
	return s.cloneWith(s.cfg)
}

func (s *Set[T]) cloneWith(cfg Config) (*Set[T], error) {
	c := &Set[T]{cfg: cfg}
	c.lazyInit()
	root, err := copyTree(s.root(), c.cfg.Allocator)
	if err != nil {
		tracer().Errorf("ordset: copy of %d elements failed: %v", s.size, err)
		return nil, errors.Wrapf(err, "ordset: copy of %d elements", s.size)
	}
	c.setRoot(root)
	c.size = s.size
	tracer().Debugf("ordset: copied %d elements", c.size)
	return c, nil
}

// Assign replaces the contents of s by a copy of other. The copy is
// allocated from the allocator of s. If copying fails, s is unchanged.
//
// Iterators on former elements of s become singular; End iterators of s
// remain valid.
func (s *Set[T]) Assign(other *Set[T]) error {
	s.lazyInit()
	if s == other {
		return nil
	}
	other.lazyInit()
	c, err := other.cloneWith(s.cfg)
	if err != nil {
		return err
	}
	s.Swap(c)
	c.Close()
	s.checkInvariants()
	return nil
}

// Clear removes all elements. Iterators on elements become singular, End
// iterators remain valid.
func (s *Set[T]) Clear() {
	s.lazyInit()
	if s.IsEmpty() {
		return
	}
	delSubtree(s.root(), s.cfg.Allocator)
	s.setRoot(nil)
	tracer().Debugf("ordset: cleared %d elements", s.size)
	s.size = 0
}

// Close clears the set and makes every iterator obtained from it singular,
// including End iterators. The set remains usable as an empty set.
func (s *Set[T]) Close() {
	s.Clear()
	s.anchor.release()
}
