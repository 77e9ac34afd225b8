package ordset

import (
	"cmp"

	"github.com/npillmayer/ordset/internal/invariants"
)

// Iterator is a bidirectional cursor designating an element of a set, or the
// end position of a set.
//
// An iterator is registered with the element it designates. It stays valid,
// and keeps designating the same element, until that very element is erased
// (or the set is cleared). Other modifications of the set, including erasing
// neighbouring elements, do not affect it. An iterator whose element has been
// destroyed is singular: it cannot be dereferenced or moved.
//
// Iterators must be handled by pointer. Use Clone to obtain a second iterator
// and Close to unregister an iterator which is no longer needed. A set holds
// its iterators weakly, so an iterator dropped without Close is reclaimed by
// the garbage collector and does not pin memory in the set.
type Iterator[T cmp.Ordered] struct {
	node *node[T]
}

func newIterator[T cmp.Ordered](n *node[T]) *Iterator[T] {
	it := &Iterator[T]{node: n}
	if n != nil {
		n.addIterator(it)
	}
	return it
}

// Valid reports whether the iterator is not singular.
func (it *Iterator[T]) Valid() bool {
	return it != nil && it.node != nil
}

// AtEnd reports whether the iterator is positioned at the end of a set.
func (it *Iterator[T]) AtEnd() bool {
	return it.Valid() && it.node.isAnchor()
}

func (it *Iterator[T]) mustBeDereferenceable() {
	assert(it.Valid(), "ordset: use of singular iterator")
	assert(!it.node.isAnchor(), "ordset: dereferencing end iterator")
}

// Value returns the element the iterator designates. It panics if the
// iterator is singular or at the end of its set.
func (it *Iterator[T]) Value() T {
	it.mustBeDereferenceable()
	return it.node.value
}

// Next moves the iterator to the next element in order, or to the end
// position if it designates the last element.
func (it *Iterator[T]) Next() {
	assert(it.Valid(), "ordset: use of singular iterator")
	assert(!it.node.isAnchor(), "ordset: moving iterator past end")
	it.moveTo(findNext(it.node))
}

// Prev moves the iterator to the previous element in order. Prev on the end
// position of a non-empty set moves to the last element. Prev panics if there
// is no previous element.
func (it *Iterator[T]) Prev() {
	assert(it.Valid(), "ordset: use of singular iterator")
	p := findPrev(it.node)
	assert(p != nil, "ordset: moving iterator before first element")
	it.moveTo(p)
}

// Equal reports whether both iterators designate the same element (or both
// designate the same end position). Singular iterators are equal to each
// other. Comparing iterators of different sets is a programming error.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	assert(it != nil && other != nil, "ordset: comparing nil iterator")
	if invariants.Enabled && it.node != nil && other.node != nil {
		assert(anchorOf(it.node) == anchorOf(other.node),
			"ordset: comparing iterators of different sets")
	}
	return it.node == other.node
}

// Clone returns a new iterator designating the same element.
func (it *Iterator[T]) Clone() *Iterator[T] {
	return newIterator(it.node)
}

// Assign re-positions the iterator to the element other designates.
func (it *Iterator[T]) Assign(other *Iterator[T]) {
	if it == other {
		return
	}
	it.moveTo(other.node)
}

// Close unregisters the iterator and makes it singular. Closing an iterator
// twice is harmless.
func (it *Iterator[T]) Close() {
	if it.node != nil {
		it.node.removeIterator(it)
		it.node = nil
	}
}

// moveTo registers it with node n first and unregisters it from its previous
// node afterwards, so the iterator is never registered nowhere.
func (it *Iterator[T]) moveTo(n *node[T]) {
	prev := it.node
	if prev == n {
		return
	}
	it.node = n
	if n != nil {
		n.addIterator(it)
	}
	if prev != nil {
		prev.removeIterator(it)
	}
}

// SwapIterators exchanges the positions of two iterators.
func SwapIterators[T cmp.Ordered](a, b *Iterator[T]) {
	if a == b || a.node == b.node {
		return
	}
	na, nb := a.node, b.node
	if na != nil {
		na.replaceIterator(a, b)
	}
	if nb != nil {
		nb.replaceIterator(b, a)
	}
	a.node, b.node = nb, na
}

// --- Reverse iteration -----------------------------------------------------

// ReverseIterator walks a set from its last element to its first one.
//
// It wraps a base iterator positioned one element after the element the
// reverse iterator designates: RBegin wraps End(), REnd wraps Begin().
type ReverseIterator[T cmp.Ordered] struct {
	base *Iterator[T]
}

// Base returns the underlying forward iterator.
func (r *ReverseIterator[T]) Base() *Iterator[T] {
	return r.base
}

// Value returns the element before the base position.
func (r *ReverseIterator[T]) Value() T {
	tmp := r.base.Clone()
	defer tmp.Close()
	tmp.Prev()
	return tmp.Value()
}

// Next moves towards the first element of the set.
func (r *ReverseIterator[T]) Next() {
	r.base.Prev()
}

// Prev moves towards the last element of the set.
func (r *ReverseIterator[T]) Prev() {
	r.base.Next()
}

// Equal reports whether both reverse iterators have the same base position.
func (r *ReverseIterator[T]) Equal(other *ReverseIterator[T]) bool {
	return r.base.Equal(other.base)
}

// Close closes the base iterator.
func (r *ReverseIterator[T]) Close() {
	r.base.Close()
}
