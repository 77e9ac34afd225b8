package ordset

import (
	"cmp"
	"slices"
	"weak"
)

type nodeKind uint8

const (
	valueNode nodeKind = iota
	anchorNode
)

// node is either the anchor of a set or a value node.
//
// The anchor is embedded in the Set. Its left link holds the root of the
// tree (or points back to the anchor itself if the set is empty), its right
// link is always nil. The anchor is the node designated by End().
//
// share lists the iterators currently positioned on the node. Entries are
// weak, an iterator the client dropped without closing it is collected and
// its entry is pruned the next time the list grows.
type node[T cmp.Ordered] struct {
	left, right, parent *node[T]
	share               []weak.Pointer[Iterator[T]]
	kind                nodeKind
	owner               *Set[T] // anchor only
	value               T
}

func (n *node[T]) isAnchor() bool {
	return n.kind == anchorNode
}

// leftChild returns the left link of n, hiding the self reference of an
// empty anchor.
func (n *node[T]) leftChild() *node[T] {
	if n.left == n {
		return nil
	}
	return n.left
}

func (n *node[T]) addIterator(it *Iterator[T]) {
	if len(n.share) == cap(n.share) {
		n.prune()
		if 2*len(n.share) > cap(n.share) {
			n.share = slices.Grow(n.share, len(n.share))
		}
	}
	n.share = append(n.share, weak.Make(it))
}

func (n *node[T]) removeIterator(it *Iterator[T]) {
	if i := slices.Index(n.share, weak.Make(it)); i >= 0 {
		n.share = slices.Delete(n.share, i, i+1)
	}
}

// replaceIterator moves a share list slot from iterator old to iterator it.
func (n *node[T]) replaceIterator(old, it *Iterator[T]) {
	i := slices.Index(n.share, weak.Make(old))
	assert(i >= 0, "ordset: iterator not registered with its node")
	n.share[i] = weak.Make(it)
}

// prune drops the entries of collected iterators.
func (n *node[T]) prune() {
	n.share = slices.DeleteFunc(n.share, func(w weak.Pointer[Iterator[T]]) bool {
		return w.Value() == nil
	})
}

// registered returns the live iterators positioned on n.
func (n *node[T]) registered() []*Iterator[T] {
	var iters []*Iterator[T]
	for _, w := range n.share {
		if it := w.Value(); it != nil {
			iters = append(iters, it)
		}
	}
	return iters
}

// release turns every iterator positioned on n singular.
func (n *node[T]) release() {
	for _, w := range n.share {
		if it := w.Value(); it != nil {
			it.node = nil
		}
	}
	n.share = nil
}

// --- Navigation ------------------------------------------------------------

func findMin[T cmp.Ordered](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func findMax[T cmp.Ordered](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// findNext returns the in-order successor of n. The successor of the maximum
// is the anchor: the walk climbs through the root, which is the anchor's left
// child, and stops there because the anchor's right link is nil. The anchor
// itself has no successor.
func findNext[T cmp.Ordered](n *node[T]) *node[T] {
	if n.right != nil {
		return findMin(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// findPrev returns the in-order predecessor of n, or nil if n is the
// minimum. The predecessor of the anchor is the maximum of the tree.
func findPrev[T cmp.Ordered](n *node[T]) *node[T] {
	if l := n.leftChild(); l != nil {
		return findMax(l)
	}
	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

// anchorOf walks up from n to the anchor of its tree.
func anchorOf[T cmp.Ordered](n *node[T]) *node[T] {
	for !n.isAnchor() {
		n = n.parent
	}
	return n
}

// --- Search ----------------------------------------------------------------

func find[T cmp.Ordered](root *node[T], v T) *node[T] {
	if root == nil {
		return nil
	}
	switch c := cmp.Compare(v, root.value); {
	case c < 0:
		return find(root.left, v)
	case c > 0:
		return find(root.right, v)
	}
	return root
}

// lowerBound returns the leftmost node with a value >= v, or nil.
func lowerBound[T cmp.Ordered](root *node[T], v T) *node[T] {
	var result *node[T]
	for cur := root; cur != nil; {
		if cmp.Compare(cur.value, v) >= 0 {
			result = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return result
}

// upperBound returns the leftmost node with a value > v, or nil.
func upperBound[T cmp.Ordered](root *node[T], v T) *node[T] {
	var result *node[T]
	for cur := root; cur != nil; {
		if cmp.Compare(cur.value, v) > 0 {
			result = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return result
}

// --- Structural operations -------------------------------------------------

// merge joins two subtrees, where every value in left is less than every
// value in right, and returns the root of the result.
//
// The minimum node of right is unlinked and re-used as the new root; it is
// not copied. Its identity, and with it every iterator positioned on it,
// survives the operation unchanged.
func merge[T cmp.Ordered](left, right *node[T]) *node[T] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	m := findMin(right)
	if m == right {
		m.left = left
		left.parent = m
		return m
	}
	p := m.parent
	assert(p.left == m, "ordset: minimum of subtree is not a left child")
	p.left = m.right
	if m.right != nil {
		m.right.parent = p
	}
	m.left, m.right = left, right
	left.parent, right.parent = m, m
	return m
}

// copyTree deep-copies the subtree at src, allocating every node from alloc.
// If an allocation fails, all nodes allocated so far for the copy are
// released again and the error is returned.
func copyTree[T cmp.Ordered](src *node[T], alloc Allocator) (*node[T], error) {
	if src == nil {
		return nil, nil
	}
	if err := alloc.Allocate(); err != nil {
		return nil, err
	}
	n := &node[T]{value: src.value}
	var err error
	if n.left, err = copyTree(src.left, alloc); err != nil {
		delSubtree(n, alloc)
		return nil, err
	}
	if n.left != nil {
		n.left.parent = n
	}
	if n.right, err = copyTree(src.right, alloc); err != nil {
		delSubtree(n, alloc)
		return nil, err
	}
	if n.right != nil {
		n.right.parent = n
	}
	return n, nil
}

// delSubtree destroys every node of the subtree at n.
func delSubtree[T cmp.Ordered](n *node[T], alloc Allocator) {
	if n == nil {
		return
	}
	delSubtree(n.left, alloc)
	delSubtree(n.right, alloc)
	destroy(n, alloc)
}

// destroy singularizes the iterators of a value node, unlinks it and returns
// it to its allocator.
func destroy[T cmp.Ordered](n *node[T], alloc Allocator) {
	n.release()
	n.left, n.right, n.parent = nil, nil, nil
	alloc.Release()
}
