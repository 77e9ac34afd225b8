package ordset

import "cmp"

// Side tells which child of its parent a node is.
type Side int8

const (
	// RootSide marks the root of the tree.
	RootSide Side = iota
	// LeftSide marks a left child.
	LeftSide
	// RightSide marks a right child.
	RightSide
)

func (side Side) String() string {
	switch side {
	case LeftSide:
		return "L"
	case RightSide:
		return "R"
	}
	return "root"
}

// NodeInfo describes a node of the tree for debugging views.
type NodeInfo[T cmp.Ordered] struct {
	ID        int  // pre-order number, starting at 1
	Parent    int  // ID of the parent, 0 for the root
	Depth     int  // 0 for the root
	Side      Side // side of the node relative to its parent
	Value     T
	Iterators int // number of iterators positioned on the node
	Leaf      bool
}

// Walk visits the nodes of the tree in pre-order. It exposes the current
// shape of the tree, which is an implementation detail and changes with
// every modification; use it for debugging only.
//
// If fn returns an error, the walk stops and the error is returned.
func (s *Set[T]) Walk(fn func(NodeInfo[T]) error) error {
	s.lazyInit()
	if s.IsEmpty() {
		return nil
	}
	id := 0
	var walk func(n *node[T], parent, depth int, side Side) error
	walk = func(n *node[T], parent, depth int, side Side) error {
		id++
		info := NodeInfo[T]{
			ID:        id,
			Parent:    parent,
			Depth:     depth,
			Side:      side,
			Value:     n.value,
			Iterators: len(n.registered()),
			Leaf:      n.left == nil && n.right == nil,
		}
		if err := fn(info); err != nil {
			return err
		}
		if n.left != nil {
			if err := walk(n.left, info.ID, depth+1, LeftSide); err != nil {
				return err
			}
		}
		if n.right != nil {
			return walk(n.right, info.ID, depth+1, RightSide)
		}
		return nil
	}
	return walk(s.root(), 0, 0, RootSide)
}

// Height returns the height of the tree, 0 for an empty set.
func (s *Set[T]) Height() int {
	h := 0
	_ = s.Walk(func(info NodeInfo[T]) error {
		h = max(h, info.Depth+1)
		return nil
	})
	return h
}
