package treeview

import (
	"cmp"

	"github.com/npillmayer/ordset"
)

// viewNode is a detached copy of a tree node, built from a pre-order walk.
type viewNode[T cmp.Ordered] struct {
	info        ordset.NodeInfo[T]
	left, right *viewNode[T]
}

// collect rebuilds the shape of s. It returns nil for an empty set.
func collect[T cmp.Ordered](s *ordset.Set[T]) (*viewNode[T], error) {
	var root *viewNode[T]
	byID := make(map[int]*viewNode[T])
	err := s.Walk(func(info ordset.NodeInfo[T]) error {
		n := &viewNode[T]{info: info}
		byID[info.ID] = n
		switch info.Side {
		case ordset.LeftSide:
			byID[info.Parent].left = n
		case ordset.RightSide:
			byID[info.Parent].right = n
		default:
			root = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("tree view: collected %d nodes", len(byID))
	return root, nil
}
