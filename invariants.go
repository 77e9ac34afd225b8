package ordset

import (
	"cmp"

	"github.com/cockroachdb/errors"
)

// Check validates structural invariants of the set: ordering, parent links,
// the element count and the registration of iterators.
//
// Check is intended for tests. It walks the complete tree.
func (s *Set[T]) Check() error {
	if s == nil {
		return errors.Wrap(ErrInvalidConfig, "nil set")
	}
	s.lazyInit()
	if s.anchor.right != nil {
		return errors.New("ordset: anchor has a right child")
	}
	if s.anchor.parent != nil {
		return errors.New("ordset: anchor has a parent")
	}
	if err := checkShare(&s.anchor); err != nil {
		return err
	}
	root := s.root()
	if root == nil {
		if s.size != 0 {
			return errors.Newf("ordset: empty tree with size %d", s.size)
		}
		return nil
	}
	if root.parent != &s.anchor {
		return errors.New("ordset: root is not linked to anchor")
	}
	count, err := checkNode(root, nil, nil)
	if err != nil {
		return err
	}
	if count != s.size {
		return errors.Newf("ordset: size mismatch (%d != %d)", count, s.size)
	}
	return nil
}

// checkNode validates the subtree at n, where all values have to lie in the
// open interval (lo, hi). Nil bounds are unbounded.
func checkNode[T cmp.Ordered](n *node[T], lo, hi *T) (int, error) {
	if n.isAnchor() {
		return 0, errors.New("ordset: anchor linked as a value node")
	}
	if lo != nil && cmp.Compare(n.value, *lo) <= 0 {
		return 0, errors.Newf("ordset: value %v not greater than %v", n.value, *lo)
	}
	if hi != nil && cmp.Compare(n.value, *hi) >= 0 {
		return 0, errors.Newf("ordset: value %v not less than %v", n.value, *hi)
	}
	if err := checkShare(n); err != nil {
		return 0, err
	}
	count := 1
	if n.left != nil {
		if n.left.parent != n {
			return 0, errors.Newf("ordset: broken parent link at left child of %v", n.value)
		}
		c, err := checkNode(n.left, lo, &n.value)
		if err != nil {
			return 0, err
		}
		count += c
	}
	if n.right != nil {
		if n.right.parent != n {
			return 0, errors.Newf("ordset: broken parent link at right child of %v", n.value)
		}
		c, err := checkNode(n.right, &n.value, hi)
		if err != nil {
			return 0, err
		}
		count += c
	}
	return count, nil
}

func checkShare[T cmp.Ordered](n *node[T]) error {
	iters := n.registered()
	seen := make(map[*Iterator[T]]struct{}, len(iters))
	for _, it := range iters {
		if it.node != n {
			return errors.New("ordset: share list holds iterator of another node")
		}
		if _, dup := seen[it]; dup {
			return errors.New("ordset: iterator registered twice")
		}
		seen[it] = struct{}{}
	}
	return nil
}
