package bintree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant for tests: it verifies the
// search tree ordering for every node against all values of its subtrees,
// and cross-checks the cached count and height against a full recomputation.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorruptInput)
	}
	if t.cmp == nil {
		return ErrNoComparator
	}
	if t.root == nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree must have count=0", ErrCorruptInput)
		}
		if t.height != 0 {
			return fmt.Errorf("%w: empty tree must have height=0", ErrCorruptInput)
		}
		return nil
	}
	count, height, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: count mismatch (%d != %d)", ErrCorruptInput, count, t.count)
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrCorruptInput, height, t.height)
	}
	return nil
}

// checkNode validates the subtree rooted at n. lo and hi are exclusive
// value bounds inherited from ancestors, nil meaning unbounded.
func (t *Tree[T]) checkNode(n *Node[T], lo, hi *T) (count int, height int, err error) {
	assert(n != nil, "checkNode called with nil node")
	if lo != nil && t.cmp(n.value, *lo) <= 0 {
		return 0, 0, fmt.Errorf("%w: value %v violates lower bound %v", ErrCorruptInput, n.value, *lo)
	}
	if hi != nil && t.cmp(n.value, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: value %v violates upper bound %v", ErrCorruptInput, n.value, *hi)
	}
	count, height = 1, 1
	if n.left != nil {
		lCount, lHeight, lErr := t.checkNode(n.left, lo, &n.value)
		if lErr != nil {
			return 0, 0, lErr
		}
		count += lCount
		height = max(height, lHeight+1)
	}
	if n.right != nil {
		rCount, rHeight, rErr := t.checkNode(n.right, &n.value, hi)
		if rErr != nil {
			return 0, 0, rErr
		}
		count += rCount
		height = max(height, rHeight+1)
	}
	return count, height, nil
}
