package bintree

import "iter"

// Iterator is a single-pass pull iterator over tree values in preorder:
// each node's value is produced before the values of its left subtree,
// which in turn are produced before the values of its right subtree.
//
// An Iterator is finite and not restartable; once Next has signalled
// exhaustion, obtain a fresh iterator to walk the tree again.
type Iterator[T any] struct {
	stack []*Node[T]
}

// Iter returns a borrowing iterator over the tree. The tree stays intact
// and must not be mutated while the iterator is in use.
func (t *Tree[T]) Iter() *Iterator[T] {
	it := &Iterator[T]{}
	if t != nil && t.root != nil {
		it.stack = append(it.stack, t.root)
	}
	return it
}

// Drain returns an owning iterator over the tree: ownership of all nodes
// moves into the iterator and the tree is reset to the empty state. The
// produced values and their order are identical to Iter's.
func (t *Tree[T]) Drain() *Iterator[T] {
	it := &Iterator[T]{}
	if t != nil && t.root != nil {
		it.stack = append(it.stack, t.root)
		t.Clear()
	}
	return it
}

// Next produces the next value, or reports exhaustion.
func (it *Iterator[T]) Next() (T, bool) {
	if len(it.stack) == 0 {
		var none T
		return none, false
	}
	node := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	assert(node != nil, "iterator stack holds nil node")
	// Right below left on the stack makes the left subtree drain first.
	if node.right != nil {
		it.stack = append(it.stack, node.right)
	}
	if node.left != nil {
		it.stack = append(it.stack, node.left)
	}
	return node.value, true
}

// All returns a range-over-func iterator over all values in preorder.
// It borrows the tree; each range expression starts a fresh walk.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// ForEach visits all values in preorder.
//
// Iteration stops early if fn returns false.
func (t *Tree[T]) ForEach(fn func(value T) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	for v := range t.All() {
		if !fn(v) {
			return
		}
	}
}

// Values collects all tree values into a slice, in preorder.
func (t *Tree[T]) Values() []T {
	if t == nil || t.count == 0 {
		return nil
	}
	values := make([]T, 0, t.count)
	for v := range t.All() {
		values = append(values, v)
	}
	return values
}
