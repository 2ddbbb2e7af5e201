package bintree

import (
	"cmp"
	"fmt"
	"iter"
)

// Comparator defines a total order over element type T. It returns a
// negative number if a orders before b, zero if both are equal, and a
// positive number if a orders after b.
//
// Comparators must be total over the values actually handed to the tree.
// When a comparator is asked to order two values for which no order is
// defined, it must panic with an error wrapping ErrIncomparable; silently
// returning an arbitrary sign would corrupt the search tree invariant.
type Comparator[T any] func(a, b T) int

// Ordered returns the natural-order comparator for ordered element types.
//
// The single partially-ordered case among cmp.Ordered types is
// floating-point NaN. Ordered treats any comparison involving NaN as a
// contract violation and panics with ErrIncomparable.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) int {
		if a != a || b != b {
			panic(fmt.Errorf("%w: no order between %v and %v", ErrIncomparable, a, b))
		}
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// Tree is an unbalanced binary search tree holding a set of distinct
// values.
//
// The zero Tree is not usable; create trees with New or NewWith.
type Tree[T any] struct {
	cmp    Comparator[T]
	root   *Node[T]
	count  int
	height int // longest root-to-leaf path in nodes, 0 means empty tree
}

// New creates an empty tree over the natural order of T.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{cmp: Ordered[T]()}
}

// NewWith creates an empty tree ordered by a client-provided comparator.
func NewWith[T any](compare Comparator[T]) (*Tree[T], error) {
	if compare == nil {
		return nil, ErrNoComparator
	}
	return &Tree[T]{cmp: compare}, nil
}

// FromValues creates a tree and inserts the given values in argument order.
//
// The resulting tree shape depends on that order; the stored value set does
// not.
func FromValues[T cmp.Ordered](values ...T) *Tree[T] {
	tree := New[T]()
	tree.Extend(values...)
	return tree
}

// FromSeq creates a tree and inserts every value produced by seq.
func FromSeq[T cmp.Ordered](seq iter.Seq[T]) *Tree[T] {
	tree := New[T]()
	tree.ExtendSeq(seq)
	return tree
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Clear discards all values, resetting the tree to the empty state.
// The abandoned nodes are released as one unit.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.count = 0
	t.height = 0
}

// Count returns the number of values in the tree.
func (t *Tree[T]) Count() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0, a single root has height 1. The height is
// maintained during insertion, so reading it is O(1).
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Root returns the value stored at the root, if any.
func (t *Tree[T]) Root() (T, bool) {
	if t.IsEmpty() {
		var none T
		return none, false
	}
	return t.root.value, true
}

// RootNode returns the root node, or nil for an empty tree. It grants
// structural read access for collaborators like renderers; mutating the
// returned nodes voids the tree's invariants.
func (t *Tree[T]) RootNode() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// Min returns the smallest value in the tree, if any. It follows left
// children from the root, O(height).
func (t *Tree[T]) Min() (T, bool) {
	if t.IsEmpty() {
		var none T
		return none, false
	}
	node := t.root
	for node.left != nil {
		node = node.left
	}
	return node.value, true
}

// Max returns the largest value in the tree, if any. It follows right
// children from the root, O(height).
func (t *Tree[T]) Max() (T, bool) {
	if t.IsEmpty() {
		var none T
		return none, false
	}
	node := t.root
	for node.right != nil {
		node = node.right
	}
	return node.value, true
}

// Contains reports whether target is stored in the tree. O(height).
func (t *Tree[T]) Contains(target T) bool {
	if t == nil {
		return false
	}
	node := t.root
	for node != nil {
		sign := t.cmp(target, node.value)
		if sign == 0 {
			return true
		}
		if sign < 0 {
			node = node.left
		} else {
			node = node.right
		}
	}
	return false
}

// Insert adds value to the tree, preserving the search tree invariant, and
// reports whether the value was actually added. Inserting a value already
// present is a no-op and returns false.
//
// Insert walks from the root to the one leaf slot the invariant permits,
// O(height). If value cannot be ordered against a stored value the
// comparator panics (see Comparator) and the tree is left unchanged.
func (t *Tree[T]) Insert(value T) bool {
	assert(t.cmp != nil, "bintree: tree created without comparator")
	if t.root == nil {
		t.root = newNode(value)
		t.count = 1
		t.height = 1
		return true
	}
	node := t.root
	for depth := 2; ; depth++ {
		sign := t.cmp(value, node.value)
		switch {
		case sign == 0:
			return false
		case sign < 0:
			if node.left == nil {
				node.SetLeft(value)
				t.grew(depth)
				return true
			}
			node = node.left
		default:
			if node.right == nil {
				node.SetRight(value)
				t.grew(depth)
				return true
			}
			node = node.right
		}
	}
}

// grew records a new leaf attached at the given depth.
func (t *Tree[T]) grew(depth int) {
	t.count++
	t.height = max(t.height, depth)
}

// Extend inserts all given values in argument order and returns the number
// of values actually added.
func (t *Tree[T]) Extend(values ...T) int {
	added := 0
	for _, v := range values {
		if t.Insert(v) {
			added++
		}
	}
	return added
}

// ExtendSeq inserts every value produced by seq, in sequence order, and
// returns the number of values actually added.
func (t *Tree[T]) ExtendSeq(seq iter.Seq[T]) int {
	added := 0
	for v := range seq {
		if t.Insert(v) {
			added++
		}
	}
	return added
}
