package bintree

// Node is one cell of a binary search tree: a value plus up to two
// exclusively owned children. Nodes carry no search logic of their own;
// ordering is the tree's business.
type Node[T any] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

func newNode[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the value stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

// SetLeft attaches a fresh leaf holding value as the left child,
// overwriting unconditionally. Callers must have verified that the slot is
// empty; Tree.Insert is the only call site that upholds this.
func (n *Node[T]) SetLeft(value T) {
	n.left = newNode(value)
}

// SetRight attaches a fresh leaf holding value as the right child,
// overwriting unconditionally. See SetLeft for the slot contract.
func (n *Node[T]) SetRight(value T) {
	n.right = newNode(value)
}
