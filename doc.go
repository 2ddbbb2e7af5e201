/*
Package bintree provides an unbalanced binary search tree container.

The tree stores a set of distinct values under a total order. Insertion,
membership testing and min/max lookup follow the classic BST search path;
no balancing is performed, so the shape of the tree depends on insertion
order and may degenerate to a linked list for sorted input. Clients that
need guaranteed logarithmic behavior should reach for a balanced structure
instead; this package trades balance for a very small and predictable
implementation.

A tree is created empty:

	tree := bintree.New[int]()
	tree.Insert(50)
	tree.Insert(25)
	tree.Insert(75)

Values are unique: re-inserting a present value is a no-op. Besides the
natural order of cmp.Ordered types, clients may configure an arbitrary
comparator with NewWith.

Traversal is preorder (node, then left subtree, then right subtree) and is
offered in two pull-based variants: Iter borrows the tree and leaves it
intact, Drain takes ownership of the nodes and leaves the tree empty. Both
yield every value exactly once and are not restartable. Range-over-func and
callback forms (All, ForEach) cover the common read-only cases.

The container performs no locking. Mutating calls (Insert, Clear, Drain,
UnmarshalJSON) require exclusive access; read-only calls may run
concurrently with each other but never with a mutator.

Values that cannot be ordered against each other (think floating-point NaN)
are a usage error, not a runtime condition: the comparator panics with an
error wrapping ErrIncomparable before any structural change happens.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bintree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
