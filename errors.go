package bintree

import "errors"

var (
	// ErrIncomparable signals values without a defined mutual order.
	// It is raised by panic from comparators, never returned.
	ErrIncomparable = errors.New("bintree: values are not comparable")
	// ErrNoComparator signals a tree constructed without a comparison function.
	ErrNoComparator = errors.New("bintree: comparator is required")
	// ErrCorruptInput signals serialized input that does not describe a valid tree.
	ErrCorruptInput = errors.New("bintree: corrupt serialized tree")
)
