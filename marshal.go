package bintree

import (
	"encoding/json"
	"fmt"
)

// nodeImage is the wire form of one node. It mirrors the in-memory
// structure directly, nesting child objects or null.
type nodeImage[T any] struct {
	Value T             `json:"value"`
	Left  *nodeImage[T] `json:"left"`
	Right *nodeImage[T] `json:"right"`
}

// treeImage is the wire form of a whole tree.
type treeImage[T any] struct {
	Root   *nodeImage[T] `json:"root"`
	Count  int           `json:"count"`
	Height int           `json:"height"`
}

// MarshalJSON encodes the tree as a structural mirror of its data model:
// an object with fields "root" (nested node object or null), "count" and
// "height", where each node object has fields "value", "left" and "right".
//
// The encoding is canonical; unmarshalling and re-marshalling reproduces it
// byte for byte.
func (t *Tree[T]) MarshalJSON() ([]byte, error) {
	image := treeImage[T]{
		Root:   imageOf(t.RootNode()),
		Count:  t.Count(),
		Height: t.Height(),
	}
	return json.Marshal(image)
}

func imageOf[T any](n *Node[T]) *nodeImage[T] {
	if n == nil {
		return nil
	}
	return &nodeImage[T]{
		Value: n.value,
		Left:  imageOf(n.left),
		Right: imageOf(n.right),
	}
}

// UnmarshalJSON decodes a tree from the format produced by MarshalJSON.
//
// The receiver must have been created with New or NewWith, as decoding
// needs the comparator to validate the search tree ordering. Input that is
// not decodable JSON, or that describes a structure violating the
// ordering, count or height invariants, fails with an error wrapping
// ErrCorruptInput and leaves the receiver untouched. (Callers going
// through json.Unmarshal get JSON syntax errors straight from that
// package, which validates the input before this method runs; the
// receiver stays untouched either way.) The previous content of the
// receiver is discarded on success.
func (t *Tree[T]) UnmarshalJSON(data []byte) error {
	if t == nil || t.cmp == nil {
		return ErrNoComparator
	}
	var image treeImage[T]
	if err := json.Unmarshal(data, &image); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptInput, err)
	}
	decoded := Tree[T]{
		cmp:    t.cmp,
		root:   nodeOf(image.Root),
		count:  image.Count,
		height: image.Height,
	}
	// Check re-derives count and height from the structure, so a lying
	// header cannot slip through.
	if err := decoded.Check(); err != nil {
		return err
	}
	*t = decoded
	return nil
}

func nodeOf[T any](image *nodeImage[T]) *Node[T] {
	if image == nil {
		return nil
	}
	return &Node[T]{
		value: image.Value,
		left:  nodeOf(image.Left),
		right: nodeOf(image.Right),
	}
}
