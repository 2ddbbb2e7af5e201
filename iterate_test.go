package bintree

import (
	"slices"
	"testing"
)

func collect[T any](it *Iterator[T]) []T {
	var out []T
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

func TestIterPreorder(t *testing.T) {
	tree := FromValues(5, 4, 6)
	got := collect(tree.Iter())
	if !slices.Equal(got, []int{5, 4, 6}) {
		t.Errorf("preorder = %v, should be [5 4 6]", got)
	}
	if tree.Count() != 3 {
		t.Errorf("borrowing iteration changed the tree, count = %d", tree.Count())
	}
}

func TestIterPreorderDeep(t *testing.T) {
	tree := FromValues(8, 4, 6, 16, -5, 25)
	got := collect(tree.Iter())
	// Root, full left subtree, then full right subtree.
	want := []int{8, 4, -5, 6, 16, 25}
	if !slices.Equal(got, want) {
		t.Errorf("preorder = %v, should be %v", got, want)
	}
}

func TestIterEmptyTree(t *testing.T) {
	tree := New[int]()
	if _, ok := tree.Iter().Next(); ok {
		t.Errorf("iterator over empty tree produced a value")
	}
}

func TestIterNotRestartable(t *testing.T) {
	tree := FromValues(5, 4, 6)
	it := tree.Iter()
	if got := collect(it); len(got) != 3 {
		t.Fatalf("expected 3 values, got %v", got)
	}
	if _, ok := it.Next(); ok {
		t.Errorf("exhausted iterator produced another value")
	}
	// A fresh iterator walks again from the start.
	if got := collect(tree.Iter()); !slices.Equal(got, []int{5, 4, 6}) {
		t.Errorf("fresh iterator = %v, should be [5 4 6]", got)
	}
}

func TestDrainConsumesTree(t *testing.T) {
	tree := FromValues(5, 4, 6)
	it := tree.Drain()
	if !tree.IsEmpty() {
		t.Errorf("tree not empty after Drain")
	}
	if tree.Count() != 0 || tree.Height() != 0 {
		t.Errorf("count=%d height=%d after Drain, should be 0/0", tree.Count(), tree.Height())
	}
	got := collect(it)
	if !slices.Equal(got, []int{5, 4, 6}) {
		t.Errorf("drained values = %v, should be [5 4 6]", got)
	}
}

func TestAllRangeForm(t *testing.T) {
	tree := FromValues(8, 4, 6, 16, -5, 25)
	var got []int
	for v := range tree.All() {
		got = append(got, v)
	}
	want := []int{8, 4, -5, 6, 16, 25}
	if !slices.Equal(got, want) {
		t.Errorf("range values = %v, should be %v", got, want)
	}
}

func TestAllStopsEarly(t *testing.T) {
	tree := FromValues(8, 4, 6, 16, -5, 25)
	var got []int
	for v := range tree.All() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []int{8, 4}) {
		t.Errorf("early break yielded %v, should be [8 4]", got)
	}
}

func TestForEach(t *testing.T) {
	tree := FromValues(5, 4, 6)
	var got []int
	tree.ForEach(func(v int) bool {
		got = append(got, v)
		return true
	})
	if !slices.Equal(got, []int{5, 4, 6}) {
		t.Errorf("ForEach visited %v, should be [5 4 6]", got)
	}
	visits := 0
	tree.ForEach(func(int) bool {
		visits++
		return false
	})
	if visits != 1 {
		t.Errorf("ForEach ignored early stop, %d visits", visits)
	}
}

func TestValuesYieldsEveryValueOnce(t *testing.T) {
	values := []int{50, 25, 75, 13, 37, 63, 87}
	tree := FromValues(values...)
	got := tree.Values()
	if len(got) != len(values) {
		t.Fatalf("Values returned %d elements, should be %d", len(got), len(values))
	}
	seen := make(map[int]bool)
	for _, v := range got {
		if seen[v] {
			t.Errorf("value %d produced twice", v)
		}
		seen[v] = true
	}
	for _, v := range values {
		if !seen[v] {
			t.Errorf("value %d never produced", v)
		}
	}
	if tree.Values() == nil {
		t.Errorf("second Values call found an altered tree")
	}
	if New[int]().Values() != nil {
		t.Errorf("Values of empty tree should be nil")
	}
}
