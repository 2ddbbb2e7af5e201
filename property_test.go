package bintree

import (
	"math/rand"
	"slices"
	"testing"

	"pgregory.net/rapid"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRandomizedInsertProperty -count=1
//   - Fuzz test for this file:
//     go test . -run '^$' -fuzz FuzzInsertProperty -fuzztime=10s
//   - Replay a specific saved failing input:
//     go test . -run 'FuzzInsertProperty/<id>'

func assertTreeMatchesModel(t *testing.T, tree *Tree[int], model map[int]bool) {
	t.Helper()

	if err := tree.Check(); err != nil {
		t.Fatalf("invariants broken: %v", err)
	}
	if tree.Count() != len(model) {
		t.Fatalf("count mismatch: got=%d want=%d", tree.Count(), len(model))
	}
	sorted := make([]int, 0, len(model))
	for v := range model {
		sorted = append(sorted, v)
		if !tree.Contains(v) {
			t.Fatalf("tree misses inserted value %d", v)
		}
	}
	slices.Sort(sorted)
	got := tree.Values()
	slices.Sort(got)
	if !slices.Equal(got, sorted) {
		t.Fatalf("value set mismatch: got=%v want=%v", got, sorted)
	}
	if len(sorted) > 0 {
		if v, ok := tree.Min(); !ok || v != sorted[0] {
			t.Fatalf("min mismatch: got=%v want=%d", v, sorted[0])
		}
		if v, ok := tree.Max(); !ok || v != sorted[len(sorted)-1] {
			t.Fatalf("max mismatch: got=%v want=%d", v, sorted[len(sorted)-1])
		}
	}
}

func TestRandomizedInsertProperty(t *testing.T) {
	r := rand.New(rand.NewSource(4711))
	for round := 0; round < 50; round++ {
		tree := New[int]()
		model := make(map[int]bool)
		steps := r.Intn(60) + 1
		for i := 0; i < steps; i++ {
			v := r.Intn(40) - 20 // small domain forces duplicates
			added := tree.Insert(v)
			if added == model[v] {
				t.Fatalf("round %d: Insert(%d) returned %v, model disagrees", round, v, added)
			}
			model[v] = true
			assertTreeMatchesModel(t, tree, model)
		}
	}
}

func FuzzInsertProperty(f *testing.F) {
	f.Add([]byte{8, 4, 6, 16, 5, 25})
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	f.Fuzz(func(t *testing.T, input []byte) {
		tree := New[int]()
		model := make(map[int]bool)
		for _, b := range input {
			tree.Insert(int(b))
			model[int(b)] = true
		}
		assertTreeMatchesModel(t, tree, model)
	})
}

func TestRapidInsertContains(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOf(rapid.IntRange(-1000, 1000)).Draw(t, "values")
		tree := FromValues(values...)
		if err := tree.Check(); err != nil {
			t.Fatalf("invariants broken: %v", err)
		}
		for _, v := range values {
			if !tree.Contains(v) {
				t.Fatalf("tree misses inserted value %d", v)
			}
		}
		// Preorder yields a sequence that re-inserts to an identical tree.
		clone := FromValues(tree.Values()...)
		a, err := tree.MarshalJSON()
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		b, err := clone.MarshalJSON()
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(a) != string(b) {
			t.Fatalf("preorder re-insertion changed the shape:\n%s\n%s", a, b)
		}
	})
}
