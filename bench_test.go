package bintree

import "testing"

func BenchmarkInsertSingleAndClear(b *testing.B) {
	tree := New[int]()
	for i := 0; i < b.N; i++ {
		tree.Insert(50)
		tree.Clear()
	}
}

func BenchmarkBuildBalancedThreeLayers(b *testing.B) {
	tree := New[int]()
	for i := 0; i < b.N; i++ {
		tree.Extend(50, 25, 75, 13, 37, 63, 87)
		tree.Clear()
	}
}

func BenchmarkBuildBalancedWithDuplicates(b *testing.B) {
	tree := New[int]()
	for i := 0; i < b.N; i++ {
		tree.Extend(50, 25, 75, 13, 37, 63, 87)
		tree.Extend(50, 25, 75, 13, 37, 63, 87)
		tree.Clear()
	}
}

func BenchmarkBuildWorstCaseChain(b *testing.B) {
	tree := New[int]()
	for i := 0; i < b.N; i++ {
		for v := 0; v < 10; v++ {
			tree.Insert(v)
		}
		tree.Clear()
	}
}

func BenchmarkContains(b *testing.B) {
	tree := FromValues(50, 25, 75, 13, 37, 63, 87)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Contains(37)
	}
}
