package nev

import (
	"iter"
	"slices"
)

// Values returns an iterator over the elements, first to last.
//
// Iterators read the backing slice as of the call; mutating the Vec while an
// iterator is live has the same rules as mutating a slice while ranging it.
func (v *Vec[T]) Values() iter.Seq[T] {
	return slices.Values(v.items)
}

// All returns an iterator over index-element pairs, first to last.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return slices.All(v.items)
}

// Backward returns an iterator over index-element pairs, last to first.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(v.items)
}

// Reduce folds the elements left to right with f, seeded by the first
// element. Because a Vec is never empty, Reduce is total: no zero-value
// seed, no ok-bool.
//
// Example:
//
//	sum := nev.New(1, 2, 3).Reduce(func(acc, x int) int { return acc + x }) // 6
func (v *Vec[T]) Reduce(f func(acc, x T) T) T {
	acc := v.items[0]
	for _, x := range v.items[1:] {
		acc = f(acc, x)
	}
	return acc
}

// Map returns a new Vec holding f of each element of v, in order. The result
// is non-empty by construction, so Map never fails.
func Map[T, U any](v *Vec[T], f func(T) U) *Vec[U] {
	items := make([]U, len(v.items))
	for i, x := range v.items {
		items[i] = f(x)
	}
	return &Vec[U]{items: items}
}
