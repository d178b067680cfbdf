package nev

import (
	"cmp"
	"slices"
)

// SortFunc sorts the elements in place using cmp, which must return a
// negative number when a is ordered before b, zero when they are equal, and
// a positive number otherwise. The sort is not guaranteed to be stable; use
// SortStableFunc when equal elements must keep their original order.
func (v *Vec[T]) SortFunc(cmp func(a, b T) int) {
	slices.SortFunc(v.items, cmp)
}

// SortStableFunc sorts the elements in place like SortFunc while keeping the
// original order of equal elements.
func (v *Vec[T]) SortStableFunc(cmp func(a, b T) int) {
	slices.SortStableFunc(v.items, cmp)
}

// Reverse reverses the elements in place.
func (v *Vec[T]) Reverse() {
	slices.Reverse(v.items)
}

// ContainsFunc reports whether at least one element satisfies f.
func (v *Vec[T]) ContainsFunc(f func(T) bool) bool {
	return slices.ContainsFunc(v.items, f)
}

// IndexFunc returns the index of the first element satisfying f, or -1 when
// none does.
func (v *Vec[T]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(v.items, f)
}

// CompactFunc collapses runs of adjacent elements that eq reports equal,
// keeping the first of each run. Compaction always keeps at least the first
// element, so it needs no guard.
func (v *Vec[T]) CompactFunc(eq func(a, b T) bool) {
	v.items = slices.CompactFunc(v.items, eq)
}

// Sort sorts a Vec of any ordered type in ascending order.
//
// Go methods cannot introduce new type parameters, so the operations needing
// a constraint stronger than any live here as package-level functions,
// mirroring the slices functions they delegate to.
func Sort[T cmp.Ordered](v *Vec[T]) {
	slices.Sort(v.items)
}

// IsSorted reports whether v is in ascending order.
func IsSorted[T cmp.Ordered](v *Vec[T]) bool {
	return slices.IsSorted(v.items)
}

// Contains reports whether x is present in v.
func Contains[T comparable](v *Vec[T], x T) bool {
	return slices.Contains(v.items, x)
}

// Index returns the index of the first occurrence of x in v, or -1 when x is
// not present.
func Index[T comparable](v *Vec[T], x T) int {
	return slices.Index(v.items, x)
}

// Compact collapses runs of adjacent equal elements, keeping the first of
// each run.
func Compact[T comparable](v *Vec[T]) {
	v.items = slices.Compact(v.items)
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *Vec[T]) bool {
	return slices.Equal(a.items, b.items)
}

// EqualFunc is Equal with a custom element comparison. The Vecs may hold
// different element types.
func EqualFunc[T, U any](a *Vec[T], b *Vec[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.items, b.items, eq)
}

// Max returns the largest element. Where slices.Max panics on an empty
// slice, Max is total: a Vec always holds at least one element.
func Max[T cmp.Ordered](v *Vec[T]) T {
	return slices.Max(v.items)
}

// Min returns the smallest element. Like Max, it is total.
func Min[T cmp.Ordered](v *Vec[T]) T {
	return slices.Min(v.items)
}
