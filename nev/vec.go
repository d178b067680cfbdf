// Package nev provides a growable sequence that always holds at least one
// element.
//
// A Vec is built from a first value or a non-empty source and never becomes
// empty again: every operation that could drop the length to zero either
// refuses with a typed error or reports "no removal" through an ok-bool. In
// exchange, accessors like First, Last, Reduce, Max and Min are total: no
// ok-bool, no error, no panic on a valid Vec.
//
// Design goals:
//   - Unrepresentable emptiness: the backing slice is unexported, and refusal
//     rather than repair keeps the length invariant.
//   - Slice feel: method names and semantics follow the standard slices
//     package wherever the invariant allows.
//   - Explicit trust boundary: FromSliceUnchecked is the single place where
//     the caller vouches for non-emptiness instead of the library checking.
//
// Notes on performance:
//   - Operations delegate to the standard slices package; no copying happens
//     beyond what the same edit on a plain slice would do.
//   - Error paths avoid fmt.Errorf to keep refusal handling inexpensive when
//     refusals are used for control flow (e.g., popping until the guard trips).
package nev

import (
	"fmt"
	"slices"
)

// Vec is a growable sequence guaranteed to hold at least one element.
//
// The zero Vec and a nil *Vec are not valid; every valid Vec comes from New,
// FromSlice, FromSliceUnchecked, FromSeq or Clone. Method behavior on an
// invalid Vec is undefined (in practice an index-out-of-range panic).
//
// A Vec is not safe for concurrent mutation, same as a plain slice.
type Vec[T any] struct {
	items []T
}

// New returns a Vec holding first followed by rest, in order.
//
// This is the always-valid constructor: there is no way to call it without
// supplying at least one element.
//
// Example:
//
//	v := nev.New(5)          // [5]
//	w := nev.New("a", "b")   // [a b]
func New[T any](first T, rest ...T) *Vec[T] {
	items := make([]T, 0, 1+len(rest))
	items = append(items, first)
	items = append(items, rest...)
	return &Vec[T]{items: items}
}

// FromSlice returns a Vec backed by s, or ErrEmpty when s holds no elements.
//
// The Vec takes ownership of s; the caller must not use s afterwards.
func FromSlice[T any](s []T) (*Vec[T], error) {
	if len(s) == 0 {
		return nil, ErrEmpty
	}
	return &Vec[T]{items: s}, nil
}

// FromSliceUnchecked returns a Vec backed by s without checking anything.
//
// This is the trust boundary: the caller vouches that s is non-empty. Passing
// an empty slice produces an invalid Vec whose method behavior is undefined.
// The Vec takes ownership of s either way.
func FromSliceUnchecked[T any](s []T) *Vec[T] {
	return &Vec[T]{items: s}
}

// Len reports the number of elements. It is at least 1 on a valid Vec.
func (v *Vec[T]) Len() int { return len(v.items) }

// Cap reports the capacity of the backing slice.
func (v *Vec[T]) Cap() int { return cap(v.items) }

// First returns the first element. It never fails on a valid Vec.
func (v *Vec[T]) First() T { return v.items[0] }

// Last returns the last element. It never fails on a valid Vec.
func (v *Vec[T]) Last() T { return v.items[len(v.items)-1] }

// At returns the element at index i, panicking on out-of-range exactly as
// slice indexing would. Reading cannot threaten the length invariant, so no
// error channel is earned.
func (v *Vec[T]) At(i int) T { return v.items[i] }

// Set replaces the element at index i, panicking on out-of-range exactly as
// slice indexing would.
func (v *Vec[T]) Set(i int, x T) { v.items[i] = x }

// Swap exchanges the elements at indexes i and j, panicking on out-of-range.
func (v *Vec[T]) Swap(i, j int) {
	v.items[i], v.items[j] = v.items[j], v.items[i]
}

// Slice returns the backing slice itself, not a copy.
//
// This is the escape hatch into plain-slice APIs. Element writes through the
// returned slice are visible in the Vec; appending to or reslicing the
// returned value cannot change the Vec's length, so the invariant survives
// any use of the view. Callers who need isolation should use Clone.
func (v *Vec[T]) Slice() []T { return v.items }

// Clone returns a new Vec with its own backing array and the same elements.
func (v *Vec[T]) Clone() *Vec[T] {
	return &Vec[T]{items: slices.Clone(v.items)}
}

// Grow increases the capacity to hold at least n more elements without
// reallocating. It panics if n is negative, as slices.Grow does.
func (v *Vec[T]) Grow(n int) {
	v.items = slices.Grow(v.items, n)
}

// Clip removes unused capacity from the backing slice.
func (v *Vec[T]) Clip() {
	v.items = slices.Clip(v.items)
}

// String renders the elements like a plain slice, e.g. "[1 2 3]".
func (v *Vec[T]) String() string {
	return fmt.Sprint(v.items)
}
