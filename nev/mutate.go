package nev

import (
	"iter"
	"slices"
)

// Push appends x. Growth is always legal, so Push never fails.
func (v *Vec[T]) Push(x T) {
	v.items = append(v.items, x)
}

// Insert inserts x at index i, shifting later elements right. An index equal
// to Len appends. Insert panics on out-of-range like slices.Insert; growth
// cannot violate the length invariant, so it keeps slice semantics.
func (v *Vec[T]) Insert(i int, x T) {
	v.items = slices.Insert(v.items, i, x)
}

// Extend appends every element of xs, in order.
func (v *Vec[T]) Extend(xs ...T) {
	v.items = append(v.items, xs...)
}

// ExtendSeq appends every element yielded by seq, in order. The sequence is
// ranged exactly once. Contrast with CollectSeq, which replaces.
func (v *Vec[T]) ExtendSeq(seq iter.Seq[T]) {
	v.items = slices.AppendSeq(v.items, seq)
}

// Apply replaces each element with f of it, in place and in order.
func (v *Vec[T]) Apply(f func(T) T) {
	for i := range v.items {
		v.items[i] = f(v.items[i])
	}
}

// Pop removes and returns the last element.
//
// On a singleton Pop returns the zero value and false: refusing to remove the
// last element is an expected outcome in drain-style loops, so it is reported
// as an ok-bool rather than an error. The Vec is untouched by a refusal.
//
// Example:
//
//	v := nev.New(5, 6, 7)
//	v.Pop() // 7, true
//	v.Pop() // 6, true
//	v.Pop() // 0, false; v still holds [5]
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if len(v.items) < 2 {
		return zero, false
	}
	n := len(v.items) - 1
	x := v.items[n]
	v.items[n] = zero // release the vacated slot
	v.items = v.items[:n]
	return x, true
}

// RemoveAt removes and returns the element at index i, shifting later
// elements left. Order is preserved.
//
// It returns OutOfRangeError when i is not a valid index and ErrLast when the
// Vec holds a single element. A refusal leaves the Vec untouched.
func (v *Vec[T]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(v.items) {
		return zero, OutOfRangeError{Index: i, Len: len(v.items)}
	}
	if len(v.items) == 1 {
		return zero, ErrLast
	}
	x := v.items[i]
	v.items = slices.Delete(v.items, i, i+1)
	return x, nil
}

// SwapRemove removes and returns the element at index i by moving the last
// element into its place. Constant time; order is not preserved.
//
// The refusals match RemoveAt: OutOfRangeError for a bad index, ErrLast on a
// singleton, and no mutation on either.
func (v *Vec[T]) SwapRemove(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(v.items) {
		return zero, OutOfRangeError{Index: i, Len: len(v.items)}
	}
	if len(v.items) == 1 {
		return zero, ErrLast
	}
	n := len(v.items) - 1
	x := v.items[i]
	v.items[i] = v.items[n]
	v.items[n] = zero // release the vacated slot
	v.items = v.items[:n]
	return x, nil
}

// Truncate keeps the first n elements and drops the rest.
//
// n must be at least 1: zero is refused with ErrLast and a negative n with
// OutOfRangeError. When n >= Len, Truncate is a no-op.
func (v *Vec[T]) Truncate(n int) error {
	if n < 0 {
		return OutOfRangeError{Index: n, Len: len(v.items)}
	}
	if n == 0 {
		return ErrLast
	}
	if n >= len(v.items) {
		return nil
	}
	v.items = slices.Delete(v.items, n, len(v.items))
	return nil
}

// Resize sets the length to n, truncating or appending copies of fill as
// needed. The refusals match Truncate: n must be at least 1.
func (v *Vec[T]) Resize(n int, fill T) error {
	if n < 0 {
		return OutOfRangeError{Index: n, Len: len(v.items)}
	}
	if n == 0 {
		return ErrLast
	}
	if n <= len(v.items) {
		v.items = slices.Delete(v.items, n, len(v.items))
		return nil
	}
	v.items = slices.Grow(v.items, n-len(v.items))
	for len(v.items) < n {
		v.items = append(v.items, fill)
	}
	return nil
}

// SplitOff splits the Vec at index at, keeping [0:at] and returning the tail
// [at:Len] as a plain slice with its own backing array.
//
// at == 0 is refused with ErrLast since the receiver must stay non-empty;
// at == Len is legal and returns an empty tail, because the returned value is
// a plain slice and owes no invariant. Any other at outside the range returns
// OutOfRangeError.
func (v *Vec[T]) SplitOff(at int) ([]T, error) {
	if at < 0 || at > len(v.items) {
		return nil, OutOfRangeError{Index: at, Len: len(v.items)}
	}
	if at == 0 {
		return nil, ErrLast
	}
	tail := slices.Clone(v.items[at:])
	v.items = slices.Delete(v.items, at, len(v.items))
	return tail, nil
}

// Drain removes the elements in [i:j] and returns them as a plain slice with
// its own backing array. An empty range is a legal no-op.
//
// Draining the full range is refused with ErrLast; a bound outside [0, Len]
// or an inverted pair returns OutOfRangeError. A refusal leaves the Vec
// untouched.
func (v *Vec[T]) Drain(i, j int) ([]T, error) {
	switch {
	case i < 0 || i > len(v.items):
		return nil, OutOfRangeError{Index: i, Len: len(v.items)}
	case j < 0 || j > len(v.items):
		return nil, OutOfRangeError{Index: j, Len: len(v.items)}
	case i > j:
		return nil, OutOfRangeError{Index: i, Len: len(v.items)}
	}
	if i == 0 && j == len(v.items) {
		return nil, ErrLast
	}
	removed := slices.Clone(v.items[i:j])
	v.items = slices.Delete(v.items, i, j)
	return removed, nil
}

// Splice replaces the elements in [i:j] with repl and returns the removed run
// as a plain slice with its own backing array.
//
// The range rules match Drain, with one loosening: replacing the full range
// is legal as long as repl is non-empty, since the result stays non-empty by
// construction. Removing the full range with an empty repl is ErrLast.
func (v *Vec[T]) Splice(i, j int, repl ...T) ([]T, error) {
	switch {
	case i < 0 || i > len(v.items):
		return nil, OutOfRangeError{Index: i, Len: len(v.items)}
	case j < 0 || j > len(v.items):
		return nil, OutOfRangeError{Index: j, Len: len(v.items)}
	case i > j:
		return nil, OutOfRangeError{Index: i, Len: len(v.items)}
	}
	if i == 0 && j == len(v.items) && len(repl) == 0 {
		return nil, ErrLast
	}
	removed := slices.Clone(v.items[i:j])
	v.items = slices.Replace(v.items, i, j, repl...)
	return removed, nil
}

// Retain keeps only the elements for which keep returns true, preserving
// order.
//
// If nothing would survive, Retain returns ErrLast with the contents exactly
// as they were: the single pass below writes nothing until the first kept
// element, so the all-dropped case never mutates. The decision is made from
// the element values alone; keep must not mutate the Vec.
func (v *Vec[T]) Retain(keep func(T) bool) error {
	n := 0
	for i, x := range v.items {
		if !keep(x) {
			continue
		}
		if n != i {
			v.items[n] = x
		}
		n++
	}
	if n == 0 {
		return ErrLast
	}
	clear(v.items[n:]) // release the vacated slots
	v.items = v.items[:n]
	return nil
}
