package nev

import (
	"errors"
	"strconv"
)

var (
	// ErrEmpty is returned when a Vec is built from a source that holds no
	// elements: a nil or empty slice in FromSlice, or a sequence that
	// yields nothing in FromSeq / Seq.Collect / CollectSeq.
	ErrEmpty = errors.New("nev: empty source")

	// ErrLast is returned when a removal operation would leave the Vec
	// empty. The operation is refused and the Vec is left untouched.
	ErrLast = errors.New("nev: cannot remove the last element")
)

// OutOfRangeError is returned when an index or count passed to a removal
// operation lies outside the valid range for the current length.
//
// Only operations that can shrink the Vec report range mistakes this way;
// pure reads and growth operations (At, Set, Insert) panic on bad indexes
// exactly as slice indexing would.
type OutOfRangeError struct {
	// Index is the offending index or count as passed by the caller.
	Index int

	// Len is the Vec's length at the time of the call.
	Len int
}

// Error implements the error interface.
func (e OutOfRangeError) Error() string {
	// Example: nev: index 5 out of range for length 3
	return "nev: index " + strconv.Itoa(e.Index) + " out of range for length " + strconv.Itoa(e.Len)
}
