// Package nev provides a growable vector that cannot become empty.
//
// The surface intentionally splits in two:
//
//   - Guarded operations: anything that could shrink the length reports a
//     refusal (typed error, or an ok-bool for Pop) instead of removing the
//     last element. A refusal never leaves partial mutation behind.
//
//   - Pass-through operations: reads, in-place writes, growth and iteration
//     behave exactly like the standard slices package, bad-index panics
//     included, because they cannot threaten the invariant.
//
// Quick guidance
//
// Use New when the first element is in hand:
//   - It cannot fail, and the variadic tail covers literal-style construction
//
// Use FromSlice at boundaries where data arrives as a plain slice:
//   - Possibly-empty input becomes ErrEmpty, never an invalid value
//
// Use FromSliceUnchecked only where non-emptiness was already proven:
//   - You are vouching, not asking; an empty slice here is a contract bug
//
// Use FromSeq or Seq.Collect to end an iterator pipeline:
//   - Both report an empty pipeline as ErrEmpty; pick by reading order
//
// The payoff for keeping the invariant is the total accessors: First, Last,
// Reduce, Max and Min have no failure mode to handle.
//
// examples can be found under examples/basic, examples/stream and examples/batch
// Import
//
//	"github.com/verlio/nonempty/nev"
package nev
