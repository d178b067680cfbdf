package nev

import (
	"iter"
	"slices"
)

// Collector is the target side of the fallible collection protocol: a
// container that can attempt to assemble itself from a single-use element
// sequence.
//
// Implementations must range seq exactly once, to exhaustion, report a
// sequence that yields nothing as an error (conventionally ErrEmpty), and
// leave the receiver unchanged when reporting one.
type Collector[T any] interface {
	CollectSeq(seq iter.Seq[T]) error
}

// CollectSeq consumes seq and replaces v's elements with the yielded
// elements, in order. It implements Collector.
//
// The sequence is ranged exactly once, to exhaustion, with no buffering
// beyond the result being built, so producers that misbehave when ranged
// twice are safe to collect. If seq yields nothing, CollectSeq returns
// ErrEmpty and v is untouched. Collection is construction: a zero Vec is a
// legal target here and becomes valid on success. To append instead of
// replace, use ExtendSeq.
func (v *Vec[T]) CollectSeq(seq iter.Seq[T]) error {
	items := slices.Collect(seq)
	if len(items) == 0 {
		return ErrEmpty
	}
	v.items = items
	return nil
}

// FromSeq is the target-first spelling of fallible collection: it builds a
// new Vec from seq, or returns ErrEmpty when seq yields nothing.
func FromSeq[T any](seq iter.Seq[T]) (*Vec[T], error) {
	var v Vec[T]
	if err := v.CollectSeq(seq); err != nil {
		return nil, err
	}
	return &v, nil
}

// Seq is an iter.Seq with collection methods, the producer-first spelling of
// fallible collection.
//
// The two spellings are duals sharing one implementation, so their behavior
// cannot drift apart:
//
//	v, err := nev.FromSeq(producer)            // target-first
//	v, err := nev.Seq[int](producer).Collect() // producer-first
type Seq[T any] iter.Seq[T]

// Collect assembles a new Vec from the sequence, delegating to FromSeq. It
// returns ErrEmpty when the sequence yields nothing.
func (s Seq[T]) Collect() (*Vec[T], error) {
	return FromSeq(iter.Seq[T](s))
}

// CollectInto assembles an arbitrary Collector from the sequence, delegating
// to c.CollectSeq.
func (s Seq[T]) CollectInto(c Collector[T]) error {
	return c.CollectSeq(iter.Seq[T](s))
}
