// Package nev provides a growable sequence that is guaranteed to hold at
// least one element.
//
// This repository keeps the surface area intentionally small:
//
//   - nev: the Vec container itself (guarded removal, iteration, collect)
//   - nevgen: a code generator for thin domain-named wrappers around Vec
//   - examples: runnable walkthroughs, from first Push to generated wrappers
//
// The goal is to move "is it empty?" checks to construction time and keep
// every later access (First, Last, Reduce, Max) total, without reaching for
// reflection or panics on the happy path.
//
// Start with the README and examples in the repo for end-to-end usage style.
//
// Package nev See subpackages:
//   - nev: the container library used by the examples / generator output
//   - cmd/nevgen: code generator for domain-named wrapper types
//   - examples/*: runnable examples for each usage tier
package nev
