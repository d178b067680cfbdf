// Command nevgen generates named non-empty vector types.
//
// A generic *nev.Vec[examples.Payment] works everywhere, but API boundaries
// read better with a domain name. nevgen turns a tiny JSON spec into a named
// wrapper with typed constructors:
//
//   - You write a *.nev.json spec next to the package that owns the type.
//   - You add a //go:generate ... directive in that package.
//   - nevgen generates a wrapper embedding nev.Vec with:
//       - New<Type>(first, rest...) construction
//       - <Type>FromSlice(s) with the ErrEmpty guard
//       - Collect<Type>(seq) to end iterator pipelines
//
// The wrapper embeds nev.Vec, so every Vec method is available on it.
//
// When to use nevgen
//
// Use it when:
//
//   - A non-empty collection is part of a package's public API and deserves
//     a name (Payments, Samples, Hops) rather than a generic spelling.
//   - You want the constructors' signatures to mention the element type
//     concretely, for godoc and for call-site readability.
//   - The same shape repeats across packages and hand-writing wrappers is
//     becoming boilerplate.
//
// When NOT to use nevgen
//
// Skip it for internals: inside a package, nev.Vec[T] used directly is less
// machinery. The wrapper earns its keep only at boundaries.
//
// Spec format (*.nev.json)
//
// Minimal example:
//
//	{
//	  "package": "batch",
//	  "typeName": "Payments",
//	  "elemType": "examples.Payment",
//	  "imports": [
//	    { "path": "github.com/verlio/nonempty/examples" }
//	  ]
//	}
//
// package may be omitted, in which case nevgen detects it from the package
// clause of a buildable Go file in the output directory. imports lists the
// packages the element type needs; the qualifier of a qualified elemType
// must be usable under one of them (alias or path base). Builtin element
// types need no imports at all.
//
// Typical go:generate usage
//
// Put this in a Go file of the owning package:
//
//	//go:generate go run ../../cmd/nevgen -spec ./specs/payments.nev.json -out ./payments.gen.go
//
// Then:
//
//	go generate ./...
//
// Generated API (summary)
//
//   - type <Type> struct { nev.Vec[<Elem>] }
//   - New<Type>(first <Elem>, rest ...<Elem>) *<Type>
//   - <Type>FromSlice(s []<Elem>) (*<Type>, error)
//   - Collect<Type>(seq iter.Seq[<Elem>]) (*<Type>, error)
//
// Example wiring
//
//	payments, err := batch.PaymentsFromSlice(loaded)
//	if err != nil {
//		// empty input never becomes a Payments value
//	}
//	summary := batch.Settle(payments)
//
// Output is written atomically (temp file + rename), so a crashed run never
// leaves a partial .gen.go behind.
//
// See examples/batch for end-to-end usage.
package main
