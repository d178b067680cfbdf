package nev_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/verlio/nonempty/nev"
)

const propertyN = 1000

// randElem returns a random element value in [0, 100).
func randElem(rng *rand.Rand) int {
	return rng.IntN(100)
}

func isEven(x int) bool { return x%2 == 0 }

// --- Group 1: random operation sequences against a shadow slice ---

// The shadow models every operation, refusals included. After each step the
// Vec must match the shadow exactly and the shadow can never be empty, so a
// divergence or an empty Vec means a guard failed.
func TestPropertyMutationsMatchShadowModel(t *testing.T) {
	const (
		runs  = 100
		steps = 50
	)

	rng := rand.New(rand.NewPCG(42, 0))

	for run := range runs {
		v := nev.New(randElem(rng))
		shadow := []int{v.First()}

		for step := range steps {
			switch rng.IntN(8) {
			case 0: // Push
				x := randElem(rng)
				v.Push(x)
				shadow = append(shadow, x)

			case 1: // Pop
				x, ok := v.Pop()
				if len(shadow) >= 2 {
					if !ok || x != shadow[len(shadow)-1] {
						t.Fatalf("run %d step %d: pop got (%d, %v), want (%d, true)",
							run, step, x, ok, shadow[len(shadow)-1])
					}
					shadow = shadow[:len(shadow)-1]
				} else if ok {
					t.Fatalf("run %d step %d: pop succeeded on a singleton", run, step)
				}

			case 2: // Insert
				i := rng.IntN(len(shadow) + 1)
				x := randElem(rng)
				v.Insert(i, x)
				shadow = slices.Insert(shadow, i, x)

			case 3: // RemoveAt
				i := rng.IntN(len(shadow)+2) - 1
				x, err := v.RemoveAt(i)
				switch {
				case i < 0 || i >= len(shadow):
					var oor nev.OutOfRangeError
					if !errors.As(err, &oor) {
						t.Fatalf("run %d step %d: RemoveAt(%d) err = %v, want OutOfRangeError", run, step, i, err)
					}
				case len(shadow) == 1:
					if !errors.Is(err, nev.ErrLast) {
						t.Fatalf("run %d step %d: RemoveAt(%d) err = %v, want ErrLast", run, step, i, err)
					}
				default:
					if err != nil || x != shadow[i] {
						t.Fatalf("run %d step %d: RemoveAt(%d) = (%d, %v), want (%d, nil)",
							run, step, i, x, err, shadow[i])
					}
					shadow = slices.Delete(shadow, i, i+1)
				}

			case 4: // SwapRemove
				i := rng.IntN(len(shadow)+2) - 1
				x, err := v.SwapRemove(i)
				switch {
				case i < 0 || i >= len(shadow):
					var oor nev.OutOfRangeError
					if !errors.As(err, &oor) {
						t.Fatalf("run %d step %d: SwapRemove(%d) err = %v, want OutOfRangeError", run, step, i, err)
					}
				case len(shadow) == 1:
					if !errors.Is(err, nev.ErrLast) {
						t.Fatalf("run %d step %d: SwapRemove(%d) err = %v, want ErrLast", run, step, i, err)
					}
				default:
					if err != nil || x != shadow[i] {
						t.Fatalf("run %d step %d: SwapRemove(%d) = (%d, %v), want (%d, nil)",
							run, step, i, x, err, shadow[i])
					}
					shadow[i] = shadow[len(shadow)-1]
					shadow = shadow[:len(shadow)-1]
				}

			case 5: // Truncate
				n := rng.IntN(len(shadow)+3) - 1
				err := v.Truncate(n)
				switch {
				case n < 0:
					var oor nev.OutOfRangeError
					if !errors.As(err, &oor) {
						t.Fatalf("run %d step %d: Truncate(%d) err = %v, want OutOfRangeError", run, step, n, err)
					}
				case n == 0:
					if !errors.Is(err, nev.ErrLast) {
						t.Fatalf("run %d step %d: Truncate(0) err = %v, want ErrLast", run, step, err)
					}
				default:
					if err != nil {
						t.Fatalf("run %d step %d: Truncate(%d) err = %v", run, step, n, err)
					}
					if n < len(shadow) {
						shadow = shadow[:n]
					}
				}

			case 6: // Retain
				kept := slices.ContainsFunc(shadow, isEven)
				err := v.Retain(isEven)
				if kept {
					if err != nil {
						t.Fatalf("run %d step %d: Retain err = %v with survivors present", run, step, err)
					}
					filtered := shadow[:0:0]
					for _, x := range shadow {
						if isEven(x) {
							filtered = append(filtered, x)
						}
					}
					shadow = filtered
				} else if !errors.Is(err, nev.ErrLast) {
					t.Fatalf("run %d step %d: Retain err = %v, want ErrLast", run, step, err)
				}

			case 7: // Drain
				i := rng.IntN(len(shadow) + 1)
				j := rng.IntN(len(shadow) + 1)
				removed, err := v.Drain(i, j)
				switch {
				case i > j:
					var oor nev.OutOfRangeError
					if !errors.As(err, &oor) {
						t.Fatalf("run %d step %d: Drain(%d, %d) err = %v, want OutOfRangeError", run, step, i, j, err)
					}
				case i == 0 && j == len(shadow):
					if !errors.Is(err, nev.ErrLast) {
						t.Fatalf("run %d step %d: Drain(%d, %d) err = %v, want ErrLast", run, step, i, j, err)
					}
				default:
					if err != nil || !slices.Equal(removed, shadow[i:j]) {
						t.Fatalf("run %d step %d: Drain(%d, %d) = (%v, %v), want (%v, nil)",
							run, step, i, j, removed, err, shadow[i:j])
					}
					shadow = slices.Delete(shadow, i, j)
				}
			}

			if v.Len() < 1 {
				t.Fatalf("run %d step %d: length invariant broken, Len() = %d", run, step, v.Len())
			}
			if !slices.Equal(v.Slice(), shadow) {
				t.Fatalf("run %d step %d: diverged from model\n got %v\nwant %v", run, step, v.Slice(), shadow)
			}
		}

		if v.First() != shadow[0] || v.Last() != shadow[len(shadow)-1] {
			t.Fatalf("run %d: First/Last = %d/%d, want %d/%d",
				run, v.First(), v.Last(), shadow[0], shadow[len(shadow)-1])
		}
	}
}

// --- Group 2: construction round trips ---

// TestPropertyFromSliceRoundTrip: FromSlice(s).Slice() ≡ s for non-empty s.
func TestPropertyFromSliceRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(16)
		s := make([]int, n)
		for i := range s {
			s[i] = randElem(rng)
		}

		v, err := nev.FromSlice(slices.Clone(s))
		if n == 0 {
			if !errors.Is(err, nev.ErrEmpty) {
				t.Fatalf("FromSlice(empty) err = %v, want ErrEmpty", err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("FromSlice(%v) err = %v", s, err)
		}
		if !slices.Equal(v.Slice(), s) {
			t.Fatalf("round trip: got %v, want %v", v.Slice(), s)
		}
	}
}

// TestPropertyCollectAgreesWithFromSlice: both constructions see the same
// elements, so they must agree on result and on refusal.
func TestPropertyCollectAgreesWithFromSlice(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(8)
		s := make([]int, n)
		for i := range s {
			s[i] = randElem(rng)
		}

		fromSlice, errSlice := nev.FromSlice(slices.Clone(s))
		collected, errSeq := nev.Seq[int](slices.Values(s)).Collect()

		if (errSlice == nil) != (errSeq == nil) {
			t.Fatalf("construction disagreement on %v: %v vs %v", s, errSlice, errSeq)
		}
		if errSlice != nil {
			continue
		}
		if !nev.Equal(fromSlice, collected) {
			t.Fatalf("construction divergence on %v: %v vs %v", s, fromSlice, collected)
		}
	}
}

// --- Group 3: algebraic relations ---

// TestPropertySplitOffConcatenation: keep ++ tail ≡ original.
func TestPropertySplitOffConcatenation(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := 1 + rng.IntN(10)
		s := make([]int, n)
		for i := range s {
			s[i] = randElem(rng)
		}

		v := nev.FromSliceUnchecked(slices.Clone(s))
		at := 1 + rng.IntN(n) // [1, n], always legal
		tail, err := v.SplitOff(at)
		if err != nil {
			t.Fatalf("SplitOff(%d) on %v err = %v", at, s, err)
		}

		joined := append(slices.Clone(v.Slice()), tail...)
		if !slices.Equal(joined, s) {
			t.Fatalf("SplitOff(%d) lost elements: %v ++ %v != %v", at, v.Slice(), tail, s)
		}
	}
}

// TestPropertySortBoundsAreMinMax: after Sort, First ≡ Min and Last ≡ Max.
func TestPropertySortBoundsAreMinMax(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := 1 + rng.IntN(12)
		v := nev.New(randElem(rng))
		for range n - 1 {
			v.Push(randElem(rng))
		}

		wantMin, wantMax := nev.Min(v), nev.Max(v)
		nev.Sort(v)

		if !nev.IsSorted(v) {
			t.Fatalf("not sorted: %v", v)
		}
		if v.First() != wantMin || v.Last() != wantMax {
			t.Fatalf("sorted bounds: First/Last = %d/%d, want %d/%d",
				v.First(), v.Last(), wantMin, wantMax)
		}
	}
}
