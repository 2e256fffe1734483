package circuit

import (
	"fmt"

	"github.com/katalvlaran/qkron/gate"
	"github.com/katalvlaran/qkron/register"
)

// maxBits is the width of the oracle's integer domain and range.
const maxBits = 64

// Oracle returns the operator |x⟩|y⟩ → |x⟩|y ⊕ f(x)⟩.
//
// Implementation:
//   - Stage 1: split a clone of the register on xs so that every term holds
//     a definite x.
//   - Stage 2: per term, read x (bit i set when xs[i] is |1⟩), evaluate f
//     once and flip ys[i] for every set bit i of f(x).
//
// Bits of f(x) at or above len(ys) are ignored.
// Returns ErrOverlap when a qubit appears twice across xs and ys and
// ErrTooManyBits when either list is longer than 64. Overlap is checked
// again on resolved indices when the operator runs.
func Oracle(f func(x uint64) uint64, xs, ys []string) (gate.Operator, error) {
	if len(xs) > maxBits || len(ys) > maxBits {
		return nil, fmt.Errorf("Oracle: %d inputs, %d outputs: %w", len(xs), len(ys), ErrTooManyBits)
	}
	seen := make(map[string]struct{}, len(xs)+len(ys))
	for _, ref := range append(append([]string{}, xs...), ys...) {
		if _, dup := seen[ref]; dup {
			return nil, fmt.Errorf("Oracle %q: %w", ref, ErrOverlap)
		}
		seen[ref] = struct{}{}
	}

	return func(r *register.Register) (*register.Register, error) {
		ixs, err := lookupDistinct(r, xs, nil)
		if err != nil {
			return nil, err
		}
		iys, err := lookupDistinct(r, ys, ixs)
		if err != nil {
			return nil, err
		}

		sep, err := r.Clone().Separate(xs...)
		if err != nil {
			return nil, err
		}
		terms := sep.Terms()
		flips := 0
		for i := range terms {
			basis := terms[i].Basis
			var x uint64
			for b, ix := range ixs {
				if bit, _ := basis[ix].Bit(); bit == 1 {
					x |= 1 << b
				}
			}
			fx := f(x)
			for b, iy := range iys {
				if fx>>b&1 == 1 {
					basis[iy] = basis[iy].Flip()
					flips++
				}
			}
		}

		res, err := r.Derive(terms)
		if err != nil {
			return nil, err
		}

		log := r.Logger()
		log.Debug().
			Int("inputs", len(xs)).
			Int("outputs", len(ys)).
			Int("terms", res.Len()).
			Int("flips", flips).
			Msg("oracle")

		return res, nil
	}, nil
}

// lookupDistinct resolves refs and fails with ErrOverlap when an index
// repeats within refs or appears in taken.
func lookupDistinct(r *register.Register, refs []string, taken []int) ([]int, error) {
	used := make(map[int]struct{}, len(refs)+len(taken))
	for _, ix := range taken {
		used[ix] = struct{}{}
	}
	ixs := make([]int, len(refs))
	for i, ref := range refs {
		ix, err := r.Lookup(ref)
		if err != nil {
			return nil, err
		}
		if _, dup := used[ix]; dup {
			return nil, fmt.Errorf("Oracle %q is qubit %d: %w", ref, ix, ErrOverlap)
		}
		used[ix] = struct{}{}
		ixs[i] = ix
	}

	return ixs, nil
}
