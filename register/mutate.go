package register

import (
	"math"
	"strings"

	"github.com/katalvlaran/qkron/cnum"
	"github.com/katalvlaran/qkron/qubit"
)

// Separate splits every term so that each addressed qubit is exactly |0⟩ or
// |1⟩ in every term.
//
// A term c·(…⊗(a|0⟩+b|1⟩)⊗…) becomes c·a·(…⊗|0⟩⊗…) + c·b·(…⊗|1⟩⊗…);
// branches whose weight magnitude is at most epsilon are dropped. The
// represented state is unchanged. Mutates r; nothing changes when a ref
// fails to resolve.
func (r *Register) Separate(refs ...string) (*Register, error) {
	ixs, err := r.lookupAll(refs)
	if err != nil {
		return r, err
	}

	for _, ix := range ixs {
		terms := make([]Term, 0, 2*len(r.terms))
		for _, t := range r.terms {
			q := t.Basis[ix]
			for bit := 0; bit <= 1; bit++ {
				amp := q.Amplitude(bit)
				if !amp.Significant() {
					continue
				}
				nt := t.Clone()
				nt.Coeff = t.Coeff.Mul(amp)
				nt.Basis[ix] = qubit.Basis(bit)
				terms = append(terms, nt)
			}
		}
		r.terms = terms
	}

	return r, nil
}

// Normalize rescales every coefficient by 1/sqrt(Σ|coeff|²).
// Returns ErrZeroState, leaving r unchanged, when that root is below epsilon.
func (r *Register) Normalize() (*Register, error) {
	return r.scaleTo(math.Sqrt(r.Probability()), "normalize")
}

// renormalize rescales every coefficient by the inverse of the exact norm
// ‖ψ‖, overlaps between terms included. For mutually orthogonal terms it
// agrees with Normalize; after a projection it does not, since pieces of
// orthogonal terms can overlap.
func (r *Register) renormalize() (*Register, error) {
	return r.scaleTo(math.Sqrt(math.Max(r.norm2(), 0)), "renormalize")
}

func (r *Register) scaleTo(norm float64, op string) (*Register, error) {
	if norm < cnum.Epsilon {
		r.conf().log.Error().
			Str("op", op).
			Int("qubits", r.n).
			Int("terms", len(r.terms)).
			Float64("norm", norm).
			Msg("near-zero state")

		return r, ErrZeroState
	}

	scale := 1 / norm
	for i := range r.terms {
		r.terms[i].Coeff = r.terms[i].Coeff.Scale(scale)
	}

	return r, nil
}

// norm2 returns ⟨ψ|ψ⟩.
//
// Complexity: O(|terms|²·N()), with early exit on orthogonal basis pairs.
func (r *Register) norm2() float64 {
	var s float64
	for i, a := range r.terms {
		s += a.Coeff.Abs2()
		for j := i + 1; j < len(r.terms); j++ {
			b := r.terms[j]
			ov := overlap(a.Basis, b.Basis, -1)
			if ov == cnum.Zero {
				continue
			}
			s += 2 * a.Coeff.Conj().Mul(b.Coeff).Mul(ov).Re
		}
	}

	return s
}

// Simplify drops terms whose coefficient magnitude is at most epsilon.
func (r *Register) Simplify() *Register {
	kept := r.terms[:0]
	for _, t := range r.terms {
		if t.Coeff.Significant() {
			kept = append(kept, t)
		}
	}
	// Clear the tail so dropped bases can be collected.
	for i := len(kept); i < len(r.terms); i++ {
		r.terms[i] = Term{}
	}
	r.terms = kept

	return r
}

// Coalesce merges terms whose bases are made of the same canonical states
// (|0⟩, |1⟩, |+⟩, |−⟩) position by position, summing their coefficients,
// then drops negligible terms. Terms holding any other qubit are kept as
// they are. The represented state is unchanged.
//
// Complexity: O(|terms|·N()) expected.
func (r *Register) Coalesce() *Register {
	merged := make([]Term, 0, len(r.terms))
	seen := make(map[string]int, len(r.terms))

	var key strings.Builder
	for _, t := range r.terms {
		key.Reset()
		canonical := true
		for _, q := range t.Basis {
			k := q.Kind()
			if k == qubit.KindOther {
				canonical = false
				break
			}
			key.WriteByte(byte('0' + k))
		}
		if !canonical {
			merged = append(merged, t)
			continue
		}
		if at, ok := seen[key.String()]; ok {
			merged[at].Coeff = merged[at].Coeff.Add(t.Coeff)
			continue
		}
		seen[key.String()] = len(merged)
		merged = append(merged, t)
	}
	before := len(r.terms)
	r.terms = merged
	r.Simplify()

	r.conf().log.Trace().
		Int("before", before).
		Int("after", len(r.terms)).
		Msg("coalesce")

	return r
}
