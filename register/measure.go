package register

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qkron/cnum"
	"github.com/katalvlaran/qkron/qubit"
)

// Measure measures each addressed qubit in turn, collapsing it to |0⟩ or |1⟩
// at random according to its branch probabilities. Mutates r.
//
// See MeasureBits for the procedure and errors.
func (r *Register) Measure(refs ...string) (*Register, error) {
	_, err := r.MeasureBits(refs...)

	return r, err
}

// MeasureBits measures the addressed qubits in order and returns the drawn
// outcomes. Mutates r.
//
// For each qubit:
//  1. p0 and p1 are computed exactly from the terms (no dense expansion).
//  2. |p0+p1-1| > epsilon is an invariant violation (ErrProbabilityDrift).
//  3. One uniform sample u is drawn; u <= p0 selects outcome 0.
//  4. Every term is projected onto the outcome; vanished terms are dropped
//     and the state is rescaled by 1/sqrt(p_outcome).
//
// The register is therefore left normalized after every qubit: coefficients
// are not kept at their pre-measurement scale, and the next draw sees the
// conditional state. On error the outcomes drawn so far are returned.
func (r *Register) MeasureBits(refs ...string) ([]int, error) {
	ixs, err := r.lookupAll(refs)
	if err != nil {
		return nil, err
	}

	o := r.conf()
	bits := make([]int, 0, len(ixs))
	for i, ix := range ixs {
		p0, p1 := r.branchProbabilities(ix)
		if math.Abs(p0+p1-1) > cnum.Epsilon {
			o.log.Error().
				Str("qubit", refs[i]).
				Float64("p0", p0).
				Float64("p1", p1).
				Msg("measure: probability drift")

			return bits, fmt.Errorf("measure %q: p0=%g p1=%g: %w", refs[i], p0, p1, ErrProbabilityDrift)
		}

		outcome := 1
		switch {
		case p1 < cnum.Epsilon:
			outcome = 0
		case p0 < cnum.Epsilon:
			outcome = 1
		case o.float64() <= p0:
			outcome = 0
		}
		p := p0
		if outcome == 1 {
			p = p1
		}
		if err = r.collapse(ix, outcome, p); err != nil {
			return bits, fmt.Errorf("measure %q: %w", refs[i], err)
		}
		bits = append(bits, outcome)

		o.log.Debug().
			Str("qubit", refs[i]).
			Float64("p0", p0).
			Float64("p1", p1).
			Int("outcome", outcome).
			Int("terms", len(r.terms)).
			Msg("measured")
	}

	return bits, nil
}

// branchProbabilities returns ‖P0ψ‖² and ‖P1ψ‖² for qubit ix, using the
// pairwise overlaps of the remaining qubits so that non-orthogonal terms are
// accounted for.
//
// Complexity: O(|terms|²·N()).
func (r *Register) branchProbabilities(ix int) (p0, p1 float64) {
	w0 := make([]cnum.Complex, len(r.terms))
	w1 := make([]cnum.Complex, len(r.terms))
	for i, t := range r.terms {
		w0[i] = t.Coeff.Mul(t.Basis[ix].Zero)
		w1[i] = t.Coeff.Mul(t.Basis[ix].One)
	}

	for i := range r.terms {
		p0 += w0[i].Abs2()
		p1 += w1[i].Abs2()
		for j := i + 1; j < len(r.terms); j++ {
			ov := overlap(r.terms[i].Basis, r.terms[j].Basis, ix)
			if ov == cnum.Zero {
				continue
			}
			p0 += 2 * w0[i].Conj().Mul(w0[j]).Mul(ov).Re
			p1 += 2 * w1[i].Conj().Mul(w1[j]).Mul(ov).Re
		}
	}

	return p0, p1
}

// collapse projects every term onto |outcome⟩ at ix, drops vanished terms
// and rescales by 1/sqrt(p), where p is the exact branch probability
// ‖P_outcome ψ‖² already computed for the draw.
func (r *Register) collapse(ix, outcome int, p float64) error {
	fixed := qubit.Basis(outcome)
	kept := make([]Term, 0, len(r.terms))
	for _, t := range r.terms {
		w := t.Coeff.Mul(t.Basis[ix].Amplitude(outcome))
		if !w.Significant() {
			continue
		}
		nt := t.Clone()
		nt.Coeff = w
		nt.Basis[ix] = fixed
		kept = append(kept, nt)
	}
	prev := r.terms
	r.terms = kept
	if _, err := r.scaleTo(math.Sqrt(math.Max(p, 0)), "collapse"); err != nil {
		r.terms = prev

		return err
	}

	return nil
}
