package register

import (
	"fmt"

	"github.com/katalvlaran/qkron/cnum"
	"github.com/katalvlaran/qkron/qubit"
)

// Kron returns the tensor product r ⊗ other.
//
// Every term of r is joined with every term of other: coefficients
// multiply, bases concatenate. Names of other are offset by r.N().
// Returns ErrNameClash when a name is bound in both operands.
//
// Complexity: O(|r|·|other|·(r.N()+other.N())).
func (r *Register) Kron(other *Register) (*Register, error) {
	for name := range other.names {
		if _, ok := r.names[name]; ok {
			return nil, fmt.Errorf("Kron %q: %w", name, ErrNameClash)
		}
	}

	out := &Register{
		n:     r.n + other.n,
		terms: make([]Term, 0, len(r.terms)*len(other.terms)),
		opts:  r.opts,
	}
	for _, a := range r.terms {
		for _, b := range other.terms {
			basis := make([]qubit.Qubit, 0, out.n)
			basis = append(basis, a.Basis...)
			basis = append(basis, b.Basis...)
			out.terms = append(out.terms, Term{Coeff: a.Coeff.Mul(b.Coeff), Basis: basis})
		}
	}
	out.copyNames(r.names)
	for name, ix := range other.names {
		out.names[name] = r.n + ix
	}

	return out, nil
}

// Superpose returns the linear combination cSelf·r + cOther·other scaled to
// unit norm. Overlapping operands are accounted for: |0⟩ + |+⟩ is scaled by
// its true norm, not by the coefficient sum.
//
// Returns ErrSizeMismatch when the qubit counts differ and ErrNameMismatch
// when a name bound in both operands resolves to different indices. The
// result carries the union of both name tables.
func (r *Register) Superpose(cSelf, cOther cnum.Complex, other *Register) (*Register, error) {
	if r.n != other.n {
		return nil, fmt.Errorf("Superpose: %d vs %d qubits: %w", r.n, other.n, ErrSizeMismatch)
	}
	for name, ix := range other.names {
		if mine, ok := r.names[name]; ok && mine != ix {
			return nil, fmt.Errorf("Superpose %q: %d vs %d: %w", name, mine, ix, ErrNameMismatch)
		}
	}

	terms := make([]Term, 0, len(r.terms)+len(other.terms))
	for _, t := range r.terms {
		terms = append(terms, Term{Coeff: t.Coeff.Mul(cSelf), Basis: t.Basis})
	}
	for _, t := range other.terms {
		terms = append(terms, Term{Coeff: t.Coeff.Mul(cOther), Basis: t.Basis})
	}

	out, err := build(terms, r.conf())
	if err != nil {
		return nil, err
	}
	out.copyNames(r.names)
	out.copyNames(other.names)

	return out.renormalize()
}

// Project returns the unnormalized branch of r in which the qubit ref has
// the given computational-basis outcome (0 or 1).
//
// Each term keeps its shape with that qubit replaced by |outcome⟩ and its
// coefficient multiplied by the qubit's pre-projection amplitude for
// outcome. When the terms are mutually orthogonal, Probability() of the
// result is the branch probability.
func (r *Register) Project(ref string, outcome int) (*Register, error) {
	if outcome != 0 && outcome != 1 {
		return nil, fmt.Errorf("Project %q: %d: %w", ref, outcome, ErrBadOutcome)
	}
	ix, err := r.Lookup(ref)
	if err != nil {
		return nil, err
	}

	fixed := qubit.Basis(outcome)
	out := &Register{n: r.n, terms: make([]Term, len(r.terms)), opts: r.opts}
	for i, t := range r.terms {
		nt := t.Clone()
		nt.Coeff = t.Coeff.Mul(t.Basis[ix].Amplitude(outcome))
		nt.Basis[ix] = fixed
		out.terms[i] = nt
	}
	out.copyNames(r.names)

	return out, nil
}

// Inner returns the inner product ⟨r|other⟩ of the two represented states,
// computed term by term without dense expansion.
// Returns ErrSizeMismatch when the qubit counts differ.
//
// Complexity: O(|r|·|other|·N()).
func (r *Register) Inner(other *Register) (cnum.Complex, error) {
	if r.n != other.n {
		return cnum.Zero, fmt.Errorf("Inner: %d vs %d qubits: %w", r.n, other.n, ErrSizeMismatch)
	}
	sum := cnum.Zero
	for _, a := range r.terms {
		for _, b := range other.terms {
			sum = sum.Add(a.Coeff.Conj().Mul(b.Coeff).Mul(overlap(a.Basis, b.Basis, -1)))
		}
	}

	return sum, nil
}

// overlap returns Π_k ⟨a[k]|b[k]⟩, skipping position skip (-1 skips none).
func overlap(a, b []qubit.Qubit, skip int) cnum.Complex {
	prod := cnum.One
	for k := range a {
		if k == skip {
			continue
		}
		prod = prod.Mul(a[k].Inner(b[k]))
		if prod == cnum.Zero {
			return prod
		}
	}

	return prod
}
