package gate

import (
	"fmt"

	"github.com/katalvlaran/qkron/qubit"
	"github.com/katalvlaran/qkron/register"
)

// Operator transforms a register into a new one.
type Operator func(*register.Register) (*register.Register, error)

// Local maps the addressed qubits of one term, in ref order, to a small
// superposition over the same number of qubits. The slice is owned by the
// caller and must not be retained.
type Local func([]qubit.Qubit) (*register.Register, error)

// Gate binds a local operator to qubit references.
type Gate func(refs ...string) Operator

// Must returns op and panics if err is non-nil.
// Intended for package-level circuit definitions with literal refs.
func Must(op Operator, err error) Operator {
	if err != nil {
		panic(err)
	}

	return op
}

// Apply lifts local over every term of a register.
//
// Implementation:
//   - Stage 1: resolve refs; unknown refs and refs resolving to the same
//     qubit fail before any term is touched.
//   - Stage 2: for each term, call local on the addressed qubits and fork
//     the term once per output branch. Untouched qubits are copied, the
//     addressed ones overwritten, coefficients multiplied.
//   - Stage 3: drop negligible branches, rescale to the input's Σ|coeff|²
//     (a no-op for a unitary local), carry name bindings.
//
// Returns ErrArity when local yields a register of the wrong width and
// ErrDuplicateRef for aliased refs. Errors from local are returned as is.
//
// Complexity: O(|terms|·b·N) where b is the branch count of local.
func Apply(local Local, refs ...string) Operator {
	return func(r *register.Register) (*register.Register, error) {
		ixs, err := resolve(r, refs)
		if err != nil {
			return nil, err
		}

		in := r.Terms()
		out := make([]register.Term, 0, len(in))
		for _, t := range in {
			qs := make([]qubit.Qubit, len(ixs))
			for k, ix := range ixs {
				qs[k] = t.Basis[ix]
			}
			sub, err := local(qs)
			if err != nil {
				return nil, err
			}
			if sub.N() != len(ixs) {
				return nil, fmt.Errorf("Apply: local returned %d qubits for %d refs: %w", sub.N(), len(ixs), ErrArity)
			}
			for _, s := range sub.Terms() {
				c := t.Coeff.Mul(s.Coeff)
				if !c.Significant() {
					continue
				}
				nt := t.Clone()
				nt.Coeff = c
				for k, ix := range ixs {
					nt.Basis[ix] = s.Basis[k]
				}
				out = append(out, nt)
			}
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("Apply %v: every branch vanished: %w", refs, register.ErrZeroState)
		}

		res, err := r.Derive(out)
		if err != nil {
			return nil, err
		}

		log := r.Logger()
		log.Trace().
			Strs("refs", refs).
			Int("before", r.Len()).
			Int("after", res.Len()).
			Msg("apply")

		return res, nil
	}
}

// Lift returns a Gate that applies f to every addressed qubit of every
// term, one qubit at a time. Terms never fork and coefficients are left as
// they are, so the result costs one pass over the terms.
// name labels trace events.
func Lift(name string, f func(qubit.Qubit) qubit.Qubit) Gate {
	return func(refs ...string) Operator {
		return func(r *register.Register) (*register.Register, error) {
			ixs, err := resolve(r, refs)
			if err != nil {
				return nil, err
			}

			terms := r.Terms()
			for i := range terms {
				for _, ix := range ixs {
					terms[i].Basis[ix] = f(terms[i].Basis[ix])
				}
			}
			res, err := r.Derive(terms)
			if err != nil {
				return nil, err
			}

			log := r.Logger()
			log.Trace().
				Str("gate", name).
				Strs("refs", refs).
				Int("terms", res.Len()).
				Msg("apply")

			return res, nil
		}
	}
}

// resolve looks up refs and rejects two refs naming one qubit.
func resolve(r *register.Register, refs []string) ([]int, error) {
	ixs := make([]int, len(refs))
	seen := make(map[int]string, len(refs))
	for i, ref := range refs {
		ix, err := r.Lookup(ref)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[ix]; dup {
			return nil, fmt.Errorf("%q and %q are qubit %d: %w", prev, ref, ix, ErrDuplicateRef)
		}
		seen[ix] = ref
		ixs[i] = ix
	}

	return ixs, nil
}
