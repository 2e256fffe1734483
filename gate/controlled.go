package gate

import (
	"fmt"

	"github.com/katalvlaran/qkron/register"
)

// Controlled returns an Operator that applies g to targets only in the
// part of the state where control is |1⟩.
//
// The input is split on the control qubit (on a clone), then
//
//	branch0 = sep.Project(control, 0)
//	branch1 = g(targets)(sep).Project(control, 1)
//
// and the result is the concatenation of both term lists, rescaled to the
// input's Σ|coeff|², with negligible terms removed and the input's names
// restored.
//
// Returns ErrControlIsTarget when control appears among targets. The
// operator repeats the check on resolved indices, so a name and an index
// for the same qubit are rejected too.
func Controlled(g Gate, control string, targets ...string) (Operator, error) {
	for _, t := range targets {
		if t == control {
			return nil, fmt.Errorf("Controlled %q: %w", control, ErrControlIsTarget)
		}
	}
	apply := g(targets...)

	return func(r *register.Register) (*register.Register, error) {
		cix, err := r.Lookup(control)
		if err != nil {
			return nil, err
		}
		for _, t := range targets {
			tix, err := r.Lookup(t)
			if err != nil {
				return nil, err
			}
			if tix == cix {
				return nil, fmt.Errorf("Controlled %q and %q are qubit %d: %w", control, t, cix, ErrControlIsTarget)
			}
		}

		sep, err := r.Clone().Separate(control)
		if err != nil {
			return nil, err
		}
		off, err := sep.Project(control, 0)
		if err != nil {
			return nil, err
		}
		applied, err := apply(sep)
		if err != nil {
			return nil, err
		}
		on, err := applied.Project(control, 1)
		if err != nil {
			return nil, err
		}

		terms := append(off.Terms(), on.Terms()...)
		res, err := r.Derive(terms)
		if err != nil {
			return nil, err
		}
		res.Simplify()

		log := r.Logger()
		log.Trace().
			Str("control", control).
			Strs("targets", targets).
			Int("off", off.Len()).
			Int("on", on.Len()).
			Int("after", res.Len()).
			Msg("controlled")

		return res, nil
	}, nil
}
