package register

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/qkron/cnum"
)

// Expand materializes the dense amplitude vector of length 2^N().
//
// Bit m of an index selects the amplitude of qubit m, so qubit 0 is the
// least significant bit. Every term contributes
// coeff · Π_m (bit m ? basis[m].One : basis[m].Zero) to every index.
//
// Returns ErrTooLarge when N() exceeds the configured expansion limit
// (at most MaxExpandQubits). This is the only place the simulator pays the
// exponential cost it otherwise avoids.
//
// Complexity: O(|terms|·2^N·N) time, O(2^N) memory.
func (r *Register) Expand() ([]complex128, error) {
	o := r.conf()
	if r.n > o.expandLimit {
		return nil, fmt.Errorf("Expand: %d qubits, limit %d: %w", r.n, o.expandLimit, ErrTooLarge)
	}

	size := 1 << r.n
	amps := make([]complex128, size)
	for _, t := range r.terms {
		for j := 0; j < size; j++ {
			a := t.Coeff.C128()
			for m, q := range t.Basis {
				if (j>>m)&1 == 1 {
					a *= q.One.C128()
				} else {
					a *= q.Zero.C128()
				}
				if a == 0 {
					break
				}
			}
			amps[j] += a
		}
	}

	o.log.Debug().
		Int("qubits", r.n).
		Int("terms", len(r.terms)).
		Msg("expanded")

	return amps, nil
}

// Distribution returns the probability of every basis index, taken from
// Expand and scaled so the entries sum to one (an unnormalized Project
// result yields the conditional distribution).
// Returns ErrTooLarge like Expand and ErrZeroState for a null vector.
func (r *Register) Distribution() ([]float64, error) {
	amps, err := r.Expand()
	if err != nil {
		return nil, err
	}

	probs := make([]float64, len(amps))
	for i, a := range amps {
		probs[i] = cnum.FromC128(a).Abs2()
	}
	total := floats.Sum(probs)
	if total < cnum.Epsilon*cnum.Epsilon {
		return nil, ErrZeroState
	}
	floats.Scale(1/total, probs)

	return probs, nil
}
