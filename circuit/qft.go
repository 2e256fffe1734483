package circuit

import (
	"github.com/katalvlaran/qkron/gate"
	"github.com/katalvlaran/qkron/register"
)

// QFT returns the quantum Fourier transform over xs (least significant
// first):
//
//	|x⟩ → 2^{-n/2} Σ_k e^{2πi·x·k/2^n} |k⟩
//
// Assembly: for each i, controlled Rk(j+1) from xs[i-j] into xs[i] for
// j = 1..i, then H on xs[i]; the whole list is reversed so the most
// significant qubit is transformed first; swaps of xs[i] and xs[n-1-i]
// for i < n/2 restore the qubit order.
//
// The only construction error is a repeated qubit in xs (a controlled
// gate whose control is its target).
func QFT(xs []string) (gate.Operator, error) {
	n := len(xs)
	ops := make([]gate.Operator, 0, n*(n+1)/2+n/2)
	for i := 0; i < n; i++ {
		for j := 1; j <= i; j++ {
			op, err := gate.Controlled(gate.Rk(j+1), xs[i-j], xs[i])
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		}
		ops = append(ops, gate.H(xs[i]))
	}
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	for i := 0; i < n/2; i++ {
		ops = append(ops, gate.Swap(xs[i], xs[n-1-i]))
	}

	pipeline := Connect(ops...)

	return func(r *register.Register) (*register.Register, error) {
		log := r.Logger()
		log.Debug().
			Int("qubits", n).
			Int("ops", len(ops)).
			Int("terms", r.Len()).
			Msg("qft")

		return pipeline(r)
	}, nil
}
