package circuit

import "github.com/katalvlaran/qkron/gate"

// OutputPrefix names the oracle output qubit paired with each input in
// Shor: the output for "x0" is "y_x0".
const OutputPrefix = "y_"

// Shor returns the period-finding front end over xs: H on every x qubit,
// Oracle(f, xs, ys) with ys[i] = OutputPrefix + xs[i], then QFT(xs).
// The register must already hold the y qubits under those names.
func Shor(xs []string, f func(x uint64) uint64) (gate.Operator, error) {
	ys := make([]string, len(xs))
	for i, x := range xs {
		ys[i] = OutputPrefix + x
	}
	oracle, err := Oracle(f, xs, ys)
	if err != nil {
		return nil, err
	}
	qft, err := QFT(xs)
	if err != nil {
		return nil, err
	}

	return Connect(gate.H(xs...), oracle, qft), nil
}
