// Package circuit composes gate operators into larger circuits.
//
// What it provides:
//   - Connect: threads a register through operators in order; the result
//     is itself an Operator, so pipelines nest.
//   - Oracle: the classical-function oracle |x⟩|y⟩ → |x⟩|y ⊕ f(x)⟩.
//   - QFT: the quantum Fourier transform from H and controlled Rk gates,
//     with the final swaps that restore qubit order.
//   - Shor: the illustrative H → Oracle → QFT period-finding front end.
//
// Qubit lists are least significant first: xs[0] is bit 0 of x.
//
// Usage:
//
//	qft, err := circuit.QFT([]string{"x0", "x1", "x2"})
//	if err != nil { ... }
//	out, err := circuit.Connect(gate.H("x0", "x1", "x2"), qft)(reg)
package circuit
