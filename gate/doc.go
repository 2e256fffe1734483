// Package gate lifts local qubit operators over symbolic registers.
//
// ✨ Key pieces:
//   - Operator: func(*register.Register) (*register.Register, error), the
//     unit every circuit is built from.
//   - Apply: runs a Local (a few qubits → a small Register) on every term
//     and forks each term once per output branch.
//   - Gate factories: X, Y, Z, H (and Not), Phase, Rk, Evolve, Rotation,
//     the two-qubit XX, YY, ZZ, and Swap.
//   - Controlled: conditions any Gate on a control qubit.
//   - Measure: wraps Register.Measure as an Operator.
//
// ⚙️ Usage:
//
//	reg, _ := register.FromAssignments([]register.Assignment{
//	  register.Assign("c", qubit.One),
//	  register.Assign("t", qubit.Zero),
//	})
//	cnot := gate.Must(gate.Controlled(gate.X, "c", "t"))
//	out, err := cnot(reg) // |1,1⟩
//
// Operators never modify the register they receive; each returns a fresh
// normalized register carrying the input's name bindings. The exception is
// Measure, which collapses its input in place.
//
// Term growth: a single-qubit gate keeps the term count, a two-qubit gate
// can multiply it by four and Controlled by two. Branches whose weight falls
// below cnum.Epsilon are dropped as they are produced.
package gate
