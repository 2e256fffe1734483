// Package qkron is a classical simulator of small quantum circuits that
// keeps multi-qubit states symbolic.
//
// 🚀 What is qkron?
//
//	A state is a weighted sum of Kronecker products of single-qubit
//	amplitude pairs. Gates rewrite those pairs term by term; only
//	entangling steps fork terms. The dense 2^n vector is built on request,
//	never as part of gate application.
//
// ✨ Packages (leaves first):
//
//	cnum/:     complex arithmetic and the shared epsilon
//	qubit/:    normalized amplitude pairs and the canonical states
//	register/: symbolic superpositions: compose, split, project, measure
//	gate/:     local operators lifted over registers, controlled gates
//	circuit/:  Connect, Oracle, QFT and the Shor front end
//
// ⚙️ Usage:
//
//	reg, _ := register.FromAssignments([]register.Assignment{
//	  register.Assign("c", qubit.Zero),
//	  register.Assign("t", qubit.Zero),
//	}, register.WithLogger(log))
//	bell := circuit.Connect(
//	  gate.H("c"),
//	  gate.Must(gate.Controlled(gate.X, "c", "t")),
//	)
//	out, err := bell(reg)
//	bits, err := out.MeasureBits("c", "t") // [0 0] or [1 1]
//
// Errors are sentinels matched with errors.Is. Invariant violations
// (probability drift, zero states, oversized expansion) wrap
// register.ErrInvariant.
package qkron
