// Package qubit defines the single-qubit amplitude pair.
//
// A Qubit holds two amplitudes, Zero and One, for observing basis outcome 0
// or 1. The factory New rescales its inputs so that |Zero|² + |One|² = 1;
// the struct is never built directly by the rest of the module.
//
// Four canonical states are exported as process-wide constants:
//
//	Zero   |0⟩
//	One    |1⟩
//	Plus   |+⟩ = (|0⟩ + |1⟩)/√2
//	Minus  |−⟩ = (|0⟩ − |1⟩)/√2
//
// Derived values are matched against them by epsilon distance, never by
// identity. The match is recorded once at construction as a Kind tag, which
// downstream code consults (oracle bit decoding, like-term merging, display
// layers) without recomputing distances.
package qubit
