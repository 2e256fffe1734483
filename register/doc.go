// Package register holds multi-qubit states symbolically.
//
// A Register represents the normalized superposition
//
//	Σ_i coeff_i · (basis_i[0] ⊗ basis_i[1] ⊗ … ⊗ basis_i[n-1])
//
// as a list of Terms over single-qubit amplitude pairs. Nothing here builds
// the dense 2^n vector unless Expand is called, so product states and mildly
// entangled states stay small regardless of n.
//
// Qubits are addressed by reference strings: a name bound in the register's
// table, or a decimal position produced by Ix. Several names may alias one
// position.
//
// Two operation categories:
//
//	Mutating (return the receiver):  Separate, Measure, MeasureBits,
//	                                 Simplify, Coalesce, Normalize,
//	                                 Name, Bind, BindFrom
//	Compositional (fresh register):  Kron, Superpose, Project, Clone, Derive
//
// Errors follow a two-tier policy (see errors.go): validation errors for
// misuse, and invariant violations wrapping ErrInvariant for states that
// should not exist (probability drift, zero norm, oversized expansion).
//
// Configuration is functional (see options.go): WithLogger for zerolog
// output, WithRand for reproducible measurement, WithExpandLimit to lower
// the 24-qubit expansion ceiling. Registers derived from another share its
// configuration.
//
// Registers implement encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler with a msgpack snapshot.
package register
