// SPDX-License-Identifier: MIT

// Package gate: sentinel error set.
// Register-level failures (unknown refs, zero states) are passed through
// from package register unchanged; match them with errors.Is.

package gate

import "errors"

var (
	// ErrArity indicates a local operator whose output does not cover
	// exactly the addressed qubits, or a gate given the wrong number of refs.
	ErrArity = errors.New("gate: qubit count does not match the operator")

	// ErrDuplicateRef indicates two refs resolving to the same qubit.
	ErrDuplicateRef = errors.New("gate: qubit addressed twice")

	// ErrControlIsTarget indicates a control qubit that is also a target.
	ErrControlIsTarget = errors.New("gate: control qubit is also a target")
)
