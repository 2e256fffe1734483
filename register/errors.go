// SPDX-License-Identifier: MIT

// Package register: sentinel error set.
// Every message is prefixed with "register: ..." for easy grepping. Callers
// match with errors.Is; context is attached with fmt.Errorf("ctx: %w", ErrX).
//
// Two tiers:
//   - Validation errors report caller misuse and are fixed by correcting the call.
//   - Invariant violations wrap ErrInvariant. They indicate a bug in gate
//     construction or numeric drift beyond tolerance and are not retryable.

package register

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	// ErrEmpty is returned when a register is built from an empty term list.
	ErrEmpty = errors.New("register: no terms")

	// ErrRaggedTerms indicates terms whose bases have different lengths.
	ErrRaggedTerms = errors.New("register: terms have different qubit counts")

	// ErrNameClash indicates a qubit name defined in both operands of Kron,
	// or twice in one assignment list.
	ErrNameClash = errors.New("register: qubit name defined twice")

	// ErrNameMismatch indicates a shared name resolving to different indices
	// in two superposed registers.
	ErrNameMismatch = errors.New("register: shared name refers to different qubits")

	// ErrSizeMismatch indicates operands with different qubit counts.
	ErrSizeMismatch = errors.New("register: qubit counts differ")

	// ErrUnknownQubit indicates a reference that is neither a bound name nor
	// an in-range index.
	ErrUnknownQubit = errors.New("register: unknown qubit reference")

	// ErrBadOutcome indicates a projection outcome other than 0 or 1.
	ErrBadOutcome = errors.New("register: outcome must be 0 or 1")

	// ErrCorruptSnapshot indicates a binary snapshot that decodes to an
	// inconsistent register.
	ErrCorruptSnapshot = errors.New("register: corrupt snapshot")
)

// ErrInvariant is wrapped by every invariant violation below.
var ErrInvariant = errors.New("register: invariant violation")

// Invariant violations.
var (
	// ErrProbabilityDrift is returned by Measure when the branch
	// probabilities of a qubit do not sum to one within epsilon.
	ErrProbabilityDrift = fmt.Errorf("%w: branch probabilities do not sum to one", ErrInvariant)

	// ErrZeroState is returned by Normalize for a state of near-zero norm.
	ErrZeroState = fmt.Errorf("%w: near-zero probability state", ErrInvariant)

	// ErrTooLarge is returned by Expand above the dense expansion limit.
	ErrTooLarge = fmt.Errorf("%w: too many qubits for dense expansion", ErrInvariant)
)
