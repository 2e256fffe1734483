// SPDX-License-Identifier: MIT

// Package circuit: sentinel error set.

package circuit

import "errors"

var (
	// ErrOverlap indicates an oracle whose input and output qubits
	// intersect, by name or by resolved index.
	ErrOverlap = errors.New("circuit: input and output qubits overlap")

	// ErrTooManyBits indicates more than 64 input or output qubits for an
	// oracle over uint64 values.
	ErrTooManyBits = errors.New("circuit: more than 64 oracle bits")
)
