// Package register_test contains shared fixtures for the register tests.
//
// Purpose:
//   - Keep term literals short.
//   - Compare registers through their dense expansion, which is independent
//     of how a state happens to be split into terms.
package register_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/cmplxs"

	"github.com/katalvlaran/qkron/cnum"
	"github.com/katalvlaran/qkron/qubit"
	"github.com/katalvlaran/qkron/register"
)

// tol is the dense comparison tolerance.
const tol = 1e-9

// h is 1/√2.
var h = 1 / math.Sqrt2

// term builds a Term from a coefficient and qubits.
func term(c cnum.Complex, qs ...qubit.Qubit) register.Term {
	return register.Term{Coeff: c, Basis: qs}
}

// mustNew builds a normalized register or fails the test.
func mustNew(t testing.TB, terms ...register.Term) *register.Register {
	t.Helper()
	r, err := register.New(terms)
	require.NoError(t, err)

	return r
}

// bell returns (|00⟩ + |11⟩)/√2 with qubits named a and b.
func bell(t testing.TB, opts ...register.Option) *register.Register {
	t.Helper()
	r, err := register.New([]register.Term{
		term(cnum.One, qubit.Zero, qubit.Zero),
		term(cnum.One, qubit.One, qubit.One),
	}, opts...)
	require.NoError(t, err)
	_, err = r.Bind(map[string]string{"a": "0", "b": "1"})
	require.NoError(t, err)

	return r
}

// seeded returns a deterministic source for measurement tests.
func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// requireAmps expands r and compares it with want.
func requireAmps(t testing.TB, want []complex128, r *register.Register) {
	t.Helper()
	got, err := r.Expand()
	require.NoError(t, err)
	require.Truef(t, cmplxs.EqualApprox(want, got, tol), "amplitudes\n got %v\nwant %v", got, want)
}

// requireSameState compares two registers by dense expansion.
func requireSameState(t testing.TB, want, got *register.Register) {
	t.Helper()
	w, err := want.Expand()
	require.NoError(t, err)
	requireAmps(t, w, got)
}
