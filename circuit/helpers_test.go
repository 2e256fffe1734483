package circuit_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/cmplxs"

	"github.com/katalvlaran/qkron/qubit"
	"github.com/katalvlaran/qkron/register"
)

const tol = 1e-9

func expand(t testing.TB, r *register.Register) []complex128 {
	t.Helper()
	amps, err := r.Expand()
	require.NoError(t, err)

	return amps
}

func requireDense(t testing.TB, want []complex128, r *register.Register) {
	t.Helper()
	got := expand(t, r)
	require.Truef(t, cmplxs.EqualApprox(want, got, tol), "amplitudes\n got %v\nwant %v", got, want)
}

// named builds a product state with the given names, in order.
func named(t testing.TB, pairs ...any) *register.Register {
	t.Helper()
	assigns := make([]register.Assignment, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		assigns = append(assigns, register.Assign(pairs[i].(string), pairs[i+1].(qubit.Qubit)))
	}
	r, err := register.FromAssignments(assigns)
	require.NoError(t, err)

	return r
}

// field reads the integer held by qubits qs (least significant first) in
// basis index i.
func field(i int, qs []int) int {
	v := 0
	for b, q := range qs {
		v |= (i >> q & 1) << b
	}

	return v
}

// withField returns i with the qubits qs set to v.
func withField(i int, qs []int, v int) int {
	for b, q := range qs {
		i = i&^(1<<q) | (v>>b&1)<<q
	}

	return i
}

// dft applies the discrete Fourier transform
// |x⟩ → 2^{-m/2} Σ_k e^{2πi·x·k/2^m} |k⟩ to the qubits qs of s.
func dft(s []complex128, qs []int) []complex128 {
	m := 1 << len(qs)
	norm := complex(1/math.Sqrt(float64(m)), 0)
	out := make([]complex128, len(s))
	for i, a := range s {
		if a == 0 {
			continue
		}
		x := field(i, qs)
		for k := 0; k < m; k++ {
			w := cmplx.Exp(complex(0, 2*math.Pi*float64(x*k)/float64(m)))
			out[withField(i, qs, k)] += norm * w * a
		}
	}

	return out
}
