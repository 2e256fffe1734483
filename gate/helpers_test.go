package gate_test

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

var h = 1 / math.Sqrt2

// dense is a reference state vector; bit q of an index is qubit q.
// The kernels below mirror the textbook bit-mask updates and are used only
// to cross-check the symbolic operators.
type dense []complex128

func expand(t testing.TB, r *register.Register) dense {
	t.Helper()
	amps, err := r.Expand()
	require.NoError(t, err)

	return amps
}

// superposed returns |+⟩^⊗n split into its 2^n basis terms.
func superposed(t testing.TB, n int) *register.Register {
	t.Helper()
	qs := make([]qubit.Qubit, n)
	refs := make([]string, n)
	for i := range qs {
		qs[i] = qubit.Plus
		refs[i] = register.Ix(i)
	}
	r, err := register.Eigen(qs).Separate(refs...)
	require.NoError(t, err)
	require.Equal(t, 1<<n, r.Len())

	return r
}

func (s dense) clone() dense {
	out := make(dense, len(s))
	copy(out, s)

	return out
}

// single applies the 2×2 matrix [[m00 m01] [m10 m11]] to qubit q.
func (s dense) single(q int, m00, m01, m10, m11 complex128) dense {
	out := s.clone()
	bit := 1 << q
	for i := range s {
		if i&bit == 0 {
			j := i | bit
			out[i] = m00*s[i] + m01*s[j]
			out[j] = m10*s[i] + m11*s[j]
		}
	}

	return out
}

func (s dense) x(q int) dense { return s.single(q, 0, 1, 1, 0) }
func (s dense) y(q int) dense { return s.single(q, 0, -1i, 1i, 0) }
func (s dense) z(q int) dense { return s.single(q, 1, 0, 0, -1) }
func (s dense) h(q int) dense {
	c := complex(h, 0)

	return s.single(q, c, c, c, -c)
}

func (s dense) phase(q int, angle float64) dense {
	return s.single(q, 1, 0, 0, cmplx.Exp(complex(0, angle)))
}

func (s dense) rotation(q int, angle float64) dense {
	c, sn := complex(math.Cos(angle), 0), complex(math.Sin(angle), 0)

	return s.single(q, c, -sn, sn, c)
}

func (s dense) cphase(control, target int, angle float64) dense {
	out := s.clone()
	mask := 1<<control | 1<<target
	for i := range out {
		if i&mask == mask {
			out[i] *= cmplx.Exp(complex(0, angle))
		}
	}

	return out
}

func (s dense) cx(control, target int) dense {
	out := s.clone()
	cBit, tBit := 1<<control, 1<<target
	for i := range s {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			out[i], out[j] = s[j], s[i]
		}
	}

	return out
}

func (s dense) swap(a, b int) dense {
	out := s.clone()
	for i := range s {
		ba, bb := (i>>a)&1, (i>>b)&1
		j := i&^(1<<a|1<<b) | bb<<a | ba<<b
		out[j] = s[i]
	}

	return out
}

// two applies a 4×4 matrix to qubits (a, b); m is indexed by the
// two-bit value 2·bit(a)+bit(b) for rows and columns.
func (s dense) two(a, b int, m [4][4]complex128) dense {
	out := make(dense, len(s))
	for i := range s {
		row := 2*((i>>a)&1) + (i>>b)&1
		base := i &^ (1<<a | 1<<b)
		for col := 0; col < 4; col++ {
			j := base | (col>>1)<<a | (col&1)<<b
			out[i] += m[row][col] * s[j]
		}
	}

	return out
}

func requireDense(t testing.TB, want dense, r *register.Register) {
	t.Helper()
	got := expand(t, r)
	require.Truef(t, cmplxs.EqualApprox(want, got, tol), "amplitudes\n got %v\nwant %v", got, want)
}
