package circuit_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qkron/circuit"
	"github.com/katalvlaran/qkron/cnum"
	"github.com/katalvlaran/qkron/gate"
	"github.com/katalvlaran/qkron/qubit"
	"github.com/katalvlaran/qkron/register"
)

var h = 1 / math.Sqrt2

// TestConnect_Order applies operators left to right.
func TestConnect_Order(t *testing.T) {
	in := register.Eigen([]qubit.Qubit{qubit.Zero})

	out, err := circuit.Connect(gate.X("0"), gate.H("0"))(in)
	require.NoError(t, err)
	requireDense(t, []complex128{complex(h, 0), complex(-h, 0)}, out)

	out, err = circuit.Connect(gate.H("0"), gate.X("0"))(in)
	require.NoError(t, err)
	requireDense(t, []complex128{complex(h, 0), complex(h, 0)}, out)
}

// TestConnect_Nested composes pipelines of pipelines.
func TestConnect_Nested(t *testing.T) {
	in := register.Eigen([]qubit.Qubit{qubit.Plus, qubit.One})
	flip := circuit.Connect(gate.X("1"))
	out, err := circuit.Connect(flip, circuit.Connect(flip, circuit.Connect()))(in)
	require.NoError(t, err)
	requireDense(t, expand(t, in), out)
}

// TestConnect_Abort stops at the first failing step.
func TestConnect_Abort(t *testing.T) {
	calls := 0
	count := func(r *register.Register) (*register.Register, error) {
		calls++

		return r, nil
	}
	in := register.Eigen([]qubit.Qubit{qubit.Zero})
	_, err := circuit.Connect(count, gate.X("nope"), count)(in)
	require.ErrorIs(t, err, register.ErrUnknownQubit)
	assert.Contains(t, err.Error(), "step 1")
	assert.Equal(t, 1, calls)
}

// TestQFT_MatchesHOnZero checks QFT|00⟩ against H on both qubits.
func TestQFT_MatchesHOnZero(t *testing.T) {
	in := named(t, "x0", qubit.Zero, "x1", qubit.Zero)
	qft, err := circuit.QFT([]string{"x0", "x1"})
	require.NoError(t, err)

	out, err := qft(in)
	require.NoError(t, err)
	hh, err := gate.H("x0", "x1")(in)
	require.NoError(t, err)

	requireDense(t, expand(t, hh), out)
	requireDense(t, []complex128{0.5, 0.5, 0.5, 0.5}, out)
	assert.Equal(t, in.Names(), out.Names())
}

// TestQFT_BasisStates compares every 3-qubit basis input with the DFT.
func TestQFT_BasisStates(t *testing.T) {
	xs := []string{"x0", "x1", "x2"}
	qft, err := circuit.QFT(xs)
	require.NoError(t, err)

	for x := 0; x < 8; x++ {
		t.Run(fmt.Sprintf("x=%d", x), func(t *testing.T) {
			in := named(t,
				"x0", qubit.Basis(x&1),
				"x1", qubit.Basis(x>>1&1),
				"x2", qubit.Basis(x>>2&1),
			)
			out, err := qft(in)
			require.NoError(t, err)
			requireDense(t, dft(expand(t, in), []int{0, 1, 2}), out)
		})
	}
}

// TestQFT_Superposed transforms a non-basis input next to a spectator.
func TestQFT_Superposed(t *testing.T) {
	odd := qubit.New(cnum.Real(0.6), cnum.New(0, 0.8))
	in := named(t,
		"s", qubit.Minus,
		"x0", odd,
		"x1", qubit.Plus,
		"x2", qubit.One,
	)
	qft, err := circuit.QFT([]string{"x0", "x1", "x2"})
	require.NoError(t, err)

	out, err := qft(in)
	require.NoError(t, err)
	requireDense(t, dft(expand(t, in), []int{1, 2, 3}), out)
	assert.InDelta(t, 1.0, out.Probability(), 1e-9)
}

// TestQFT_Errors rejects a repeated qubit.
func TestQFT_Errors(t *testing.T) {
	_, err := circuit.QFT([]string{"a", "b", "a"})
	assert.ErrorIs(t, err, gate.ErrControlIsTarget)

	op, err := circuit.QFT(nil)
	require.NoError(t, err)
	in := register.Eigen([]qubit.Qubit{qubit.Plus})
	out, err := op(in)
	require.NoError(t, err)
	requireDense(t, expand(t, in), out)
}

// TestOracle_Identity copies x into y for f(x) = x.
func TestOracle_Identity(t *testing.T) {
	in := named(t,
		"x0", qubit.Plus, "x1", qubit.Plus,
		"y0", qubit.Zero, "y1", qubit.Zero,
	)
	oracle, err := circuit.Oracle(func(x uint64) uint64 { return x }, []string{"x0", "x1"}, []string{"y0", "y1"})
	require.NoError(t, err)

	out, err := oracle(in)
	require.NoError(t, err)
	want := make([]complex128, 16)
	for x := 0; x < 4; x++ {
		want[x|x<<2] = 0.5
	}
	requireDense(t, want, out)
	assert.Equal(t, 4, out.Len())

	// Every term keeps a definite x and has y equal to it.
	for _, tm := range out.Terms() {
		x0, ok0 := tm.Basis[0].Bit()
		x1, ok1 := tm.Basis[1].Bit()
		y0, _ := tm.Basis[2].Bit()
		y1, _ := tm.Basis[3].Bit()
		require.True(t, ok0 && ok1)
		assert.Equal(t, x0, y0)
		assert.Equal(t, x1, y1)
	}
}

// TestOracle_FlipsSuperposedOutput swaps the amplitudes of a non-basis y.
func TestOracle_FlipsSuperposedOutput(t *testing.T) {
	odd := qubit.New(cnum.Real(0.6), cnum.New(0, 0.8))
	in := named(t, "x", qubit.One, "y", odd)
	oracle, err := circuit.Oracle(func(x uint64) uint64 { return x }, []string{"x"}, []string{"y"})
	require.NoError(t, err)

	out, err := oracle(in)
	require.NoError(t, err)
	requireDense(t, []complex128{0, odd.One.C128(), 0, odd.Zero.C128()}, out)

	// f ≡ 0 changes nothing.
	noop, err := circuit.Oracle(func(uint64) uint64 { return 0 }, []string{"x"}, []string{"y"})
	require.NoError(t, err)
	out, err = noop(in)
	require.NoError(t, err)
	requireDense(t, expand(t, in), out)
}

// TestOracle_IgnoresHighBits drops bits of f(x) beyond the outputs.
func TestOracle_IgnoresHighBits(t *testing.T) {
	in := named(t, "x", qubit.Zero, "y", qubit.Zero)
	oracle, err := circuit.Oracle(func(uint64) uint64 { return 0xff }, []string{"x"}, []string{"y"})
	require.NoError(t, err)
	out, err := oracle(in)
	require.NoError(t, err)
	requireDense(t, []complex128{0, 0, 1, 0}, out)
}

// TestOracle_Errors covers overlap, width and unknown refs.
func TestOracle_Errors(t *testing.T) {
	id := func(x uint64) uint64 { return x }

	_, err := circuit.Oracle(id, []string{"a", "b"}, []string{"b"})
	assert.ErrorIs(t, err, circuit.ErrOverlap)

	wide := make([]string, 65)
	for i := range wide {
		wide[i] = fmt.Sprintf("x%d", i)
	}
	_, err = circuit.Oracle(id, wide, []string{"y"})
	assert.ErrorIs(t, err, circuit.ErrTooManyBits)

	in := named(t, "x", qubit.Zero, "y", qubit.Zero)
	op, err := circuit.Oracle(id, []string{"x"}, []string{"0"})
	require.NoError(t, err)
	_, err = op(in)
	assert.ErrorIs(t, err, circuit.ErrOverlap)

	op, err = circuit.Oracle(id, []string{"x"}, []string{"z"})
	require.NoError(t, err)
	_, err = op(in)
	assert.ErrorIs(t, err, register.ErrUnknownQubit)
	assert.False(t, errors.Is(err, circuit.ErrOverlap))
}

// TestShor cross-checks the full front end against a dense computation.
func TestShor(t *testing.T) {
	xs := []string{"x0", "x1", "x2"}
	f := func(x uint64) uint64 { return 1 << (x % 3) }

	in := named(t,
		"x0", qubit.Zero, "x1", qubit.Zero, "x2", qubit.Zero,
		"y_x0", qubit.Zero, "y_x1", qubit.Zero, "y_x2", qubit.Zero,
	)
	shor, err := circuit.Shor(xs, f)
	require.NoError(t, err)
	out, err := shor(in)
	require.NoError(t, err)

	// (1/√8) Σ_x |x⟩|f(x)⟩, then the DFT on x.
	prepared := make([]complex128, 64)
	for x := 0; x < 8; x++ {
		prepared[x|int(f(uint64(x)))<<3] = complex(1/math.Sqrt(8), 0)
	}
	requireDense(t, dft(prepared, []int{0, 1, 2}), out)
	assert.Equal(t, in.Names(), out.Names())

	// The result measures cleanly.
	_, err = out.Clone().Measure(xs...)
	assert.NoError(t, err)
}

// TestShor_MissingOutputs fails when the y qubits are absent.
func TestShor_MissingOutputs(t *testing.T) {
	in := named(t, "x0", qubit.Zero)
	shor, err := circuit.Shor([]string{"x0"}, func(x uint64) uint64 { return x })
	require.NoError(t, err)
	_, err = shor(in)
	assert.ErrorIs(t, err, register.ErrUnknownQubit)
}
