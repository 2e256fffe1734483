package gate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qkron/cnum"
	"github.com/katalvlaran/qkron/qubit"
	"github.com/katalvlaran/qkron/register"
)

// ---------- Single-qubit gates ----------

var (
	// X swaps the amplitudes of each addressed qubit.
	X = Lift("X", func(q qubit.Qubit) qubit.Qubit { return q.Flip() })

	// Not is X.
	Not = X

	// Y maps a|0⟩ + b|1⟩ to -ib|0⟩ + ia|1⟩.
	Y = Lift("Y", func(q qubit.Qubit) qubit.Qubit {
		return qubit.New(cnum.NegI.Mul(q.One), cnum.I.Mul(q.Zero))
	})

	// Z negates the |1⟩ amplitude.
	Z = Lift("Z", func(q qubit.Qubit) qubit.Qubit {
		return qubit.New(q.Zero, q.One.Neg())
	})

	// H is the Hadamard gate.
	H = Lift("H", func(q qubit.Qubit) qubit.Qubit {
		return qubit.New(q.Zero.Add(q.One), q.Zero.Sub(q.One))
	})
)

// Phase multiplies the |1⟩ amplitude by e^{i·angle}.
func Phase(angle float64) Gate {
	p := cnum.Phase(angle)

	return Lift("Phase", func(q qubit.Qubit) qubit.Qubit {
		return qubit.New(q.Zero, q.One.Mul(p))
	})
}

// Rk is Phase(2π/2^k), the rotation used by QFT.
func Rk(k int) Gate {
	return Phase(math.Ldexp(2*math.Pi, -k))
}

// Evolve multiplies both amplitudes by e^{i·angle}. Probabilities are
// unchanged; relative phases between terms are not.
func Evolve(angle float64) Gate {
	p := cnum.Phase(angle)

	return Lift("Evolve", func(q qubit.Qubit) qubit.Qubit {
		return qubit.New(q.Zero.Mul(p), q.One.Mul(p))
	})
}

// Rotation rotates the amplitude pair by angle in the real plane:
// (a, b) ↦ (a·cos − b·sin, a·sin + b·cos).
func Rotation(angle float64) Gate {
	c, s := math.Cos(angle), math.Sin(angle)

	return Lift("Rotation", func(q qubit.Qubit) qubit.Qubit {
		return qubit.New(
			q.Zero.Scale(c).Sub(q.One.Scale(s)),
			q.Zero.Scale(s).Add(q.One.Scale(c)),
		)
	})
}

// ---------- Two-qubit gates ----------

// Swap exchanges qubits a and b.
func Swap(a, b string) Operator {
	return Apply(func(qs []qubit.Qubit) (*register.Register, error) {
		return register.Eigen([]qubit.Qubit{qs[1], qs[0]}), nil
	}, a, b)
}

// XX is the two-qubit XX interaction of the given angle.
//
//	|00⟩: a0b0 + e^{iθ}·(-i)·a1b1     |01⟩: a0b1 - i·a1b0
//	|10⟩: -i·a0b1 + a1b0             |11⟩: e^{iθ}·(-i)·a0b0 + a1b1
//
// The branch weights are normalized per term.
func XX(angle float64) Gate {
	phase := cnum.Phase(angle).Rot270()

	return pair("XX", func(a0, a1, b0, b1 cnum.Complex) [4]cnum.Complex {
		return [4]cnum.Complex{
			a0.Mul(b0).Add(phase.Mul(a1).Mul(b1)),
			a0.Mul(b1).Add(a1.Mul(b0).Rot270()),
			a0.Mul(b1).Rot270().Add(a1.Mul(b0)),
			a0.Mul(b0).Mul(phase).Add(a1.Mul(b1)),
		}
	})
}

// YY is exp(-iθ·Y⊗Y).
func YY(angle float64) Gate {
	c := cnum.Real(math.Cos(angle))
	s := cnum.New(0, math.Sin(angle))

	return pair("YY", func(a0, a1, b0, b1 cnum.Complex) [4]cnum.Complex {
		return [4]cnum.Complex{
			a0.Mul(b0).Mul(c).Add(s.Mul(a1).Mul(b1)),
			a0.Mul(b1).Mul(c).Sub(s.Mul(a1).Mul(b0)),
			a1.Mul(b0).Mul(c).Sub(s.Mul(a0).Mul(b1)),
			a1.Mul(b1).Mul(c).Add(s.Mul(a0).Mul(b0)),
		}
	})
}

// ZZ is exp(iθ/2·Z⊗Z): equal-parity outcomes gain e^{iθ/2}, the others
// e^{-iθ/2}.
func ZZ(angle float64) Gate {
	p := cnum.Phase(angle / 2)
	pc := p.Conj()

	return pair("ZZ", func(a0, a1, b0, b1 cnum.Complex) [4]cnum.Complex {
		return [4]cnum.Complex{
			a0.Mul(b0).Mul(p),
			a0.Mul(b1).Mul(pc),
			a1.Mul(b0).Mul(pc),
			a1.Mul(b1).Mul(p),
		}
	})
}

// twoQubitBasis lists |00⟩, |01⟩, |10⟩, |11⟩ with the first ref leftmost.
var twoQubitBasis = [4][2]qubit.Qubit{
	{qubit.Zero, qubit.Zero},
	{qubit.Zero, qubit.One},
	{qubit.One, qubit.Zero},
	{qubit.One, qubit.One},
}

// pair builds a two-qubit Gate from the coefficients of the four basis
// outcomes, given the amplitudes of both input qubits.
func pair(name string, coeffs func(a0, a1, b0, b1 cnum.Complex) [4]cnum.Complex) Gate {
	local := func(qs []qubit.Qubit) (*register.Register, error) {
		if len(qs) != 2 {
			return nil, fmt.Errorf("%s on %d qubits: %w", name, len(qs), ErrArity)
		}
		c := coeffs(qs[0].Zero, qs[0].One, qs[1].Zero, qs[1].One)
		terms := make([]register.Term, 0, len(c))
		for i, basis := range twoQubitBasis {
			terms = append(terms, register.Term{Coeff: c[i], Basis: basis[:]})
		}

		return register.New(terms)
	}

	return func(refs ...string) Operator { return Apply(local, refs...) }
}

// Measure returns an Operator that measures refs in order. Unlike the other
// operators it collapses and returns the register it is given.
func Measure(refs ...string) Operator {
	return func(r *register.Register) (*register.Register, error) {
		return r.Measure(refs...)
	}
}
