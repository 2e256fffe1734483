package qubit

import (
	"math"

	"github.com/katalvlaran/qkron/cnum"
)

// Kind tags a qubit that matches one of the canonical states.
type Kind uint8

const (
	// KindOther marks a qubit that matches no canonical state.
	KindOther Kind = iota
	// KindZero marks the computational basis state |0⟩.
	KindZero
	// KindOne marks the computational basis state |1⟩.
	KindOne
	// KindPlus marks the Hadamard basis state |+⟩.
	KindPlus
	// KindMinus marks the Hadamard basis state |−⟩.
	KindMinus
)

// String returns the ket label of k, or "?" for KindOther.
func (k Kind) String() string {
	switch k {
	case KindZero:
		return "0"
	case KindOne:
		return "1"
	case KindPlus:
		return "+"
	case KindMinus:
		return "-"
	default:
		return "?"
	}
}

// Qubit is a unit-normalized pair of amplitudes.
//
// Build qubits with New; a struct literal skips normalization and is
// classified lazily on every Kind call.
type Qubit struct {
	Zero   cnum.Complex
	One    cnum.Complex
	kind   Kind
	tagged bool
}

// Canonical states.
var (
	Zero  = New(cnum.One, cnum.Zero)
	One   = New(cnum.Zero, cnum.One)
	Plus  = New(cnum.One, cnum.One)
	Minus = New(cnum.One, cnum.One.Neg())
)

// New returns the qubit zero|0⟩ + one|1⟩ rescaled to unit norm.
//
// At least one amplitude must be non-negligible; two zero inputs produce
// non-finite amplitudes.
func New(zero, one cnum.Complex) Qubit {
	norm := 1 / math.Sqrt(zero.Abs2()+one.Abs2())
	q := Qubit{Zero: zero.Scale(norm), One: one.Scale(norm)}
	q.kind, q.tagged = classify(q), true

	return q
}

// Basis returns Zero for bit 0 and One otherwise.
func Basis(bit int) Qubit {
	if bit == 0 {
		return Zero
	}

	return One
}

// classify compares q to the canonical amplitudes. The canonical values
// are spelled out here since the package-level constants are built with New.
func classify(q Qubit) Kind {
	h := cnum.Real(1 / math.Sqrt2)
	switch {
	case q.Zero.Equal(cnum.One) && q.One.Equal(cnum.Zero):
		return KindZero
	case q.Zero.Equal(cnum.Zero) && q.One.Equal(cnum.One):
		return KindOne
	case q.Zero.Equal(h) && q.One.Equal(h):
		return KindPlus
	case q.Zero.Equal(h) && q.One.Equal(h.Neg()):
		return KindMinus
	}

	return KindOther
}

// Kind reports which canonical state q matches, if any.
func (q Qubit) Kind() Kind {
	if !q.tagged {
		return classify(q)
	}

	return q.kind
}

// IsBasis reports whether q is |0⟩ or |1⟩.
func (q Qubit) IsBasis() bool {
	k := q.Kind()

	return k == KindZero || k == KindOne
}

// Bit returns the computational-basis value of q and whether q is a basis
// state at all.
func (q Qubit) Bit() (int, bool) {
	switch q.Kind() {
	case KindZero:
		return 0, true
	case KindOne:
		return 1, true
	}

	return 0, false
}

// Amplitude returns the amplitude of the given basis outcome.
func (q Qubit) Amplitude(bit int) cnum.Complex {
	if bit == 0 {
		return q.Zero
	}

	return q.One
}

// Flip swaps the zero and one amplitudes (a NOT).
func (q Qubit) Flip() Qubit {
	return Qubit{Zero: q.One, One: q.Zero, kind: flipped(q.Kind()), tagged: true}
}

func flipped(k Kind) Kind {
	switch k {
	case KindZero:
		return KindOne
	case KindOne:
		return KindZero
	case KindMinus:
		// X|−⟩ = −|−⟩, a global phase away from the canonical amplitudes.
		return KindOther
	}

	return k
}

// Inner returns the inner product ⟨q|p⟩.
func (q Qubit) Inner(p Qubit) cnum.Complex {
	return q.Zero.Conj().Mul(p.Zero).Add(q.One.Conj().Mul(p.One))
}

// Dist returns the larger of the two amplitude distances between q and p.
func (q Qubit) Dist(p Qubit) float64 {
	return math.Max(q.Zero.Dist(p.Zero), q.One.Dist(p.One))
}

// Equal reports whether both amplitudes of q and p are within epsilon.
func (q Qubit) Equal(p Qubit) bool {
	return q.Zero.Equal(p.Zero) && q.One.Equal(p.One)
}

// Probability returns |amplitude|² of the given basis outcome.
func (q Qubit) Probability(bit int) float64 {
	return q.Amplitude(bit).Abs2()
}
