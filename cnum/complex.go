package cnum

import "math"

// Epsilon is the tolerance used for every approximate comparison.
const Epsilon = 1e-6

// Complex is an immutable complex number.
type Complex struct {
	Re float64 `msgpack:"re"`
	Im float64 `msgpack:"im"`
}

// Canonical constants.
var (
	Zero = Complex{0, 0}
	One  = Complex{1, 0}
	I    = Complex{0, 1}
	NegI = Complex{0, -1}
)

// New returns re + im·i.
func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Real returns x + 0i.
func Real(x float64) Complex {
	return Complex{Re: x}
}

// FromC128 converts a builtin complex128.
func FromC128(c complex128) Complex {
	return Complex{Re: real(c), Im: imag(c)}
}

// Phase returns the unit value (cos angle, sin angle).
func Phase(angle float64) Complex {
	s, c := math.Sincos(angle)
	return Complex{Re: c, Im: s}
}

// C128 converts c to the builtin complex128.
func (c Complex) C128() complex128 {
	return complex(c.Re, c.Im)
}

// Add returns c + d.
func (c Complex) Add(d Complex) Complex {
	return Complex{c.Re + d.Re, c.Im + d.Im}
}

// Sub returns c - d.
func (c Complex) Sub(d Complex) Complex {
	return Complex{c.Re - d.Re, c.Im - d.Im}
}

// Mul returns c · d.
func (c Complex) Mul(d Complex) Complex {
	return Complex{
		c.Re*d.Re - c.Im*d.Im,
		c.Re*d.Im + c.Im*d.Re,
	}
}

// Div returns c / d, computed as c · d⁻¹.
// Division by a zero value yields non-finite components.
func (c Complex) Div(d Complex) Complex {
	return c.Mul(d.Inv())
}

// Inv returns the multiplicative inverse conj(c)/|c|².
func (c Complex) Inv() Complex {
	return c.Conj().Scale(1 / c.Abs2())
}

// Conj returns the complex conjugate.
func (c Complex) Conj() Complex {
	return Complex{c.Re, -c.Im}
}

// Scale multiplies both components by the real factor s.
func (c Complex) Scale(s float64) Complex {
	return Complex{c.Re * s, c.Im * s}
}

// Neg returns -c.
func (c Complex) Neg() Complex {
	return c.Rot180()
}

// Rot90 returns c · i.
func (c Complex) Rot90() Complex {
	return Complex{-c.Im, c.Re}
}

// Rot180 returns c · -1.
func (c Complex) Rot180() Complex {
	return Complex{-c.Re, -c.Im}
}

// Rot270 returns c · -i.
func (c Complex) Rot270() Complex {
	return Complex{c.Im, -c.Re}
}

// Abs2 returns the squared magnitude |c|².
func (c Complex) Abs2() float64 {
	return c.Re*c.Re + c.Im*c.Im
}

// Abs returns the magnitude |c|.
func (c Complex) Abs() float64 {
	return math.Hypot(c.Re, c.Im)
}

// Unit returns c scaled to magnitude one.
// The zero value has no direction; the result is then non-finite.
func (c Complex) Unit() Complex {
	return c.Scale(1 / c.Abs())
}

// Dist returns the Euclidean distance between c and d.
func (c Complex) Dist(d Complex) float64 {
	return math.Hypot(c.Re-d.Re, c.Im-d.Im)
}

// Equal reports whether c and d are within Epsilon of each other.
func (c Complex) Equal(d Complex) bool {
	return c.Dist(d) < Epsilon
}

// Significant reports whether |c| exceeds Epsilon.
func (c Complex) Significant() bool {
	return c.Abs() > Epsilon
}

// IsFinite reports whether both components are finite numbers.
func (c Complex) IsFinite() bool {
	return !math.IsNaN(c.Re) && !math.IsInf(c.Re, 0) &&
		!math.IsNaN(c.Im) && !math.IsInf(c.Im, 0)
}
