// Package cnum provides the immutable complex number used for every
// amplitude and coefficient in qkron.
//
// A Complex is a plain {Re, Im} pair. Every operation returns a new value;
// nothing in this package mutates its receiver.
//
// Equality is never exact. Two values are considered equal when their
// Euclidean distance is below Epsilon (1e-6), the single tolerance shared by
// the qubit, register and gate packages:
//
//	a := cnum.Phase(math.Pi / 2)
//	a.Equal(cnum.I) // true
//
// Constructors are tagged rather than inferred:
//
//	cnum.New(re, im)    // explicit pair
//	cnum.Real(x)        // real input, imaginary part zero
//	cnum.FromC128(c)    // conversion from the builtin complex128
//	cnum.Phase(angle)   // unit-magnitude value (cos angle, sin angle)
//
// Interop with the builtin type goes through C128/FromC128; the dense
// expansion in package register works on complex128 slices.
package cnum
