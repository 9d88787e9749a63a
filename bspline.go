/*
Package bspline is the computational core of an interactive B-spline editor.
It provides the numeric primitives shared by the sub-packages: points in the
plane, tolerance helpers and affine transformations.

Sub-packages:

	knots    uniform knot vector generation and knot editing
	basis    Cox–de Boor evaluation of B-spline basis functions
	curve    sampling of a B-spline curve from a basis table
	editor   editor state, hit-testing and the interaction state machine

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bspline

import (
	"fmt"
	"math"
)

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Clamp restricts n to [lo,hi].
func Clamp(n, lo, hi float64) float64 {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// === Pair Data Type ========================================================

// Pair is a 2D point in the plane, x as the real part and y as the
// imaginary part.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", p.X(), p.Y())
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Equal compares two pairs within Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Dist2 is the squared euclidean distance between p and p2.
func (p Pair) Dist2(p2 Pair) float64 {
	dx, dy := p.X()-p2.X(), p.Y()-p2.Y()
	return dx*dx + dy*dy
}

// ClampUnit restricts both coordinates of p to [0,1].
func (p Pair) ClampUnit() Pair {
	return P(Clamp(p.X(), 0, 1), Clamp(p.Y(), 0, 1))
}

// InUnit is a predicate: are both coordinates of p in [0,1]?
func (p Pair) InUnit() bool {
	return p.X() >= 0 && p.X() <= 1 && p.Y() >= 0 && p.Y() <= 1
}
