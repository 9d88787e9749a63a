// Package knots generates and edits knot vectors of B-splines.
/*
A knot vector partitions the parameter domain [0,1]. Knots generated by
Uniform are spread as evenly as the sampling grid allows: every knot is a
multiple of the sample step 1/samples, so basis evaluation never sees
knots between two samples.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package knots

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

var (
	// ErrEmpty indicates a knot vector without knots.
	ErrEmpty = errors.New("knot vector is empty")
	// ErrNotMonotonic indicates a knot smaller than its predecessor.
	ErrNotMonotonic = errors.New("knot vector is not non-decreasing")
	// ErrOutOfRange indicates a knot outside of [0,1] or unpinned end knots.
	ErrOutOfRange = errors.New("knot out of range")
)

// Vector is a non-decreasing sequence of knots in [0,1].
type Vector []float64

// Uniform creates a knot vector for n control points and a spline of the
// given order. The vector has n+order knots, spread uniformly over [0,1] and
// floored to the grid of 1/samples:
//
//	v[k] = floor(k/(L-1) / step) * step,   step = 1/samples
//
// For n = 0 there is no knot vector and Uniform returns nil.
func Uniform(n, order, samples int) Vector {
	if n <= 0 {
		return nil
	}
	L := n + order
	v := make(Vector, L)
	for k := range v {
		// integer floor keeps v[L-1] at exactly 1
		v[k] = float64(k*samples/(L-1)) / float64(samples)
	}
	tracer().Debugf("uniform knot vector for n=%d, order=%d: %s", n, order, v)
	return v
}

// Len returns the number of knots.
func (v Vector) Len() int {
	return len(v)
}

// Last returns the index of the last knot, -1 for an empty vector.
func (v Vector) Last() int {
	return len(v) - 1
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	return append(Vector(nil), v...)
}

// Move sets knot i to x, clamped against its immediate neighbours, such that
// v[i-1] ≤ v[i] ≤ v[i+1]. The first knot is pinned to 0 and the last
// knot is pinned to 1. Move returns the value actually stored.
func (v Vector) Move(i int, x float64) float64 {
	if i < 0 || i >= len(v) {
		panic(fmt.Sprintf("knot index %d out of range [0,%d)", i, len(v)))
	}
	if i == 0 {
		x = 0
	} else if x < v[i-1] {
		x = v[i-1]
	}
	if i == v.Last() {
		x = 1
	} else if x > v[i+1] {
		x = v[i+1]
	}
	v[i] = x
	return x
}

// Validate checks that v is non-empty, non-decreasing, inside [0,1] and
// pinned to 0 and 1 at its ends.
func (v Vector) Validate() error {
	if len(v) == 0 {
		return ErrEmpty
	}
	if v[0] != 0 {
		return fmt.Errorf("%w: first knot is %g", ErrOutOfRange, v[0])
	}
	if v[v.Last()] != 1 {
		return fmt.Errorf("%w: last knot is %g", ErrOutOfRange, v[v.Last()])
	}
	for k := 1; k < len(v); k++ {
		if v[k] < v[k-1] {
			return fmt.Errorf("%w at knot %d: %g < %g", ErrNotMonotonic, k, v[k], v[k-1])
		}
		if v[k] > 1 {
			return fmt.Errorf("%w at knot %d: %g", ErrOutOfRange, k, v[k])
		}
	}
	return nil
}

// Domain returns the parameter range [v[order-1], v[L-order]] on which the
// basis functions of the given order sum up to 1. It is defined for
// vectors with at least 2·order knots only.
func (v Vector) Domain(order int) (lo, hi float64, ok bool) {
	if order < 1 || len(v) < 2*order {
		return 0, 0, false
	}
	return v[order-1], v[len(v)-order], true
}

// Multiplicity counts the knots equal to v[i].
func (v Vector) Multiplicity(i int) int {
	n := 0
	for _, k := range v {
		if k == v[i] {
			n++
		}
	}
	return n
}

// String returns the knots as a bracketed list (debugging).
func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for k, x := range v {
		if k > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%.4g", x)
	}
	b.WriteByte(']')
	return b.String()
}
