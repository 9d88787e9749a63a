// Package basis evaluates B-spline basis functions by the Cox–de Boor
// recursion, over a fixed discretization of the parameter domain [0,1].
/*
For a knot vector of length L and order M, Evaluate fills a table

	Eval[i][m][j]    i ∈ [0,L), m ∈ [0,M), j ∈ [0,samples)

where m is the recursion level (degree), and j the sample at parameter
t = j/samples. Level 0 holds the indicator functions of the knot spans,

	Eval[i][0][j] = 1   iff   knot[i] ≤ t < knot[i+1]

and level m ≥ 1 is defined for i ∈ [0,L-m-1) by

	Eval[i][m][j] = (t-knot[i]) / (knot[i+m]-knot[i]) · Eval[i][m-1][j]
	              + (knot[i+m+1]-t) / (knot[i+m+1]-knot[i+1]) · Eval[i+1][m-1][j]

A term whose denominator is a zero-length span contributes nothing. Such
spans are common (clamped ends, coincident knots after dragging) and are
not an error.

Entries outside the defined ranges are 0. The table is always computed in
full, as changing a single knot alters the support of many functions.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package basis

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Table holds the values of all basis functions at all recursion levels,
// sampled over [0,1).
type Table struct {
	knots   []float64
	order   int
	samples int
	eval    []float64 // flattened [function][level][sample]
}

// Evaluate computes the full basis table for a knot vector and a spline
// order. The knots are copied. An empty knot vector results in an empty
// table.
func Evaluate(knots []float64, order, samples int) *Table {
	if order < 1 || samples < 1 {
		panic(fmt.Sprintf("cannot evaluate basis of order %d with %d samples", order, samples))
	}
	tbl := &Table{
		knots:   append([]float64(nil), knots...),
		order:   order,
		samples: samples,
	}
	L := len(knots)
	if L == 0 {
		return tbl
	}
	tbl.eval = make([]float64, L*order*samples)
	K := tbl.knots
	for i := 0; i < L-1; i++ {
		row := tbl.Row(i, 0)
		for j := range row {
			t := tbl.T(j)
			if K[i] <= t && t < K[i+1] {
				row[j] = 1
			}
		}
	}
	for m := 1; m < order; m++ {
		for i := 0; i < L-m-1; i++ {
			row, lower, next := tbl.Row(i, m), tbl.Row(i, m-1), tbl.Row(i+1, m-1)
			dA := K[i+m] - K[i]
			dB := K[i+m+1] - K[i+1]
			for j := range row {
				t := tbl.T(j)
				v := 0.0
				if dA != 0 {
					v += (t - K[i]) / dA * lower[j]
				}
				if dB != 0 {
					v += (K[i+m+1] - t) / dB * next[j]
				}
				row[j] = v
			}
		}
	}
	tracer().Debugf("basis table for %d knots, order %d, %d samples", L, order, samples)
	return tbl
}

// T returns the parameter value of sample j.
func (tbl *Table) T(j int) float64 {
	return float64(j) / float64(tbl.samples)
}

// Knots returns the knot vector the table was computed from.
// Clients must not modify it.
func (tbl *Table) Knots() []float64 {
	return tbl.knots
}

// Order returns the spline order the table was computed for.
func (tbl *Table) Order() int {
	return tbl.order
}

// Samples returns the number of samples per basis function.
func (tbl *Table) Samples() int {
	return tbl.samples
}

// Functions returns the number of basis function slots, which equals the
// length of the knot vector.
func (tbl *Table) Functions() int {
	return len(tbl.knots)
}

// Empty is a predicate: does the table hold no basis functions?
func (tbl *Table) Empty() bool {
	return tbl == nil || len(tbl.eval) == 0
}

// Row returns the samples of basis function i at recursion level m.
// The slice aliases the table and must not be modified by clients.
func (tbl *Table) Row(i, m int) []float64 {
	tbl.check(i, m)
	at := (i*tbl.order + m) * tbl.samples
	return tbl.eval[at : at+tbl.samples]
}

// At returns Eval[i][m][j].
func (tbl *Table) At(i, m, j int) float64 {
	if j < 0 || j >= tbl.samples {
		panic(fmt.Sprintf("sample index %d out of range [0,%d)", j, tbl.samples))
	}
	return tbl.Row(i, m)[j]
}

// Sum returns Σ_i Eval[i][m][j], the sum of all functions at level m for
// sample j.
func (tbl *Table) Sum(m, j int) float64 {
	s := 0.0
	for i := 0; i < tbl.Functions(); i++ {
		s += tbl.At(i, m, j)
	}
	return s
}

// Clone returns a deep copy of the table.
func (tbl *Table) Clone() *Table {
	if tbl == nil {
		return nil
	}
	return &Table{
		knots:   append([]float64(nil), tbl.knots...),
		order:   tbl.order,
		samples: tbl.samples,
		eval:    append([]float64(nil), tbl.eval...),
	}
}

func (tbl *Table) check(i, m int) {
	if i < 0 || i >= tbl.Functions() || m < 0 || m >= tbl.order {
		panic(fmt.Sprintf("basis index (%d,%d) out of range [0,%d)x[0,%d)",
			i, m, tbl.Functions(), tbl.order))
	}
}
