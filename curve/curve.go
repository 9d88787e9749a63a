// Package curve samples B-spline curves from a basis table.
/*
A sampled curve is the linear combination of control points, weighted by
the basis functions of the highest recursion level:

	C(t_j) = Σ_k Eval[k][M-1][j] · P_k,    k ∈ [0, L-M)

Only the top level of the basis table is consumed; the recursion itself
lives in package basis.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve

import (
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/bspline"
	"github.com/npillmayer/bspline/basis"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Sample computes the curve positions for every sample of tbl. The first
// L-M control points participate, where L is the knot count and M the
// order; surplus points are ignored. An empty table yields no samples.
func Sample(tbl *basis.Table, points []bspline.Pair) []bspline.Pair {
	if tbl.Empty() {
		return nil
	}
	M := tbl.Order()
	n := tbl.Functions() - M
	if n > len(points) {
		n = len(points)
	}
	if n < 0 {
		n = 0
	}
	top := make([][]float64, n)
	for k := range top {
		top[k] = tbl.Row(k, M-1)
	}
	spline := make([]bspline.Pair, tbl.Samples())
	for j := range spline {
		var x, y float64
		for k := 0; k < n; k++ {
			w := top[k][j]
			x += w * points[k].X()
			y += w * points[k].Y()
		}
		spline[j] = bspline.P(x, y)
	}
	tracer().Debugf("sampled curve of %d control points", n)
	return spline
}

// Segment is the range of samples [From,To) covered by the knot span
// [knot[Span], knot[Span+1]).
type Segment struct {
	Span     int
	From, To int
}

func (s Segment) String() string {
	return fmt.Sprintf("span %d: [%d,%d)", s.Span, s.From, s.To)
}

// Len returns the number of samples in the segment.
func (s Segment) Len() int {
	return s.To - s.From
}

// Segments returns the sample ranges of the knot spans inside the valid
// parameter domain, i.e. spans M-1 … L-M-1. Renderers draw the curve piece
// by piece along these ranges. Empty spans produce empty segments.
func Segments(knots []float64, order, samples int) []Segment {
	L := len(knots)
	if L < 2*order {
		return nil
	}
	segs := make([]Segment, 0, L-2*order+1)
	for i := order - 1; i < L-order; i++ {
		from := sampleIndex(knots[i], samples)
		to := sampleIndex(knots[i+1], samples)
		if to > samples {
			to = samples
		}
		segs = append(segs, Segment{Span: i, From: from, To: to})
	}
	return segs
}

// first sample j with j/samples ≥ x
func sampleIndex(x float64, samples int) int {
	return int(math.Ceil(x*float64(samples) - bspline.Epsilon))
}

// Bounds returns the bounding box of a sequence of points. For an empty
// sequence both corners are the origin.
func Bounds(points []bspline.Pair) (lo, hi bspline.Pair) {
	if len(points) == 0 {
		return bspline.Origin, bspline.Origin
	}
	r := Contour(points).BoundingBox()
	return bspline.P(r.Min.X, r.Min.Y), bspline.P(r.Max.X, r.Max.Y)
}

// Contour converts points to a polygon contour, e.g. the control polygon
// of a curve.
func Contour(points []bspline.Pair) polyclip.Contour {
	c := make(polyclip.Contour, 0, len(points))
	for _, p := range points {
		c.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return c
}

// AsString returns a sampled curve as a (debugging) string, listing every
// stride-th sample.
func AsString(spline []bspline.Pair, stride int) string {
	if stride < 1 {
		stride = 1
	}
	var s string
	for j := 0; j < len(spline); j += stride {
		if j > 0 {
			s += " -- "
		}
		s += fmt.Sprintf("(%.4f,%.4f)", spline[j].X(), spline[j].Y())
	}
	return s
}
