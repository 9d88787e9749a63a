package editor

import (
	"github.com/npillmayer/bspline"
)

// NearestControlPoint returns the index of the control point closest to p,
// if its squared distance is strictly below threshold2. Otherwise it
// returns NoIndex. Of equally close points the first one wins.
func NearestControlPoint(points []bspline.Pair, p bspline.Pair, threshold2 float64) int {
	best, ret := threshold2, NoIndex
	for i, cp := range points {
		if d := cp.Dist2(p); d < best {
			best, ret = d, i
		}
	}
	return ret
}

// NearestKnot returns the index of the knot marker closest to p, if its
// squared distance does not exceed threshold2. Knot markers are located at
// (origin+knot[i], knotY); p is a point of the window frame.
//
// Ties between coincident knots go to the knot with the higher index,
// except for the last knot, which never wins a tie. Either way the
// winner is a knot that can be moved away: knot 0 and the last knot are
// pinned, and a knot clamped against its upper neighbour can move left only.
// The last knot is found only if strictly closer than threshold2.
func NearestKnot(knots []float64, p bspline.Pair, origin, knotY, threshold2 float64) int {
	if len(knots) == 0 {
		return NoIndex
	}
	x, y := p.X()-origin, p.Y()
	dist := func(k float64) float64 {
		return (k-x)*(k-x) + (knotY-y)*(knotY-y)
	}
	best, ret := threshold2, NoIndex
	last := len(knots) - 1
	for i := 0; i < last; i++ {
		if d := dist(knots[i]); d <= best {
			best, ret = d, i
		}
	}
	if d := dist(knots[last]); d < best {
		ret = last
	}
	return ret
}

// HoverQuery returns the control point and the knot closest to p, for
// highlighting. Either may be NoIndex. HoverQuery does not change the
// editor.
func (e *Editor) HoverQuery(p bspline.Pair) (cp, knot int) {
	t2 := e.cfg.threshold2()
	cp = NearestControlPoint(e.points, p, t2)
	knot = NearestKnot(e.knots, p, e.frame.Origin, e.frame.KnotY, t2)
	return cp, knot
}

// OnHover records the entities under a pointer that moves without a
// pressed button. A redraw is requested whenever the hovered entities
// change, including when the pointer leaves them.
func (e *Editor) OnHover(p bspline.Pair) {
	cp, knot := e.HoverQuery(p)
	if cp != e.hoverCP || knot != e.hoverKnot {
		e.dirty = true
	}
	e.hoverCP, e.hoverKnot = cp, knot
}

// HoveredControlPoint returns the index of the hovered control point or NoIndex.
func (e *Editor) HoveredControlPoint() int {
	return e.hoverCP
}

// HoveredKnot returns the index of the hovered knot or NoIndex.
func (e *Editor) HoveredKnot() int {
	return e.hoverKnot
}
