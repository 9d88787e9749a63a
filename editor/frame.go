package editor

import (
	"github.com/npillmayer/bspline"
)

// Region is a part of the window frame receiving pointer input.
type Region int8

const (
	CurveRegion Region = iota // control points, [0,1]×[0,1]
	KnotRegion                // knots and basis functions, [1,2]×[0,1]
)

func (r Region) String() string {
	switch r {
	case CurveRegion:
		return "curve-region"
	case KnotRegion:
		return "knot-region"
	}
	return "invalid-region"
}

// Frame is the layout of the window frame [0,2]×[0,1]. The curve region
// is the left unit square, the knot region the right one.
type Frame struct {
	Origin float64 // x-position of the left edge of the knot region (knot value 0)
	KnotY  float64 // y-position of the knot markers
}

// NewFrame creates a frame with the knot region starting at origin and knot
// markers placed at height knotY.
func NewFrame(origin, knotY float64) Frame {
	return Frame{
		Origin: origin,
		KnotY:  knotY,
	}
}

// Region classifies a point of the window frame by its x-position alone:
// left of Origin is the curve region, everything else the knot region.
// The border x = Origin belongs to the knot region. Points above or below
// the frame are classified like points inside it.
func (f Frame) Region(p bspline.Pair) Region {
	if p.X() < f.Origin {
		return CurveRegion
	}
	return KnotRegion
}

// KnotMarker returns the position of a knot value in the window frame.
func (f Frame) KnotMarker(knot float64) bspline.Pair {
	return bspline.P(f.Origin+knot, f.KnotY)
}

// KnotValue maps an x-position of the window frame to a knot value.
func (f Frame) KnotValue(p bspline.Pair) float64 {
	return p.X() - f.Origin
}

// --- Viewport --------------------------------------------------------------

// Viewport maps window pixels (origin top-left) to the window frame. The
// drawing area keeps an aspect ratio of 2:1 and sits in the top-left corner
// of the window.
type Viewport struct {
	Width, Height int // drawing area in pixels
	toFrame       bspline.AT
}

// NewViewport creates a viewport for a window of w×h pixels.
func NewViewport(w, h int) *Viewport {
	vp := &Viewport{}
	vp.Reshape(w, h)
	return vp
}

// Reshape adapts the viewport to a new window size. It returns the drawing
// area as (x, y, width, height), with y measured from the bottom of the
// window.
func (vp *Viewport) Reshape(w, h int) (x, y, width, height int) {
	nh := h
	if w < 2*h {
		nh = w / 2
	}
	nw := 2 * nh
	vp.Height = max(nh, 2)
	vp.Width = max(nw, 2)
	vp.toFrame = bspline.Scaling(2/float64(vp.Width), -1/float64(vp.Height)).
		Combine(bspline.Translation(bspline.P(0, 1)))
	tracer().Debugf("viewport %dx%d for window %dx%d", vp.Width, vp.Height, w, h)
	return 0, h - nh, nw, nh
}

// ToFrame maps window pixel (px,py) into the window frame.
func (vp *Viewport) ToFrame(px, py int) bspline.Pair {
	return vp.toFrame.Transform(bspline.P(float64(px), float64(py)))
}
