package editor

import (
	"errors"
	"fmt"

	"github.com/npillmayer/bspline"
	"github.com/npillmayer/bspline/basis"
	"github.com/npillmayer/bspline/curve"
	"github.com/npillmayer/bspline/knots"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'editor'
func tracer() tracing.Trace {
	return tracing.Select("editor")
}

var (
	// ErrCapacityExceeded indicates that no more control points may be added.
	ErrCapacityExceeded = errors.New("too many control points")
	// ErrInvalidConfig indicates inconsistent editor parameters.
	ErrInvalidConfig = errors.New("invalid editor configuration")
	// ErrUnknownCommand indicates a command or key without a binding.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrQuit is returned by Execute when the user asks to end the session.
	ErrQuit = errors.New("quit")
	// ErrInvariantViolation is the panic value for interaction events the
	// state machine cannot handle, wrapped with details.
	ErrInvariantViolation = errors.New("interaction invariant violated")
)

// NoIndex marks the absence of a hovered or dragged entity.
const NoIndex = -1

const defaultWindowWidth, defaultWindowHeight = 1024, 512

// Editor is the state of a single B-spline under interactive editing.
// Create it with New.
type Editor struct {
	cfg        Config
	frame      Frame
	viewport   *Viewport
	points     []bspline.Pair // control points in insertion order
	order      int            // M
	knots      knots.Vector   // N+M knots, nil for N=0
	basis      *basis.Table   // nil for N=0
	spline     []bspline.Pair // curve samples, nil for N=0
	state      State
	dragged    int // index of dragged control point or knot
	hoverCP    int
	hoverKnot  int
	dirty      bool // redraw requested
	generation uint64
}

// New creates an empty editor with the default configuration.
func New() *Editor {
	e, err := NewWithConfig(DefaultConfig())
	if err != nil {
		panic(err) // defaults are valid
	}
	return e
}

// NewWithConfig creates an empty editor with parameters cfg. The editor's
// parameters are fixed; NewWithConfig exists so tests can use other
// limits (e.g. a small capacity). Applications should call New.
func NewWithConfig(cfg Config) (*Editor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Editor{
		cfg:       cfg,
		frame:     NewFrame(cfg.KnotOrigin, cfg.KnotY),
		viewport:  NewViewport(defaultWindowWidth, defaultWindowHeight),
		points:    make([]bspline.Pair, 0, cfg.MaxControlPoints),
		order:     cfg.Order,
		dragged:   NoIndex,
		hoverCP:   NoIndex,
		hoverKnot: NoIndex,
	}
	e.regenerate()
	return e, nil
}

// Config returns the parameters of e.
func (e *Editor) Config() Config {
	return e.cfg
}

// Frame returns the window frame layout of e.
func (e *Editor) Frame() Frame {
	return e.frame
}

// --- Accessors -------------------------------------------------------------

// ControlPoints returns the control points in insertion order.
// Clients must not modify the slice.
func (e *Editor) ControlPoints() []bspline.Pair {
	return e.points
}

// NumControlPoints returns the number of control points.
func (e *Editor) NumControlPoints() int {
	return len(e.points)
}

// ControlPoint returns control point i.
func (e *Editor) ControlPoint(i int) bspline.Pair {
	return e.points[i]
}

// Order returns the current spline order M.
func (e *Editor) Order() int {
	return e.order
}

// Knots returns the current knot vector, nil if there are no control points.
// Clients must not modify it.
func (e *Editor) Knots() knots.Vector {
	return e.knots
}

// NumKnots returns the length of the knot vector.
func (e *Editor) NumKnots() int {
	return len(e.knots)
}

// Basis returns the current basis table, nil if there are no control points.
func (e *Editor) Basis() *basis.Table {
	return e.basis
}

// Curve returns the sampled curve, empty if there are no control points.
// Clients must not modify the slice.
func (e *Editor) Curve() []bspline.Pair {
	return e.spline
}

// Segments returns the sample ranges of the knot spans of the valid domain.
func (e *Editor) Segments() []curve.Segment {
	return curve.Segments(e.knots, e.order, e.cfg.Samples)
}

// Info returns a short description of the spline for display.
func (e *Editor) Info() string {
	return fmt.Sprintf("control points = %d\n         order = %d\n", len(e.points), e.order)
}

// NeedsRedraw reports whether anything visible changed since the last call.
// The frame loop polls it once per frame.
func (e *Editor) NeedsRedraw() bool {
	d := e.dirty
	e.dirty = false
	return d
}

// Generation counts the recomputations of the curve.
func (e *Editor) Generation() uint64 {
	return e.generation
}

// --- Recomputation chain ---------------------------------------------------

// regenerate replaces the knot vector by a uniform one for the current
// number of control points and order. Cascades to basis and curve.
func (e *Editor) regenerate() {
	e.knots = knots.Uniform(len(e.points), e.order, e.cfg.Samples)
	e.recomputeBasis()
}

// recomputeBasis evaluates the basis table for the current knot vector.
// Cascades to the curve.
func (e *Editor) recomputeBasis() {
	if len(e.knots) == 0 {
		e.basis = nil
	} else {
		e.basis = basis.Evaluate(e.knots, e.order, e.cfg.Samples)
	}
	e.recomputeCurve()
}

// recomputeCurve samples the curve from the current basis table and
// control points.
func (e *Editor) recomputeCurve() {
	if e.basis.Empty() {
		e.spline = nil
	} else {
		e.spline = curve.Sample(e.basis, e.points)
	}
	e.generation++
	e.dirty = true
	tracer().Debugf("recomputed curve #%d: %d control points, %d knots, order %d",
		e.generation, len(e.points), len(e.knots), e.order)
}

// NormalizeKnotVector replaces the knot vector by a uniform one, undoing
// all knot drags.
func (e *Editor) NormalizeKnotVector() {
	e.regenerate()
}

// String returns the editor state for debugging.
func (e *Editor) String() string {
	return fmt.Sprintf("editor{%s, M=%d, cps=%v, knots=%s}", e.state, e.order, e.points, e.knots)
}
