package editor

import (
	"fmt"

	"github.com/npillmayer/bspline"
)

// State is the mode of the interaction state machine.
type State int8

const (
	Idle                 State = iota // no gesture in progress
	DraggingControlPoint              // a control point follows the pointer
	DraggingKnot                      // a knot follows the pointer
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case DraggingControlPoint:
		return "dragging-control-point"
	case DraggingKnot:
		return "dragging-knot"
	}
	return "invalid-state"
}

// State returns the current interaction mode.
func (e *Editor) State() State {
	return e.state
}

// DraggedControlPoint returns the index of the dragged control point or NoIndex.
func (e *Editor) DraggedControlPoint() int {
	if e.state == DraggingControlPoint {
		return e.dragged
	}
	return NoIndex
}

// DraggedKnot returns the index of the dragged knot or NoIndex.
func (e *Editor) DraggedKnot() int {
	if e.state == DraggingKnot {
		return e.dragged
	}
	return NoIndex
}

// OnPress handles a button press at p, a point of the window frame, inside
// region r.
//
// In the curve region a control point within the drag threshold is grabbed.
// If there is none, a new control point is appended at p (clamped to the
// unit square), ending any drag, and the knot vector is regenerated. If the
// editor is full, OnPress returns ErrCapacityExceeded and changes nothing,
// not even a drag in progress.
//
// In the knot region a knot within the drag threshold is grabbed; otherwise
// the editor stays idle.
//
// Grabbing an entity ends any other drag. OnPress panics for an unknown
// region.
func (e *Editor) OnPress(p bspline.Pair, r Region) error {
	switch r {
	case CurveRegion:
		if i := NearestControlPoint(e.points, p, e.cfg.threshold2()); i != NoIndex {
			e.startDrag(DraggingControlPoint, i)
			return nil
		}
		return e.addControlPoint(p)
	case KnotRegion:
		i := NearestKnot(e.knots, p, e.frame.Origin, e.frame.KnotY, e.cfg.threshold2())
		if i != NoIndex {
			e.startDrag(DraggingKnot, i)
		} else {
			e.endDrag()
		}
		return nil
	}
	violate("press in %s (%d) at %v", r, int8(r), p)
	return nil
}

// OnRelease ends any gesture.
func (e *Editor) OnRelease() {
	e.endDrag()
}

// OnMove handles pointer motion with a pressed button. A dragged control
// point follows p (clamped to the unit square) and the curve is resampled.
// A dragged knot follows the x-position of p, clamped against its
// neighbours, and the basis table is recomputed. When idle, OnMove does
// nothing.
func (e *Editor) OnMove(p bspline.Pair) {
	switch e.state {
	case Idle:
		return
	case DraggingControlPoint:
		if e.dragged >= len(e.points) {
			violate("dragged control point %d of %d", e.dragged, len(e.points))
		}
		e.points[e.dragged] = p.ClampUnit()
		e.recomputeCurve()
	case DraggingKnot:
		if e.dragged >= len(e.knots) {
			violate("dragged knot %d of %d", e.dragged, len(e.knots))
		}
		x := e.knots.Move(e.dragged, e.frame.KnotValue(p))
		tracer().Debugf("knot %d moved to %g", e.dragged, x)
		e.recomputeBasis()
	default:
		violate("move in %s at %v", e.state, p)
	}
}

func (e *Editor) startDrag(s State, i int) {
	tracer().Debugf("start %s of #%d", s, i)
	e.state, e.dragged = s, i
}

func (e *Editor) endDrag() {
	e.state, e.dragged = Idle, NoIndex
}

func (e *Editor) addControlPoint(p bspline.Pair) error {
	if len(e.points) >= e.cfg.MaxControlPoints-1 {
		tracer().Infof("Sorry, that's too many control points")
		return fmt.Errorf("%w: %d points", ErrCapacityExceeded, len(e.points))
	}
	e.endDrag()
	e.points = append(e.points, p.ClampUnit())
	tracer().Debugf("added control point #%d at %v", len(e.points)-1, e.points[len(e.points)-1])
	e.regenerate()
	return nil
}

// violate reports a broken interaction contract and panics. Continuing
// would operate on an inconsistent state machine.
func violate(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	tracer().Errorf("interaction invariant violated: %s", msg)
	panic(fmt.Errorf("%w: %s", ErrInvariantViolation, msg))
}
