package editor

import (
	"github.com/npillmayer/bspline"
	"github.com/npillmayer/bspline/basis"
	"github.com/npillmayer/bspline/knots"
)

// Snapshot is an immutable copy of everything a renderer needs to draw one
// frame. Snapshots may be handed to other goroutines; the editor never
// touches them again.
type Snapshot struct {
	Generation    uint64
	ControlPoints []bspline.Pair
	Order         int
	Knots         knots.Vector
	Basis         *basis.Table
	Curve         []bspline.Pair
	State         State
	DraggedCP     int
	DraggedKnot   int
	HoveredCP     int
	HoveredKnot   int
}

// Snapshot copies the current state of e.
func (e *Editor) Snapshot() Snapshot {
	return Snapshot{
		Generation:    e.generation,
		ControlPoints: append([]bspline.Pair(nil), e.points...),
		Order:         e.order,
		Knots:         e.knots.Clone(),
		Basis:         e.basis.Clone(),
		Curve:         append([]bspline.Pair(nil), e.spline...),
		State:         e.state,
		DraggedCP:     e.DraggedControlPoint(),
		DraggedKnot:   e.DraggedKnot(),
		HoveredCP:     e.hoverCP,
		HoveredKnot:   e.hoverKnot,
	}
}
