/*
Package editor holds the state of an interactive B-spline editor and the
logic deciding what a user gesture does to it.

An Editor owns the control points, the spline order, the knot vector, the
basis table and the sampled curve. Edits flow one way through a
recomputation chain:

	knot vector change  ⇒  basis table  ⇒  curve samples
	control point move  ⇒  curve samples

Renderers read the results through accessors (or a Snapshot) and call
NeedsRedraw once per frame.

The plane is split into two regions of the window frame [0,2]×[0,1]: the
curve region [0,1]×[0,1] where control points live, and the knot region
[1,2]×[0,1] showing the basis functions, with the knots placed as markers on
a horizontal line near its bottom. A press in the curve region grabs a
nearby control point or adds a new one; a press in the knot region grabs a
nearby knot. Dragged knots are clamped against their neighbours, so the
knot vector stays non-decreasing at all times.

An Editor is not safe for concurrent use. Hand a Snapshot to other
goroutines instead.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package editor
