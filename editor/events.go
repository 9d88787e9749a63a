package editor

import (
	"github.com/npillmayer/bspline"
)

// PointerKind tells what a pointer did.
type PointerKind int8

const (
	PointerPress   PointerKind = iota // button went down
	PointerRelease                    // button went up
	PointerDrag                       // motion with a pressed button
	PointerHover                      // motion without a pressed button
)

func (k PointerKind) String() string {
	switch k {
	case PointerPress:
		return "press"
	case PointerRelease:
		return "release"
	case PointerDrag:
		return "drag"
	case PointerHover:
		return "hover"
	}
	return "invalid-pointer-event"
}

// Button identifies a pointer button.
type Button int8

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonTertiary
)

// PointerEvent is a pointer event in window pixels, origin top-left, as
// delivered by a windowing toolkit.
type PointerEvent struct {
	Kind   PointerKind
	Button Button // for press and release
	X, Y   int
}

// Reshape adapts the pixel mapping to a new window size and returns the
// drawing area, see Viewport.Reshape.
func (e *Editor) Reshape(w, h int) (x, y, width, height int) {
	if e.viewport == nil {
		e.viewport = &Viewport{}
	}
	return e.viewport.Reshape(w, h)
}

// Viewport returns the pixel mapping of e.
func (e *Editor) Viewport() *Viewport {
	return e.viewport
}

// Dispatch maps a pointer event into the window frame and routes it to the
// state machine. Only the primary button presses and releases; other
// buttons are ignored. Dispatch returns the error of OnPress, if any, and
// panics for an unknown event kind.
func (e *Editor) Dispatch(ev PointerEvent) error {
	p := e.viewport.ToFrame(ev.X, ev.Y)
	switch ev.Kind {
	case PointerPress:
		if ev.Button != ButtonPrimary {
			return nil
		}
		return e.OnPress(p, e.frame.Region(p))
	case PointerRelease:
		if ev.Button == ButtonPrimary {
			e.OnRelease()
		}
	case PointerDrag:
		e.OnMove(p)
	case PointerHover:
		e.OnHover(p)
	default:
		violate("pointer event %s (%d) at %v", ev.Kind, int8(ev.Kind), bspline.P(float64(ev.X), float64(ev.Y)))
	}
	return nil
}
