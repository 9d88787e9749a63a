package editor

import (
	"fmt"
)

// RemoveFirstControlPoint deletes control point 0. The remaining points
// keep their order. Without control points it does nothing.
func (e *Editor) RemoveFirstControlPoint() {
	if len(e.points) == 0 {
		return
	}
	copy(e.points, e.points[1:])
	e.points = e.points[:len(e.points)-1]
	e.afterCountChange()
}

// RemoveLastControlPoint deletes the most recently added control point.
// Without control points it does nothing.
func (e *Editor) RemoveLastControlPoint() {
	if len(e.points) == 0 {
		return
	}
	e.points = e.points[:len(e.points)-1]
	e.afterCountChange()
}

// IncreaseOrder raises the order by one; from the maximum order it wraps
// around to 2.
func (e *Editor) IncreaseOrder() {
	if e.order >= e.cfg.MaxOrder {
		e.order = minOrder
	} else {
		e.order++
	}
	e.afterCountChange()
}

// DecreaseOrder lowers the order by one; from order 2 it wraps around to
// the maximum order.
func (e *Editor) DecreaseOrder() {
	if e.order <= minOrder {
		e.order = e.cfg.MaxOrder
	} else {
		e.order--
	}
	e.afterCountChange()
}

// Indices of control points and knots are stale after the change.
func (e *Editor) afterCountChange() {
	e.endDrag()
	e.hoverCP, e.hoverKnot = NoIndex, NoIndex
	e.regenerate()
}

// --- Key bindings ----------------------------------------------------------

// Command is a discrete user command, usually bound to a key.
type Command int8

const (
	NoCommand Command = iota
	CmdRemoveFirst
	CmdRemoveLast
	CmdNormalizeKnots
	CmdIncreaseOrder
	CmdDecreaseOrder
	CmdHelp
	CmdInfo
	CmdQuit
)

var commandNames = [...]string{
	NoCommand:         "none",
	CmdRemoveFirst:    "remove-first",
	CmdRemoveLast:     "remove-last",
	CmdNormalizeKnots: "normalize-knots",
	CmdIncreaseOrder:  "increase-order",
	CmdDecreaseOrder:  "decrease-order",
	CmdHelp:           "help",
	CmdInfo:           "info",
	CmdQuit:           "quit",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("command(%d)", int8(c))
	}
	return commandNames[c]
}

// Binding connects a key to a command.
type Binding struct {
	Key     rune
	Command Command
	Help    string
}

var bindings = []Binding{
	{'f', CmdRemoveFirst, "delete first control point"},
	{'h', CmdHelp, "print this help"},
	{'i', CmdInfo, "print info about this spline"},
	{'l', CmdRemoveLast, "delete last control point"},
	{'m', CmdIncreaseOrder, "increase order"},
	{'M', CmdDecreaseOrder, "decrease order"},
	{'q', CmdQuit, "exit program"},
	{'u', CmdNormalizeKnots, "normalize knot vector"},
}

// Bindings lists the key bindings, e.g. for a help screen.
func Bindings() []Binding {
	return append([]Binding(nil), bindings...)
}

// CommandForKey looks up the command bound to key.
func CommandForKey(key rune) (Command, bool) {
	for _, b := range bindings {
		if b.Key == key {
			return b.Command, true
		}
	}
	return NoCommand, false
}

// Execute performs an editing command. Help and info are left to the
// presentation layer and do not change the editor; quit returns ErrQuit.
func (e *Editor) Execute(cmd Command) error {
	tracer().Debugf("execute %s", cmd)
	switch cmd {
	case CmdRemoveFirst:
		e.RemoveFirstControlPoint()
	case CmdRemoveLast:
		e.RemoveLastControlPoint()
	case CmdNormalizeKnots:
		e.NormalizeKnotVector()
	case CmdIncreaseOrder:
		e.IncreaseOrder()
	case CmdDecreaseOrder:
		e.DecreaseOrder()
	case CmdHelp, CmdInfo:
	case CmdQuit:
		return ErrQuit
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
	return nil
}

// OnKey executes the command bound to key.
func (e *Editor) OnKey(key rune) error {
	cmd, ok := CommandForKey(key)
	if !ok {
		tracer().Infof("Unknown key %c, press h for help", key)
		return fmt.Errorf("%w: key %q", ErrUnknownCommand, key)
	}
	return e.Execute(cmd)
}
