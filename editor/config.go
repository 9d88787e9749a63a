package editor

import "fmt"

// Default parameters of an editor.
const (
	DefaultMaxControlPoints = 50
	DefaultMaxOrder         = 5
	DefaultOrder            = 3
	DefaultSamples          = 500  // samples per basis function and curve
	DefaultDragThreshold    = 0.02 // hover/drag distance in frame units
	DefaultKnotY            = 0.05 // height of the knot markers
	DefaultKnotOrigin       = 1.0  // left edge of the knot region
	minOrder                = 2
)

// Config collects the fixed parameters of an editor.
type Config struct {
	MaxControlPoints int     // a new point is rejected at MaxControlPoints-1 points
	MaxOrder         int     // orders cycle within [2,MaxOrder]
	Order            int     // initial order
	Samples          int     // discretization of the parameter domain
	DragThreshold    float64 // maximum distance for grabbing an entity
	KnotY            float64 // y-position of knot markers in the knot region
	KnotOrigin       float64 // x-position of knot 0 in the window frame
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{
		MaxControlPoints: DefaultMaxControlPoints,
		MaxOrder:         DefaultMaxOrder,
		Order:            DefaultOrder,
		Samples:          DefaultSamples,
		DragThreshold:    DefaultDragThreshold,
		KnotY:            DefaultKnotY,
		KnotOrigin:       DefaultKnotOrigin,
	}
}

// Validate checks the parameters for consistency.
func (c Config) Validate() error {
	switch {
	case c.MaxControlPoints < 2:
		return fmt.Errorf("%w: capacity of %d control points", ErrInvalidConfig, c.MaxControlPoints)
	case c.MaxOrder < minOrder:
		return fmt.Errorf("%w: maximum order %d < %d", ErrInvalidConfig, c.MaxOrder, minOrder)
	case c.Order < minOrder || c.Order > c.MaxOrder:
		return fmt.Errorf("%w: order %d not in [%d,%d]", ErrInvalidConfig, c.Order, minOrder, c.MaxOrder)
	case c.Samples < 1:
		return fmt.Errorf("%w: %d samples", ErrInvalidConfig, c.Samples)
	case c.DragThreshold <= 0:
		return fmt.Errorf("%w: drag threshold %g", ErrInvalidConfig, c.DragThreshold)
	case c.KnotY < 0 || c.KnotY > 1:
		return fmt.Errorf("%w: knot markers at y=%g", ErrInvalidConfig, c.KnotY)
	}
	return nil
}

func (c Config) threshold2() float64 {
	return c.DragThreshold * c.DragThreshold
}
