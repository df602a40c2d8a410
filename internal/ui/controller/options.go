package controller

import (
	"github.com/bnema/subdivide/internal/domain/partition"
	"github.com/bnema/subdivide/internal/infrastructure/config"
)

// DegeneratePolicy decides what happens to a split released below the
// minimum fraction.
type DegeneratePolicy string

const (
	DegenerateCommit  DegeneratePolicy = "commit"  // Clamp to the minimum and commit
	DegenerateDiscard DegeneratePolicy = "discard" // Drop the gesture
)

const (
	defaultEdgeThreshold  = 10.0
	defaultDividerHitSlop = 4.0
)

// Bounds is a rectangle in host units (pixels, terminal cells...).
type Bounds struct {
	X, Y, W, H float64
}

// Right returns the X coordinate of the right edge.
func (b Bounds) Right() float64 { return b.X + b.W }

// Bottom returns the Y coordinate of the bottom edge.
func (b Bounds) Bottom() float64 { return b.Y + b.H }

// Contains reports whether the point lies inside, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.X && x <= b.Right() && y >= b.Y && y <= b.Bottom()
}

// Start returns the origin along the axis.
func (b Bounds) Start(axis partition.Axis) float64 {
	if axis == partition.AxisRow {
		return b.X
	}
	return b.Y
}

// Length returns the extent along the axis.
func (b Bounds) Length(axis partition.Axis) float64 {
	if axis == partition.AxisRow {
		return b.W
	}
	return b.H
}

// Options configures hit testing and split policy.
type Options struct {
	// Canvas is the canvas rectangle in host units.
	Canvas Bounds
	// EdgeThreshold is how close to a pane edge, in host units, a split
	// gesture must start.
	EdgeThreshold float64
	// DividerHitSlop widens the zero-thickness divider lines for hit testing.
	DividerHitSlop float64
	// DegenerateSplit applies when a split is released below the minimum.
	DegenerateSplit DegeneratePolicy
}

// DefaultOptions returns options for a 100x100 canvas.
func DefaultOptions() Options {
	return Options{
		Canvas:          Bounds{W: partition.CanvasSize, H: partition.CanvasSize},
		EdgeThreshold:   defaultEdgeThreshold,
		DividerHitSlop:  defaultDividerHitSlop,
		DegenerateSplit: DegenerateCommit,
	}
}

// OptionsFromConfig builds options for canvas from the interaction section.
func OptionsFromConfig(cfg config.InteractionConfig, canvas Bounds) Options {
	return Options{
		Canvas:          canvas,
		EdgeThreshold:   cfg.EdgeThreshold,
		DividerHitSlop:  cfg.DividerHitSlop,
		DegenerateSplit: DegeneratePolicy(cfg.DegenerateSplit),
	}.normalized()
}

func (o Options) normalized() Options {
	if o.EdgeThreshold < 0 {
		o.EdgeThreshold = 0
	}
	if o.DividerHitSlop < 0 {
		o.DividerHitSlop = 0
	}
	switch o.DegenerateSplit {
	case DegenerateCommit, DegenerateDiscard:
	default:
		o.DegenerateSplit = DegenerateCommit
	}
	return o
}
