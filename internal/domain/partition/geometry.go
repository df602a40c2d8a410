// Package partition implements the partition tree: nested splits over a
// percent canvas, the split-insert and divider-resize mutations, and the
// derived absolute geometry of every pane and divider.
package partition

import "fmt"

// CanvasSize is the extent of the root canvas on both axes, in percent.
const CanvasSize = 100.0

// Axis is the primary axis along which a split lays out its children.
type Axis int

const (
	AxisRow    Axis = iota // Children left to right, dividers are vertical
	AxisColumn             // Children top to bottom, dividers are horizontal
)

func (a Axis) String() string {
	switch a {
	case AxisRow:
		return "row"
	case AxisColumn:
		return "column"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Edge names one side of a pane.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return fmt.Sprintf("edge(%d)", int(e))
	}
}

// Axis returns the split axis implied by dragging from this edge.
func (e Edge) Axis() Axis {
	if e == EdgeTop || e == EdgeBottom {
		return AxisColumn
	}
	return AxisRow
}

// Leading reports whether a pane carved from this edge goes before the
// original one (left and top).
func (e Edge) Leading() bool {
	return e == EdgeLeft || e == EdgeTop
}

func (e Edge) valid() bool {
	return e >= EdgeLeft && e <= EdgeBottom
}

// Rect is a rectangle in canvas percent.
type Rect struct {
	X, Y, W, H float64
}

// Canvas returns the full root rectangle.
func Canvas() Rect {
	return Rect{X: 0, Y: 0, W: CanvasSize, H: CanvasSize}
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether the point lies inside the rectangle, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Start returns the rectangle's origin along the axis.
func (r Rect) Start(axis Axis) float64 {
	if axis == AxisRow {
		return r.X
	}
	return r.Y
}

// Length returns the rectangle's extent along the axis.
func (r Rect) Length(axis Axis) float64 {
	if axis == AxisRow {
		return r.W
	}
	return r.H
}

// slice cuts the band [from, to) of the rectangle along the axis; the cross
// axis is inherited unchanged.
func (r Rect) slice(axis Axis, from, to float64) Rect {
	if axis == AxisRow {
		return Rect{X: from, Y: r.Y, W: to - from, H: r.H}
	}
	return Rect{X: r.X, Y: from, W: r.W, H: to - from}
}

// line returns the zero-thickness divider rectangle at pos along the axis.
func (r Rect) line(axis Axis, pos float64) Rect {
	if axis == AxisRow {
		return Rect{X: pos, Y: r.Y, W: 0, H: r.H}
	}
	return Rect{X: r.X, Y: pos, W: r.W, H: 0}
}

func (r Rect) String() string {
	return fmt.Sprintf("{%g,%g,%g,%g}", r.X, r.Y, r.W, r.H)
}
