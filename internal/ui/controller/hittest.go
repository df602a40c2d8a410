package controller

import (
	"math"

	"github.com/bnema/subdivide/internal/domain/partition"
)

// toHost maps a canvas-percent rectangle onto the host canvas.
func (c *InteractionController) toHost(r partition.Rect) Bounds {
	canvas := c.opts.Canvas
	return Bounds{
		X: canvas.X + r.X/partition.CanvasSize*canvas.W,
		Y: canvas.Y + r.Y/partition.CanvasSize*canvas.H,
		W: r.W / partition.CanvasSize * canvas.W,
		H: r.H / partition.CanvasSize * canvas.H,
	}
}

// dividerAt returns the divider closest to the point within the hit slop.
// Ties go to the divider listed first, which is the shallower one.
func (c *InteractionController) dividerAt(layout partition.Layout, x, y float64) (partition.Entry, bool) {
	slop := c.opts.DividerHitSlop
	best := math.Inf(1)
	var found partition.Entry
	ok := false

	for _, entry := range layout {
		if entry.Kind != partition.EntryDivider {
			continue
		}
		line := c.toHost(entry.Rect)

		var distance float64
		if entry.Axis == partition.AxisRow {
			if y < line.Y || y > line.Bottom() {
				continue
			}
			distance = math.Abs(x - line.X)
		} else {
			if x < line.X || x > line.Right() {
				continue
			}
			distance = math.Abs(y - line.Y)
		}

		if distance <= slop && distance < best {
			best = distance
			found = entry
			ok = true
		}
	}
	return found, ok
}

// paneAt returns the pane under the point.
func (c *InteractionController) paneAt(layout partition.Layout, x, y float64) (partition.Entry, bool) {
	for _, entry := range layout {
		if entry.Kind == partition.EntryPane && c.toHost(entry.Rect).Contains(x, y) {
			return entry, true
		}
	}
	return partition.Entry{}, false
}

// nearestEdge returns the pane edge closest to a point inside the rectangle.
func nearestEdge(r Bounds, x, y float64) (partition.Edge, float64) {
	edge, distance := partition.EdgeLeft, x-r.X
	if d := r.Right() - x; d < distance {
		edge, distance = partition.EdgeRight, d
	}
	if d := y - r.Y; d < distance {
		edge, distance = partition.EdgeTop, d
	}
	if d := r.Bottom() - y; d < distance {
		edge, distance = partition.EdgeBottom, d
	}
	return edge, distance
}
