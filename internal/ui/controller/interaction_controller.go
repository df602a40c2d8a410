// Package controller provides controllers that bridge domain state and UI widgets.
package controller

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/subdivide/internal/domain/partition"
	"github.com/bnema/subdivide/internal/logging"
)

// State is the interaction state of the controller.
type State int

const (
	StateIdle            State = iota // No drag session
	StatePendingSplit                 // Edge grabbed, split commits on release
	StateDraggingDivider              // Divider grabbed, resizes live
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePendingSplit:
		return "pending_split"
	case StateDraggingDivider:
		return "dragging_divider"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome reports what a pointer event did, so hosts know whether to redraw.
type Outcome int

const (
	OutcomeIgnored   Outcome = iota // Event had no effect
	OutcomeStarted                  // A drag session began
	OutcomePreview                  // A pending split's preview moved
	OutcomeResized                  // A divider was moved
	OutcomeSplit                    // A split was committed
	OutcomeDiscarded                // A degenerate split was dropped
	OutcomeCancelled                // The session was cancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeStarted:
		return "started"
	case OutcomePreview:
		return "preview"
	case OutcomeResized:
		return "resized"
	case OutcomeSplit:
		return "split"
	case OutcomeDiscarded:
		return "discarded"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Modifiers carries the input collaborator's gesture flags for pointer-down.
type Modifiers struct {
	// Split gates edge-drag-to-split. Hosts bind it to a held modifier key,
	// a long press or a dedicated affordance.
	Split bool
}

// InteractionController turns abstract pointer events into partition tree
// mutations. Only one drag session exists at a time; it must be driven from
// the goroutine that owns the tree.
type InteractionController struct {
	tree   *partition.Tree
	opts   Options
	state  State
	ctx    context.Context
	logger *zerolog.Logger

	session string
	split   pendingSplit
	drag    dividerDrag

	lastSplit partition.PaneID
}

type pendingSplit struct {
	pane     partition.PaneID
	edge     partition.Edge
	rect     Bounds         // pane rectangle in host units
	paneRect partition.Rect // pane rectangle in canvas percent
	x, y     float64        // last pointer position
}

type dividerDrag struct {
	split      partition.SplitID
	index      int
	axis       partition.Axis
	bounds     Bounds // owning split rectangle in host units
	grabOffset float64
}

// NewInteractionController creates a controller driving tree.
func NewInteractionController(ctx context.Context, tree *partition.Tree, opts Options) *InteractionController {
	return &InteractionController{
		tree:   tree,
		opts:   opts.normalized(),
		state:  StateIdle,
		ctx:    ctx,
		logger: logging.FromContext(ctx),
	}
}

// State returns the current interaction state.
func (c *InteractionController) State() State {
	return c.state
}

// Options returns the active options.
func (c *InteractionController) Options() Options {
	return c.opts
}

// Tree returns the driven tree.
func (c *InteractionController) Tree() *partition.Tree {
	return c.tree
}

// LastSplit returns the pane created by the most recent committed split.
func (c *InteractionController) LastSplit() (partition.PaneID, bool) {
	return c.lastSplit, c.lastSplit != 0
}

// ApplyOptions replaces the options. An active session keeps the geometry it
// captured at grab time.
func (c *InteractionController) ApplyOptions(opts Options) {
	c.opts = opts.normalized()
	c.logger.Debug().
		Float64("edge_threshold", c.opts.EdgeThreshold).
		Float64("divider_hit_slop", c.opts.DividerHitSlop).
		Str("degenerate_split", string(c.opts.DegenerateSplit)).
		Msg("interaction options applied")
}

// SetCanvas updates the canvas rectangle after a host resize.
func (c *InteractionController) SetCanvas(canvas Bounds) {
	c.opts.Canvas = canvas
}

// PointerDown classifies the target under the pointer and may start a drag
// session. It is ignored while a session is active.
func (c *InteractionController) PointerDown(x, y float64, mods Modifiers) Outcome {
	if c.state != StateIdle {
		c.logger.Debug().
			Str("state", c.state.String()).
			Str("session", c.session).
			Msg("pointer down ignored, session active")
		return OutcomeIgnored
	}

	layout := c.tree.ComputeAbsoluteLayout()

	if divider, ok := c.dividerAt(layout, x, y); ok {
		line := c.toHost(divider.Rect)
		pointer, position := y, line.Y
		if divider.Axis == partition.AxisRow {
			pointer, position = x, line.X
		}
		c.drag = dividerDrag{
			split:      divider.Split,
			index:      divider.Index,
			axis:       divider.Axis,
			bounds:     c.toHost(divider.Bounds),
			grabOffset: pointer - position,
		}
		c.begin(StateDraggingDivider)
		return OutcomeStarted
	}

	if !mods.Split {
		return OutcomeIgnored
	}

	pane, ok := c.paneAt(layout, x, y)
	if !ok {
		return OutcomeIgnored
	}
	rect := c.toHost(pane.Rect)
	edge, distance := nearestEdge(rect, x, y)
	if distance > c.opts.EdgeThreshold {
		return OutcomeIgnored
	}

	c.split = pendingSplit{
		pane:     pane.Pane,
		edge:     edge,
		rect:     rect,
		paneRect: pane.Rect,
		x:        x,
		y:        y,
	}
	c.begin(StatePendingSplit)
	return OutcomeStarted
}

// PointerMove updates the split preview or resizes the grabbed divider.
func (c *InteractionController) PointerMove(x, y float64) Outcome {
	switch c.state {
	case StatePendingSplit:
		c.split.x, c.split.y = x, y
		return OutcomePreview
	case StateDraggingDivider:
		c.resize(x, y)
		return OutcomeResized
	default:
		return OutcomeIgnored
	}
}

// PointerUp commits the active session and returns to idle.
func (c *InteractionController) PointerUp(x, y float64) Outcome {
	switch c.state {
	case StateDraggingDivider:
		c.resize(x, y)
		c.end("released")
		return OutcomeResized
	case StatePendingSplit:
		return c.commitSplit(x, y)
	default:
		return OutcomeIgnored
	}
}

// PointerCancel discards the active session. Resizes already applied by
// moves stay in place.
func (c *InteractionController) PointerCancel() Outcome {
	if c.state == StateIdle {
		return OutcomeIgnored
	}
	c.end("cancelled")
	return OutcomeCancelled
}

// ActiveDivider returns the divider grabbed by the current drag session.
func (c *InteractionController) ActiveDivider() (partition.SplitID, int, bool) {
	if c.state != StateDraggingDivider {
		return 0, 0, false
	}
	return c.drag.split, c.drag.index, true
}

// SplitPreview returns the rectangle, in canvas percent, the new pane would
// take if the pending split were released at the last pointer position.
func (c *InteractionController) SplitPreview() (partition.Rect, bool) {
	if c.state != StatePendingSplit {
		return partition.Rect{}, false
	}
	minFraction := c.tree.MinFraction()
	delta := c.splitDelta(c.split.x, c.split.y)
	if math.IsNaN(delta) {
		delta = minFraction
	}
	delta = math.Max(minFraction, math.Min(1-minFraction, delta))

	r := c.split.paneRect
	switch c.split.edge {
	case partition.EdgeLeft:
		return partition.Rect{X: r.X, Y: r.Y, W: r.W * delta, H: r.H}, true
	case partition.EdgeRight:
		return partition.Rect{X: r.Right() - r.W*delta, Y: r.Y, W: r.W * delta, H: r.H}, true
	case partition.EdgeTop:
		return partition.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H * delta}, true
	default:
		return partition.Rect{X: r.X, Y: r.Bottom() - r.H*delta, W: r.W, H: r.H * delta}, true
	}
}

func (c *InteractionController) commitSplit(x, y float64) Outcome {
	delta := c.splitDelta(x, y)
	degenerate := math.IsNaN(delta) || delta < c.tree.MinFraction()

	if degenerate && c.opts.DegenerateSplit == DegenerateDiscard {
		c.logger.Debug().
			Str("session", c.session).
			Float64("drag_delta", delta).
			Msg("degenerate split discarded")
		c.end("discarded")
		return OutcomeDiscarded
	}

	created, err := c.tree.SplitInsert(c.split.pane, c.split.edge, delta)
	if err != nil {
		c.desync(err)
	}
	logging.FromContext(logging.WithPaneID(logging.WithSession(c.ctx, c.session), uint64(c.split.pane))).
		Debug().
		Uint64("new_pane_id", uint64(created)).
		Str("edge", c.split.edge.String()).
		Float64("drag_delta", delta).
		Msg("pane split")
	c.lastSplit = created
	c.end("split")
	return OutcomeSplit
}

// splitDelta measures the drag from the grabbed pane edge to the point, as a
// fraction of the pane's extent along the split axis. Dragging away from the
// pane gives a negative delta.
func (c *InteractionController) splitDelta(x, y float64) float64 {
	r := c.split.rect
	switch c.split.edge {
	case partition.EdgeLeft:
		return ratio(x-r.X, r.W)
	case partition.EdgeRight:
		return ratio(r.Right()-x, r.W)
	case partition.EdgeTop:
		return ratio(y-r.Y, r.H)
	default:
		return ratio(r.Bottom()-y, r.H)
	}
}

func (c *InteractionController) resize(x, y float64) {
	d := c.drag
	pointer := y
	if d.axis == partition.AxisRow {
		pointer = x
	}
	length := d.bounds.Length(d.axis)
	if length <= 0 {
		return
	}
	offset := (pointer - d.grabOffset - d.bounds.Start(d.axis)) / length

	if err := c.tree.ResizeDivider(d.split, d.index, offset); err != nil {
		c.desync(err)
	}
	logging.FromContext(logging.WithSplitID(logging.WithSession(c.ctx, c.session), uint64(d.split))).
		Trace().
		Int("divider", d.index).
		Float64("offset", offset).
		Msg("divider resized")
}

func (c *InteractionController) begin(state State) {
	c.state = state
	c.session = uuid.NewString()

	event := c.logger.Debug().
		Str("session", c.session).
		Str("state", state.String())
	switch state {
	case StatePendingSplit:
		event = event.Uint64("pane_id", uint64(c.split.pane)).Str("edge", c.split.edge.String())
	case StateDraggingDivider:
		event = event.Uint64("split_id", uint64(c.drag.split)).Int("divider", c.drag.index)
	}
	event.Msg("drag session started")
}

func (c *InteractionController) end(reason string) {
	c.logger.Debug().
		Str("session", c.session).
		Str("state", c.state.String()).
		Str("reason", reason).
		Msg("drag session ended")
	c.reset()
}

func (c *InteractionController) reset() {
	c.state = StateIdle
	c.session = ""
	c.split = pendingSplit{}
	c.drag = dividerDrag{}
}

// desync handles a tree error for an identity the controller read from the
// tree's own layout. That can only happen when the two have diverged, which
// is a defect.
func (c *InteractionController) desync(err error) {
	c.logger.Error().
		Err(err).
		Str("session", c.session).
		Str("state", c.state.String()).
		Msg("controller and partition tree desynchronized")
	c.reset()
	panic(fmt.Errorf("controller and partition tree desynchronized: %w", err))
}

func ratio(distance, extent float64) float64 {
	if extent <= 0 {
		return math.NaN()
	}
	return distance / extent
}
