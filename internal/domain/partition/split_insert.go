package partition

import (
	"fmt"
	"math"
)

// SplitInsert carves a new pane out of the target pane by dragging from one
// of its edges. dragDelta is the new pane's share of the target's own extent
// along the edge's axis; it is clamped to [MinFraction, 1-MinFraction].
//
// When the target's parent already splits along the same axis the new pane
// joins that split next to the target. Otherwise the target's slot is replaced
// by a new two-child split. Returns the new pane's identity.
func (t *Tree) SplitInsert(id PaneID, edge Edge, dragDelta float64) (PaneID, error) {
	target, ok := t.panes[id]
	if !ok {
		return 0, fmt.Errorf("split pane %d: %w", id, ErrPaneNotFound)
	}
	if !edge.valid() {
		return 0, fmt.Errorf("split pane %d from %s: %w", id, edge, ErrInvalidEdge)
	}

	delta := t.clampDelta(dragDelta)
	axis := edge.Axis()
	created := t.newPane()

	parent := t.nodes[target].parent
	grouped := parent != noRef &&
		t.nodes[parent].axis == axis &&
		t.insertSibling(parent, target, created, edge.Leading(), delta)
	if !grouped {
		t.nest(target, created, axis, edge.Leading(), delta)
	}

	t.notify()
	return t.nodes[created].pane, nil
}

func (t *Tree) clampDelta(d float64) float64 {
	if math.IsNaN(d) {
		return t.minFraction
	}
	return clamp(d, t.minFraction, 1-t.minFraction)
}

// insertSibling adds created to parent next to target, taking its share out
// of the target's fraction. It reports false, leaving the tree untouched, when
// the target is too small to give up a floor-sized share.
func (t *Tree) insertSibling(parent, target, created nodeRef, leading bool, delta float64) bool {
	idx := t.childIndex(parent, target)
	current := t.nodes[parent].children[idx].fraction
	if current < 2*t.minFraction {
		return false
	}

	share := clamp(delta*current, t.minFraction, current-t.minFraction)
	if share == current-t.minFraction {
		t.nodes[parent].children[idx].fraction = t.minFraction
	} else {
		t.nodes[parent].children[idx].fraction = current - share
	}

	at := idx + 1
	if leading {
		at = idx
	}
	children := t.nodes[parent].children
	children = append(children, child{})
	copy(children[at+1:], children[at:])
	children[at] = child{ref: created, fraction: share}
	t.nodes[parent].children = children
	t.nodes[created].parent = parent

	t.renormalize(parent)
	return true
}

// nest replaces target's slot with a new split holding target and created.
func (t *Tree) nest(target, created nodeRef, axis Axis, leading bool, delta float64) {
	split := t.newSplit(axis)
	t.replaceChild(target, split)

	rest := 1 - delta
	if delta == 1-t.minFraction {
		rest = t.minFraction
	}
	first, second := child{ref: target, fraction: rest}, child{ref: created, fraction: delta}
	if leading {
		first, second = second, first
	}
	t.nodes[split].children = []child{first, second}
	t.nodes[target].parent = split
	t.nodes[created].parent = split
}

// renormalize makes the split's fractions sum to exactly 1 by scaling, then
// absorbing the rounding residue into the largest child.
func (t *Tree) renormalize(ref nodeRef) {
	children := t.nodes[ref].children
	sum := 0.0
	largest := 0
	for i, c := range children {
		sum += c.fraction
		if c.fraction > children[largest].fraction {
			largest = i
		}
	}
	if sum <= 0 {
		return
	}
	if math.Abs(sum-1) > Epsilon {
		for i := range children {
			children[i].fraction /= sum
		}
	}
	rest := 0.0
	for i, c := range children {
		if i != largest {
			rest += c.fraction
		}
	}
	children[largest].fraction = 1 - rest
}
