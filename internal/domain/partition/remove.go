package partition

import "fmt"

// RemovePane deletes a pane. Its share goes to the preceding sibling, or the
// following one when it was first; every other sibling keeps its fraction.
// A split left with a single child is collapsed. Surviving panes keep their
// identities.
func (t *Tree) RemovePane(id PaneID) error {
	ref, ok := t.panes[id]
	if !ok {
		return fmt.Errorf("remove pane %d: %w", id, ErrPaneNotFound)
	}
	parent := t.nodes[ref].parent
	if parent == noRef {
		return fmt.Errorf("remove pane %d: %w", id, ErrLastPane)
	}

	children := t.nodes[parent].children
	idx := t.childIndex(parent, ref)
	receiver := idx - 1
	if idx == 0 {
		receiver = 1
	}
	children[receiver].fraction += children[idx].fraction
	t.nodes[parent].children = append(children[:idx], children[idx+1:]...)
	t.release(ref)

	t.collapseIfSingleton(parent)
	t.notify()
	return nil
}

// collapseIfSingleton replaces a split holding a single child by that child,
// which inherits the split's slot and fraction, and repeats upward. Returns
// how many splits were collapsed.
func (t *Tree) collapseIfSingleton(ref nodeRef) int {
	collapsed := 0
	for ref != noRef {
		n := t.nodes[ref]
		if n.kind != KindSplit || len(n.children) != 1 {
			break
		}
		only := n.children[0].ref
		parent := n.parent
		t.replaceChild(ref, only)
		t.release(ref)
		collapsed++
		ref = parent
	}
	return collapsed
}
