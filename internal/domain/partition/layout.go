package partition

import (
	"fmt"
	"sort"
)

// EntryKind tells a pane entry from a divider entry.
type EntryKind uint8

const (
	EntryPane EntryKind = iota
	EntryDivider
)

func (k EntryKind) String() string {
	if k == EntryDivider {
		return "divider"
	}
	return "pane"
}

// Entry is one rectangle of the absolute layout.
type Entry struct {
	Kind EntryKind
	Rect Rect

	// Pane entries
	Pane PaneID

	// Divider entries: the owning split, the divider index (between children
	// Index and Index+1), the split's axis and its rectangle.
	Split  SplitID
	Index  int
	Axis   Axis
	Bounds Rect
}

// Key returns a stable key for keyed rendering.
func (e Entry) Key() string {
	if e.Kind == EntryDivider {
		return fmt.Sprintf("divider:%d/%d", e.Split, e.Index)
	}
	return fmt.Sprintf("pane:%d", e.Pane)
}

// Layout is the flat absolute geometry of a tree: panes in ascending PaneID
// order, then dividers in pre-order.
type Layout []Entry

// Panes returns the pane entries.
func (l Layout) Panes() []Entry {
	out := make([]Entry, 0, len(l))
	for _, e := range l {
		if e.Kind == EntryPane {
			out = append(out, e)
		}
	}
	return out
}

// Dividers returns the divider entries.
func (l Layout) Dividers() []Entry {
	out := make([]Entry, 0, len(l))
	for _, e := range l {
		if e.Kind == EntryDivider {
			out = append(out, e)
		}
	}
	return out
}

// Pane looks up the entry of a pane.
func (l Layout) Pane(id PaneID) (Entry, bool) {
	for _, e := range l {
		if e.Kind == EntryPane && e.Pane == id {
			return e, true
		}
	}
	return Entry{}, false
}

// ComputeAbsoluteLayout derives every pane and divider rectangle with a single
// top-down traversal. It never mutates the tree.
func (t *Tree) ComputeAbsoluteLayout() Layout {
	var panes, dividers []Entry
	t.layoutNode(t.root, Canvas(), &panes, &dividers)

	sort.Slice(panes, func(i, j int) bool {
		return panes[i].Pane < panes[j].Pane
	})

	layout := make(Layout, 0, len(panes)+len(dividers))
	layout = append(layout, panes...)
	return append(layout, dividers...)
}

func (t *Tree) layoutNode(ref nodeRef, rect Rect, panes, dividers *[]Entry) {
	n := t.nodes[ref]
	if n.kind == KindPane {
		*panes = append(*panes, Entry{Kind: EntryPane, Pane: n.pane, Rect: rect})
		return
	}

	start := rect.Start(n.axis)
	length := rect.Length(n.axis)

	// bounds[i] is where child i begins; the last bound closes the split
	// exactly so children tile without gaps.
	bounds := make([]float64, len(n.children)+1)
	offset := 0.0
	for i, c := range n.children {
		bounds[i] = start + offset*length
		offset += c.fraction
	}
	bounds[len(n.children)] = start + length

	for i := 1; i < len(n.children); i++ {
		*dividers = append(*dividers, Entry{
			Kind:   EntryDivider,
			Rect:   rect.line(n.axis, bounds[i]),
			Split:  n.split,
			Index:  i - 1,
			Axis:   n.axis,
			Bounds: rect,
		})
	}
	for i, c := range n.children {
		t.layoutNode(c.ref, rect.slice(n.axis, bounds[i], bounds[i+1]), panes, dividers)
	}
}
