package partition

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultMinFraction is the smallest share a child may hold in its split.
	DefaultMinFraction = 0.05

	// Epsilon is the tolerance used when comparing fraction sums.
	Epsilon = 1e-9
)

var (
	ErrPaneNotFound      = errors.New("pane not found")
	ErrSplitNotFound     = errors.New("split not found")
	ErrDividerOutOfRange = errors.New("divider index out of range")
	ErrInvalidEdge       = errors.New("invalid edge")
	ErrLastPane          = errors.New("cannot remove the last pane")
	ErrInvariant         = errors.New("partition invariant violated")
)

// PaneID is the identity token of a pane. Tokens start at 1, are assigned
// monotonically and are never reused.
type PaneID uint64

// SplitID identifies a split container.
type SplitID uint64

// NodeKind discriminates the two node variants.
type NodeKind uint8

const (
	KindPane NodeKind = iota
	KindSplit
)

func (k NodeKind) String() string {
	if k == KindSplit {
		return "split"
	}
	return "pane"
}

// nodeRef addresses a node in the arena. Refs are never reused, so a ref held
// across a restructuring still points at the same node or at a dead slot.
type nodeRef int32

const noRef nodeRef = -1

type child struct {
	ref      nodeRef
	fraction float64
}

// node is a tagged union over the pane and split variants.
type node struct {
	kind   NodeKind
	parent nodeRef
	alive  bool

	// Pane variant
	pane    PaneID
	content any

	// Split variant
	split    SplitID
	axis     Axis
	children []child
}

// Tree is the partition tree. It is not safe for concurrent use; the owning
// goroutine delivers every pointer event and reads every layout.
type Tree struct {
	nodes  []node
	root   nodeRef
	panes  map[PaneID]nodeRef
	splits map[SplitID]nodeRef

	nextPane  PaneID
	nextSplit SplitID

	minFraction float64
	lowestFloor float64

	observers    []observerEntry
	nextObserver int
}

// Option configures a Tree.
type Option func(*Tree)

// WithMinFraction sets the minimum fraction. Values outside (0, 0.5) are
// ignored.
func WithMinFraction(f float64) Option {
	return func(t *Tree) {
		if validMinFraction(f) {
			t.minFraction = f
			t.lowestFloor = f
		}
	}
}

// WithObserver subscribes an observer from construction.
func WithObserver(o Observer) Option {
	return func(t *Tree) {
		t.Subscribe(o)
	}
}

// New creates a tree holding a single root pane with PaneID 1.
func New(opts ...Option) *Tree {
	t := &Tree{
		root:        noRef,
		panes:       make(map[PaneID]nodeRef),
		splits:      make(map[SplitID]nodeRef),
		minFraction: DefaultMinFraction,
		lowestFloor: DefaultMinFraction,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.root = t.newPane()
	return t
}

func validMinFraction(f float64) bool {
	return f > 0 && f < 0.5 && !math.IsNaN(f)
}

// MinFraction returns the floor applied by mutations.
func (t *Tree) MinFraction() float64 {
	return t.minFraction
}

// SetMinFraction changes the floor for subsequent mutations. Stored fractions
// are left as they are.
func (t *Tree) SetMinFraction(f float64) bool {
	if !validMinFraction(f) {
		return false
	}
	t.minFraction = f
	if f < t.lowestFloor {
		t.lowestFloor = f
	}
	return true
}

func (t *Tree) newPane() nodeRef {
	t.nextPane++
	ref := nodeRef(len(t.nodes))
	t.nodes = append(t.nodes, node{
		kind:   KindPane,
		parent: noRef,
		alive:  true,
		pane:   t.nextPane,
	})
	t.panes[t.nextPane] = ref
	return ref
}

func (t *Tree) newSplit(axis Axis) nodeRef {
	t.nextSplit++
	ref := nodeRef(len(t.nodes))
	t.nodes = append(t.nodes, node{
		kind:   KindSplit,
		parent: noRef,
		alive:  true,
		split:  t.nextSplit,
		axis:   axis,
	})
	t.splits[t.nextSplit] = ref
	return ref
}

func (t *Tree) release(ref nodeRef) {
	n := &t.nodes[ref]
	switch n.kind {
	case KindPane:
		delete(t.panes, n.pane)
	case KindSplit:
		delete(t.splits, n.split)
	}
	n.alive = false
	n.parent = noRef
	n.content = nil
	n.children = nil
}

// childIndex returns the position of ref among parent's children.
func (t *Tree) childIndex(parent, ref nodeRef) int {
	for i, c := range t.nodes[parent].children {
		if c.ref == ref {
			return i
		}
	}
	return -1
}

// replaceChild swaps old for replacement in old's parent slot, keeping the
// slot's fraction. A parentless old means replacement becomes the root.
func (t *Tree) replaceChild(old, replacement nodeRef) {
	parent := t.nodes[old].parent
	t.nodes[replacement].parent = parent
	if parent == noRef {
		t.root = replacement
		return
	}
	idx := t.childIndex(parent, old)
	t.nodes[parent].children[idx].ref = replacement
}

// Len returns the number of panes.
func (t *Tree) Len() int {
	return len(t.panes)
}

// Has reports whether the pane exists.
func (t *Tree) Has(id PaneID) bool {
	_, ok := t.panes[id]
	return ok
}

// Root returns the kind of the root node and its identity (a PaneID or a
// SplitID depending on kind).
func (t *Tree) Root() (NodeKind, uint64) {
	n := t.nodes[t.root]
	if n.kind == KindSplit {
		return KindSplit, uint64(n.split)
	}
	return KindPane, uint64(n.pane)
}

// Panes returns every pane identity in ascending order.
func (t *Tree) Panes() []PaneID {
	ids := make([]PaneID, 0, len(t.panes))
	for _, entry := range t.ComputeAbsoluteLayout() {
		if entry.Kind == EntryPane {
			ids = append(ids, entry.Pane)
		}
	}
	return ids
}

// SetContent attaches an opaque content reference to a pane.
func (t *Tree) SetContent(id PaneID, content any) error {
	ref, ok := t.panes[id]
	if !ok {
		return fmt.Errorf("set content of pane %d: %w", id, ErrPaneNotFound)
	}
	t.nodes[ref].content = content
	return nil
}

// Content returns the content reference attached to a pane.
func (t *Tree) Content(id PaneID) (any, bool) {
	ref, ok := t.panes[id]
	if !ok {
		return nil, false
	}
	return t.nodes[ref].content, true
}

// SplitOf returns the split directly containing the pane. The root pane has
// no parent split.
func (t *Tree) SplitOf(id PaneID) (SplitID, bool) {
	ref, ok := t.panes[id]
	if !ok {
		return 0, false
	}
	parent := t.nodes[ref].parent
	if parent == noRef {
		return 0, false
	}
	return t.nodes[parent].split, true
}

// Fractions returns a copy of the split's child fractions in axis order.
func (t *Tree) Fractions(id SplitID) ([]float64, bool) {
	ref, ok := t.splits[id]
	if !ok {
		return nil, false
	}
	children := t.nodes[ref].children
	out := make([]float64, len(children))
	for i, c := range children {
		out[i] = c.fraction
	}
	return out, true
}

// SplitAxis returns the axis of a split.
func (t *Tree) SplitAxis(id SplitID) (Axis, bool) {
	ref, ok := t.splits[id]
	if !ok {
		return 0, false
	}
	return t.nodes[ref].axis, true
}

// PaneRect returns the absolute rectangle of a pane.
func (t *Tree) PaneRect(id PaneID) (Rect, bool) {
	if !t.Has(id) {
		return Rect{}, false
	}
	for _, entry := range t.ComputeAbsoluteLayout() {
		if entry.Kind == EntryPane && entry.Pane == id {
			return entry.Rect, true
		}
	}
	return Rect{}, false
}

// String renders the tree as an indented outline.
func (t *Tree) String() string {
	var sb strings.Builder
	t.dump(&sb, t.root, 1, 0)
	return sb.String()
}

func (t *Tree) dump(sb *strings.Builder, ref nodeRef, fraction float64, depth int) {
	n := t.nodes[ref]
	indent := strings.Repeat("  ", depth)
	if n.kind == KindPane {
		fmt.Fprintf(sb, "%spane %d (%.4g)\n", indent, n.pane, fraction)
		return
	}
	fmt.Fprintf(sb, "%s%s split %d (%.4g)\n", indent, n.axis, n.split, fraction)
	for _, c := range n.children {
		t.dump(sb, c.ref, c.fraction, depth+1)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
