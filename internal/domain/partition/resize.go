package partition

import (
	"fmt"
	"math"
)

// ResizeDivider moves divider index of a split (the boundary between children
// index and index+1) to offset, expressed as a fraction of the split's own
// length. Only the two adjacent fractions change and their sum is conserved;
// the boundary is clamped so neither drops below MinFraction. Descendants keep
// their relative fractions.
func (t *Tree) ResizeDivider(id SplitID, index int, offset float64) error {
	ref, ok := t.splits[id]
	if !ok {
		return fmt.Errorf("resize split %d: %w", id, ErrSplitNotFound)
	}
	children := t.nodes[ref].children
	if index < 0 || index >= len(children)-1 {
		return fmt.Errorf("resize split %d divider %d of %d: %w", id, index, len(children)-1, ErrDividerOutOfRange)
	}

	before := 0.0
	for _, c := range children[:index] {
		before += c.fraction
	}
	pair := children[index].fraction + children[index+1].fraction

	lo, hi := t.minFraction, pair-t.minFraction
	if lo > hi {
		lo, hi = pair/2, pair/2
	}
	if math.IsNaN(offset) {
		t.notify()
		return nil
	}

	// A side pinned at the floor gets MinFraction itself, not a difference.
	switch first := offset - before; {
	case first <= lo && lo < hi:
		children[index].fraction = lo
		children[index+1].fraction = pair - lo
	case first >= hi && lo < hi:
		children[index].fraction = pair - t.minFraction
		children[index+1].fraction = t.minFraction
	default:
		first = clamp(first, lo, hi)
		children[index].fraction = first
		children[index+1].fraction = pair - first
	}

	t.notify()
	return nil
}
