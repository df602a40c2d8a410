package partition

import (
	"fmt"
	"math"
	"strings"
)

// Validate walks the tree and checks every structural invariant: splits have
// at least two children whose fractions sum to 1 and respect the floor,
// parent links are consistent, and every live pane is reachable exactly once.
// The floor checked is the lowest MinFraction the tree has run with, since
// lowering and raising it never rewrites stored fractions.
func (t *Tree) Validate() error {
	var problems []string
	seen := make(map[PaneID]bool, len(t.panes))

	if t.root == noRef || !t.nodes[t.root].alive {
		return fmt.Errorf("%w: missing root", ErrInvariant)
	}
	if t.nodes[t.root].parent != noRef {
		problems = append(problems, "root has a parent")
	}

	var walk func(ref nodeRef)
	walk = func(ref nodeRef) {
		n := t.nodes[ref]
		if !n.alive {
			problems = append(problems, fmt.Sprintf("dead node %d reachable", ref))
			return
		}
		if n.kind == KindPane {
			if seen[n.pane] {
				problems = append(problems, fmt.Sprintf("pane %d reachable twice", n.pane))
			}
			seen[n.pane] = true
			return
		}

		if len(n.children) < 2 {
			problems = append(problems, fmt.Sprintf("split %d has %d children", n.split, len(n.children)))
		}
		sum := 0.0
		for i, c := range n.children {
			sum += c.fraction
			if c.fraction < t.lowestFloor-Epsilon {
				problems = append(problems, fmt.Sprintf("split %d child %d fraction %g below floor %g",
					n.split, i, c.fraction, t.lowestFloor))
			}
			if t.nodes[c.ref].parent != ref {
				problems = append(problems, fmt.Sprintf("split %d child %d has wrong parent", n.split, i))
			}
			walk(c.ref)
		}
		if math.Abs(sum-1) > Epsilon {
			problems = append(problems, fmt.Sprintf("split %d fractions sum to %g", n.split, sum))
		}
	}
	walk(t.root)

	if len(seen) != len(t.panes) {
		problems = append(problems, fmt.Sprintf("%d panes registered, %d reachable", len(t.panes), len(seen)))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvariant, strings.Join(problems, "\n  - "))
	}
	return nil
}
