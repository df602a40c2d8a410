package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/subdivide/internal/domain/partition"
)

// fivePanes reproduces the reference session: split the first pane from the
// left, the right, the top middle, then its lower half from the left.
func fivePanes(t *testing.T) *partition.Tree {
	t.Helper()
	tree := partition.New()

	steps := []struct {
		edge  partition.Edge
		delta float64
	}{
		{partition.EdgeLeft, 0.2},
		{partition.EdgeRight, 0.25},
		{partition.EdgeTop, 0.5},
		{partition.EdgeLeft, 0.5},
	}
	for i, step := range steps {
		created, err := tree.SplitInsert(1, step.edge, step.delta)
		require.NoError(t, err)
		require.Equal(t, partition.PaneID(i+2), created)
	}
	require.NoError(t, tree.Validate())
	return tree
}

func TestComputeAbsoluteLayout_ReferenceSession(t *testing.T) {
	tree := fivePanes(t)

	layout := tree.ComputeAbsoluteLayout()

	panes := layout.Panes()
	require.Len(t, panes, 5)
	expectedPanes := []partition.Rect{
		{X: 50, Y: 50, W: 30, H: 50},
		{X: 0, Y: 0, W: 20, H: 100},
		{X: 80, Y: 0, W: 20, H: 100},
		{X: 20, Y: 0, W: 60, H: 50},
		{X: 20, Y: 50, W: 30, H: 50},
	}
	for i, expected := range expectedPanes {
		assert.Equal(t, partition.PaneID(i+1), panes[i].Pane, "panes are ordered by id")
		assertRect(t, expected, panes[i].Rect, "pane %d", i+1)
	}

	dividers := layout.Dividers()
	require.Len(t, dividers, 4)
	expectedDividers := []partition.Rect{
		{X: 20, Y: 0, W: 0, H: 100},
		{X: 80, Y: 0, W: 0, H: 100},
		{X: 20, Y: 50, W: 60, H: 0},
		{X: 50, Y: 50, W: 0, H: 50},
	}
	for i, expected := range expectedDividers {
		assertRect(t, expected, dividers[i].Rect, "divider %d", i)
	}
	assert.Equal(t, partition.AxisRow, dividers[0].Axis)
	assert.Equal(t, partition.AxisColumn, dividers[2].Axis)
	assert.Equal(t, 1, dividers[1].Index)
	assert.Equal(t, dividers[0].Split, dividers[1].Split)
}

func TestComputeAbsoluteLayout_ReferenceSessionAfterDrag(t *testing.T) {
	tree := fivePanes(t)

	require.NoError(t, tree.ResizeDivider(rootSplit(t, tree), 0, 0.1))

	layout := tree.ComputeAbsoluteLayout()
	expected := map[partition.PaneID]partition.Rect{
		1: {X: 45, Y: 50, W: 35, H: 50},
		2: {X: 0, Y: 0, W: 10, H: 100},
		3: {X: 80, Y: 0, W: 20, H: 100},
		4: {X: 10, Y: 0, W: 70, H: 50},
		5: {X: 10, Y: 50, W: 35, H: 50},
	}
	for id, rect := range expected {
		entry, ok := layout.Pane(id)
		require.True(t, ok)
		assertRect(t, rect, entry.Rect, "pane %d", id)
	}

	dividers := layout.Dividers()
	require.Len(t, dividers, 4)
	assertRect(t, partition.Rect{X: 10, Y: 0, W: 0, H: 100}, dividers[0].Rect)
	assertRect(t, partition.Rect{X: 80, Y: 0, W: 0, H: 100}, dividers[1].Rect)
	assertRect(t, partition.Rect{X: 10, Y: 50, W: 70, H: 0}, dividers[2].Rect)
	assertRect(t, partition.Rect{X: 45, Y: 50, W: 0, H: 50}, dividers[3].Rect)
}

func TestComputeAbsoluteLayout_DividerBoundsAreOwningSplit(t *testing.T) {
	tree := fivePanes(t)

	dividers := tree.ComputeAbsoluteLayout().Dividers()

	assertRect(t, partition.Canvas(), dividers[0].Bounds)
	assertRect(t, partition.Rect{X: 20, Y: 0, W: 60, H: 100}, dividers[2].Bounds)
	assertRect(t, partition.Rect{X: 20, Y: 50, W: 60, H: 50}, dividers[3].Bounds)
}

func TestComputeAbsoluteLayout_PanesTileCanvas(t *testing.T) {
	tree := fivePanes(t)

	area := 0.0
	for _, entry := range tree.ComputeAbsoluteLayout().Panes() {
		area += entry.Rect.W * entry.Rect.H
	}

	assert.InDelta(t, partition.CanvasSize*partition.CanvasSize, area, 1e-6)
}

func TestComputeAbsoluteLayout_DoesNotMutate(t *testing.T) {
	tree := fivePanes(t)
	dump := tree.String()

	first := tree.ComputeAbsoluteLayout()
	second := tree.ComputeAbsoluteLayout()

	assert.Equal(t, first, second)
	assert.Equal(t, dump, tree.String())
}

func TestEntry_Key(t *testing.T) {
	tree := fivePanes(t)
	layout := tree.ComputeAbsoluteLayout()

	keys := make(map[string]bool, len(layout))
	for _, entry := range layout {
		keys[entry.Key()] = true
	}

	assert.Len(t, keys, len(layout), "keys must be unique")
	assert.True(t, keys["pane:1"])
	assert.True(t, keys["divider:1/1"])
}
