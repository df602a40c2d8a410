package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/subdivide/internal/domain/partition"
)

func TestEdge_AxisAndPlacement(t *testing.T) {
	tests := []struct {
		edge    partition.Edge
		axis    partition.Axis
		leading bool
	}{
		{partition.EdgeLeft, partition.AxisRow, true},
		{partition.EdgeRight, partition.AxisRow, false},
		{partition.EdgeTop, partition.AxisColumn, true},
		{partition.EdgeBottom, partition.AxisColumn, false},
	}

	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			assert.Equal(t, tt.axis, tt.edge.Axis())
			assert.Equal(t, tt.leading, tt.edge.Leading())
		})
	}
}

func TestWithMinFraction(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"custom", 0.1, 0.1},
		{"zero_ignored", 0, partition.DefaultMinFraction},
		{"half_ignored", 0.5, partition.DefaultMinFraction},
		{"negative_ignored", -0.2, partition.DefaultMinFraction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := partition.New(partition.WithMinFraction(tt.input))
			assert.Equal(t, tt.expected, tree.MinFraction())
		})
	}
}

func TestSetMinFraction_AppliesToLaterOperations(t *testing.T) {
	tree := partition.New()
	_, err := tree.SplitInsert(1, partition.EdgeLeft, 0.06)
	require.NoError(t, err)

	require.True(t, tree.SetMinFraction(0.1))
	assert.False(t, tree.SetMinFraction(0.7))

	fractions, _ := tree.Fractions(rootSplit(t, tree))
	assert.InDelta(t, 0.06, fractions[0], delta, "stored fractions are not rewritten")
	assert.NoError(t, tree.Validate())

	require.NoError(t, tree.ResizeDivider(rootSplit(t, tree), 0, 0))
	fractions, _ = tree.Fractions(rootSplit(t, tree))
	assert.InDelta(t, 0.1, fractions[0], delta)
}

func TestContent(t *testing.T) {
	tree := partition.New()
	created, err := tree.SplitInsert(1, partition.EdgeRight, 0.5)
	require.NoError(t, err)

	require.NoError(t, tree.SetContent(created, "editor"))
	content, ok := tree.Content(created)
	require.True(t, ok)
	assert.Equal(t, "editor", content)

	content, ok = tree.Content(1)
	assert.True(t, ok)
	assert.Nil(t, content)

	assert.ErrorIs(t, tree.SetContent(9, "x"), partition.ErrPaneNotFound)
	_, ok = tree.Content(9)
	assert.False(t, ok)
}

func TestString_Outline(t *testing.T) {
	tree := partition.New()
	_, err := tree.SplitInsert(1, partition.EdgeLeft, 0.25)
	require.NoError(t, err)

	expected := "row split 1 (1)\n" +
		"  pane 2 (0.25)\n" +
		"  pane 1 (0.75)\n"
	assert.Equal(t, expected, tree.String())
}

func TestQueries_UnknownIdentities(t *testing.T) {
	tree := partition.New()

	_, ok := tree.SplitOf(1)
	assert.False(t, ok, "root pane has no parent split")
	_, ok = tree.SplitOf(5)
	assert.False(t, ok)
	_, ok = tree.Fractions(1)
	assert.False(t, ok)
	_, ok = tree.SplitAxis(1)
	assert.False(t, ok)
	_, ok = tree.PaneRect(5)
	assert.False(t, ok)
	assert.Equal(t, []partition.PaneID{1}, tree.Panes())
	assert.Equal(t, 1, tree.Len())
}
