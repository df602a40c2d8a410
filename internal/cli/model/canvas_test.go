package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/subdivide/internal/cli/styles"
	"github.com/bnema/subdivide/internal/domain/partition"
)

func twoColumns(t *testing.T) *partition.Tree {
	t.Helper()
	tree := partition.New()
	_, err := tree.SplitInsert(1, partition.EdgeLeft, 0.2)
	require.NoError(t, err)
	return tree
}

func TestRasterize_PanesAndDivider(t *testing.T) {
	tree := twoColumns(t)

	grid := rasterize(tree.ComputeAbsoluteLayout(), 10, 4, true, nil, activeDivider{})

	lines := strings.Split(grid.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, " 2│1      ", lines[0])
	for _, line := range lines[1:] {
		assert.Equal(t, "  │       ", line)
	}
}

func TestRasterize_HidesLabels(t *testing.T) {
	tree := twoColumns(t)

	grid := rasterize(tree.ComputeAbsoluteLayout(), 10, 2, false, nil, activeDivider{})

	assert.Equal(t, "  │       \n  │       ", grid.String())
}

func TestRasterize_PreviewAndActiveDivider(t *testing.T) {
	tree := twoColumns(t)
	split, ok := tree.SplitOf(1)
	require.True(t, ok)
	preview := partition.Rect{X: 80, Y: 0, W: 20, H: 100}

	grid := rasterize(tree.ComputeAbsoluteLayout(), 10, 2, false, &preview, activeDivider{split: split, index: 0, ok: true})

	assert.Equal(t, "  │     ░░\n  │     ░░", grid.String())
	assert.Equal(t, cellDividerActive, grid.cells[0][2].class)
	assert.Equal(t, cellPreview, grid.cells[1][9].class)
}

func TestRasterize_JoinsCrossingDividers(t *testing.T) {
	tree := twoColumns(t)
	_, err := tree.SplitInsert(1, partition.EdgeTop, 0.5)
	require.NoError(t, err)

	grid := rasterize(tree.ComputeAbsoluteLayout(), 10, 4, false, nil, activeDivider{})

	lines := strings.Split(grid.String(), "\n")
	assert.Equal(t, "  ├───────", lines[2])
	assert.Equal(t, "  │       ", lines[1])
}

func TestRaster_RenderKeepsText(t *testing.T) {
	tree := twoColumns(t)
	grid := rasterize(tree.ComputeAbsoluteLayout(), 10, 1, true, nil, activeDivider{})

	out := grid.Render(styles.NewTheme(nil))

	assert.Contains(t, out, "2")
	assert.Contains(t, out, "│")
}

func TestToCell_Clamps(t *testing.T) {
	assert.Equal(t, 0, toCell(-5, 80))
	assert.Equal(t, 40, toCell(50, 80))
	assert.Equal(t, 80, toCell(120, 80))
}
