package partition_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/subdivide/internal/domain/partition"
)

// threeColumns builds the 20/60/20 row split: panes 2, 1, 3.
func threeColumns(t *testing.T) (*partition.Tree, partition.SplitID) {
	t.Helper()
	tree := partition.New()
	_, err := tree.SplitInsert(1, partition.EdgeLeft, 0.2)
	require.NoError(t, err)
	_, err = tree.SplitInsert(1, partition.EdgeRight, 0.25)
	require.NoError(t, err)
	return tree, rootSplit(t, tree)
}

func TestResizeDivider_ShiftsOnlyAdjacentChildren(t *testing.T) {
	// Arrange
	tree, split := threeColumns(t)
	third := paneRect(t, tree, 3)

	// Act
	err := tree.ResizeDivider(split, 0, 0.15)

	// Assert
	require.NoError(t, err)
	fractions, _ := tree.Fractions(split)
	assert.InDeltaSlice(t, []float64{0.15, 0.65, 0.2}, fractions, delta)
	assertRect(t, partition.Rect{X: 0, Y: 0, W: 15, H: 100}, paneRect(t, tree, 2))
	assertRect(t, partition.Rect{X: 15, Y: 0, W: 65, H: 100}, paneRect(t, tree, 1))
	assertRect(t, third, paneRect(t, tree, 3))
	assert.NoError(t, tree.Validate())
}

func TestResizeDivider_ConservesPairSum(t *testing.T) {
	offsets := []float64{-1, 0, 0.1, 0.33, 0.5, 0.79, 0.8, 1, 2, math.Inf(1), math.Inf(-1)}

	for _, offset := range offsets {
		tree, split := threeColumns(t)

		err := tree.ResizeDivider(split, 1, offset)

		require.NoError(t, err)
		fractions, _ := tree.Fractions(split)
		assert.InDelta(t, 0.2, fractions[0], delta, "offset %g touched a non-adjacent child", offset)
		assert.InDelta(t, 0.8, fractions[1]+fractions[2], delta, "offset %g", offset)
		assert.GreaterOrEqual(t, fractions[1], partition.DefaultMinFraction-delta)
		assert.GreaterOrEqual(t, fractions[2], partition.DefaultMinFraction-delta)
	}
}

func TestResizeDivider_ClampsToMinFraction(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		first  float64
		second float64
	}{
		{"past_start", 0.0, 0.05, 0.75},
		{"far_past_start", -5, 0.05, 0.75},
		{"past_end", 0.8, 0.75, 0.05},
		{"far_past_end", 7, 0.75, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, split := threeColumns(t)

			err := tree.ResizeDivider(split, 0, tt.offset)

			require.NoError(t, err)
			fractions, _ := tree.Fractions(split)
			assert.InDelta(t, tt.first, fractions[0], delta)
			assert.InDelta(t, tt.second, fractions[1], delta)
			assert.NoError(t, tree.Validate())
		})
	}
}

func TestResizeDivider_ClampIsExactAtMinimum(t *testing.T) {
	tree, split := threeColumns(t)

	require.NoError(t, tree.ResizeDivider(split, 0, -1))

	fractions, _ := tree.Fractions(split)
	assert.Equal(t, partition.DefaultMinFraction, fractions[0])
}

func TestResizeDivider_ClampIsExactAtTrailingMinimum(t *testing.T) {
	tree, split := threeColumns(t)

	require.NoError(t, tree.ResizeDivider(split, 1, 7))

	fractions, _ := tree.Fractions(split)
	assert.Equal(t, partition.DefaultMinFraction, fractions[2])
	assert.InDelta(t, 0.75, fractions[1], delta)
	assert.InDelta(t, 1.0, fractions[0]+fractions[1]+fractions[2], delta)
	assert.NoError(t, tree.Validate())
}

func TestResizeDivider_Idempotent(t *testing.T) {
	once, splitOnce := threeColumns(t)
	twice, splitTwice := threeColumns(t)

	require.NoError(t, once.ResizeDivider(splitOnce, 1, 0.42))
	require.NoError(t, twice.ResizeDivider(splitTwice, 1, 0.42))
	require.NoError(t, twice.ResizeDivider(splitTwice, 1, 0.42))

	a, _ := once.Fractions(splitOnce)
	b, _ := twice.Fractions(splitTwice)
	assert.InDeltaSlice(t, a, b, delta)
}

func TestResizeDivider_DescendantsKeepRelativeFractions(t *testing.T) {
	// Arrange: root row [2 | column [4 / 1]]
	tree := partition.New()
	_, err := tree.SplitInsert(1, partition.EdgeLeft, 0.5)
	require.NoError(t, err)
	created, err := tree.SplitInsert(1, partition.EdgeTop, 0.3)
	require.NoError(t, err)
	inner, _ := tree.SplitOf(created)
	before, _ := tree.Fractions(inner)

	// Act
	require.NoError(t, tree.ResizeDivider(rootSplit(t, tree), 0, 0.2))

	// Assert
	after, _ := tree.Fractions(inner)
	assert.Equal(t, before, after)
	assertRect(t, partition.Rect{X: 20, Y: 0, W: 80, H: 30}, paneRect(t, tree, created))
	assertRect(t, partition.Rect{X: 20, Y: 30, W: 80, H: 70}, paneRect(t, tree, 1))
}

func TestResizeDivider_NaNOffsetKeepsBoundary(t *testing.T) {
	tree, split := threeColumns(t)

	require.NoError(t, tree.ResizeDivider(split, 0, math.NaN()))

	fractions, _ := tree.Fractions(split)
	assert.InDeltaSlice(t, []float64{0.2, 0.6, 0.2}, fractions, delta)
}

func TestResizeDivider_Errors(t *testing.T) {
	tree, split := threeColumns(t)

	err := tree.ResizeDivider(split+10, 0, 0.5)
	assert.ErrorIs(t, err, partition.ErrSplitNotFound)

	err = tree.ResizeDivider(split, 2, 0.5)
	assert.ErrorIs(t, err, partition.ErrDividerOutOfRange)

	err = tree.ResizeDivider(split, -1, 0.5)
	assert.ErrorIs(t, err, partition.ErrDividerOutOfRange)

	fractions, _ := tree.Fractions(split)
	assert.InDeltaSlice(t, []float64{0.2, 0.6, 0.2}, fractions, delta)
}
