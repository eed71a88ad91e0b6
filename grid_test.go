package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgesOf_BoundaryEdgesAreFlat(t *testing.T) {
	for _, grid := range []Grid{NewGrid(4, 4), NewGrid(3, 5)} {
		for r := 0; r < grid.Rows; r++ {
			for c := 0; c < grid.Cols; c++ {
				edges := grid.EdgesOf(r, c)
				if r == 0 {
					assert.Equal(t, EdgeFlat, edges.Top, "row 0 must have a flat top")
				} else {
					assert.NotEqual(t, EdgeFlat, edges.Top, "interior top must interlock")
				}
				if r == grid.Rows-1 {
					assert.Equal(t, EdgeFlat, edges.Bottom)
				} else {
					assert.NotEqual(t, EdgeFlat, edges.Bottom)
				}
				if c == 0 {
					assert.Equal(t, EdgeFlat, edges.Left)
				} else {
					assert.NotEqual(t, EdgeFlat, edges.Left)
				}
				if c == grid.Cols-1 {
					assert.Equal(t, EdgeFlat, edges.Right)
				} else {
					assert.NotEqual(t, EdgeFlat, edges.Right)
				}
			}
		}
	}
}

func TestEdgesOf_AdjacentEdgesComplement(t *testing.T) {
	grid := NewGrid(4, 4)
	for r := 0; r < grid.Rows; r++ {
		for c := 0; c < grid.Cols; c++ {
			edges := grid.EdgesOf(r, c)
			if c+1 < grid.Cols {
				right := grid.EdgesOf(r, c+1)
				assert.Equal(t, edges.Right.Complement(), right.Left,
					"shared vertical edge at (%d,%d) must pair tab with blank", r, c)
			}
			if r+1 < grid.Rows {
				below := grid.EdgesOf(r+1, c)
				assert.Equal(t, edges.Bottom.Complement(), below.Top,
					"shared horizontal edge at (%d,%d) must pair tab with blank", r, c)
			}
		}
	}
}

func TestEdgesOf_Deterministic(t *testing.T) {
	grid := NewGrid(4, 4)
	for r := 0; r < grid.Rows; r++ {
		for c := 0; c < grid.Cols; c++ {
			assert.Equal(t, grid.EdgesOf(r, c), grid.EdgesOf(r, c))
		}
	}
}

func TestSlotCellRoundTrip(t *testing.T) {
	grid := NewGrid(3, 5)
	for slot := 0; slot < grid.PieceCount(); slot++ {
		row, col := grid.Cell(slot)
		require.True(t, grid.InBounds(row, col))
		assert.Equal(t, slot, grid.Slot(row, col))
	}
	assert.True(t, grid.ValidSlot(0))
	assert.True(t, grid.ValidSlot(14))
	assert.False(t, grid.ValidSlot(15))
	assert.False(t, grid.ValidSlot(-1))
}

func TestNewGrid_ClampsDegenerateDimensions(t *testing.T) {
	grid := NewGrid(0, -3)
	assert.Equal(t, 1, grid.Rows)
	assert.Equal(t, 1, grid.Cols)
	assert.Equal(t, 1, grid.PieceCount())
}

func TestEdgeComplement(t *testing.T) {
	assert.Equal(t, EdgeBlank, EdgeTab.Complement())
	assert.Equal(t, EdgeTab, EdgeBlank.Complement())
	assert.Equal(t, EdgeFlat, EdgeFlat.Complement())
}
