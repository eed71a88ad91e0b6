package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapTexture_OriginShiftsByCell(t *testing.T) {
	grid := NewGrid(4, 4)
	for slot := 0; slot < grid.PieceCount(); slot++ {
		row, col := grid.Cell(slot)
		tile := grid.MapTexture(slot)
		assert.Equal(t, -float64(col)*cellUnit, tile.OriginX, "slot %d", slot)
		assert.Equal(t, -float64(row)*cellUnit, tile.OriginY, "slot %d", slot)
	}
}

func TestMapTexture_TileCoversTheWholeGrid(t *testing.T) {
	grid := NewGrid(4, 4)
	tile := grid.MapTexture(0)
	assert.Equal(t, 400.0, tile.Width)
	assert.Equal(t, 400.0, tile.Height)
}

func TestMapTexture_NonSquareGridScalesPerAxis(t *testing.T) {
	grid := NewGrid(2, 3)
	tile := grid.MapTexture(grid.Slot(1, 2))
	assert.Equal(t, 300.0, tile.Width)
	assert.Equal(t, 200.0, tile.Height)
	assert.Equal(t, -200.0, tile.OriginX)
	assert.Equal(t, -100.0, tile.OriginY)
}
