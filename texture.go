package main

// TextureTile tells a renderer how to place the source image under a piece
// so the piece's local 0..cellUnit space lines up with its own sub-region of
// the picture. The tile is the whole image stretched to cellUnit per grid
// cell; the origin shifts it so cell (row, col) sits under the piece. The
// tile deliberately overhangs the piece on every side so tabs that reach
// into a neighbor's cell still sample real image content. Renderers clip the
// tile to the piece outline.
type TextureTile struct {
	OriginX float64
	OriginY float64
	Width   float64
	Height  float64
}

// MapTexture returns the tile placement for the piece whose home is slot.
// Width and height scale independently, so non-square grids stay correct.
func (g Grid) MapTexture(slot int) TextureTile {
	row, col := g.Cell(slot)
	return TextureTile{
		OriginX: -float64(col) * cellUnit,
		OriginY: -float64(row) * cellUnit,
		Width:   float64(g.Cols) * cellUnit,
		Height:  float64(g.Rows) * cellUnit,
	}
}
