package main

import (
	"fmt"
	"strings"
)

// Edge describes one side of a puzzle piece.
type Edge int

const (
	EdgeFlat Edge = iota // grid boundary, straight cut
	EdgeTab              // protruding interlock
	EdgeBlank            // recessed interlock
)

func (e Edge) String() string {
	switch e {
	case EdgeFlat:
		return "flat"
	case EdgeTab:
		return "tab"
	case EdgeBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// Complement returns the edge code that interlocks with e.
// Flat edges only meet the outside world, so they complement themselves.
func (e Edge) Complement() Edge {
	switch e {
	case EdgeTab:
		return EdgeBlank
	case EdgeBlank:
		return EdgeTab
	default:
		return EdgeFlat
	}
}

// EdgeSet holds the four edge codes of a single piece, named from the
// piece's own point of view.
type EdgeSet struct {
	Top    Edge
	Right  Edge
	Bottom Edge
	Left   Edge
}

// Grid is the fixed rows x cols layout of the puzzle. It is immutable;
// everything about a piece's shape derives from its cell coordinates.
type Grid struct {
	Rows int
	Cols int
}

// NewGrid clamps degenerate dimensions to 1 so a Grid is always usable.
func NewGrid(rows, cols int) Grid {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return Grid{Rows: rows, Cols: cols}
}

// PieceCount returns the number of cells (and therefore pieces).
func (g Grid) PieceCount() int {
	return g.Rows * g.Cols
}

// Slot returns the linear index of a cell.
func (g Grid) Slot(row, col int) int {
	return row*g.Cols + col
}

// Cell is the inverse of Slot.
func (g Grid) Cell(slot int) (row, col int) {
	return slot / g.Cols, slot % g.Cols
}

// InBounds reports whether (row, col) names a cell of the grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// ValidSlot reports whether slot names a cell of the grid.
func (g Grid) ValidSlot(slot int) bool {
	return slot >= 0 && slot < g.PieceCount()
}

// EdgesOf returns the edge codes for the cell at (row, col).
//
// Interior edges follow a checkerboard: cells with even row+col parity carry
// tabs on every interior edge, odd-parity cells carry blanks. Any two
// neighbors have opposite parity, so every shared edge pairs exactly one tab
// with one blank. Boundary edges are forced flat. The function is closed-form
// so the same cell always cuts the same shape, no matter how often the board
// is rebuilt.
func (g Grid) EdgesOf(row, col int) EdgeSet {
	interior := EdgeBlank
	if (row+col)%2 == 0 {
		interior = EdgeTab
	}

	edges := EdgeSet{Top: interior, Right: interior, Bottom: interior, Left: interior}
	if row == 0 {
		edges.Top = EdgeFlat
	}
	if row == g.Rows-1 {
		edges.Bottom = EdgeFlat
	}
	if col == 0 {
		edges.Left = EdgeFlat
	}
	if col == g.Cols-1 {
		edges.Right = EdgeFlat
	}
	return edges
}

// String returns a human-readable sketch of the edge layout, one cell per
// line, for debugging.
func (g Grid) String() string {
	var s strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			e := g.EdgesOf(r, c)
			fmt.Fprintf(&s, "(%d,%d) t:%s r:%s b:%s l:%s\n", r, c, e.Top, e.Right, e.Bottom, e.Left)
		}
	}
	return s.String()
}
