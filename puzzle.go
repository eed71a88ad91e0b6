package main

import "fmt"

// Piece is one puzzle piece. HomeSlot is the cell it belongs to and never
// changes; the piece's edge codes are always derived from it, never stored,
// so shape and position can't drift apart.
type Piece struct {
	ID       string
	HomeSlot int
	Label    string
}

// Puzzle is one play session: the grid plus which pieces have been placed.
// Placement is the only mutable state and AttemptPlace is its only mutator.
type Puzzle struct {
	grid   Grid
	pieces []Piece
	byID   map[string]int
	placed map[string]bool
}

// NewPuzzle builds a session with one piece per cell. Pieces are numbered
// from 1 in reading order, so piece "p7" lives in slot 6.
func NewPuzzle(grid Grid) *Puzzle {
	p := &Puzzle{
		grid:   grid,
		pieces: make([]Piece, 0, grid.PieceCount()),
		byID:   make(map[string]int, grid.PieceCount()),
		placed: make(map[string]bool, grid.PieceCount()),
	}
	for slot := 0; slot < grid.PieceCount(); slot++ {
		piece := Piece{
			ID:       fmt.Sprintf("p%d", slot+1),
			HomeSlot: slot,
			Label:    fmt.Sprintf("%d", slot+1),
		}
		p.pieces = append(p.pieces, piece)
		p.byID[piece.ID] = slot
		p.placed[piece.ID] = false
	}
	return p
}

// Grid returns the session's grid.
func (p *Puzzle) Grid() Grid {
	return p.grid
}

// Pieces returns all pieces in slot order.
func (p *Puzzle) Pieces() []Piece {
	return p.pieces
}

// PieceByID looks up a piece.
func (p *Puzzle) PieceByID(id string) (Piece, bool) {
	idx, ok := p.byID[id]
	if !ok {
		return Piece{}, false
	}
	return p.pieces[idx], true
}

// EdgesFor derives a piece's edge codes from its home cell.
func (p *Puzzle) EdgesFor(piece Piece) EdgeSet {
	row, col := p.grid.Cell(piece.HomeSlot)
	return p.grid.EdgesOf(row, col)
}

// AttemptPlace handles a user's move attempt. It places the piece and
// returns true only when the piece exists, is still unplaced, and the
// target is its home slot. Everything else is a silent no-op: a misdrop,
// not a fault. A placed piece never comes back out.
func (p *Puzzle) AttemptPlace(pieceID string, targetSlot int) bool {
	piece, ok := p.PieceByID(pieceID)
	if !ok {
		return false
	}
	if p.placed[pieceID] {
		return false
	}
	if targetSlot != piece.HomeSlot {
		return false
	}
	p.placed[pieceID] = true
	return true
}

// Placed reports whether a piece has been placed. Unknown ids are simply
// not placed.
func (p *Puzzle) Placed(pieceID string) bool {
	return p.placed[pieceID]
}

// PlacedCount returns how many pieces are home.
func (p *Puzzle) PlacedCount() int {
	n := 0
	for _, done := range p.placed {
		if done {
			n++
		}
	}
	return n
}

// Unplaced returns the pieces still in play, in slot order.
func (p *Puzzle) Unplaced() []Piece {
	var out []Piece
	for _, piece := range p.pieces {
		if !p.placed[piece.ID] {
			out = append(out, piece)
		}
	}
	return out
}

// PieceAt returns the placed piece occupying slot, if any.
func (p *Puzzle) PieceAt(slot int) (Piece, bool) {
	if !p.grid.ValidSlot(slot) {
		return Piece{}, false
	}
	piece := p.pieces[slot]
	if !p.placed[piece.ID] {
		return Piece{}, false
	}
	return piece, true
}

// IsComplete reports whether every piece is placed. It is recomputed from
// placement state on every call rather than cached.
func (p *Puzzle) IsComplete() bool {
	for _, done := range p.placed {
		if !done {
			return false
		}
	}
	return true
}
