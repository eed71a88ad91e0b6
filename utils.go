package main

import (
	"github.com/atotto/clipboard"
)

// selectedPiece returns the tray piece under the tray cursor.
func (m *model) selectedPiece() (Piece, bool) {
	tray := m.puzzle.Unplaced()
	if len(tray) == 0 {
		return Piece{}, false
	}
	if m.traySel >= len(tray) {
		return tray[len(tray)-1], true
	}
	return tray[m.traySel], true
}

// stageViewport translates the terminal window into the pixel stage the
// scatter solver works in. Before the first WindowSizeMsg arrives a sane
// default keeps the layout usable.
func (m *model) stageViewport() Viewport {
	w := float64(m.width) * charWidth
	h := float64(m.height) * charHeight
	if w <= 0 {
		w = 800
	}
	if h <= 0 {
		h = 600
	}
	return Viewport{Width: w, Height: h}
}

// rescatter replaces every piece's scatter entry as a unit. Entries for
// already placed pieces stop mattering the moment they are placed, so
// recomputing them too keeps the bookkeeping trivial.
func (m *model) rescatter() {
	pieces := m.puzzle.Pieces()
	placements := ScatterPieces(m.rng, m.stageViewport(), defaultPieceSize, defaultPadding, len(pieces))
	entries := make(map[string]ScatterEntry, len(pieces))
	for i, piece := range pieces {
		entries[piece.ID] = placements[i]
	}
	m.entries = entries
}

// copySelectedOutline puts the selected piece's outline on the system
// clipboard as an SVG path, handy for poking at the shapes elsewhere.
func (m *model) copySelectedOutline() {
	piece, ok := m.selectedPiece()
	if !ok {
		m.errorMessage = "no piece selected"
		return
	}
	outline := BuildOutline(m.puzzle.EdgesFor(piece))
	if err := clipboard.WriteAll(outline.SVG()); err != nil {
		m.errorMessage = "clipboard unavailable: " + err.Error()
		m.successMessage = ""
		return
	}
	m.successMessage = "outline of piece " + piece.Label + " copied"
	m.errorMessage = ""
}
