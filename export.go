package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// exportPNG renders the whole scene to a PNG: the board with every placed
// piece in its slot, and each loose piece at its scatter offset and tilt.
// Piece shapes come from the outline builder and the source image is clipped
// through each outline via the texture tile, so tabs show the neighboring
// image content they geometrically reach into. Without a configured image
// each piece gets a flat fill instead.
func exportPNG(pz *Puzzle, entries map[string]ScatterEntry, vp Viewport, imagePath, filename string) error {
	dc := gg.NewContext(exportStageW, exportStageH)
	dc.SetColor(color.White)
	dc.Clear()

	fontData := gomono.TTF
	ttfFont, err := truetype.Parse(fontData)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    22,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	var src image.Image
	if imagePath != "" {
		img, err := gg.LoadImage(imagePath)
		if err != nil {
			return fmt.Errorf("failed to load image: %v", err)
		}
		src = img
	}

	grid := pz.Grid()
	boardW := float64(grid.Cols) * exportCellPx
	boardH := float64(grid.Rows) * exportCellPx
	boardX := (exportStageW - boardW) / 2
	boardY := (exportStageH - boardH) / 2

	// Board backdrop so empty slots read as a frame.
	dc.SetRGBA(0, 0, 0, 0.06)
	dc.DrawRectangle(boardX, boardY, boardW, boardH)
	dc.Fill()
	dc.SetRGBA(0, 0, 0, 0.35)
	dc.SetLineWidth(2)
	dc.DrawRectangle(boardX, boardY, boardW, boardH)
	dc.Stroke()

	// Scatter offsets were solved for the live viewport; map them onto the
	// export stage so the loose layout keeps its proportions.
	scatterSX := float64(exportStageW) / vp.Width
	scatterSY := float64(exportStageH) / vp.Height

	for _, piece := range pz.Pieces() {
		row, col := grid.Cell(piece.HomeSlot)
		var cx, cy, tilt float64
		if pz.Placed(piece.ID) {
			cx = boardX + (float64(col)+0.5)*exportCellPx
			cy = boardY + (float64(row)+0.5)*exportCellPx
		} else {
			entry := entries[piece.ID]
			cx = exportStageW/2 + entry.X*scatterSX
			cy = exportStageH/2 + entry.Y*scatterSY
			tilt = entry.Tilt
		}
		drawPiece(dc, pz, piece, src, cx, cy, tilt)

		dc.SetRGBA(0.15, 0.05, 0.08, 0.8)
		dc.DrawStringAnchored(piece.Label, cx, cy, 0.5, 0.5)
	}

	return dc.SavePNG(filename)
}

// drawPiece draws one piece centered at (cx, cy), rotated by tilt degrees.
func drawPiece(dc *gg.Context, pz *Puzzle, piece Piece, src image.Image, cx, cy, tilt float64) {
	grid := pz.Grid()
	outline := BuildOutline(pz.EdgesFor(piece))
	scale := exportCellPx / cellUnit

	dc.Push()
	dc.Translate(cx, cy)
	if tilt != 0 {
		dc.Rotate(gg.Radians(tilt))
	}
	dc.Scale(scale, scale)
	dc.Translate(-cellUnit/2, -cellUnit/2)
	outline.Draw(dc)

	if src != nil {
		tile := grid.MapTexture(piece.HomeSlot)
		bounds := src.Bounds()
		dc.Push()
		dc.ClipPreserve()
		dc.Translate(tile.OriginX, tile.OriginY)
		dc.Scale(tile.Width/float64(bounds.Dx()), tile.Height/float64(bounds.Dy()))
		dc.DrawImage(src, 0, 0)
		dc.Pop()
		// Pop restores the transform but not the clip mask; drop it so the
		// outline stroke and later pieces render unclipped.
		dc.ResetClip()
	} else {
		row, col := grid.Cell(piece.HomeSlot)
		if (row+col)%2 == 0 {
			dc.SetRGBA(0.96, 0.55, 0.66, 1)
		} else {
			dc.SetRGBA(0.99, 0.78, 0.84, 1)
		}
		dc.FillPreserve()
	}

	dc.SetRGBA(0.2, 0.1, 0.12, 1)
	dc.SetLineWidth(2)
	dc.Stroke()
	dc.Pop()
}

// exportBoardTXT writes a plain-text snapshot of the board, one bracketed
// cell per slot.
func exportBoardTXT(pz *Puzzle, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	grid := pz.Grid()
	for r := 0; r < grid.Rows; r++ {
		for c := 0; c < grid.Cols; c++ {
			if piece, ok := pz.PieceAt(grid.Slot(r, c)); ok {
				fmt.Fprintf(file, "[%2s]", piece.Label)
			} else {
				fmt.Fprint(file, "[ .]")
			}
		}
		fmt.Fprintln(file)
	}
	fmt.Fprintf(file, "\n%d/%d placed\n", pz.PlacedCount(), grid.PieceCount())
	return nil
}
