package main

import (
	"math"
	"math/rand"
)

// Viewport is the stage the host gives us to scatter pieces over. Scatter
// positions are offsets from the stage center.
type Viewport struct {
	Width  float64
	Height float64
}

// ScatterEntry is one unplaced piece's random resting spot: a pixel offset
// from the stage center and a small rotation in degrees.
type ScatterEntry struct {
	X    float64
	Y    float64
	Tilt float64
}

// ScatterPieces picks a random non-overlapping position and tilt for count
// pieces inside the viewport, inset by padding plus half the piece size on
// every side. It is greedy rejection sampling: each piece tries up to
// scatterAttempts random candidates and takes the first one at least
// pieceSize*separationFactor away from everything accepted so far.
//
// When the budget runs out the last candidate is accepted anyway — on a
// stage too crowded to fit every piece this trades the separation guarantee
// for a complete result, so the minimum distance is best effort, not an
// invariant. A viewport too small for the inset collapses that axis to its
// midpoint rather than producing an empty range.
//
// The caller owns the rng; fix its seed for reproducible layouts.
func ScatterPieces(rng *rand.Rand, vp Viewport, pieceSize, padding float64, count int) []ScatterEntry {
	halfW := vp.Width/2 - padding - pieceSize/2
	if halfW < 0 {
		halfW = 0
	}
	halfH := vp.Height/2 - padding - pieceSize/2
	if halfH < 0 {
		halfH = 0
	}
	minSep := pieceSize * separationFactor

	entries := make([]ScatterEntry, 0, count)
	for i := 0; i < count; i++ {
		var candidate ScatterEntry
		for attempt := 0; attempt < scatterAttempts; attempt++ {
			candidate = ScatterEntry{
				X:    (rng.Float64()*2 - 1) * halfW,
				Y:    (rng.Float64()*2 - 1) * halfH,
				Tilt: (rng.Float64()*2 - 1) * maxTiltDegrees,
			}
			if !tooClose(candidate, entries, minSep) {
				break
			}
		}
		entries = append(entries, candidate)
	}
	return entries
}

func tooClose(candidate ScatterEntry, entries []ScatterEntry, minSep float64) bool {
	for _, e := range entries {
		if math.Hypot(candidate.X-e.X, candidate.Y-e.Y) < minSep {
			return true
		}
	}
	return false
}
