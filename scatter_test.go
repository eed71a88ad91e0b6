package main

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScatterPieces_GenerousViewportKeepsSeparation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	entries := ScatterPieces(rng, Viewport{Width: 2400, Height: 1800}, 96, 48, 16)

	require.Len(t, entries, 16)
	minSep := 96 * separationFactor
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			dist := math.Hypot(entries[i].X-entries[j].X, entries[i].Y-entries[j].Y)
			assert.GreaterOrEqual(t, dist, minSep,
				"pieces %d and %d are too close on a stage with plenty of room", i, j)
		}
	}
}

func TestScatterPieces_EntriesStayInsidePaddedBounds(t *testing.T) {
	// A typical live stage: 800x600, 96px pieces, 48px padding, 16 pieces.
	rng := rand.New(rand.NewSource(7))
	entries := ScatterPieces(rng, Viewport{Width: 800, Height: 600}, 96, 48, 16)

	require.Len(t, entries, 16)
	halfW := 800.0/2 - 48 - 48
	halfH := 600.0/2 - 48 - 48
	for i, e := range entries {
		assert.LessOrEqual(t, math.Abs(e.X), halfW, "entry %d x offset out of bounds", i)
		assert.LessOrEqual(t, math.Abs(e.Y), halfH, "entry %d y offset out of bounds", i)
		assert.LessOrEqual(t, math.Abs(e.Tilt), float64(maxTiltDegrees), "entry %d tilt out of range", i)
	}
}

func TestScatterPieces_CrowdedViewportStillReturnsEveryPiece(t *testing.T) {
	// Far too small to separate 16 pieces by >100px; the attempt budget runs
	// out and the solver accepts overlapping spots rather than dropping any.
	rng := rand.New(rand.NewSource(3))
	entries := ScatterPieces(rng, Viewport{Width: 300, Height: 260}, 96, 48, 16)

	require.Len(t, entries, 16)
}

func TestScatterPieces_TinyViewportCollapsesToMidpoint(t *testing.T) {
	// Inset exceeds the viewport on both axes: every center collapses to the
	// stage midpoint instead of sampling an empty interval.
	rng := rand.New(rand.NewSource(5))
	entries := ScatterPieces(rng, Viewport{Width: 100, Height: 80}, 96, 48, 4)

	require.Len(t, entries, 4)
	for i, e := range entries {
		assert.Zero(t, e.X, "entry %d must sit on the collapsed x midpoint", i)
		assert.Zero(t, e.Y, "entry %d must sit on the collapsed y midpoint", i)
	}
}

func TestScatterPieces_SeededRunsReproduce(t *testing.T) {
	vp := Viewport{Width: 1200, Height: 900}
	first := ScatterPieces(rand.New(rand.NewSource(42)), vp, 96, 48, 16)
	second := ScatterPieces(rand.New(rand.NewSource(42)), vp, 96, 48, 16)
	assert.Equal(t, first, second)

	third := ScatterPieces(rand.New(rand.NewSource(43)), vp, 96, 48, 16)
	assert.NotEqual(t, first, third)
}
