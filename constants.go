package main

type Mode int

const (
	ModeStartup Mode = iota
	ModeNormal
	ModeFileInput
	ModeConfirm
	ModeComplete
)

type FileOperation int

const (
	FileOpSavePNG FileOperation = iota
	FileOpSaveTXT
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmRescatter
)

// Piece geometry, in outline units. tabRadius must stay well under half of
// cellUnit or adjacent notch arcs would self-intersect.
const (
	cellUnit  = 100.0
	tabRadius = 22.0
)

// Scatter tuning.
const (
	scatterAttempts  = 600
	separationFactor = 1.1
	maxTiltDegrees   = 14.0
	defaultPieceSize = 96.0
	defaultPadding   = 48.0
)

// Rough pixel metrics of a terminal cell, used to turn the TUI window size
// into a stage for the scatter solver.
const (
	charWidth  = 8.0
	charHeight = 16.0
)

// PNG export metrics.
const (
	exportStageW = 1600
	exportStageH = 1200
	exportCellPx = 150.0
)

const defaultGridSize = 4
