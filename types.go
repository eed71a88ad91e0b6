package main

import "math/rand"

type model struct {
	width  int
	height int
	mode   Mode

	config *Config
	rng    *rand.Rand

	puzzle  *Puzzle
	entries map[string]ScatterEntry

	cursorRow int
	cursorCol int
	traySel   int

	filename      string
	fileOp        FileOperation
	confirmAction ConfirmAction

	errorMessage   string
	successMessage string
}
