package main

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorCol -= speed
	case "l", "right", "L", "shift+right":
		m.cursorCol += speed
	case "k", "up", "K", "shift+up":
		m.cursorRow -= speed
	case "j", "down", "J", "shift+down":
		m.cursorRow += speed
	}
	m.ensureCursorInBounds()
}

func (m *model) ensureCursorInBounds() {
	grid := m.puzzle.Grid()
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
	if m.cursorRow >= grid.Rows {
		m.cursorRow = grid.Rows - 1
	}
	if m.cursorCol < 0 {
		m.cursorCol = 0
	}
	if m.cursorCol >= grid.Cols {
		m.cursorCol = grid.Cols - 1
	}
}

func (m *model) cycleTray(delta int) {
	tray := m.puzzle.Unplaced()
	if len(tray) == 0 {
		m.traySel = 0
		return
	}
	m.traySel = ((m.traySel+delta)%len(tray) + len(tray)) % len(tray)
}

func (m *model) clampTray() {
	tray := m.puzzle.Unplaced()
	if len(tray) == 0 {
		m.traySel = 0
		return
	}
	if m.traySel >= len(tray) {
		m.traySel = len(tray) - 1
	}
	if m.traySel < 0 {
		m.traySel = 0
	}
}
