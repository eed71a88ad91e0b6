package main

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	p := tea.NewProgram(
		initialModel(),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func initialModel() model {
	config := loadConfig()
	grid := NewGrid(config.Rows, config.Cols)
	return model{
		mode:    ModeStartup,
		config:  config,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		puzzle:  NewPuzzle(grid),
		entries: map[string]ScatterEntry{},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Every resize replaces the whole scatter layout; stale entries for
		// placed pieces are harmless since placed pieces render in-slot.
		m.rescatter()
		m.ensureCursorInBounds()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeStartup:
			return m.updateStartup(msg)
		case ModeNormal:
			return m.updateNormal(msg)
		case ModeFileInput:
			return m.updateFileInput(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		case ModeComplete:
			return m.updateComplete(msg)
		}
	}
	return m, nil
}

func (m model) updateStartup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n", "enter":
		m.mode = ModeNormal
		m.errorMessage = ""
		m.successMessage = ""
		if len(m.entries) == 0 {
			m.rescatter()
		}
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "escape":
		m.errorMessage = ""
		m.successMessage = ""
		return m, nil
	case "h", "left", "j", "down", "k", "up", "l", "right":
		m.handleCursorMove(msg.String(), 1)
		return m, nil
	case "H", "shift+left", "J", "shift+down", "K", "shift+up", "L", "shift+right":
		m.handleCursorMove(msg.String(), 2)
		return m, nil
	case "tab":
		m.cycleTray(1)
		return m, nil
	case "shift+tab":
		m.cycleTray(-1)
		return m, nil
	case "enter", " ":
		m.attemptPlaceSelected()
		return m, nil
	case "r":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmRescatter
			return m, nil
		}
		m.rescatter()
		m.successMessage = "pieces rescattered"
		return m, nil
	case "y":
		m.copySelectedOutline()
		return m, nil
	case "S":
		m.mode = ModeFileInput
		m.fileOp = FileOpSavePNG
		m.filename = "puzzle"
		m.errorMessage = ""
		m.successMessage = ""
		return m, nil
	case "T":
		m.mode = ModeFileInput
		m.fileOp = FileOpSaveTXT
		m.filename = "puzzle"
		m.errorMessage = ""
		m.successMessage = ""
		return m, nil
	default:
		return m, nil
	}
}

func (m model) updateFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEscape:
		m.mode = m.playMode()
		m.filename = ""
		m.errorMessage = ""
		return m, nil
	case msg.Type == tea.KeyEnter:
		if strings.TrimSpace(m.filename) == "" {
			m.errorMessage = "Please enter a filename"
			return m, nil
		}
		m.runFileOp()
		m.mode = m.playMode()
		return m, nil
	case msg.Type == tea.KeyBackspace:
		if len(m.filename) > 0 {
			m.filename = m.filename[:len(m.filename)-1]
		}
		return m, nil
	default:
		keyStr := msg.String()
		if len(keyStr) == 1 {
			m.filename += keyStr
		}
		return m, nil
	}
}

func (m *model) runFileOp() {
	filename := m.filename
	switch m.fileOp {
	case FileOpSavePNG:
		if !strings.HasSuffix(strings.ToLower(filename), ".png") {
			filename += ".png"
		}
		path := m.config.GetSavePath(filename)
		if err := exportPNG(m.puzzle, m.entries, m.stageViewport(), m.config.ImagePath, path); err != nil {
			m.errorMessage = fmt.Sprintf("export failed: %v", err)
			m.successMessage = ""
			return
		}
		m.successMessage = "Saved " + path
	case FileOpSaveTXT:
		if !strings.HasSuffix(strings.ToLower(filename), ".txt") {
			filename += ".txt"
		}
		path := m.config.GetSavePath(filename)
		if err := exportBoardTXT(m.puzzle, path); err != nil {
			m.errorMessage = fmt.Sprintf("export failed: %v", err)
			m.successMessage = ""
			return
		}
		m.successMessage = "Saved " + path
	}
	m.errorMessage = ""
	m.filename = ""
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmRescatter:
			m.rescatter()
			m.successMessage = "pieces rescattered"
		}
		m.mode = m.playMode()
		return m, nil
	case "n", "N", "escape":
		m.mode = m.playMode()
		return m, nil
	default:
		return m, nil
	}
}

func (m model) updateComplete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "S":
		m.mode = ModeFileInput
		m.fileOp = FileOpSavePNG
		m.filename = "puzzle"
		return m, nil
	case "T":
		m.mode = ModeFileInput
		m.fileOp = FileOpSaveTXT
		m.filename = "puzzle"
		return m, nil
	case "q", "ctrl+c", "enter", "escape":
		return m, tea.Quit
	default:
		return m, nil
	}
}

// playMode returns the mode to fall back to after an overlay: the board is
// either still in play or finished.
func (m *model) playMode() Mode {
	if m.puzzle.IsComplete() {
		return ModeComplete
	}
	return ModeNormal
}

func (m *model) attemptPlaceSelected() {
	piece, ok := m.selectedPiece()
	if !ok {
		m.errorMessage = "no piece left to place"
		return
	}
	slot := m.puzzle.Grid().Slot(m.cursorRow, m.cursorCol)
	if m.puzzle.AttemptPlace(piece.ID, slot) {
		m.successMessage = fmt.Sprintf("piece %s placed", piece.Label)
		m.errorMessage = ""
		m.clampTray()
		if m.puzzle.IsComplete() {
			m.mode = ModeComplete
		}
		return
	}
	m.errorMessage = fmt.Sprintf("piece %s does not fit there", piece.Label)
	m.successMessage = ""
}
