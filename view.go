package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	placedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	traySelStyle = lipgloss.NewStyle().Reverse(true)
	bannerStyle  = lipgloss.NewStyle().Bold(true).Padding(1, 4).
			Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205"))
)

func (m model) View() string {
	switch m.mode {
	case ModeStartup:
		return m.viewStartup()
	case ModeComplete:
		return m.viewComplete()
	default:
		return m.viewBoard()
	}
}

func (m model) viewStartup() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  Valentine Jigsaw"))
	b.WriteString("\n\n")
	grid := m.puzzle.Grid()
	fmt.Fprintf(&b, "  A %dx%d puzzle, %d pieces.\n\n", grid.Rows, grid.Cols, grid.PieceCount())
	b.WriteString("  'n' or Enter  start\n")
	b.WriteString("  'q'           quit\n")
	return b.String()
}

func (m model) viewBoard() string {
	var b strings.Builder
	grid := m.puzzle.Grid()

	b.WriteString(titleStyle.Render(" Valentine Jigsaw"))
	fmt.Fprintf(&b, "  %d/%d placed\n\n", m.puzzle.PlacedCount(), grid.PieceCount())

	// Board: one bracketed cell per slot, cursor highlighted.
	for r := 0; r < grid.Rows; r++ {
		b.WriteString(" ")
		for c := 0; c < grid.Cols; c++ {
			cell := "[  ]"
			if piece, ok := m.puzzle.PieceAt(grid.Slot(r, c)); ok {
				cell = placedStyle.Render(fmt.Sprintf("[%2s]", piece.Label))
			}
			if r == m.cursorRow && c == m.cursorCol {
				cell = cursorStyle.Render(fmt.Sprintf("[%2s]", m.cellLabel(r, c)))
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.viewTray())
	b.WriteString("\n")

	switch m.mode {
	case ModeFileInput:
		prompt := "Save PNG as: "
		if m.fileOp == FileOpSaveTXT {
			prompt = "Save TXT as: "
		}
		b.WriteString(" " + prompt + m.filename + "█\n")
	case ModeConfirm:
		switch m.confirmAction {
		case ConfirmQuit:
			b.WriteString(" Quit? (y/n)\n")
		case ConfirmRescatter:
			b.WriteString(" Rescatter all loose pieces? (y/n)\n")
		}
	default:
		if m.errorMessage != "" {
			b.WriteString(" " + errorStyle.Render(m.errorMessage) + "\n")
		} else if m.successMessage != "" {
			b.WriteString(" " + successStyle.Render(m.successMessage) + "\n")
		} else {
			b.WriteString("\n")
		}
	}

	b.WriteString(statusStyle.Render(" hjkl move · tab piece · enter place · r rescatter · y copy svg · S png · T txt · q quit"))
	return b.String()
}

func (m model) cellLabel(row, col int) string {
	if piece, ok := m.puzzle.PieceAt(m.puzzle.Grid().Slot(row, col)); ok {
		return piece.Label
	}
	return "  "
}

// viewTray lists the unplaced pieces with their current scatter offsets and
// tilt, selection highlighted.
func (m model) viewTray() string {
	tray := m.puzzle.Unplaced()
	if len(tray) == 0 {
		return " tray: empty\n"
	}

	var b strings.Builder
	b.WriteString(" tray: ")
	shown := 0
	for i, piece := range tray {
		if shown >= 6 && i != m.traySel {
			continue
		}
		entry := m.entries[piece.ID]
		item := fmt.Sprintf("%s(%+.0f,%+.0f %+.0f°)", piece.Label, entry.X, entry.Y, entry.Tilt)
		if i == m.traySel {
			item = traySelStyle.Render(item)
		}
		b.WriteString(item)
		b.WriteString(" ")
		shown++
	}
	if len(tray) > shown {
		fmt.Fprintf(&b, "… %d more", len(tray)-shown)
	}
	b.WriteString("\n")
	return b.String()
}

func (m model) viewComplete() string {
	var b strings.Builder
	b.WriteString("\n")
	banner := bannerStyle.Render("♥  Puzzle complete!  ♥")
	b.WriteString(banner)
	b.WriteString("\n\n")
	if m.errorMessage != "" {
		b.WriteString(" " + errorStyle.Render(m.errorMessage) + "\n")
	} else if m.successMessage != "" {
		b.WriteString(" " + successStyle.Render(m.successMessage) + "\n")
	}
	b.WriteString(statusStyle.Render(" S save png · T save txt · q quit"))
	return b.String()
}
