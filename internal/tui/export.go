package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vergashev/hafta/internal/export"
)

// exportResultMsg reports the outcome of a workbook export back to the
// update loop.
type exportResultMsg struct {
	path string
	err  error
}

// exportCmd writes the current week to an Excel workbook in the working
// directory. It runs as a tea command so a slow disk cannot freeze the
// interface mid-keystroke.
func (m Model) exportCmd() tea.Cmd {
	doc := m.app.Tracker.Document()
	week := m.now()
	path := export.DefaultFilename(week)
	return func() tea.Msg {
		return exportResultMsg{path: path, err: export.WriteFile(doc, week, path)}
	}
}
