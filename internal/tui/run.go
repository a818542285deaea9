package tui

import (
	"clawdbot-dashboard/internal/notify"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the terminal dashboard and blocks until the user quits.
func Run(board Board, toasts *notify.Toasts, opts Options) error {
	program := tea.NewProgram(New(board, toasts, opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
