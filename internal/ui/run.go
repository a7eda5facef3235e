package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"clipkit/internal/pipeline"
)

// Run launches the interactive TUI. It returns when the user quits; an
// in-flight worker at that point is abandoned (its process finishes on
// its own but nobody observes the outcome).
func Run(ctx context.Context, tools pipeline.Tools, logger *log.Logger) error {
	m := NewModel(ctx, tools, logger)
	prog := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
