package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title       lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	FieldLabel  lipgloss.Style
	ActiveLabel lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
	Faint       lipgloss.Style
	Status      lipgloss.Style
	LogLine     lipgloss.Style
	Help        lipgloss.Style
}

func defaultStyles() Styles {
	base := lipgloss.NewStyle()
	return Styles{
		Title:       base.Bold(true).Foreground(lipgloss.Color("#0E0E0E")).Background(lipgloss.Color("#22D3EE")).Padding(0, 1),
		Tab:         base.Faint(true).Padding(0, 2),
		ActiveTab:   base.Bold(true).Foreground(lipgloss.Color("#22D3EE")).Padding(0, 2).Underline(true),
		FieldLabel:  base.Foreground(lipgloss.Color("#A3A3A3")),
		ActiveLabel: base.Bold(true).Foreground(lipgloss.Color("#22D3EE")),
		Success:     base.Foreground(lipgloss.Color("#22C55E")),
		Error:       base.Foreground(lipgloss.Color("#EF4444")),
		Faint:       base.Faint(true),
		Status:      base.Foreground(lipgloss.Color("#D1D5DB")),
		LogLine:     base.Faint(true),
		Help:        base.Faint(true),
	}
}
