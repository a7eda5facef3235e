package ui

import (
	"fmt"
	"strings"

	"clipkit/internal/util/format"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")
	b.WriteString(m.viewFields())
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.viewLogs())
	b.WriteString(m.styles.Help.Render("shift+tab: switch tab • enter/↓: next field • tab: complete path • ctrl+e: run • esc: quit"))
	return b.String()
}

func (m Model) viewTabs() string {
	parts := make([]string, 0, len(m.tabs)+1)
	parts = append(parts, m.styles.Title.Render("clipkit"))
	for i, t := range m.tabs {
		if i == m.active {
			parts = append(parts, m.styles.ActiveTab.Render(t.title))
		} else {
			parts = append(parts, m.styles.Tab.Render(t.title))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) viewFields() string {
	var b strings.Builder
	t := m.tabs[m.active]
	for i, f := range t.fields {
		label := m.styles.FieldLabel
		marker := "  "
		if i == t.selected {
			label = m.styles.ActiveLabel
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(label.Render(f.label))
		b.WriteString("\n  ")
		b.WriteString(f.input.View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewStatus() string {
	if m.busy {
		label := m.status
		if !m.complete {
			if len(m.logs) > 0 {
				label = m.logs[len(m.logs)-1]
			} else if label == "" {
				label = "Processing..."
			}
		}
		bar := fmt.Sprintf("%s %s", m.bar.ViewAs(m.fraction), format.Percent(m.fraction))
		if m.complete {
			return bar + "\n" + m.styles.Success.Render(label) + "\n"
		}
		return bar + "\n" + m.styles.Status.Render(truncate(label, m.width-2)) + "\n"
	}
	if m.status == "" {
		return ""
	}
	style := m.styles.Status
	if strings.HasPrefix(m.status, "Error: ") {
		style = m.styles.Error
	}
	return style.Render(truncate(m.status, m.width-2)) + "\n"
}

func (m Model) viewLogs() string {
	if len(m.logs) == 0 {
		return ""
	}
	const tail = 8
	start := 0
	if len(m.logs) > tail {
		start = len(m.logs) - tail
	}
	var b strings.Builder
	for _, line := range m.logs[start:] {
		b.WriteString(m.styles.LogLine.Render(truncate(line, m.width-2)))
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}
