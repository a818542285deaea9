package tui

import (
	"fmt"
	"strings"

	"clawdbot-dashboard/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.form != nil {
		body := m.form.view(m.styles)
		if m.toast != nil {
			body = lipgloss.JoinVertical(lipgloss.Left, body, m.toastView())
		}
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.formKeys))
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
		}
		return body
	}

	sections := []string{
		m.styles.Title.Render(m.opts.Title),
		m.styles.Subtitle.Render(m.opts.Subtitle),
		"",
		m.statsView(),
		"",
	}

	switch {
	case m.loadError != nil:
		sections = append(sections, m.styles.Muted.Render("failed loading tasks: "+m.loadError.Error()))
	case len(m.tasks) == 0:
		sections = append(sections, m.styles.Muted.Render("No tasks yet. Press a to add one."))
	default:
		for i, t := range m.tasks {
			sections = append(sections, m.taskView(t, i == m.cursor))
		}
	}

	sections = append(sections, "")
	if m.toast != nil {
		sections = append(sections, m.toastView())
	}
	sections = append(sections, m.help.View(m.keys))

	return strings.Join(sections, "\n")
}

func (m Model) statsView() string {
	cards := make([]string, 0, len(domain.AllStatuses()))
	for _, s := range domain.AllStatuses() {
		label := lipgloss.NewStyle().Foreground(statusColor(s)).Render(s.Label())
		cards = append(cards, m.styles.Stat.Render(fmt.Sprintf("%s\n%d", label, m.stats.Count(s))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) taskView(t domain.Task, selected bool) string {
	head := m.styles.Title.Render(t.Title) +
		m.styles.statusBadge(t.Status) +
		m.styles.priorityBadge(t.Priority)

	lines := []string{head}
	if t.Description != "" {
		lines = append(lines, t.Description)
	}
	lines = append(lines, m.styles.Muted.Render("Created: "+t.CreatedAt.Format("1/2/2006")))

	style := m.styles.Card
	if selected {
		style = m.styles.Selected
	}
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) toastView() string {
	return m.styles.Toast.Background(toastColor(m.toast.Level)).Render(m.toast.Message)
}
