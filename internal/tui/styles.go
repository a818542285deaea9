package tui

import (
	"clawdbot-dashboard/internal/domain"
	"clawdbot-dashboard/internal/notify"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorYellow = lipgloss.Color("#CA8A04")
	colorBlue   = lipgloss.Color("#2563EB")
	colorGreen  = lipgloss.Color("#16A34A")
	colorRed    = lipgloss.Color("#DC2626")
	colorOrange = lipgloss.Color("#EA580C")
	colorGray   = lipgloss.Color("#6B7280")
	colorBorder = lipgloss.Color("#CBD5E1")
	colorAccent = lipgloss.Color("#7C3AED")
)

type styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	Stat     lipgloss.Style
	Muted    lipgloss.Style
	Modal    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Badge    lipgloss.Style
	Toast    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(colorGray),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1),
		Stat: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			MarginRight(1),
		Muted: lipgloss.NewStyle().Foreground(colorGray),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2).
			Width(56),
		Label:   lipgloss.NewStyle().Bold(true).MarginTop(1),
		Focused: lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginTop(1),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1).
			MarginLeft(1),
		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1),
	}
}

func statusColor(s domain.Status) lipgloss.Color {
	switch s {
	case domain.StatusPending:
		return colorYellow
	case domain.StatusInProgress:
		return colorBlue
	case domain.StatusCompleted:
		return colorGreen
	case domain.StatusFailed:
		return colorRed
	default:
		return colorGray
	}
}

func priorityColor(p domain.Priority) lipgloss.Color {
	switch p {
	case domain.PriorityLow:
		return colorGray
	case domain.PriorityMedium:
		return colorOrange
	case domain.PriorityHigh:
		return colorRed
	default:
		return colorGray
	}
}

func toastColor(l notify.Level) lipgloss.Color {
	switch l {
	case notify.LevelSuccess:
		return colorGreen
	case notify.LevelError:
		return colorRed
	default:
		return colorGray
	}
}

func (s styles) statusBadge(st domain.Status) string {
	return s.Badge.Background(statusColor(st)).Render(st.Label())
}

func (s styles) priorityBadge(p domain.Priority) string {
	return s.Badge.Background(priorityColor(p)).Render(p.Label())
}
