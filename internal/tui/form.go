package tui

import (
	"slices"
	"strings"

	"clawdbot-dashboard/internal/dashboard"
	"clawdbot-dashboard/internal/domain"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type field int

const (
	fieldTitle field = iota
	fieldDescription
	fieldStatus
	fieldPriority
	fieldCount
)

// form is the editable copy of the dashboard draft shown in the modal.
type form struct {
	modal       dashboard.Modal
	title       textinput.Model
	description textarea.Model
	status      int
	priority    int
	focus       field
}

// newForm builds the form with the title focused; the returned command
// starts the cursor blink.
func newForm(m dashboard.Modal) (*form, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = "Enter task title"
	ti.CharLimit = 200
	ti.Width = 48
	ti.SetValue(m.Draft.Title)

	ta := textarea.New()
	ta.Placeholder = "Enter task description"
	ta.ShowLineNumbers = false
	ta.SetWidth(50)
	ta.SetHeight(3)
	ta.SetValue(m.Draft.Description)

	f := &form{
		modal:       m,
		title:       ti,
		description: ta,
		status:      max(slices.Index(domain.AllStatuses(), m.Draft.Status), 0),
		priority:    max(slices.Index(domain.AllPriorities(), m.Draft.Priority), 0),
	}
	cmd := f.setFocus(fieldTitle)

	return f, cmd
}

func (f *form) draft() domain.Draft {
	return domain.Draft{
		Title:       f.title.Value(),
		Description: f.description.Value(),
		Status:      domain.AllStatuses()[f.status],
		Priority:    domain.AllPriorities()[f.priority],
	}
}

func (f *form) setFocus(fl field) tea.Cmd {
	f.focus = (fl + fieldCount) % fieldCount
	f.title.Blur()
	f.description.Blur()

	switch f.focus {
	case fieldTitle:
		return f.title.Focus()
	case fieldDescription:
		return f.description.Focus()
	}
	return nil
}

// cycle moves the focused selector by delta; it reports false when the
// focused field is not a selector.
func (f *form) cycle(delta int) bool {
	switch f.focus {
	case fieldStatus:
		n := len(domain.AllStatuses())
		f.status = (f.status + delta + n) % n
	case fieldPriority:
		n := len(domain.AllPriorities())
		f.priority = (f.priority + delta + n) % n
	default:
		return false
	}
	return true
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	}
	return cmd
}

func (f *form) view(s styles) string {
	var b strings.Builder

	b.WriteString(s.Title.Render(f.modal.Title()))
	b.WriteString("\n")
	b.WriteString(s.Subtitle.Render(f.modal.Description()))
	b.WriteString("\n")

	b.WriteString(f.label(s, fieldTitle, "Title"))
	b.WriteString("\n")
	b.WriteString(f.title.View())
	b.WriteString("\n")

	b.WriteString(f.label(s, fieldDescription, "Description"))
	b.WriteString("\n")
	b.WriteString(f.description.View())
	b.WriteString("\n")

	b.WriteString(f.label(s, fieldStatus, "Status"))
	b.WriteString("\n")
	b.WriteString("‹ " + s.statusBadge(domain.AllStatuses()[f.status]) + " ›")
	b.WriteString("\n")

	b.WriteString(f.label(s, fieldPriority, "Priority"))
	b.WriteString("\n")
	b.WriteString("‹ " + s.priorityBadge(domain.AllPriorities()[f.priority]) + " ›")
	b.WriteString("\n\n")

	b.WriteString(s.Muted.Render("esc Cancel  •  ctrl+s " + f.modal.SubmitLabel()))

	return s.Modal.Render(b.String())
}

func (f *form) label(s styles, fl field, text string) string {
	if f.focus == fl {
		return s.Focused.Render("› " + text)
	}
	return s.Label.Render("  " + text)
}
