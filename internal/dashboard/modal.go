package dashboard

import "clawdbot-dashboard/internal/domain"

type Mode int

const (
	ModeClosed Mode = iota
	ModeCreating
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeClosed:
		return "closed"
	case ModeCreating:
		return "creating"
	case ModeEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// Modal is a snapshot of the form session.
type Modal struct {
	Mode      Mode
	EditingID string
	Draft     domain.Draft
}

func (m Modal) Open() bool { return m.Mode != ModeClosed }

func (m Modal) Editing() bool { return m.Mode == ModeEditing }

func (m Modal) Title() string {
	if m.Editing() {
		return "Edit Task"
	}
	return "Create New Task"
}

func (m Modal) Description() string {
	if m.Editing() {
		return "Update the task details below"
	}
	return "Create a new task for the bot"
}

func (m Modal) SubmitLabel() string {
	if m.Editing() {
		return "Update Task"
	}
	return "Create Task"
}
