package domain

import "time"

type Task struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Status      Status    `json:"status" yaml:"status"`
	Priority    Priority  `json:"priority" yaml:"priority"`
	CreatedAt   time.Time `json:"createdAt" yaml:"created_at"`
}

// Draft holds the editable fields of a task. ID and CreatedAt are never part
// of a draft, so applying one cannot change them.
type Draft struct {
	Title       string
	Description string
	Status      Status
	Priority    Priority
}

// NewDraft returns the empty form used when creating a task.
func NewDraft() Draft {
	return Draft{
		Status:   StatusPending,
		Priority: PriorityMedium,
	}
}

func DraftFrom(t Task) Draft {
	return Draft{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
	}
}

// Apply overwrites every editable field of t with the draft values.
func (d Draft) Apply(t Task) Task {
	t.Title = d.Title
	t.Description = d.Description
	t.Status = d.Status
	t.Priority = d.Priority

	return t
}
