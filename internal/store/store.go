package store

import (
	"clawdbot-dashboard/internal/domain"
	"errors"
)

var (
	ErrNotFound    = errors.New("task not found")
	ErrDuplicateID = errors.New("task id already exists")
)

type TaskStore interface {
	Create(t domain.Task) (domain.Task, error)
	Get(id string) (domain.Task, bool)
	List() ([]domain.Task, error)
	Update(id string, d domain.Draft) (domain.Task, error)
	Delete(id string) bool
	Stats() domain.Stats
}
