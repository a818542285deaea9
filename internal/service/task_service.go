package service

import (
	"clawdbot-dashboard/internal/domain"
	"clawdbot-dashboard/internal/store"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TitleRequiredMessage is shown when a draft is submitted without a title.
const TitleRequiredMessage = "Please enter a task title"

type TaskService struct {
	store store.TaskStore
	now   func() time.Time
	newID func() string
}

type Option func(*TaskService)

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *TaskService) { s.now = now }
}

// WithIDGenerator sets the generator used for new task ids.
func WithIDGenerator(gen func() string) Option {
	return func(s *TaskService) { s.newID = gen }
}

func New(ts store.TaskStore, opts ...Option) (*TaskService, error) {
	if ts == nil {
		return nil, ErrStoreNil
	}

	s := &TaskService{
		store: ts,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Validate checks every field of the draft and returns it unchanged.
func Validate(d domain.Draft) (domain.Draft, error) {
	// fields are stored as typed; only the emptiness check trims
	if strings.TrimSpace(d.Title) == "" {
		return d, &ValidationError{Field: "title", Message: TitleRequiredMessage}
	}
	if !d.Status.Valid() {
		return d, &ValidationError{Field: "status", Message: "unknown status " + string(d.Status)}
	}
	if !d.Priority.Valid() {
		return d, &ValidationError{Field: "priority", Message: "unknown priority " + string(d.Priority)}
	}

	return d, nil
}

func (s *TaskService) CreateTask(d domain.Draft) (domain.Task, error) {
	d, err := Validate(d)
	if err != nil {
		return domain.Task{}, err
	}

	task := d.Apply(domain.Task{
		ID:        s.newID(),
		CreatedAt: s.now(),
	})

	return s.store.Create(task)
}

func (s *TaskService) GetTask(id string) (domain.Task, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Task{}, ErrInvalidID
	}

	task, ok := s.store.Get(id)
	if !ok {
		return domain.Task{}, ErrNotFound
	}
	return task, nil
}

func (s *TaskService) ListTasks() ([]domain.Task, error) {
	return s.store.List()
}

// UpdateTask overwrites the editable fields of an existing task.
func (s *TaskService) UpdateTask(id string, d domain.Draft) (domain.Task, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Task{}, ErrInvalidID
	}

	d, err := Validate(d)
	if err != nil {
		return domain.Task{}, err
	}

	task, err := s.store.Update(id, d)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrNotFound
		}
		return domain.Task{}, err
	}
	return task, nil
}

// DeleteTask removes a task. Deleting an unknown id is not an error.
func (s *TaskService) DeleteTask(id string) {
	s.store.Delete(id)
}

func (s *TaskService) Stats() (domain.Stats, error) {
	return s.store.Stats(), nil
}
