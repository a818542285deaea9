package memory

import (
	"clawdbot-dashboard/internal/domain"
	"clawdbot-dashboard/internal/store"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

var (
	ErrNotInitialized = errors.New("task store not initialized")
	ErrNotFound       = store.ErrNotFound
)

var _ store.TaskStore = (*TaskStore)(nil)

// TaskStore keeps tasks in insertion order. Nothing is written anywhere;
// the collection lives as long as the store value.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []domain.Task
	index map[string]int
}

func New() *TaskStore {
	return &TaskStore{
		index: make(map[string]int),
	}
}

// NewSeeded returns a store holding the sample tasks.
func NewSeeded() *TaskStore {
	ts := New()
	ts.Seed()

	return ts
}

// Seed replaces the collection with the sample tasks.
func (ts *TaskStore) Seed() {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.tasks = domain.SeedTasks()
	ts.reindex()
}

func (ts *TaskStore) Create(task domain.Task) (domain.Task, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.index == nil {
		return domain.Task{}, ErrNotInitialized
	}
	if _, ok := ts.index[task.ID]; ok {
		return domain.Task{}, fmt.Errorf("%w: %s", store.ErrDuplicateID, task.ID)
	}

	// creation time is fixed here and never touched again
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}

	ts.index[task.ID] = len(ts.tasks)
	ts.tasks = append(ts.tasks, task)

	return task, nil
}

func (ts *TaskStore) Get(id string) (domain.Task, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	i, ok := ts.index[id]
	if !ok {
		return domain.Task{}, false
	}

	// task is non-pointer value
	return ts.tasks[i], true
}

func (ts *TaskStore) List() ([]domain.Task, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	if ts.index == nil {
		return nil, ErrNotInitialized
	}

	return slices.Clone(ts.tasks), nil
}

// Update overwrites title, description, status and priority of the task
// with the given id.
func (ts *TaskStore) Update(id string, d domain.Draft) (domain.Task, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	i, ok := ts.index[id]
	if !ok {
		return domain.Task{}, ErrNotFound
	}

	ts.tasks[i] = d.Apply(ts.tasks[i])

	return ts.tasks[i], nil
}

// Delete removes the task with the given id and reports whether one was
// removed. Unknown ids are ignored.
func (ts *TaskStore) Delete(id string) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	i, ok := ts.index[id]
	if !ok {
		return false
	}

	ts.tasks = slices.Delete(ts.tasks, i, i+1)
	ts.reindex()

	return true
}

// Stats counts the tasks per status under the read lock.
func (ts *TaskStore) Stats() domain.Stats {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	return domain.ComputeStats(ts.tasks)
}

func (ts *TaskStore) reindex() {
	ts.index = make(map[string]int, len(ts.tasks))
	for i, t := range ts.tasks {
		ts.index[t.ID] = i
	}
}
