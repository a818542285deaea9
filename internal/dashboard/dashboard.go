package dashboard

import (
	"errors"
	"fmt"
	"sync"

	"clawdbot-dashboard/internal/domain"
	"clawdbot-dashboard/internal/notify"
	"clawdbot-dashboard/internal/service"
)

const (
	MsgCreated = "Task created successfully"
	MsgUpdated = "Task updated successfully"
	MsgDeleted = "Task deleted"
	MsgMissing = "Task no longer exists"
)

var (
	ErrServiceNil  = errors.New("task service is nil")
	ErrModalClosed = errors.New("no task form is open")
)

type TaskService interface {
	ListTasks() ([]domain.Task, error)
	GetTask(id string) (domain.Task, error)
	CreateTask(d domain.Draft) (domain.Task, error)
	UpdateTask(id string, d domain.Draft) (domain.Task, error)
	DeleteTask(id string)
	Stats() (domain.Stats, error)
}

type Dashboard struct {
	mu       sync.Mutex
	svc      TaskService
	notifier notify.Notifier
	modal    Modal
}

func New(svc TaskService, notifier notify.Notifier) (*Dashboard, error) {
	if svc == nil {
		return nil, ErrServiceNil
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}

	return &Dashboard{svc: svc, notifier: notifier}, nil
}

// List returns the tasks in insertion order.
func (d *Dashboard) List() ([]domain.Task, error) {
	return d.svc.ListTasks()
}

// Stats recomputes the counters from the current collection.
func (d *Dashboard) Stats() (domain.Stats, error) {
	return d.svc.Stats()
}

func (d *Dashboard) Modal() Modal {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.modal
}

// BeginCreate opens the form with an empty draft and no edit target.
func (d *Dashboard) BeginCreate() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.modal = Modal{Mode: ModeCreating, Draft: domain.NewDraft()}
}

// BeginEdit loads the task into the draft and opens the form. The stored
// task is not touched until Submit.
func (d *Dashboard) BeginEdit(id string) error {
	task, err := d.svc.GetTask(id)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.modal = Modal{Mode: ModeEditing, EditingID: task.ID, Draft: domain.DraftFrom(task)}

	return nil
}

func (d *Dashboard) SetDraft(draft domain.Draft) {
	d.editDraft(func(dr *domain.Draft) { *dr = draft })
}

func (d *Dashboard) SetTitle(title string) {
	d.editDraft(func(dr *domain.Draft) { dr.Title = title })
}

func (d *Dashboard) SetDescription(desc string) {
	d.editDraft(func(dr *domain.Draft) { dr.Description = desc })
}

func (d *Dashboard) SetStatus(s domain.Status) {
	d.editDraft(func(dr *domain.Draft) { dr.Status = s })
}

func (d *Dashboard) SetPriority(p domain.Priority) {
	d.editDraft(func(dr *domain.Draft) { dr.Priority = p })
}

func (d *Dashboard) editDraft(fn func(*domain.Draft)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.modal.Open() {
		return
	}
	fn(&d.modal.Draft)
}

// Submit saves the draft. An invalid draft is reported through the notifier
// and returned as a *service.ValidationError; the form stays open.
func (d *Dashboard) Submit() (domain.Task, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var (
		task domain.Task
		err  error
		msg  string
	)
	switch d.modal.Mode {
	case ModeCreating:
		task, err = d.svc.CreateTask(d.modal.Draft)
		msg = MsgCreated
	case ModeEditing:
		task, err = d.svc.UpdateTask(d.modal.EditingID, d.modal.Draft)
		msg = MsgUpdated
	case ModeClosed:
		return domain.Task{}, ErrModalClosed
	default:
		return domain.Task{}, fmt.Errorf("unknown modal mode %d", d.modal.Mode)
	}

	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			d.notifier.Notify(notify.LevelError, ve.Message)
		case errors.Is(err, service.ErrNotFound):
			// the task was deleted while its form was open
			d.modal = Modal{}
			d.notifier.Notify(notify.LevelError, MsgMissing)
		default:
			d.notifier.Notify(notify.LevelError, err.Error())
		}
		return domain.Task{}, err
	}

	d.modal = Modal{}
	d.notifier.Notify(notify.LevelSuccess, msg)

	return task, nil
}

// Cancel discards the draft and closes the form.
func (d *Dashboard) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.modal = Modal{}
}

// Delete removes the task if present. It always reports success.
func (d *Dashboard) Delete(id string) {
	d.svc.DeleteTask(id)
	d.notifier.Notify(notify.LevelSuccess, MsgDeleted)
}
