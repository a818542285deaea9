package handlers

import (
	"clawdbot-dashboard/internal/dashboard"
	"clawdbot-dashboard/internal/domain"
	"clawdbot-dashboard/internal/notify"
	"clawdbot-dashboard/internal/service"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const pageTemplate = "dashboard.html"

// Board is the dashboard session the HTML view drives.
type Board interface {
	List() ([]domain.Task, error)
	Stats() (domain.Stats, error)
	Modal() dashboard.Modal
	BeginCreate()
	BeginEdit(id string) error
	SetDraft(d domain.Draft)
	Submit() (domain.Task, error)
	Cancel()
	Delete(id string)
}

// PageHandler renders a single dashboard session shared by every client.
type PageHandler struct {
	board    Board
	toasts   *notify.Toasts
	title    string
	subtitle string
}

func NewPage(board Board, toasts *notify.Toasts, title, subtitle string) *PageHandler {
	return &PageHandler{board: board, toasts: toasts, title: title, subtitle: subtitle}
}

type pageData struct {
	Title      string
	Subtitle   string
	Stats      domain.Stats
	Tasks      []domain.Task
	Modal      dashboard.Modal
	Statuses   []domain.Status
	Priorities []domain.Priority
	Toasts     []notify.Notification
}

// GET /
func (h *PageHandler) Index(c *gin.Context) {
	h.render(c, http.StatusOK)
}

// POST /tasks/new
func (h *PageHandler) BeginCreate(c *gin.Context) {
	h.board.BeginCreate()
	c.Redirect(http.StatusSeeOther, "/")
}

// POST /tasks/:id/edit
func (h *PageHandler) BeginEdit(c *gin.Context) {
	if err := h.board.BeginEdit(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.toasts.Notify(notify.LevelError, dashboard.MsgMissing)
		} else {
			h.toasts.Notify(notify.LevelError, err.Error())
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// POST /modal/submit
func (h *PageHandler) Submit(c *gin.Context) {
	if !h.board.Modal().Open() {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	h.board.SetDraft(domain.Draft{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Status:      domain.Status(c.PostForm("status")),
		Priority:    domain.Priority(c.PostForm("priority")),
	})

	if _, err := h.board.Submit(); err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			// keep the form open with what the user typed
			h.render(c, http.StatusUnprocessableEntity)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// POST /modal/cancel
func (h *PageHandler) Cancel(c *gin.Context) {
	h.board.Cancel()
	c.Redirect(http.StatusSeeOther, "/")
}

// POST /tasks/:id/delete
func (h *PageHandler) Delete(c *gin.Context) {
	h.board.Delete(c.Param("id"))
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) render(c *gin.Context, status int) {
	tasks, err := h.board.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed getting tasks")
		return
	}

	c.HTML(status, pageTemplate, pageData{
		Title:      h.title,
		Subtitle:   h.subtitle,
		Stats:      domain.ComputeStats(tasks),
		Tasks:      tasks,
		Modal:      h.board.Modal(),
		Statuses:   domain.AllStatuses(),
		Priorities: domain.AllPriorities(),
		Toasts:     h.toasts.Drain(),
	})
}

// TemplateFuncs are the helpers the dashboard template uses.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"statusClass":   StatusClass,
		"priorityClass": PriorityClass,
		"statusIcon":    StatusIcon,
		"toastClass":    ToastClass,
		"date": func(t time.Time) string {
			return t.Format("1/2/2006")
		},
	}
}

func StatusClass(s domain.Status) string {
	switch s {
	case domain.StatusPending:
		return "bg-yellow"
	case domain.StatusInProgress:
		return "bg-blue"
	case domain.StatusCompleted:
		return "bg-green"
	case domain.StatusFailed:
		return "bg-red"
	default:
		return "bg-gray"
	}
}

func StatusIcon(s domain.Status) string {
	switch s {
	case domain.StatusPending, domain.StatusInProgress:
		return "◷"
	case domain.StatusCompleted:
		return "✓"
	case domain.StatusFailed:
		return "!"
	default:
		return "?"
	}
}

func PriorityClass(p domain.Priority) string {
	switch p {
	case domain.PriorityLow:
		return "bg-gray"
	case domain.PriorityMedium:
		return "bg-orange"
	case domain.PriorityHigh:
		return "bg-red"
	default:
		return "bg-gray"
	}
}

func ToastClass(l notify.Level) string {
	switch l {
	case notify.LevelSuccess:
		return "toast-success"
	case notify.LevelError:
		return "toast-error"
	default:
		return "toast"
	}
}
