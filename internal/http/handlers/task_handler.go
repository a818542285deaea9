package handlers

import (
	"clawdbot-dashboard/internal/dashboard"
	"clawdbot-dashboard/internal/domain"
	"clawdbot-dashboard/internal/http/dto"
	"clawdbot-dashboard/internal/notify"
	"clawdbot-dashboard/internal/report"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TaskService interface {
	CreateTask(d domain.Draft) (domain.Task, error)
	GetTask(id string) (domain.Task, error)
	ListTasks() ([]domain.Task, error)
	UpdateTask(id string, d domain.Draft) (domain.Task, error)
	DeleteTask(id string)
	Stats() (domain.Stats, error)
}

type Exporter interface {
	Export(format report.Format) ([]byte, error)
}

type TaskHandler struct {
	taskService TaskService
	exporter    Exporter
	notifier    notify.Notifier
}

func New(taskService TaskService, exporter Exporter, notifier notify.Notifier) *TaskHandler {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &TaskHandler{taskService: taskService, exporter: exporter, notifier: notifier}
}

// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())

		return
	}

	task, err := h.taskService.CreateTask(req.Draft(true))
	if err != nil {
		writeServiceError(c, err, "failed creating task")
		return
	}

	h.notifier.Notify(notify.LevelSuccess, dashboard.MsgCreated)
	writeMessage(c, http.StatusCreated, dashboard.MsgCreated, dto.NewTaskResponse(task))
}

// GET /api/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.taskService.GetTask(c.Param("id"))
	if err != nil {
		writeServiceError(c, err, "failed getting task")
		return
	}

	writeJSON(c, http.StatusOK, dto.NewTaskResponse(task))
}

// GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.ListTasks()
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed getting tasks")

		return
	}

	response := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, dto.NewTaskResponse(task))
	}

	writeJSON(c, http.StatusOK, response)
}

// PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())

		return
	}

	task, err := h.taskService.UpdateTask(c.Param("id"), req.Draft(false))
	if err != nil {
		writeServiceError(c, err, "failed updating task")
		return
	}

	h.notifier.Notify(notify.LevelSuccess, dashboard.MsgUpdated)
	writeMessage(c, http.StatusOK, dashboard.MsgUpdated, dto.NewTaskResponse(task))
}

// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	h.taskService.DeleteTask(c.Param("id"))

	h.notifier.Notify(notify.LevelSuccess, dashboard.MsgDeleted)
	writeMessage(c, http.StatusOK, dashboard.MsgDeleted, nil)
}

// GET /api/stats
func (h *TaskHandler) Stats(c *gin.Context) {
	stats, err := h.taskService.Stats()
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed computing stats")
		return
	}

	writeJSON(c, http.StatusOK, dto.NewStatsResponse(stats))
}

// GET /api/export?format=json|yaml|csv|pdf
func (h *TaskHandler) Export(c *gin.Context) {
	format, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.exporter.Export(format)
	if err != nil {
		if errors.Is(err, report.ErrUnknownFormat) {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "failed exporting tasks")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="tasks%s"`, format.Ext()))
	c.Data(http.StatusOK, format.ContentType(), b)
}
