package dto

import (
	"clawdbot-dashboard/internal/domain"
	"encoding/json"
	"time"
)

// TaskRequest is the body of POST /api/tasks and PUT /api/tasks/:id.
// Status and priority stay plain strings so unknown values come back as a
// field error from validation rather than a decode error.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

// Draft converts the request. On create, a missing or empty status or
// priority gets the form default; updates are full overwrites and must
// carry both.
func (r TaskRequest) Draft(withDefaults bool) domain.Draft {
	d := domain.Draft{
		Title:       r.Title,
		Description: r.Description,
		Status:      domain.Status(r.Status),
		Priority:    domain.Priority(r.Priority),
	}
	if withDefaults {
		def := domain.NewDraft()
		if d.Status == "" {
			d.Status = def.Status
		}
		if d.Priority == "" {
			d.Priority = def.Priority
		}
	}
	return d
}

type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"statusLabel"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewTaskResponse(t domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		StatusLabel: t.Status.Label(),
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt,
	}
}

type StatsResponse struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
}

func NewStatsResponse(s domain.Stats) StatsResponse {
	return StatsResponse(s)
}

// Envelope is the shape of every /api response.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Field   string          `json:"field,omitempty"`
}
