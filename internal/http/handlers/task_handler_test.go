package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clawdbot-dashboard/internal/dashboard"
	"clawdbot-dashboard/internal/domain"
	approuter "clawdbot-dashboard/internal/http"
	"clawdbot-dashboard/internal/http/dto"
	"clawdbot-dashboard/internal/http/handlers"
	"clawdbot-dashboard/internal/notify"
	"clawdbot-dashboard/internal/report"
	"clawdbot-dashboard/internal/service"
	"clawdbot-dashboard/internal/store/memory"

	"github.com/gin-gonic/gin"
)

type testApp struct {
	router http.Handler
	store  *memory.TaskStore
	board  *dashboard.Dashboard
	toasts *notify.Toasts
}

func newApp(t *testing.T) *testApp {
	t.Helper()

	store := memory.NewSeeded()
	svc, err := service.New(store)
	if err != nil {
		t.Fatalf("service.New err=%v", err)
	}

	toasts := notify.NewToasts(notify.DefaultTTL, notify.DefaultCapacity)
	board, err := dashboard.New(svc, toasts)
	if err != nil {
		t.Fatalf("dashboard.New err=%v", err)
	}

	h := handlers.New(svc, report.NewExporter(store, "Clawdbot Dashboard"), toasts)
	page := handlers.NewPage(board, toasts, "Clawdbot Dashboard", "Manage and update your bot tasks")

	router, err := approuter.New(h, page, approuter.Options{Mode: gin.TestMode})
	if err != nil {
		t.Fatalf("router.New err=%v", err)
	}

	return &testApp{router: router, store: store, board: board, toasts: toasts}
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body err=%v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)
	return rr
}

func doRaw(t *testing.T, h http.Handler, method, path string, raw string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, data any) dto.Envelope {
	t.Helper()

	var env dto.Envelope
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode err=%v body=%s", err, rr.Body.String())
	}
	if data != nil {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data err=%v", err)
		}
	}
	return env
}

func TestGET_Tasks_List_Seed(t *testing.T) {
	app := newApp(t)

	rr := doJSON(t, app.router, http.MethodGet, "/api/tasks", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d body=%s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var out []dto.TaskResponse
	env := decode(t, rr, &out)
	if !env.Success {
		t.Fatalf("success=false")
	}
	if len(out) != 4 {
		t.Fatalf("len=%d, want 4", len(out))
	}
	for i, want := range []string{"1", "2", "3", "4"} {
		if out[i].ID != want {
			t.Fatalf("out[%d].ID=%s, want %s", i, out[i].ID, want)
		}
	}
	if out[0].StatusLabel != "In Progress" {
		t.Fatalf("statusLabel=%q", out[0].StatusLabel)
	}
}

func TestGET_Stats_Seed(t *testing.T) {
	app := newApp(t)

	rr := doJSON(t, app.router, http.MethodGet, "/api/stats", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	var out dto.StatsResponse
	decode(t, rr, &out)
	want := dto.StatsResponse{Total: 4, Pending: 1, InProgress: 1, Completed: 1, Failed: 1}
	if out != want {
		t.Fatalf("stats=%+v, want %+v", out, want)
	}
}

func TestPOST_Tasks_Created(t *testing.T) {
	app := newApp(t)

	rr := doJSON(t, app.router, http.MethodPost, "/api/tasks", map[string]any{
		"title":       "Rotate API keys",
		"description": "quarterly",
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d, want %d body=%s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	var out dto.TaskResponse
	env := decode(t, rr, &out)
	if env.Message != dashboard.MsgCreated {
		t.Fatalf("message=%q", env.Message)
	}
	if out.ID == "" {
		t.Fatalf("id is empty")
	}
	if out.Status != string(domain.StatusPending) || out.Priority != string(domain.PriorityMedium) {
		t.Fatalf("defaults not applied: %+v", out)
	}
	if app.store.Stats().Total != 5 {
		t.Fatalf("store len=%d, want 5", app.store.Stats().Total)
	}
	if n, ok := app.toasts.Latest(); !ok || n.Message != dashboard.MsgCreated {
		t.Fatalf("toast=%+v ok=%v", n, ok)
	}
}

func TestPOST_Tasks_InvalidJSON_400(t *testing.T) {
	app := newApp(t)

	rr := doRaw(t, app.router, http.MethodPost, "/api/tasks", "{bad json}")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d body=%s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}
}

func TestPOST_Tasks_UnknownStatus_400(t *testing.T) {
	app := newApp(t)

	rr := doJSON(t, app.router, http.MethodPost, "/api/tasks", map[string]any{
		"title":  "x",
		"status": "running",
	})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d body=%s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}
	if env := decode(t, rr, nil); env.Field != "status" {
		t.Fatalf("envelope=%+v", env)
	}
}

func TestPOST_Tasks_EmptyEnumsGetDefaults(t *testing.T) {
	app := newApp(t)

	rr := doJSON(t, app.router, http.MethodPost, "/api/tasks", map[string]any{
		"title":    "Rotate API keys",
		"status":   "",
		"priority": "",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d, want %d body=%s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	var out dto.TaskResponse
	decode(t, rr, &out)
	if out.Status != string(domain.StatusPending) || out.Priority != string(domain.PriorityMedium) {
		t.Fatalf("defaults not applied: %+v", out)
	}
}

func TestPUT_Task_EmptyStatus_400(t *testing.T) {
	app := newApp(t)

	rr := doJSON(t, app.router, http.MethodPut, "/api/tasks/1", map[string]any{
		"title":    "x",
		"status":   "",
		"priority": "low",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d body=%s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}
	if env := decode(t, rr, nil); env.Field != "status" {
		t.Fatalf("envelope=%+v", env)
	}
}

func TestPOST_Tasks_EmptyTitle_400(t *testing.T) {
	app := newApp(t)

	rr := doJSON(t, app.router, http.MethodPost, "/api/tasks", map[string]any{
		"title":       "   ",
		"description": "x",
	})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d body=%s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}
	env := decode(t, rr, nil)
	if env.Field != "title" || env.Error != service.TitleRequiredMessage {
		t.Fatalf("envelope=%+v", env)
	}
	if app.store.Stats().Total != 4 {
		t.Fatalf("store len=%d, want 4", app.store.Stats().Total)
	}
}

func TestGET_TaskByID_OK(t *testing.T) {
	app := newApp(t)

	rr := doJSON(t, app.router, http.MethodGet, "/api/tasks/3", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d body=%s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var out dto.TaskResponse
	decode(t, rr, &out)
	if out.ID != "3" || out.Title != "Add webhook support" {
		t.Fatalf("task=%+v", out)
	}
}

func TestGET_TaskByID_NotFound_404(t *testing.T) {
	app := newApp(t)

	rr := doJSON(t, app.router, http.MethodGet, "/api/tasks/999999", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want %d body=%s", rr.Code, http.StatusNotFound, rr.Body.String())
	}
}

func TestPUT_Task_PreservesIdentity(t *testing.T) {
	app := newApp(t)
	before, _ := app.store.Get("1")

	rr := doJSON(t, app.router, http.MethodPut, "/api/tasks/1", map[string]any{
		"title":       "Schema v2",
		"description": "",
		"status":      "completed",
		"priority":    "low",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	got, _ := app.store.Get("1")
	if got.ID != before.ID || !got.CreatedAt.Equal(before.CreatedAt) {
		t.Fatalf("identity changed: %+v", got)
	}
	if got.Title != "Schema v2" || got.Description != "" || got.Status != domain.StatusCompleted || got.Priority != domain.PriorityLow {
		t.Fatalf("task=%+v", got)
	}
}

func TestPUT_Task_MissingStatus_400(t *testing.T) {
	app := newApp(t)

	rr := doJSON(t, app.router, http.MethodPut, "/api/tasks/1", map[string]any{
		"title":    "Schema v2",
		"priority": "low",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d body=%s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}
}

func TestPUT_Task_NotFound_404(t *testing.T) {
	app := newApp(t)

	rr := doJSON(t, app.router, http.MethodPut, "/api/tasks/999", map[string]any{
		"title":    "x",
		"status":   "pending",
		"priority": "low",
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want %d body=%s", rr.Code, http.StatusNotFound, rr.Body.String())
	}
}

func TestDELETE_Task(t *testing.T) {
	app := newApp(t)

	rr := doJSON(t, app.router, http.MethodDelete, "/api/tasks/2", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if _, ok := app.store.Get("2"); ok {
		t.Fatalf("task 2 still present")
	}

	stats := app.store.Stats()
	if stats.Total != 3 || stats.Pending != 0 {
		t.Fatalf("stats=%+v", stats)
	}
}

func TestDELETE_Task_Unknown_StillOK(t *testing.T) {
	app := newApp(t)

	rr := doJSON(t, app.router, http.MethodDelete, "/api/tasks/999", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if app.store.Stats().Total != 4 {
		t.Fatalf("store len=%d, want 4", app.store.Stats().Total)
	}
}

func TestGET_Export(t *testing.T) {
	app := newApp(t)

	cases := map[string]string{
		"csv":  "text/csv",
		"yaml": "application/yaml",
		"pdf":  "application/pdf",
		"":     "application/json",
	}
	for format, ctype := range cases {
		rr := doJSON(t, app.router, http.MethodGet, "/api/export?format="+format, nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("format=%q status=%d body=%s", format, rr.Code, rr.Body.String())
		}
		if got := rr.Header().Get("Content-Type"); got != ctype {
			t.Fatalf("format=%q content-type=%q, want %q", format, got, ctype)
		}
	}

	rr := doJSON(t, app.router, http.MethodGet, "/api/export?format=xml", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestGET_Health(t *testing.T) {
	app := newApp(t)

	rr := doJSON(t, app.router, http.MethodGet, "/health", nil)
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("status=%d body=%q", rr.Code, rr.Body.String())
	}
}
