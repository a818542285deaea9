package cli

import (
	"log"

	"clawdbot-dashboard/internal/config"
	"clawdbot-dashboard/internal/dashboard"
	"clawdbot-dashboard/internal/notify"
	"clawdbot-dashboard/internal/report"
	"clawdbot-dashboard/internal/service"
	"clawdbot-dashboard/internal/store/memory"
)

// components is one dashboard session and everything it is built on.
type components struct {
	store    *memory.TaskStore
	service  *service.TaskService
	toasts   *notify.Toasts
	notifier notify.Notifier
	board    *dashboard.Dashboard
	exporter *report.Exporter
}

func build(cfg *config.Config, logger *log.Logger) (*components, error) {
	store := memory.New()
	if cfg.Dashboard.Seed {
		store.Seed()
	}

	svc, err := service.New(store)
	if err != nil {
		return nil, err
	}

	toasts := notify.NewToasts(cfg.Notify.ToastDuration, cfg.Notify.MaxToasts)
	notifier := notify.Multi{toasts, notify.Logger{L: logger}}

	board, err := dashboard.New(svc, notifier)
	if err != nil {
		return nil, err
	}

	return &components{
		store:    store,
		service:  svc,
		toasts:   toasts,
		notifier: notifier,
		board:    board,
		exporter: report.NewExporter(store, cfg.Dashboard.Title),
	}, nil
}
