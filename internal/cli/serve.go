package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	router "clawdbot-dashboard/internal/http"
	"clawdbot-dashboard/internal/http/handlers"

	"github.com/spf13/cobra"
)

func newServeCmd(load loadFunc) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard and JSON API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			c, err := build(cfg, log.Default())
			if err != nil {
				return fmt.Errorf("service initiation failed: %w", err)
			}

			handler, err := router.New(
				handlers.New(c.service, c.exporter, c.notifier),
				handlers.NewPage(c.board, c.toasts, cfg.Dashboard.Title, cfg.Dashboard.Subtitle),
				router.Options{Mode: cfg.HTTP.Mode, LogRequests: cfg.Log.Requests},
			)
			if err != nil {
				return err
			}

			server := &http.Server{
				Addr:    cfg.HTTP.Addr,
				Handler: handler,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("listening on %s", cfg.HTTP.Addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(stop)

			select {
			case err := <-errCh:
				return fmt.Errorf("server failed: %w", err)
			case <-stop:
			}
			log.Printf("shut down signal received...")

			ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown failed: %w", err)
			}

			log.Printf("shut down gracefully")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides http.addr)")

	return cmd
}
