package cli

import (
	"io"
	"log"

	"clawdbot-dashboard/internal/report"
	"clawdbot-dashboard/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(load loadFunc) *cobra.Command {
	var (
		logFile      string
		exportFormat string
		exportDir    string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the dashboard in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if logFile == "" {
				logFile = cfg.Log.File
			}

			format, err := report.ParseFormat(exportFormat)
			if err != nil {
				return err
			}

			// the terminal belongs to the UI; logs go to a file or nowhere
			logger := log.New(io.Discard, "", 0)
			if logFile != "" {
				f, err := tea.LogToFile(logFile, "clawdbot")
				if err != nil {
					return err
				}
				defer f.Close()
				logger = log.Default()
			} else {
				log.SetOutput(io.Discard)
			}

			c, err := build(cfg, logger)
			if err != nil {
				return err
			}

			return tui.Run(c.board, c.toasts, tui.Options{
				Title:        cfg.Dashboard.Title,
				Subtitle:     cfg.Dashboard.Subtitle,
				Exporter:     c.exporter,
				ExportFormat: format,
				ExportDir:    exportDir,
			})
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (overrides log.file)")
	cmd.Flags().StringVar(&exportFormat, "export-format", "json", "format used by the export key: json, yaml, csv or pdf")
	cmd.Flags().StringVar(&exportDir, "export-dir", ".", "directory the export key writes to")

	return cmd
}
