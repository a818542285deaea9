package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"clawdbot-dashboard/internal/report"

	"github.com/spf13/cobra"
)

func newExportCmd(load loadFunc) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a report of the starting task set",
		Long: `Export renders the tasks a fresh dashboard starts with (the sample
tasks when dashboard.seed is true) as json, yaml, csv or pdf.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			c, err := build(cfg, log.New(io.Discard, "", 0))
			if err != nil {
				return err
			}

			data, err := c.exporter.Export(f)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "json, yaml, csv or pdf")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")

	return cmd
}
