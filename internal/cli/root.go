package cli

import (
	"fmt"
	"os"

	"clawdbot-dashboard/internal/config"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree.
func NewRootCmd(version string) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "clawdbot",
		Short: "Clawdbot task dashboard",
		Long: `Clawdbot is an in-memory dashboard for bot tasks.

It serves the dashboard over HTTP or in the terminal. Tasks live only as long as the process does.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./"+config.DefaultPath+" when present)")

	load := func() (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	rootCmd.AddCommand(newServeCmd(load))
	rootCmd.AddCommand(newTUICmd(load))
	rootCmd.AddCommand(newExportCmd(load))
	rootCmd.AddCommand(newConfigCmd(load))
	rootCmd.AddCommand(newVersionCmd(version))

	return rootCmd
}

// Execute runs the root command
func Execute(version string) error {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

type loadFunc func() (*config.Config, error)
