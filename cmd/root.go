// Package cmd defines and implements the CLI commands for the assist
// executable.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thingvallatech/community-assist/internal/config"
	"github.com/thingvallatech/community-assist/internal/logging"
	"github.com/thingvallatech/community-assist/internal/metrics"
)

var (
	cfgFile string

	cfg    config.Config
	logger *zap.Logger
)

// newRootCmd creates and configures the root command. Configuration and the
// logger are built once here and shared by every subcommand.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assist",
		Short: "Benefit program catalog service for Brevard County, Florida.",
		Long: `assist collects social service program data from state, federal and
local sources, reconciles it into a Postgres catalog, and serves it over a
read-only HTTP API for the Community Assist web app.`,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err = logging.New(cfg.Logging.Development)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			zap.ReplaceGlobals(logger)
			metrics.Init()
			return nil
		},

		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is environment only)")

	cmd.AddCommand(newIngestCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
