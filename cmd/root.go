package cmd

import (
	"fmt"
	"os"

	"config-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logLevel optionally overrides the configured log level for one invocation.
var logLevel string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "config-manager",
	Short: "Configuration Snapshot Manager",
	Long: `Config Manager snapshots an instance's administrative configuration
(system parameters, sequences, user groups, external ids, module states) into
portable YAML documents and reconciles them back into a live instance.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug config so failures print with readable
		// ISO8601 timestamps rather than epoch seconds.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
}
