package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"os-scheduler/config"
	"os-scheduler/internal/logging"
)

// env is the state one command tree shares: flag values and what the
// persistent pre-run builds from them.
type env struct {
	configDir string
	logLevel  string
	logFormat string

	cfg    *config.SchedulerConfig
	logger *slog.Logger
}

// NewRootCmd creates the cpusched command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "cpusched",
		Short: "CPU scheduling simulator",
		Long:  "cpusched computes FCFS, SJF, round robin and priority schedules for a list of processes.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(e.configDir)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = e.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = e.logFormat
			}
			e.cfg = cfg
			e.logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&e.configDir, "config", "./", "Directory containing config.yaml")
	root.PersistentFlags().StringVar(&e.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&e.logFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(e),
		newCompareCmd(e),
		newServeCmd(e),
	)

	return root
}
