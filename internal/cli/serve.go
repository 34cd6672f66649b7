package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"os-scheduler/api"
)

func newServeCmd(e *env) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				e.cfg.Port = port
			}

			app := api.NewApp(api.NewSchedulerHandlerImpl(e.cfg, e.logger))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				e.logger.Info("shutting down")
				_ = app.Shutdown()
			}()

			addr := fmt.Sprintf(":%d", e.cfg.Port)
			e.logger.Info("listening", "addr", addr, "default_quantum", e.cfg.RoundRobinTimeQuantum)
			return app.Listen(addr)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides config)")
	return cmd
}
