package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/weatherbot/pkg/log"
	"github.com/sandevgo/weatherbot/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start WeatherBot on the configured channels",
	Long:  `Starts every enabled transport (CLI, Telegram, HTTP API) and runs until interrupted or the CLI session ends.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting weatherbot")

		services := NewServices(ctx)
		return run(ctx, services, func() {
			logger.Info().Msg("weatherbot has been shut down gracefully")
		})
	},
}

// run starts services and blocks until one of them stops or ctx is done.
func run(ctx context.Context, services []srv.Service, done func()) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	srv.StartServices(ctx, cancel, services)

	err := srv.ShutdownServices(ctx, services)
	done()
	return err
}

func init() {
	rootCmd.AddCommand(startCmd)
}
