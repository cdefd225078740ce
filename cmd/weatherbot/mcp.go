package main

import (
	"os"
	"os/signal"
	"syscall"

	mcptransport "github.com/sandevgo/weatherbot/internal/transport/mcp"
	"github.com/sandevgo/weatherbot/pkg/srv"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve weather tools to MCP clients over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// stdout carries the protocol
		var flushLog func()
		ctx, flushLog = setupLoggerTo(ctx, os.Stderr)
		defer flushLog()

		a := newApp(ctx)
		services := []srv.Service{
			srv.NewCleanup(a.db.Close),
			mcptransport.NewServer(a.bot, os.Stdin, os.Stdout),
		}
		return run(ctx, services, func() {})
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
