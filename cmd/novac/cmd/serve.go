package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/nova/internal/logger"
	"github.com/you-not-fish/nova/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the websocket bridge for editors",
		Long: `Starts an HTTP server with a websocket endpoint at /ws. Editors send
{"type":"check","payload":{"filename":...,"source":...}} and receive the
outline or the first error. Checks running longer than check_timeout are
abandoned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if host != "" {
				cfg.Server.Host = host
			}
			if port != 0 {
				cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			addr := cfg.ServerAddress()
			fmt.Fprintf(cmd.OutOrStdout(), "listening on ws://%s/ws\n", addr)
			return server.ListenAndServe(ctx, addr, server.Config{
				CheckTimeout:   cfg.Server.CheckTimeout.Duration,
				MaxSourceBytes: cfg.Server.MaxSourceBytes,
				Logger:         logger.New("server"),
			})
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (default from config)")
	cmd.Flags().IntVar(&port, "port", 0, "listen port (default from config)")
	return cmd
}
