package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/nova/internal/compiler"
	"github.com/you-not-fish/nova/internal/logger"
	"github.com/you-not-fish/nova/internal/watch"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file.nova>",
		Short: "Re-check a file on every save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd, opts, args[0])
		},
	}
	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, opts *rootOptions, path string) error {
	p := opts.printer(cmd)
	w := watch.New(path, opts.cfg.Watch.Debounce.Duration, logger.New("watch"))

	return w.Run(ctx, func(src string, err error) {
		fmt.Fprintf(cmd.ErrOrStderr(), "-- %s --\n", time.Now().Format("15:04:05"))
		if err != nil {
			p.Error(err, "")
			return
		}
		res, err := compiler.Compile(path, src, compiler.Options{Logger: opts.logger})
		if err != nil {
			p.Error(err, src)
			return
		}
		opts.outPrinter(cmd).OK(path, compiler.BuildOutline(res.Program))
		if opts.trace {
			printTrace(cmd, res.Timings)
		}
	})
}
