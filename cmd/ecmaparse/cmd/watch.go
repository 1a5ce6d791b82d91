package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orizon-lang/ecmaparse/internal/batch"
	"github.com/orizon-lang/ecmaparse/internal/cli"
	"github.com/orizon-lang/ecmaparse/internal/watch"
)

func newWatchCmd(flags *globalFlags) *cobra.Command {
	var grammar grammarFlags

	cmd := &cobra.Command{
		Use:   "watch DIR...",
		Short: "Re-check source files as they change",
		Long: `Check every source file under DIR, then re-check files as they are
written or created until interrupted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			cfg = grammar.apply(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := flags.logger(cmd.ErrOrStderr())
			opts := batch.Options{Cache: batch.NewCache(), Logger: logger}
			r := cli.NewRenderer(cmd.OutOrStdout())

			paths, err := batch.Collect(args)
			if err != nil {
				return err
			}
			if _, err := checkFiles(ctx, r, paths, cfg, opts); err != nil {
				return err
			}

			w, err := watch.New(args, logger)
			if err != nil {
				return err
			}
			defer w.Close()

			fmt.Fprintln(cmd.ErrOrStderr(), r.Muted("watching for changes, press Ctrl+C to stop"))

			err = w.Run(ctx, func(changed []string) {
				if _, err := checkFiles(ctx, r, changed, cfg, opts); err != nil {
					logger.Warn("check failed", "error", err)
				}
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	grammar.register(cmd)
	return cmd
}
