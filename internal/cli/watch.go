package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oskarw/pantrylist/internal/grocery"
)

// WatchOptions holds flags for the watch command.
type WatchOptions struct {
	*RootOptions
	Interval time.Duration
}

// NewWatchCommand creates the watch command.
//
// The store's live change feed only reaches subscribers in the same
// process as the writer, so from a separate process this command polls.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the grocery list",
		Long: `Print the grocery list and reprint it whenever it changes, until
interrupted. Useful alongside a running engine to watch reconciliation
happen.

Example:
  pantrylist watch --db ./list.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore(rootOpts)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to open database", err)
			}
			defer s.Close()

			parentCtx := cmd.Context()
			if parentCtx == nil {
				parentCtx = context.Background()
			}
			ctx, cancel := context.WithCancel(parentCtx)
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)
			go func() {
				select {
				case <-sigChan:
					cancel()
				case <-ctx.Done():
				}
			}()

			svc := grocery.NewService(s, grocery.StaticSession(true))

			ticker := time.NewTicker(opts.Interval)
			defer ticker.Stop()

			var last string
			for {
				entries, err := svc.List(ctx)
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to read list", err)
				}
				if out := FormatEntries(entries); out != last {
					cmd.Print(out)
					cmd.Println("---")
					last = out
				}

				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
				}
			}
		},
	}

	cmd.Flags().DurationVar(&opts.Interval, "interval", time.Second, "poll interval")

	return cmd
}
