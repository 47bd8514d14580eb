package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oskarw/pantrylist/internal/engine"
	"github.com/oskarw/pantrylist/internal/inventory"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	EventsPath string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the reconciliation engine",
		Long: `Start the reconciliation engine against the cabinet's inventory feed.

The feed is newline-delimited JSON read from stdin by default, or from a
file (e.g. a FIFO the cabinet firmware writes to) via --events. The first
record may be a full snapshot; subsequent records are change events.

Example:
  cabinet-firmware --emit-events | pantrylist run --db ./list.db
  pantrylist run --db ./list.db --events /run/cabinet/events --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEngine(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.EventsPath, "events", "", "read inventory events from a file instead of stdin")

	return cmd
}

func runEngine(opts *RunOptions, cmd *cobra.Command) error {
	s, cfg, err := openStore(opts.RootOptions)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database ready", "path", cfg.Database)

	in := cmd.InOrStdin()
	if opts.EventsPath != "" {
		f, err := os.Open(opts.EventsPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open events source", err)
		}
		defer f.Close()
		in = f
	}
	feed := inventory.NewJSONFeed(in)

	eng := engine.New(s, feed, cfg.Engine())

	// Setup signal handling for graceful shutdown
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
		case sig := <-sigChan:
			slog.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	slog.Info("engine starting",
		"threshold", cfg.LowStockThreshold,
		"live_debounce", cfg.Engine().LiveWindow,
		"init_debounce", cfg.Engine().InitWindow,
	)

	if err := eng.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return WrapExitError(ExitCommandError, "engine stopped", err)
	}
	return nil
}
