package cli

import (
	"github.com/spf13/cobra"

	"github.com/oskarw/pantrylist/internal/engine"
	"github.com/oskarw/pantrylist/internal/inventory"
)

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Collapse duplicate entries",
		Long: `Run a one-shot duplicate sweep over the grocery list: entries
sharing an identity are collapsed to a single survivor. The running
engine does this at startup; the command exists for manual cleanup.

Example:
  pantrylist sweep --db ./list.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := openStore(rootOpts)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to open database", err)
			}
			defer s.Close()

			// The sweeper never touches the feed; an empty one satisfies
			// the engine's constructor.
			eng := engine.New(s, inventory.NewSimFeed(), cfg.Engine())
			deleted, err := eng.Sweep(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "sweep failed", err)
			}

			cmd.Printf("removed %d duplicate entries\n", deleted)
			return nil
		},
	}
}
