package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/oskarw/pantrylist/internal/grocery"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <id>",
		Short: "Toggle an entry's checked mark",
		Long: `Toggle the checked mark on an entry by ID (see "pantrylist list
--format json" for IDs). Checking has no reconciliation side effects.

Example:
  pantrylist check 01890c2e-9f4a-7c3d-b1ee-6a1f00c0ffee --db ./list.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore(rootOpts)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to open database", err)
			}
			defer s.Close()

			svc := grocery.NewService(s, grocery.StaticSession(true))
			if err := svc.ToggleChecked(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, grocery.ErrNotFound) {
					return WrapExitError(ExitFailure, "no such entry", err)
				}
				return WrapExitError(ExitCommandError, "failed to toggle entry", err)
			}

			cmd.Printf("toggled %s\n", args[0])
			return nil
		},
	}
}
