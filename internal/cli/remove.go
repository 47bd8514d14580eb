package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/oskarw/pantrylist/internal/grocery"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an entry from the grocery list",
		Long: `Remove an entry by ID. Explicit removal applies to manual and auto
entries alike; a removed auto entry may reappear if the item is still low
in the cabinet.

Example:
  pantrylist remove 01890c2e-9f4a-7c3d-b1ee-6a1f00c0ffee --db ./list.db`,
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
			if err := svc.Remove(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, grocery.ErrNotFound) {
					return WrapExitError(ExitFailure, "no such entry", err)
				}
				return WrapExitError(ExitCommandError, "failed to remove entry", err)
			}

			cmd.Printf("removed %s\n", args[0])
			return nil
		},
	}
}
