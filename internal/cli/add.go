package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/oskarw/pantrylist/internal/grocery"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a manual entry to the grocery list",
		Long: `Add a manual entry. Manual entries are never removed by the
reconciliation engine, only by you.

Fails if an entry with the exact same name already exists.

Example:
  pantrylist add "Dish Soap" --db ./list.db`,
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
			if err := svc.AddManual(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, grocery.ErrConflict) || errors.Is(err, grocery.ErrEmptyName) {
					return WrapExitError(ExitFailure, "cannot add entry", err)
				}
				return WrapExitError(ExitCommandError, "failed to add entry", err)
			}

			cmd.Printf("added %q\n", args[0])
			return nil
		},
	}
}
