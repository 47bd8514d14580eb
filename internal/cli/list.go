package cli

import (
	"github.com/spf13/cobra"

	"github.com/oskarw/pantrylist/internal/grocery"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the grocery list",
		Long: `Print the current grocery list in creation order.

Example:
  pantrylist list --db ./list.db
  pantrylist list --db ./list.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openStore(rootOpts)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to open database", err)
			}
			defer s.Close()

			svc := grocery.NewService(s, grocery.StaticSession(true))
			entries, err := svc.List(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read list", err)
			}

			if rootOpts.Format == "json" {
				out, err := FormatEntriesJSON(entries)
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to render list", err)
				}
				cmd.Print(out)
				return nil
			}

			cmd.Print(FormatEntries(entries))
			return nil
		},
	}
}
