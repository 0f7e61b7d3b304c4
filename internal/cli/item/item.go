package item

import (
	"github.com/spf13/cobra"
)

// ItemCmd returns the item parent command
func ItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage habits and weekly tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(MarkCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ClearCmd())

	return cmd
}
