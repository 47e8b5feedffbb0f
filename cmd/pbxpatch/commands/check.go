package commands

import "github.com/spf13/cobra"

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [manifests...]",
		Short: "Report whether each manifest is already patched",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, _ := cmd.Flags().GetString("catalog")
			return c.app.Check(cmd.Context(), args, catalog)
		},
	}
}
