package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pbxpatch/internal/app"
)

func (c *CLI) newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch [manifests...]",
		Short: "Insert the catalog records into each manifest",
		Long: "Insert the catalog records into each manifest. Without arguments the default " +
			"manifest iMessageWrapped.xcodeproj/project.pbxproj is patched.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, _ := cmd.Flags().GetString("catalog")
			strict, _ := cmd.Flags().GetBool("strict")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			jsonOut, _ := cmd.Flags().GetBool("json")
			jobs, _ := cmd.Flags().GetInt("jobs")
			progress, _ := cmd.Flags().GetBool("progress")

			return c.app.Patch(cmd.Context(), args, app.PatchOptions{
				CatalogPath: catalog,
				Strict:      strict,
				DryRun:      dryRun,
				JSON:        jsonOut,
				Jobs:        jobs,
				Progress:    progress,
			})
		},
	}
	cmd.Flags().Bool("strict", false, "Fail when an injection marker is missing")
	cmd.Flags().BoolP("dry-run", "n", false, "Print a unified diff instead of writing")
	cmd.Flags().Bool("json", false, "Emit log lines as JSON")
	cmd.Flags().Bool("progress", false, "Stream per-manifest progress to stderr")
	cmd.Flags().IntP("jobs", "j", 0, "Maximum manifests patched concurrently (default: number of CPUs)")
	return cmd
}
