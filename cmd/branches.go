package cmd

import (
	"github.com/contribs-dev/contribs/core"
	"github.com/contribs-dev/contribs/internal/contract"
	"github.com/spf13/cobra"
)

// branchesCmd lists the branches available for analysis.
var branchesCmd = &cobra.Command{
	Use:   "branches [repo-path]",
	Short: "List local and remote branches of a repository.",
	Long: `List every branch visible in the repository, local and remote.

Remote branches that shadow a local name are shown with their remote in
parentheses, e.g. "main (origin)". Use any listed name as the --branch
value for the stats command.

Examples:
  # Branches of the current repository
  contribs branches

  # Branches of another checkout, as JSON
  contribs branches ~/src/other-repo --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBranches(rootCtx, cfg, gitClient); err != nil {
			contract.LogFatal("Cannot list branches", err)
		}
	},
}
