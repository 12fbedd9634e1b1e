package cmd

import (
	"github.com/contribs-dev/contribs/core"
	"github.com/contribs-dev/contribs/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd verifies that a path points at a usable repository.
var checkCmd = &cobra.Command{
	Use:   "check [repo-path]",
	Short: "Verify that a path is a Git repository contribs can analyze.",
	Long: `Probe a path and confirm it resolves to a Git repository.

Prints the resolved repository root and the current branch. Exits with a
non-zero status when the path is not inside a working tree, which makes
it usable as a cheap guard in scripts and CI pipelines.

Examples:
  # Check the current directory
  contribs check

  # Check another checkout
  contribs check ~/src/other-repo`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(rootCtx, cfg, gitClient); err != nil {
			contract.LogFatal("Repository check failed", err)
		}
	},
}
