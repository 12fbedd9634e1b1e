package cmd

import (
	"github.com/contribs-dev/contribs/core"
	"github.com/contribs-dev/contribs/internal/contract"
	"github.com/spf13/cobra"
)

// statsCmd aggregates per-author contribution statistics.
var statsCmd = &cobra.Command{
	Use:   "stats [repo-path]",
	Short: "Show per-author commit and line statistics.",
	Long: `Walk Git history on a branch and aggregate activity per author.

For every author observed in the selected range, reports:
- Number of commits
- Lines added and removed
- Net line delta (added minus removed)
- Commit counts broken down by calendar date

Authors are identified by email, so the same person keeps a single row
even when their display name changes over time.

Examples:
  # Current branch, full history
  contribs stats

  # A specific branch and date range
  contribs stats --branch develop --start 2025-01-01 --end 2025-06-30

  # From the first commit up to a cutoff
  contribs stats --start beginning --end 2025-06-30

  # Export results for downstream tooling
  contribs stats --output csv --output-file authors.csv
  contribs stats --output parquet --output-file stats/`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStats(rootCtx, cfg, gitClient); err != nil {
			contract.LogFatal("Cannot run stats analysis", err)
		}
	},
}
