// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/contribs-dev/contribs/internal/contract"
	"github.com/contribs-dev/contribs/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteStats prints an aggregate result using the configured output format.
func (ow *OutWriter) WriteStats(result *schema.AggregateResult, cfg *contract.Config, duration time.Duration) error {
	return PrintStatsResults(result, cfg, duration)
}

// WriteBranches prints a branch catalog using the configured output format.
func (ow *OutWriter) WriteBranches(branches []schema.BranchDescriptor, cfg *contract.Config) error {
	return PrintBranchResults(branches, cfg)
}

// GetMaxLabelWidth calculates the maximum width for author name and email
// cells in table output based on terminal width.
func GetMaxLabelWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the four numeric columns plus borders and padding,
	// then split the rest between the name and email cells.
	available := (termWidth - 40) / 2
	if available < 12 {
		return 12
	}
	if available > 48 {
		return 48
	}
	return available
}
