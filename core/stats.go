package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/contribs-dev/contribs/internal/contract"
	"github.com/contribs-dev/contribs/schema"
)

// CollectStats runs one full statistics pass: resolve and validate the
// branch, run the bounded history query, parse, aggregate, resolve the date
// axis, and attach the branch catalog. Every structure in the result is
// allocated fresh for this call; concurrent calls do not interfere.
func CollectStats(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.AggregateResult, error) {
	// --- 1. Branch catalog ---
	catalog, err := BuildBranchCatalog(ctx, client, cfg.RepoPath)
	if err != nil {
		return nil, err
	}

	// --- 2. Branch resolution and validation ---
	// Validation happens before the history query so a bad branch surfaces
	// as ErrBranchNotFound instead of an ambiguous empty result.
	ref, err := resolveBranch(ctx, cfg, client, catalog)
	if err != nil {
		return nil, err
	}

	// --- 3. History query ---
	// FromBeginning leaves the lower bound open; both bounds open when
	// neither date was given.
	out, err := client.ActivityLog(ctx, cfg.RepoPath, ref, cfg.StartTime, cfg.EndTime)
	if err != nil {
		return nil, err
	}

	// --- 4. Parse and aggregate ---
	summary := Aggregate(ParseHistory(out))

	// --- 5. Date axis ---
	axis, startLabel, endLabel, err := resolveDateAxis(cfg, summary)
	if err != nil {
		return nil, err
	}

	// --- 6. Assemble the result ---
	return &schema.AggregateResult{
		AuthorNames:   summary.AuthorNames,
		AddedLines:    summary.AddedLines,
		RemovedLines:  summary.RemovedLines,
		NetLines:      summary.NetLines,
		CommitsByDate: summary.CommitsByDate,
		DateAxis:      axis,
		StartLabel:    startLabel,
		EndLabel:      endLabel,
		Branches:      catalog,
		BranchRef:     ref,
	}, nil
}

// resolveBranch maps the requested branch name to the reference passed to the
// history query. An empty name resolves to the currently checked-out branch.
// A name matching a remote catalog entry is used as-is without an existence
// check, as is any unknown remote-style name (one containing a slash): remote
// refs are not reliably enumerable through refs/heads. Local names are
// validated and yield ErrBranchNotFound when missing.
func resolveBranch(ctx context.Context, cfg *contract.Config, client contract.GitClient, catalog []schema.BranchDescriptor) (string, error) {
	name := cfg.Branch
	if name == "" {
		return client.CurrentBranch(ctx, cfg.RepoPath)
	}

	for _, b := range catalog {
		if b.DisplayName != name && b.Reference != name {
			continue
		}
		if b.Kind == schema.RemoteBranch {
			return b.Reference, nil
		}
		return validateLocalBranch(ctx, client, cfg.RepoPath, b.Reference)
	}

	if strings.Contains(name, "/") {
		return name, nil
	}
	return validateLocalBranch(ctx, client, cfg.RepoPath, name)
}

// validateLocalBranch confirms a local branch exists before it is queried.
func validateLocalBranch(ctx context.Context, client contract.GitClient, repoPath, name string) (string, error) {
	ok, err := client.BranchExists(ctx, repoPath, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", contract.ErrBranchNotFound, name)
	}
	return name, nil
}

// resolveDateAxis selects the dense or sparse axis per the configured bounds
// and resolves the start/end labels. The dense axis includes zero-activity
// days; the sparse axis holds only the days commits were observed on.
func resolveDateAxis(cfg *contract.Config, summary *schema.ActivitySummary) (axis []string, startLabel, endLabel string, err error) {
	if cfg.Bounded() {
		axis, err = DateRange(cfg.StartTime, cfg.EndTime)
		if err != nil {
			return nil, "", "", err
		}
		return axis, cfg.StartTime.Format(schema.DateFormat), cfg.EndTime.Format(schema.DateFormat), nil
	}

	axis = summary.Dates
	startLabel = schema.BeginningLabel
	endLabel = schema.NowLabel
	if len(axis) > 0 {
		startLabel = axis[0]
		endLabel = axis[len(axis)-1]
	}
	if !cfg.EndTime.IsZero() {
		endLabel = cfg.EndTime.Format(schema.DateFormat)
	}
	return axis, startLabel, endLabel, nil
}
