package core

import (
	"context"
	"fmt"
	"time"

	"github.com/contribs-dev/contribs/internal/contract"
	"github.com/contribs-dev/contribs/internal/outwriter"
)

// ExecuteStats runs the stats facade and prints the aggregate using the
// configured output format.
func ExecuteStats(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	started := time.Now()
	result, err := CollectStats(ctx, cfg, client)
	if err != nil {
		return err
	}
	ow := outwriter.NewOutWriter()
	return ow.WriteStats(result, cfg, time.Since(started))
}

// ExecuteCheck verifies that the configured path is a usable repository.
// Validation already ran, so this only reports what was resolved.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	current, err := client.CurrentBranch(ctx, cfg.RepoPath)
	if err != nil {
		return err
	}
	fmt.Printf("Repository: %s\n", cfg.RepoPath)
	fmt.Printf("Branch:     %s\n", current)
	return nil
}

// ExecuteBranches builds the branch catalog and prints it.
func ExecuteBranches(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	catalog, err := BuildBranchCatalog(ctx, client, cfg.RepoPath)
	if err != nil {
		return err
	}
	ow := outwriter.NewOutWriter()
	return ow.WriteBranches(catalog, cfg)
}
