package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/contribs-dev/contribs/internal/contract"
	"github.com/contribs-dev/contribs/schema"
	"golang.org/x/sync/errgroup"
)

// currentBranchMarker prefixes the checked-out branch in `git branch` output.
const currentBranchMarker = "* "

// BuildBranchCatalog runs the local and remote listing queries concurrently
// and merges them into a single catalog. Empty output from both queries
// yields an empty catalog, not an error.
func BuildBranchCatalog(ctx context.Context, client contract.GitClient, repoPath string) ([]schema.BranchDescriptor, error) {
	var localLines, remoteLines []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		localLines, err = client.LocalBranches(gctx, repoPath)
		return err
	})
	g.Go(func() error {
		var err error
		remoteLines, err = client.RemoteBranches(gctx, repoPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeBranchListings(localLines, remoteLines), nil
}

// mergeBranchListings classifies the raw listing lines into descriptors.
// Local entries keep their branch name as both display name and reference.
// Remote entries reference "<remote>/<name>"; when the short name collides
// with an entry already in the catalog, the display name is disambiguated by
// appending the remote in parentheses.
func mergeBranchListings(localLines, remoteLines []string) []schema.BranchDescriptor {
	var catalog []schema.BranchDescriptor
	taken := make(map[string]struct{})

	for _, line := range localLines {
		name := strings.TrimSpace(line)
		name = strings.TrimPrefix(name, currentBranchMarker)
		name = strings.TrimSpace(name)
		if name == "" || strings.HasPrefix(name, "(") {
			// "(HEAD detached at ...)" is not a branch
			continue
		}
		if _, dup := taken[name]; dup {
			continue
		}
		taken[name] = struct{}{}
		catalog = append(catalog, schema.BranchDescriptor{
			DisplayName: name,
			Kind:        schema.LocalBranch,
			Reference:   name,
		})
	}

	for _, line := range remoteLines {
		ref := strings.TrimSpace(line)
		if ref == "" || strings.Contains(ref, " -> ") {
			// symbolic pointers like "origin/HEAD -> origin/main" are skipped
			continue
		}
		remote, short, ok := strings.Cut(ref, "/")
		if !ok {
			continue
		}

		display := short
		if _, dup := taken[display]; dup {
			display = fmt.Sprintf("%s (%s)", short, remote)
		}
		if _, dup := taken[display]; dup {
			display = ref
		}
		if _, dup := taken[display]; dup {
			continue
		}
		taken[display] = struct{}{}
		catalog = append(catalog, schema.BranchDescriptor{
			DisplayName: display,
			Kind:        schema.RemoteBranch,
			Reference:   ref,
		})
	}

	return catalog
}
