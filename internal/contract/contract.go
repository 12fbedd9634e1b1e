// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"
)

// CommitBoundary is the sentinel emitted between commits in the history query
// output. The parser splits the raw log text on this exact token.
const CommitBoundary = "COMMIT_BOUNDARY"

// GitClient defines the necessary operations for contribution analysis.
// This allows the core logic to be tested without needing a real git executable.
type GitClient interface {
	// --- Generic / Low-Level ---

	// Run executes a git command and returns the captured standard output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// --- Repository / Reference Resolution ---

	// IsRepository reports whether path is inside a git working tree.
	// A negative answer from git is not an error.
	IsRepository(ctx context.Context, path string) (bool, error)

	// RepoRoot returns the absolute path to the root of the git repository
	// containing the given context path.
	RepoRoot(ctx context.Context, contextPath string) (string, error)

	// CurrentBranch returns the name of the currently checked-out branch.
	CurrentBranch(ctx context.Context, repoPath string) (string, error)

	// BranchExists reports whether a local branch with the given name exists.
	BranchExists(ctx context.Context, repoPath string, name string) (bool, error)

	// --- Branch Listings ---

	// LocalBranches returns the raw local-branch listing, one line per branch.
	// The current branch carries its leading "* " marker untouched.
	LocalBranches(ctx context.Context, repoPath string) ([]string, error)

	// RemoteBranches returns the raw remote-branch listing, one line per
	// branch, including any symbolic "HEAD ->" pointer lines.
	RemoteBranches(ctx context.Context, repoPath string) ([]string, error)

	// --- History ---

	// ActivityLog returns the raw commit log for ref with per-file numstat
	// data, delimited by CommitBoundary. A zero start leaves the history
	// unbounded below; a zero end leaves it unbounded above. An empty ref
	// queries the currently checked-out branch.
	ActivityLog(ctx context.Context, repoPath string, ref string, start, end time.Time) ([]byte, error)
}
