package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/contribs-dev/contribs/schema"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine. Arguments are always passed
// as a discrete list, never through a shell.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its captured standard output.
// A non-zero exit becomes a *CommandError carrying the captured stderr.
func (c *LocalGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, &CommandError{
			Args:     args,
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.TrimSpace(string(exitErr.Stderr)),
		}
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure git is installed and available on your PATH", err)
	}
	return out, nil
}

// IsRepository implements the GitClient interface.
func (c *LocalGitClient) IsRepository(ctx context.Context, path string) (bool, error) {
	out, err := c.Run(ctx, path, "rev-parse", "--is-inside-work-tree")
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		// git answers with a non-zero exit outside a working tree
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(out)) == "true", nil
}

// RepoRoot implements the GitClient interface.
func (c *LocalGitClient) RepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.Run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// CurrentBranch implements the GitClient interface.
func (c *LocalGitClient) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// BranchExists implements the GitClient interface.
func (c *LocalGitClient) BranchExists(ctx context.Context, repoPath string, name string) (bool, error) {
	_, err := c.Run(ctx, repoPath, "rev-parse", "--verify", "--quiet", "refs/heads/"+name)
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// LocalBranches implements the GitClient interface.
func (c *LocalGitClient) LocalBranches(ctx context.Context, repoPath string) ([]string, error) {
	out, err := c.Run(ctx, repoPath, "branch")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// RemoteBranches implements the GitClient interface.
func (c *LocalGitClient) RemoteBranches(ctx context.Context, repoPath string) ([]string, error) {
	out, err := c.Run(ctx, repoPath, "branch", "-r")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// ActivityLog implements the GitClient interface.
func (c *LocalGitClient) ActivityLog(ctx context.Context, repoPath string, ref string, start, end time.Time) ([]byte, error) {
	args := []string{
		"log",
		"--pretty=format:" + CommitBoundary + "%n%ad%n%an <%ae>",
		"--date=short",
		"--numstat",
	}
	if !start.IsZero() {
		args = append(args, "--since="+start.Format(schema.DateFormat))
	}
	if !end.IsZero() {
		args = append(args, "--until="+end.Format(schema.DateFormat)+" 23:59:59")
	}
	if ref != "" {
		args = append(args, ref)
	}
	return c.Run(ctx, repoPath, args...)
}

// splitLines breaks command output into non-empty lines.
func splitLines(out []byte) []string {
	var lines []string
	for _, l := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
