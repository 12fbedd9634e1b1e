package contract

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipIfGitNotAvailable skips the test if git binary is not found in PATH
func skipIfGitNotAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skipf("git binary not found in PATH: %v", err)
	}
}

// initTestRepo creates a throwaway repository with a single commit and
// returns its path.
func initTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=Test Author",
			"GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=Test Author",
			"GIT_COMMITTER_EMAIL=test@example.com",
		)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}

	run("init", "--initial-branch=main")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("one\ntwo\n"), 0o644))
	run("add", "file.txt")
	run("commit", "-m", "initial commit")
	return dir
}

func TestMockGitClient_Run(t *testing.T) {
	mockClient := new(MockGitClient)
	ctx := context.Background()

	const expectedRepoPath = "/path/to/repo"
	expectedOutput := []byte("a1b2c3d commit message")
	expectedError := errors.New("mocked git error")

	// Run flattens (ctx, repoPath, args...) into a single argument list for
	// m.Called, so the expectation must match that flattened form.
	mockClient.
		On("Run", ctx, expectedRepoPath, "log", "-1", "--oneline").
		Return(expectedOutput, expectedError).
		Once()

	out, err := mockClient.Run(ctx, expectedRepoPath, "log", "-1", "--oneline")

	assert.Equal(t, expectedOutput, out)
	assert.Equal(t, expectedError, err)
	mockClient.AssertExpectations(t)
}

func TestCommandError_Error(t *testing.T) {
	err := &CommandError{
		Args:     []string{"rev-parse", "--verify", "refs/heads/ghost"},
		ExitCode: 1,
		Stderr:   "fatal: Needed a single revision",
	}

	msg := err.Error()

	assert.Contains(t, msg, "rev-parse --verify refs/heads/ghost")
	assert.Contains(t, msg, "status 1")
	assert.Contains(t, msg, "fatal: Needed a single revision")
}

func TestCommandError_ErrorWithoutStderr(t *testing.T) {
	err := &CommandError{Args: []string{"branch"}, ExitCode: 128}

	assert.Equal(t, "git branch exited with status 128", err.Error())
}

func TestLocalGitClient_IsRepository(t *testing.T) {
	skipIfGitNotAvailable(t)
	ctx := context.Background()
	client := NewLocalGitClient()
	repo := initTestRepo(t)

	ok, err := client.IsRepository(ctx, repo)
	require.NoError(t, err)
	assert.True(t, ok)

	// A plain directory is a clean negative, not an error.
	ok, err = client.IsRepository(ctx, t.TempDir())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalGitClient_RepoRoot(t *testing.T) {
	skipIfGitNotAvailable(t)
	ctx := context.Background()
	client := NewLocalGitClient()
	repo := initTestRepo(t)

	sub := filepath.Join(repo, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))

	root, err := client.RepoRoot(ctx, sub)

	require.NoError(t, err)
	// MacOS reports temp dirs through /private symlinks, so compare the
	// resolved paths.
	wantRoot, err := filepath.EvalSymlinks(repo)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, wantRoot, gotRoot)
}

func TestLocalGitClient_CurrentBranch(t *testing.T) {
	skipIfGitNotAvailable(t)
	ctx := context.Background()
	client := NewLocalGitClient()
	repo := initTestRepo(t)

	branch, err := client.CurrentBranch(ctx, repo)

	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestLocalGitClient_BranchExists(t *testing.T) {
	skipIfGitNotAvailable(t)
	ctx := context.Background()
	client := NewLocalGitClient()
	repo := initTestRepo(t)

	ok, err := client.BranchExists(ctx, repo, "main")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.BranchExists(ctx, repo, "ghost")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalGitClient_LocalBranches(t *testing.T) {
	skipIfGitNotAvailable(t)
	ctx := context.Background()
	client := NewLocalGitClient()
	repo := initTestRepo(t)

	lines, err := client.LocalBranches(ctx, repo)

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "main")
}

func TestLocalGitClient_ActivityLog(t *testing.T) {
	skipIfGitNotAvailable(t)
	ctx := context.Background()
	client := NewLocalGitClient()
	repo := initTestRepo(t)

	out, err := client.ActivityLog(ctx, repo, "main", time.Time{}, time.Time{})

	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, CommitBoundary)
	assert.Contains(t, text, "Test Author <test@example.com>")
	assert.Contains(t, text, "file.txt")
}

func TestLocalGitClient_ActivityLogBounded(t *testing.T) {
	skipIfGitNotAvailable(t)
	ctx := context.Background()
	client := NewLocalGitClient()
	repo := initTestRepo(t)

	// A window far in the past excludes the commit made just now.
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC)

	out, err := client.ActivityLog(ctx, repo, "main", start, end)

	require.NoError(t, err)
	assert.NotContains(t, string(out), "test@example.com")
}

func TestLocalGitClient_RunCommandError(t *testing.T) {
	skipIfGitNotAvailable(t)
	ctx := context.Background()
	client := NewLocalGitClient()
	repo := initTestRepo(t)

	_, err := client.Run(ctx, repo, "rev-parse", "--verify", "definitely-not-a-ref")

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.NotZero(t, cmdErr.ExitCode)
}

func TestSplitLines(t *testing.T) {
	lines := splitLines([]byte("  main\n\n* develop\n"))

	assert.Equal(t, []string{"  main", "* develop"}, lines)
}
