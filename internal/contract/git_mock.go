package contract

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient type. It lives outside
// the test files so that other packages can drive the core logic without a
// real git executable.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	mockArgs := []any{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// IsRepository implements the GitClient interface.
func (m *MockGitClient) IsRepository(ctx context.Context, path string) (bool, error) {
	ret := m.Called(ctx, path)
	return ret.Bool(0), ret.Error(1)
}

// RepoRoot implements the GitClient interface.
func (m *MockGitClient) RepoRoot(ctx context.Context, contextPath string) (string, error) {
	ret := m.Called(ctx, contextPath)
	return ret.String(0), ret.Error(1)
}

// CurrentBranch implements the GitClient interface.
func (m *MockGitClient) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	ret := m.Called(ctx, repoPath)
	return ret.String(0), ret.Error(1)
}

// BranchExists implements the GitClient interface.
func (m *MockGitClient) BranchExists(ctx context.Context, repoPath string, name string) (bool, error) {
	ret := m.Called(ctx, repoPath, name)
	return ret.Bool(0), ret.Error(1)
}

// LocalBranches implements the GitClient interface.
func (m *MockGitClient) LocalBranches(ctx context.Context, repoPath string) ([]string, error) {
	ret := m.Called(ctx, repoPath)
	lines, _ := ret.Get(0).([]string)
	return lines, ret.Error(1)
}

// RemoteBranches implements the GitClient interface.
func (m *MockGitClient) RemoteBranches(ctx context.Context, repoPath string) ([]string, error) {
	ret := m.Called(ctx, repoPath)
	lines, _ := ret.Get(0).([]string)
	return lines, ret.Error(1)
}

// ActivityLog implements the GitClient interface.
func (m *MockGitClient) ActivityLog(ctx context.Context, repoPath string, ref string, start, end time.Time) ([]byte, error) {
	ret := m.Called(ctx, repoPath, ref, start, end)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}
