package mcp_test

import (
	"context"
	"testing"

	"github.com/contribs-dev/contribs/internal/contract"
	mcp_internal "github.com/contribs-dev/contribs/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMCPServer_RegistersTools(t *testing.T) {
	baseCfg := &contract.Config{RepoPath: "/test/repo"}
	mockClient := &contract.MockGitClient{}

	s := mcp_internal.NewMCPServer(baseCfg, mockClient)

	require.NotNil(t, s.GetTool("get_contribution_stats"))
	require.NotNil(t, s.GetTool("list_branches"))
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{RepoPath: "/test/repo"}
	mockClient := &contract.MockGitClient{}

	s := mcp_internal.NewMCPServer(baseCfg, mockClient)
	ctx := context.Background()

	t.Run("get_contribution_stats invalid start date", func(t *testing.T) {
		tool := s.GetTool("get_contribution_stats")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_contribution_stats",
				Arguments: map[string]any{
					"start": "not-a-date",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid stats parameters")
	})

	t.Run("get_contribution_stats start after end", func(t *testing.T) {
		tool := s.GetTool("get_contribution_stats")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_contribution_stats",
				Arguments: map[string]any{
					"start": "2025-06-30",
					"end":   "2025-01-01",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid stats parameters")
	})
}

func TestMCPServerHandlers_ListBranches(t *testing.T) {
	baseCfg := &contract.Config{RepoPath: "/test/repo"}
	mockClient := &contract.MockGitClient{}
	mockClient.On("IsRepository", mock.Anything, mock.AnythingOfType("string")).Return(true, nil)
	mockClient.On("RepoRoot", mock.Anything, mock.AnythingOfType("string")).Return("/test/repo", nil)
	mockClient.On("LocalBranches", mock.Anything, "/test/repo").Return([]string{"* main"}, nil)
	mockClient.On("RemoteBranches", mock.Anything, "/test/repo").Return([]string{"  origin/main"}, nil)

	s := mcp_internal.NewMCPServer(baseCfg, mockClient)
	tool := s.GetTool("list_branches")
	require.NotNil(t, tool)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "list_branches",
			Arguments: map[string]any{},
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)
	text := res.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, `"main"`)
	assert.Contains(t, text, `"origin/main"`)
}
