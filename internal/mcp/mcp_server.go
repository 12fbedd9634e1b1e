// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/contribs-dev/contribs/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the contribs MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Contribution Stats Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: get_contribution_stats ---
	s.AddTool(mcp.NewTool("get_contribution_stats",
		mcp.WithDescription("Aggregate per-author, per-date commit and line-change statistics from git history."),
		mcp.WithString("repo_path", mcp.Description("Path to the git repository (defaults to current directory if not specified).")),
		mcp.WithString("start", mcp.Description("Start date as YYYY-MM-DD, or 'beginning' for the full history.")),
		mcp.WithString("end", mcp.Description("End date as YYYY-MM-DD (inclusive).")),
		mcp.WithString("branch", mcp.Description("Branch to query (defaults to the currently checked-out branch).")),
	), h.handleGetContributionStats)

	// --- 2. Tool: list_branches ---
	s.AddTool(mcp.NewTool("list_branches",
		mcp.WithDescription("List local and remote branches with their canonical query references."),
		mcp.WithString("repo_path", mcp.Description("Path to the git repository.")),
	), h.handleListBranches)

	return s
}

// StartMCPServer starts the contribs MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
