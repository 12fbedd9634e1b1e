package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/contribs-dev/contribs/core"
	"github.com/contribs-dev/contribs/internal/contract"
	"github.com/contribs-dev/contribs/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

// resolveConfig re-runs validation with the caller-supplied overrides so that
// tool calls go through the same path probe and date checks as the CLI.
func (h *toolHandler) resolveConfig(ctx context.Context, input *contract.ConfigRawInput) (*contract.Config, error) {
	if input.RepoPathStr == "" {
		input.RepoPathStr = h.baseCfg.RepoPath
	}
	cfg := &contract.Config{}
	if err := contract.ProcessAndValidate(ctx, cfg, h.client, input); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (h *toolHandler) handleGetContributionStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := &contract.ConfigRawInput{
		RepoPathStr: request.GetString("repo_path", ""),
		Start:       request.GetString("start", ""),
		End:         request.GetString("end", ""),
		Branch:      request.GetString("branch", ""),
		Output:      string(schema.JSONOut),
		Color:       "no",
	}
	cfg, err := h.resolveConfig(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid stats parameters: %v", err)), nil
	}

	result, err := core.CollectStats(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("stats aggregation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListBranches(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := &contract.ConfigRawInput{
		RepoPathStr: request.GetString("repo_path", ""),
		Output:      string(schema.JSONOut),
		Color:       "no",
	}
	cfg, err := h.resolveConfig(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid branch parameters: %v", err)), nil
	}

	catalog, err := core.BuildBranchCatalog(ctx, h.client, cfg.RepoPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("branch listing failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(catalog, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
