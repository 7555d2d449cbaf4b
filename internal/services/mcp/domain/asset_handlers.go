package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AssetListHandler lists project assets. Read-only, not recorded.
func AssetListHandler(executor Executor) mcp.ToolHandlerFor[AssetListInput, AssetListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AssetListInput) (*mcp.CallToolResult, AssetListResult, error) {
		params, err := commandParams(input)
		if err != nil {
			return nil, AssetListResult{}, err
		}
		result, err := executor.Execute(ctx, "asset.list", params)
		if err != nil {
			return nil, AssetListResult{}, fmt.Errorf("asset list failed: %w", err)
		}

		entries, _ := result["assets"].([]any)
		listing := AssetListResult{Assets: make([]AssetEntry, 0, len(entries))}
		for _, entry := range entries {
			fields, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			listing.Assets = append(listing.Assets, AssetEntry{
				Name: resultString(fields, "name"),
				Type: resultString(fields, "type"),
				Path: resultString(fields, "path"),
			})
		}
		listing.Count = len(listing.Assets)
		return textResult("%d asset(s) found", listing.Count), listing, nil
	}
}

// AssetInfoHandler returns details for one asset. Read-only.
func AssetInfoHandler(executor Executor) mcp.ToolHandlerFor[AssetInfoInput, AssetInfoResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AssetInfoInput) (*mcp.CallToolResult, AssetInfoResult, error) {
		if input.AssetPath == "" {
			return nil, AssetInfoResult{}, fmt.Errorf("assetPath is required")
		}
		params, err := commandParams(input)
		if err != nil {
			return nil, AssetInfoResult{}, err
		}
		result, err := executor.Execute(ctx, "asset.info", params)
		if err != nil {
			return nil, AssetInfoResult{}, fmt.Errorf("asset info failed: %w", err)
		}

		info := AssetInfoResult{
			AssetPath: input.AssetPath,
			AssetType: resultString(result, "assetType"),
			Details:   result,
		}
		return textResult("%s (%s)", input.AssetPath, info.AssetType), info, nil
	}
}
