package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/uemcp/internal/history"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MaterialListHandler lists material assets. Read-only.
func MaterialListHandler(executor Executor) mcp.ToolHandlerFor[MaterialListInput, MaterialListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MaterialListInput) (*mcp.CallToolResult, MaterialListResult, error) {
		params, err := commandParams(input)
		if err != nil {
			return nil, MaterialListResult{}, err
		}
		result, err := executor.Execute(ctx, "material.list", params)
		if err != nil {
			return nil, MaterialListResult{}, fmt.Errorf("material list failed: %w", err)
		}

		entries, _ := result["materials"].([]any)
		listing := MaterialListResult{Materials: make([]AssetEntry, 0, len(entries))}
		for _, entry := range entries {
			fields, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			listing.Materials = append(listing.Materials, AssetEntry{
				Name: resultString(fields, "name"),
				Type: resultString(fields, "type"),
				Path: resultString(fields, "path"),
			})
		}
		listing.Count = len(listing.Materials)
		return textResult("%d material(s) found", listing.Count), listing, nil
	}
}

// MaterialInfoHandler returns details for one material. Read-only.
func MaterialInfoHandler(executor Executor) mcp.ToolHandlerFor[MaterialInfoInput, MaterialInfoResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MaterialInfoInput) (*mcp.CallToolResult, MaterialInfoResult, error) {
		if input.MaterialPath == "" {
			return nil, MaterialInfoResult{}, fmt.Errorf("materialPath is required")
		}
		params, err := commandParams(input)
		if err != nil {
			return nil, MaterialInfoResult{}, err
		}
		result, err := executor.Execute(ctx, "material.info", params)
		if err != nil {
			return nil, MaterialInfoResult{}, fmt.Errorf("material info failed: %w", err)
		}
		return textResult("%s", input.MaterialPath), MaterialInfoResult{
			MaterialPath: input.MaterialPath,
			Details:      result,
		}, nil
	}
}

// MaterialApplyHandler swaps a material on one slot, capturing the prior
// material reference reported by the listener for undo.
func MaterialApplyHandler(executor Executor, recorder *history.Manager) mcp.ToolHandlerFor[MaterialApplyInput, MaterialApplyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MaterialApplyInput) (*mcp.CallToolResult, MaterialApplyResult, error) {
		if input.ActorName == "" {
			return nil, MaterialApplyResult{}, fmt.Errorf("actorName is required")
		}
		if input.MaterialPath == "" {
			return nil, MaterialApplyResult{}, fmt.Errorf("materialPath is required")
		}

		params, err := commandParams(input)
		if err != nil {
			return nil, MaterialApplyResult{}, err
		}
		id := recorder.Record("material_apply", params, history.Options{
			Description: fmt.Sprintf("Apply %s to %s slot %d", input.MaterialPath, input.ActorName, input.SlotIndex),
		})

		result, err := executor.Execute(ctx, "material.apply", params)
		if err != nil {
			return nil, MaterialApplyResult{}, fmt.Errorf("material apply failed: %w", err)
		}
		recorder.SetResult(id, result)

		if prior := resultString(result, "previousMaterial"); prior != "" {
			recorder.SetUndoData(id, history.UndoMaterialChange{
				ActorName:     input.ActorName,
				PriorMaterial: prior,
				SlotIndex:     input.SlotIndex,
			})
		}

		applied := MaterialApplyResult{
			ActorName:    input.ActorName,
			MaterialPath: input.MaterialPath,
			SlotIndex:    input.SlotIndex,
			HistoryID:    id,
		}
		return textResult("Applied %s to %s slot %d", input.MaterialPath, input.ActorName, input.SlotIndex), applied, nil
	}
}
