package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/uemcp/internal/history"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// LevelActorsHandler lists actors in the current level. Read-only, not
// recorded.
func LevelActorsHandler(executor Executor) mcp.ToolHandlerFor[LevelActorsInput, LevelActorsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LevelActorsInput) (*mcp.CallToolResult, LevelActorsResult, error) {
		params, err := commandParams(input)
		if err != nil {
			return nil, LevelActorsResult{}, err
		}
		result, err := executor.Execute(ctx, "level.actors", params)
		if err != nil {
			return nil, LevelActorsResult{}, fmt.Errorf("level actors failed: %w", err)
		}

		entries, _ := result["actors"].([]any)
		listing := LevelActorsResult{Actors: make([]LevelActor, 0, len(entries))}
		for _, entry := range entries {
			fields, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			listing.Actors = append(listing.Actors, LevelActor{
				Name:      resultString(fields, "name"),
				Class:     resultString(fields, "class"),
				AssetPath: resultString(fields, "assetPath"),
				Location:  resultFloats(fields, "location"),
				Folder:    resultString(fields, "folder"),
			})
		}
		listing.Count = len(listing.Actors)
		return textResult("%d actor(s) in level", listing.Count), listing, nil
	}
}

// LevelSaveHandler saves the level. A save has no inverse, so the record
// carries an opaque payload and undo reports it as non-reversible.
func LevelSaveHandler(executor Executor, recorder *history.Manager) mcp.ToolHandlerFor[LevelSaveInput, LevelSaveResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ LevelSaveInput) (*mcp.CallToolResult, LevelSaveResult, error) {
		id := recorder.Record("level_save", nil, history.Options{
			Description: "Save level",
			UndoData:    history.UndoCustom{Payload: "level.save"},
		})

		result, err := executor.Execute(ctx, "level.save", nil)
		if err != nil {
			return nil, LevelSaveResult{}, fmt.Errorf("level save failed: %w", err)
		}
		recorder.SetResult(id, result)

		return textResult("Level saved"), LevelSaveResult{Saved: true, HistoryID: id}, nil
	}
}

// LevelOutlinerHandler returns the World Outliner folder tree. Read-only.
func LevelOutlinerHandler(executor Executor) mcp.ToolHandlerFor[LevelOutlinerInput, LevelOutlinerResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ LevelOutlinerInput) (*mcp.CallToolResult, LevelOutlinerResult, error) {
		result, err := executor.Execute(ctx, "level.outliner", nil)
		if err != nil {
			return nil, LevelOutlinerResult{}, fmt.Errorf("level outliner failed: %w", err)
		}
		folders, _ := result["folders"].(map[string]any)
		return textResult("%d top-level outliner folder(s)", len(folders)), LevelOutlinerResult{Folders: folders}, nil
	}
}
