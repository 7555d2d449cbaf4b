package domain

import (
	"context"
	"fmt"
	"log"

	"github.com/louisbranch/uemcp/internal/history"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// fetchActorState asks the listener for an actor's current state, the raw
// material for deletion and mutation undo payloads.
func fetchActorState(ctx context.Context, executor Executor, actorName string) (history.ActorSnapshot, error) {
	result, err := executor.Execute(ctx, "actor.get_state", map[string]any{"actorName": actorName})
	if err != nil {
		return history.ActorSnapshot{}, err
	}
	return history.ActorSnapshot{
		ActorName: actorName,
		AssetPath: resultString(result, "asset_path"),
		Location:  resultFloats(result, "location"),
		Rotation:  resultFloats(result, "rotation"),
		Scale:     resultFloats(result, "scale"),
		Mesh:      resultString(result, "mesh"),
		Folder:    resultString(result, "folder"),
	}, nil
}

// ActorSpawnHandler spawns an actor and records the operation so undo can
// delete it again.
func ActorSpawnHandler(executor Executor, recorder *history.Manager) mcp.ToolHandlerFor[ActorSpawnInput, ActorSpawnResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ActorSpawnInput) (*mcp.CallToolResult, ActorSpawnResult, error) {
		params, err := commandParams(input)
		if err != nil {
			return nil, ActorSpawnResult{}, err
		}
		id := recorder.Record("actor_spawn", params, history.Options{
			Description: fmt.Sprintf("Spawn %s", input.AssetPath),
		})

		result, err := executor.Execute(ctx, "actor.spawn", params)
		if err != nil {
			return nil, ActorSpawnResult{}, fmt.Errorf("actor spawn failed: %w", err)
		}
		recorder.SetResult(id, result)

		actorName := resultString(result, "actorName")
		if actorName != "" {
			recorder.SetUndoData(id, history.UndoCreation{ActorName: actorName})
		}

		spawned := ActorSpawnResult{
			ActorName: actorName,
			AssetPath: input.AssetPath,
			Location:  resultFloats(result, "location"),
			Folder:    resultString(result, "folder"),
			HistoryID: id,
		}
		return textResult("Spawned %s from %s", actorName, input.AssetPath), spawned, nil
	}
}

// ActorDeleteHandler captures the actor's state, deletes it, and attaches a
// deletion undo payload so the actor can be recreated.
func ActorDeleteHandler(executor Executor, recorder *history.Manager) mcp.ToolHandlerFor[ActorDeleteInput, ActorDeleteResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ActorDeleteInput) (*mcp.CallToolResult, ActorDeleteResult, error) {
		if input.ActorName == "" {
			return nil, ActorDeleteResult{}, fmt.Errorf("actorName is required")
		}

		snapshot, snapErr := fetchActorState(ctx, executor, input.ActorName)
		if snapErr != nil {
			// Deletion proceeds without undo data; the record stays on the
			// timeline and undo reports it as non-reversible.
			log.Printf("actor state capture failed for %s: %v", input.ActorName, snapErr)
		}

		params, err := commandParams(input)
		if err != nil {
			return nil, ActorDeleteResult{}, err
		}
		id := recorder.Record("actor_delete", params, history.Options{
			Description: fmt.Sprintf("Delete %s", input.ActorName),
		})

		result, err := executor.Execute(ctx, "actor.delete", params)
		if err != nil {
			return nil, ActorDeleteResult{}, fmt.Errorf("actor delete failed: %w", err)
		}
		recorder.SetResult(id, result)
		if snapErr == nil {
			recorder.SetUndoData(id, history.UndoDeletion{Prior: snapshot})
		}

		return textResult("Deleted %s", input.ActorName), ActorDeleteResult{
			ActorName: input.ActorName,
			HistoryID: id,
		}, nil
	}
}

// ActorModifyHandler applies a transform/mesh/folder change, recording the
// prior values of exactly the fields it touches.
func ActorModifyHandler(executor Executor, recorder *history.Manager) mcp.ToolHandlerFor[ActorModifyInput, ActorModifyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ActorModifyInput) (*mcp.CallToolResult, ActorModifyResult, error) {
		if input.ActorName == "" {
			return nil, ActorModifyResult{}, fmt.Errorf("actorName is required")
		}
		if input.Location == nil && input.Rotation == nil && input.Scale == nil && input.Mesh == "" && input.Folder == "" {
			return nil, ActorModifyResult{}, fmt.Errorf("at least one of location, rotation, scale, mesh, or folder is required")
		}

		var prior history.StateDelta
		snapshot, snapErr := fetchActorState(ctx, executor, input.ActorName)
		if snapErr != nil {
			log.Printf("actor state capture failed for %s: %v", input.ActorName, snapErr)
		} else {
			if input.Location != nil {
				prior.Location = snapshot.Location
			}
			if input.Rotation != nil {
				prior.Rotation = snapshot.Rotation
			}
			if input.Scale != nil {
				prior.Scale = snapshot.Scale
			}
			if input.Mesh != "" {
				prior.Mesh = snapshot.Mesh
			}
			if input.Folder != "" {
				prior.Folder = snapshot.Folder
			}
		}

		params, err := commandParams(input)
		if err != nil {
			return nil, ActorModifyResult{}, err
		}
		id := recorder.Record("actor_modify", params, history.Options{
			Description: fmt.Sprintf("Modify %s", input.ActorName),
		})

		result, err := executor.Execute(ctx, "actor.modify", params)
		if err != nil {
			return nil, ActorModifyResult{}, fmt.Errorf("actor modify failed: %w", err)
		}
		recorder.SetResult(id, result)
		if snapErr == nil {
			recorder.SetUndoData(id, history.UndoMutation{ActorName: input.ActorName, Prior: prior})
		}

		return textResult("Modified %s", input.ActorName), ActorModifyResult{
			ActorName: input.ActorName,
			HistoryID: id,
		}, nil
	}
}

// ActorDuplicateHandler duplicates an actor; the copy is undoable like a
// spawn.
func ActorDuplicateHandler(executor Executor, recorder *history.Manager) mcp.ToolHandlerFor[ActorDuplicateInput, ActorDuplicateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ActorDuplicateInput) (*mcp.CallToolResult, ActorDuplicateResult, error) {
		if input.SourceName == "" {
			return nil, ActorDuplicateResult{}, fmt.Errorf("sourceName is required")
		}

		params, err := commandParams(input)
		if err != nil {
			return nil, ActorDuplicateResult{}, err
		}
		id := recorder.Record("actor_duplicate", params, history.Options{
			Description: fmt.Sprintf("Duplicate %s", input.SourceName),
		})

		result, err := executor.Execute(ctx, "actor.duplicate", params)
		if err != nil {
			return nil, ActorDuplicateResult{}, fmt.Errorf("actor duplicate failed: %w", err)
		}
		recorder.SetResult(id, result)

		actorName := resultString(result, "actorName")
		if actorName != "" {
			recorder.SetUndoData(id, history.UndoCreation{ActorName: actorName})
		}

		return textResult("Duplicated %s as %s", input.SourceName, actorName), ActorDuplicateResult{
			ActorName: actorName,
			HistoryID: id,
		}, nil
	}
}

// ActorOrganizeHandler moves actors into an outliner folder. Prior folder
// paths vary per actor, so the undo payload is the listener's report of
// what moved from where.
func ActorOrganizeHandler(executor Executor, recorder *history.Manager) mcp.ToolHandlerFor[ActorOrganizeInput, ActorOrganizeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ActorOrganizeInput) (*mcp.CallToolResult, ActorOrganizeResult, error) {
		if input.Folder == "" {
			return nil, ActorOrganizeResult{}, fmt.Errorf("folder is required")
		}
		if len(input.Actors) == 0 && input.Pattern == "" {
			return nil, ActorOrganizeResult{}, fmt.Errorf("either actors or pattern is required")
		}

		params, err := commandParams(input)
		if err != nil {
			return nil, ActorOrganizeResult{}, err
		}
		id := recorder.Record("actor_organize", params, history.Options{
			Description: fmt.Sprintf("Organize actors into %s", input.Folder),
		})

		result, err := executor.Execute(ctx, "actor.organize", params)
		if err != nil {
			return nil, ActorOrganizeResult{}, fmt.Errorf("actor organize failed: %w", err)
		}
		recorder.SetResult(id, result)
		if priorFolders, ok := result["priorFolders"]; ok {
			recorder.SetUndoData(id, history.UndoCustom{Payload: priorFolders})
		}

		moved := resultStrings(result, "movedActors")
		organized := ActorOrganizeResult{
			Count:     len(moved),
			Actors:    moved,
			Folder:    input.Folder,
			HistoryID: id,
		}
		return textResult("Moved %d actor(s) into %s", organized.Count, input.Folder), organized, nil
	}
}
