package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/louisbranch/uemcp/internal/history"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// errNotReversible marks records that carry no structured reversal data.
// The cursor still moves past them so the timeline stays navigable; the
// caller is told nothing changed in the editor.
type errNotReversible struct {
	reason string
}

func (e *errNotReversible) Error() string {
	return e.reason
}

// reverseOperation issues the inverse editor command for one record.
func reverseOperation(ctx context.Context, executor Executor, record history.Record) error {
	switch data := record.UndoData.(type) {
	case history.UndoCreation:
		_, err := executor.Execute(ctx, "actor.delete", map[string]any{"actorName": data.ActorName})
		return err
	case history.UndoDeletion:
		params := map[string]any{
			"assetPath": data.Prior.AssetPath,
			"name":      data.Prior.ActorName,
		}
		if data.Prior.Location != nil {
			params["location"] = data.Prior.Location
		}
		if data.Prior.Rotation != nil {
			params["rotation"] = data.Prior.Rotation
		}
		if data.Prior.Scale != nil {
			params["scale"] = data.Prior.Scale
		}
		if data.Prior.Folder != "" {
			params["folder"] = data.Prior.Folder
		}
		_, err := executor.Execute(ctx, "actor.spawn", params)
		return err
	case history.UndoMutation:
		params := map[string]any{"actorName": data.ActorName}
		if data.Prior.Location != nil {
			params["location"] = data.Prior.Location
		}
		if data.Prior.Rotation != nil {
			params["rotation"] = data.Prior.Rotation
		}
		if data.Prior.Scale != nil {
			params["scale"] = data.Prior.Scale
		}
		if data.Prior.Mesh != "" {
			params["mesh"] = data.Prior.Mesh
		}
		if data.Prior.Folder != "" {
			params["folder"] = data.Prior.Folder
		}
		_, err := executor.Execute(ctx, "actor.modify", params)
		return err
	case history.UndoMaterialChange:
		_, err := executor.Execute(ctx, "material.apply", map[string]any{
			"actorName":    data.ActorName,
			"materialPath": data.PriorMaterial,
			"slotIndex":    data.SlotIndex,
		})
		return err
	case history.UndoCustom:
		return &errNotReversible{reason: fmt.Sprintf("%s has no automatic inverse", record.ToolName)}
	default:
		return &errNotReversible{reason: fmt.Sprintf("no undo data captured for %s", record.ToolName)}
	}
}

// replayCommands maps tool names back to the wire commands redo replays.
var replayCommands = map[string]string{
	"actor_spawn":     "actor.spawn",
	"actor_delete":    "actor.delete",
	"actor_modify":    "actor.modify",
	"actor_duplicate": "actor.duplicate",
	"actor_organize":  "actor.organize",
	"material_apply":  "material.apply",
	"level_save":      "level.save",
	"python_proxy":    "python.execute",
}

// undoOnce reverses the operation at the cursor and steps back. The three
// outcomes: cursor moved with reversal, cursor moved without reversal
// (record carries no inverse), or an executor failure leaving the cursor
// in place.
func undoOnce(ctx context.Context, executor Executor, manager *history.Manager) (UndoResult, error) {
	record, ok := manager.Undoable()
	if !ok {
		return UndoResult{Undone: false, Detail: "nothing to undo"}, nil
	}

	err := reverseOperation(ctx, executor, record)
	if notReversible, skip := err.(*errNotReversible); skip {
		manager.MarkUndone()
		return UndoResult{
			Undone:      true,
			Reversed:    false,
			ToolName:    record.ToolName,
			Description: record.Description,
			Detail:      notReversible.reason,
		}, nil
	}
	if err != nil {
		return UndoResult{}, fmt.Errorf("reverse %s: %w", record.ToolName, err)
	}

	manager.MarkUndone()
	return UndoResult{
		Undone:      true,
		Reversed:    true,
		ToolName:    record.ToolName,
		Description: record.Description,
	}, nil
}

// UndoHandler reverses the most recent operation.
func UndoHandler(executor Executor, manager *history.Manager) mcp.ToolHandlerFor[UndoInput, UndoResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ UndoInput) (*mcp.CallToolResult, UndoResult, error) {
		result, err := undoOnce(ctx, executor, manager)
		if err != nil {
			return nil, UndoResult{}, err
		}
		if !result.Undone {
			return textResult("Nothing to undo"), result, nil
		}
		if !result.Reversed {
			return textResult("Stepped past %s (%s)", result.Description, result.Detail), result, nil
		}
		return textResult("Undid %s", result.Description), result, nil
	}
}

// RedoHandler replays the most recently undone operation.
func RedoHandler(executor Executor, manager *history.Manager) mcp.ToolHandlerFor[RedoInput, RedoResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ RedoInput) (*mcp.CallToolResult, RedoResult, error) {
		record, ok := manager.Redoable()
		if !ok {
			return textResult("Nothing to redo"), RedoResult{Redone: false}, nil
		}

		commandType, ok := replayCommands[record.ToolName]
		if !ok {
			return nil, RedoResult{}, fmt.Errorf("operation %s cannot be replayed", record.ToolName)
		}
		if _, err := executor.Execute(ctx, commandType, record.Args); err != nil {
			return nil, RedoResult{}, fmt.Errorf("replay %s: %w", record.ToolName, err)
		}

		manager.MarkRedone()
		return textResult("Redid %s", record.Description), RedoResult{
			Redone:      true,
			ToolName:    record.ToolName,
			Description: record.Description,
		}, nil
	}
}

// historyEntries converts records for listing output.
func historyEntries(records []history.Record, undoable bool) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, HistoryEntry{
			ID:          record.ID,
			ToolName:    record.ToolName,
			Description: record.Description,
			Timestamp:   record.Timestamp.Format(time.RFC3339),
			Undoable:    undoable,
		})
	}
	return entries
}

// HistoryListHandler lists both directions of the timeline. Read-only.
func HistoryListHandler(manager *history.Manager) mcp.ToolHandlerFor[HistoryListInput, HistoryListResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input HistoryListInput) (*mcp.CallToolResult, HistoryListResult, error) {
		count := input.Count
		if count <= 0 {
			count = 10
		}
		listing := HistoryListResult{
			Undoable: historyEntries(manager.UndoHistory(count), true),
			Redoable: historyEntries(manager.RedoHistory(count), false),
		}
		return textResult("%d undoable, %d redoable", len(listing.Undoable), len(listing.Redoable)), listing, nil
	}
}

// HistoryStatusHandler reports the timeline status. Read-only.
func HistoryStatusHandler(manager *history.Manager) mcp.ToolHandlerFor[HistoryStatusInput, HistoryStatusResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ HistoryStatusInput) (*mcp.CallToolResult, HistoryStatusResult, error) {
		status := manager.Status()
		result := HistoryStatusResult{
			TotalOperations: status.TotalOperations,
			CurrentIndex:    status.CurrentIndex,
			CanUndo:         status.CanUndo,
			CanRedo:         status.CanRedo,
			Checkpoints:     status.Checkpoints,
		}
		return textResult("%d operation(s), cursor at %d", status.TotalOperations, status.CurrentIndex), result, nil
	}
}

// CheckpointCreateHandler bookmarks the current cursor position.
func CheckpointCreateHandler(manager *history.Manager) mcp.ToolHandlerFor[CheckpointCreateInput, CheckpointCreateResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CheckpointCreateInput) (*mcp.CallToolResult, CheckpointCreateResult, error) {
		if input.Name == "" {
			return nil, CheckpointCreateResult{}, fmt.Errorf("name is required")
		}
		manager.CreateCheckpoint(input.Name)
		index, _ := manager.CheckpointIndex(input.Name)
		return textResult("Checkpoint %q at index %d", input.Name, index), CheckpointCreateResult{
			Name:  input.Name,
			Index: index,
		}, nil
	}
}

// CheckpointRestoreHandler undoes back to a named checkpoint, newest
// operation first. Reversal failures abort the walk with the rollback
// partially applied; non-reversible records are stepped over and counted.
func CheckpointRestoreHandler(executor Executor, manager *history.Manager) mcp.ToolHandlerFor[CheckpointRestoreInput, CheckpointRestoreResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CheckpointRestoreInput) (*mcp.CallToolResult, CheckpointRestoreResult, error) {
		if input.Name == "" {
			return nil, CheckpointRestoreResult{}, fmt.Errorf("name is required")
		}
		target, ok := manager.CheckpointIndex(input.Name)
		if !ok {
			return nil, CheckpointRestoreResult{}, fmt.Errorf("checkpoint %q does not exist (it may have been evicted)", input.Name)
		}

		restored := CheckpointRestoreResult{Name: input.Name}
		for manager.Status().CurrentIndex > target {
			result, err := undoOnce(ctx, executor, manager)
			if err != nil {
				return nil, CheckpointRestoreResult{}, fmt.Errorf("rollback to %q stopped after %d operation(s): %w",
					input.Name, restored.OperationsUndone, err)
			}
			if !result.Undone {
				break
			}
			restored.OperationsUndone++
			if !result.Reversed {
				restored.Skipped++
			}
		}
		return textResult("Rolled back %d operation(s) to checkpoint %q", restored.OperationsUndone, input.Name), restored, nil
	}
}

// HistoryClearHandler empties the timeline.
func HistoryClearHandler(manager *history.Manager) mcp.ToolHandlerFor[HistoryClearInput, HistoryClearResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ HistoryClearInput) (*mcp.CallToolResult, HistoryClearResult, error) {
		manager.Clear()
		return textResult("History cleared"), HistoryClearResult{Cleared: true}, nil
	}
}
