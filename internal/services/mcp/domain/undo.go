package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// UndoInput represents the MCP tool input for undoing the last operation.
type UndoInput struct{}

// UndoResult represents the MCP tool output for undo.
type UndoResult struct {
	Undone      bool   `json:"undone" jsonschema:"whether the cursor moved back"`
	Reversed    bool   `json:"reversed" jsonschema:"whether the operation was physically reversed in the editor"`
	ToolName    string `json:"toolName,omitempty" jsonschema:"tool of the undone operation"`
	Description string `json:"description,omitempty" jsonschema:"description of the undone operation"`
	Detail      string `json:"detail,omitempty" jsonschema:"extra context, e.g. why reversal was skipped"`
}

// RedoInput represents the MCP tool input for redoing the last undone
// operation.
type RedoInput struct{}

// RedoResult represents the MCP tool output for redo.
type RedoResult struct {
	Redone      bool   `json:"redone" jsonschema:"whether the cursor moved forward"`
	ToolName    string `json:"toolName,omitempty" jsonschema:"tool of the redone operation"`
	Description string `json:"description,omitempty" jsonschema:"description of the redone operation"`
}

// HistoryEntry is one record in a history listing.
type HistoryEntry struct {
	ID          string `json:"id"`
	ToolName    string `json:"toolName"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	Undoable    bool   `json:"undoable"`
}

// HistoryListInput represents the MCP tool input for listing history.
type HistoryListInput struct {
	Count int `json:"count,omitempty" jsonschema:"maximum entries per direction (default 10)"`
}

// HistoryListResult represents the MCP tool output for listing history.
type HistoryListResult struct {
	Undoable []HistoryEntry `json:"undoable" jsonschema:"operations that undo would reverse, most recent first"`
	Redoable []HistoryEntry `json:"redoable" jsonschema:"operations that redo would replay, in order"`
}

// HistoryStatusInput represents the MCP tool input for the history status.
type HistoryStatusInput struct{}

// HistoryStatusResult represents the MCP tool output for the history status.
type HistoryStatusResult struct {
	TotalOperations int      `json:"totalOperations" jsonschema:"records on the timeline"`
	CurrentIndex    int      `json:"currentIndex" jsonschema:"cursor position, -1 when everything is undone"`
	CanUndo         bool     `json:"canUndo" jsonschema:"whether undo is possible"`
	CanRedo         bool     `json:"canRedo" jsonschema:"whether redo is possible"`
	Checkpoints     []string `json:"checkpoints" jsonschema:"named checkpoints currently held"`
}

// CheckpointCreateInput represents the MCP tool input for creating a
// checkpoint.
type CheckpointCreateInput struct {
	Name string `json:"name" jsonschema:"checkpoint name; reusing a name overwrites it"`
}

// CheckpointCreateResult represents the MCP tool output for creating a
// checkpoint.
type CheckpointCreateResult struct {
	Name  string `json:"name" jsonschema:"checkpoint name"`
	Index int    `json:"index" jsonschema:"timeline index the checkpoint bookmarks"`
}

// CheckpointRestoreInput represents the MCP tool input for rolling back to
// a checkpoint.
type CheckpointRestoreInput struct {
	Name string `json:"name" jsonschema:"checkpoint to roll back to"`
}

// CheckpointRestoreResult represents the MCP tool output for a rollback.
type CheckpointRestoreResult struct {
	Name             string `json:"name" jsonschema:"checkpoint name"`
	OperationsUndone int    `json:"operationsUndone" jsonschema:"operations stepped back"`
	Skipped          int    `json:"skipped" jsonschema:"operations stepped over without physical reversal"`
}

// HistoryClearInput represents the MCP tool input for clearing history.
type HistoryClearInput struct{}

// HistoryClearResult represents the MCP tool output for clearing history.
type HistoryClearResult struct {
	Cleared bool `json:"cleared" jsonschema:"whether the timeline was emptied"`
}

// UndoTool describes the undo MCP tool.
func UndoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "undo",
		Description: "Reverses the most recent recorded operation in the editor and steps the history cursor back.",
	}
}

// RedoTool describes the redo MCP tool.
func RedoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "redo",
		Description: "Replays the most recently undone operation and steps the history cursor forward.",
	}
}

// HistoryListTool describes the history_list MCP tool.
func HistoryListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "history_list",
		Description: "Lists undoable and redoable operations without changing any state.",
	}
}

// HistoryStatusTool describes the history_status MCP tool.
func HistoryStatusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "history_status",
		Description: "Reports the history timeline status: totals, cursor, undo/redo availability, checkpoints.",
	}
}

// CheckpointCreateTool describes the checkpoint_create MCP tool.
func CheckpointCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "checkpoint_create",
		Description: "Bookmarks the current history position under a name for later bulk rollback.",
	}
}

// CheckpointRestoreTool describes the checkpoint_restore MCP tool.
func CheckpointRestoreTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "checkpoint_restore",
		Description: "Undoes every operation recorded after the named checkpoint, newest first.",
	}
}

// HistoryClearTool describes the history_clear MCP tool.
func HistoryClearTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "history_clear",
		Description: "Empties the operation history and drops all checkpoints. Does not touch the level.",
	}
}
