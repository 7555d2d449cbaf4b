package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// LevelActorsInput represents the MCP tool input for listing level actors.
type LevelActorsInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"optional label substring filter"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of actors to return"`
}

// LevelActor is one actor entry in a level listing.
type LevelActor struct {
	Name      string    `json:"name"`
	Class     string    `json:"class,omitempty"`
	AssetPath string    `json:"assetPath,omitempty"`
	Location  []float64 `json:"location,omitempty"`
	Folder    string    `json:"folder,omitempty"`
}

// LevelActorsResult represents the MCP tool output for listing level actors.
type LevelActorsResult struct {
	Count  int          `json:"count" jsonschema:"number of actors returned"`
	Actors []LevelActor `json:"actors" jsonschema:"actors in the current level"`
}

// LevelSaveInput represents the MCP tool input for saving the level.
type LevelSaveInput struct{}

// LevelSaveResult represents the MCP tool output for saving the level.
type LevelSaveResult struct {
	Saved     bool   `json:"saved" jsonschema:"whether the level was saved"`
	HistoryID string `json:"historyId" jsonschema:"operation history record id"`
}

// LevelOutlinerInput represents the MCP tool input for the outliner tree.
type LevelOutlinerInput struct{}

// LevelOutlinerResult represents the MCP tool output for the outliner tree.
type LevelOutlinerResult struct {
	Folders map[string]any `json:"folders" jsonschema:"World Outliner folder tree with actor counts"`
}

// LevelActorsTool describes the level_actors MCP tool.
func LevelActorsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "level_actors",
		Description: "Lists actors in the current level, optionally filtered by a label substring.",
	}
}

// LevelSaveTool describes the level_save MCP tool.
func LevelSaveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "level_save",
		Description: "Saves the current level. Saving cannot be undone; the operation is recorded for the audit trail only.",
	}
}

// LevelOutlinerTool describes the level_outliner MCP tool.
func LevelOutlinerTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "level_outliner",
		Description: "Returns the World Outliner folder structure with per-folder actor counts.",
	}
}
