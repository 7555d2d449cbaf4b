package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ActorSpawnInput represents the MCP tool input for spawning an actor.
type ActorSpawnInput struct {
	AssetPath string    `json:"assetPath" jsonschema:"asset path to spawn (e.g. /Game/ModularOldTown/Meshes/SM_Wall01)"`
	Name      string    `json:"name,omitempty" jsonschema:"optional actor label; generated when omitted"`
	Location  []float64 `json:"location,omitempty" jsonschema:"world location [x, y, z]"`
	Rotation  []float64 `json:"rotation,omitempty" jsonschema:"rotation [roll, pitch, yaw] in degrees"`
	Scale     []float64 `json:"scale,omitempty" jsonschema:"scale [x, y, z]"`
	Folder    string    `json:"folder,omitempty" jsonschema:"World Outliner folder path"`
}

// ActorSpawnResult represents the MCP tool output for spawning an actor.
type ActorSpawnResult struct {
	ActorName string    `json:"actorName" jsonschema:"label of the spawned actor"`
	AssetPath string    `json:"assetPath" jsonschema:"asset the actor was spawned from"`
	Location  []float64 `json:"location,omitempty" jsonschema:"world location [x, y, z]"`
	Folder    string    `json:"folder,omitempty" jsonschema:"World Outliner folder path"`
	HistoryID string    `json:"historyId" jsonschema:"operation history record id"`
}

// ActorDeleteInput represents the MCP tool input for deleting an actor.
type ActorDeleteInput struct {
	ActorName string `json:"actorName" jsonschema:"label of the actor to delete"`
}

// ActorDeleteResult represents the MCP tool output for deleting an actor.
type ActorDeleteResult struct {
	ActorName string `json:"actorName" jsonschema:"label of the deleted actor"`
	HistoryID string `json:"historyId" jsonschema:"operation history record id"`
}

// ActorModifyInput represents the MCP tool input for modifying an actor.
type ActorModifyInput struct {
	ActorName string    `json:"actorName" jsonschema:"label of the actor to modify"`
	Location  []float64 `json:"location,omitempty" jsonschema:"new world location [x, y, z]"`
	Rotation  []float64 `json:"rotation,omitempty" jsonschema:"new rotation [roll, pitch, yaw] in degrees"`
	Scale     []float64 `json:"scale,omitempty" jsonschema:"new scale [x, y, z]"`
	Mesh      string    `json:"mesh,omitempty" jsonschema:"replacement static mesh asset path"`
	Folder    string    `json:"folder,omitempty" jsonschema:"new World Outliner folder path"`
}

// ActorModifyResult represents the MCP tool output for modifying an actor.
type ActorModifyResult struct {
	ActorName string `json:"actorName" jsonschema:"label of the modified actor"`
	HistoryID string `json:"historyId" jsonschema:"operation history record id"`
}

// ActorDuplicateInput represents the MCP tool input for duplicating an actor.
type ActorDuplicateInput struct {
	SourceName string    `json:"sourceName" jsonschema:"label of the actor to duplicate"`
	Name       string    `json:"name,omitempty" jsonschema:"optional label for the duplicate"`
	Offset     []float64 `json:"offset,omitempty" jsonschema:"world-space offset [x, y, z] from the source"`
}

// ActorDuplicateResult represents the MCP tool output for duplicating an actor.
type ActorDuplicateResult struct {
	ActorName string `json:"actorName" jsonschema:"label of the new actor"`
	HistoryID string `json:"historyId" jsonschema:"operation history record id"`
}

// ActorOrganizeInput represents the MCP tool input for organizing actors
// into a World Outliner folder.
type ActorOrganizeInput struct {
	Actors  []string `json:"actors,omitempty" jsonschema:"explicit actor labels to move"`
	Pattern string   `json:"pattern,omitempty" jsonschema:"label prefix pattern selecting actors to move"`
	Folder  string   `json:"folder" jsonschema:"destination World Outliner folder path"`
}

// ActorOrganizeResult represents the MCP tool output for organizing actors.
type ActorOrganizeResult struct {
	Count     int      `json:"count" jsonschema:"number of actors moved"`
	Actors    []string `json:"actors,omitempty" jsonschema:"labels of the moved actors"`
	Folder    string   `json:"folder" jsonschema:"destination folder path"`
	HistoryID string   `json:"historyId" jsonschema:"operation history record id"`
}

// ActorSpawnTool describes the actor_spawn MCP tool.
func ActorSpawnTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "actor_spawn",
		Description: "Spawns an actor in the level from an asset path, with optional transform and outliner folder.",
	}
}

// ActorDeleteTool describes the actor_delete MCP tool.
func ActorDeleteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "actor_delete",
		Description: "Deletes an actor by label. The actor's state is captured first so the deletion can be undone.",
	}
}

// ActorModifyTool describes the actor_modify MCP tool.
func ActorModifyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "actor_modify",
		Description: "Modifies an actor's transform, mesh, or outliner folder. Only the supplied fields change.",
	}
}

// ActorDuplicateTool describes the actor_duplicate MCP tool.
func ActorDuplicateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "actor_duplicate",
		Description: "Duplicates an existing actor, optionally applying a world-space offset to the copy.",
	}
}

// ActorOrganizeTool describes the actor_organize MCP tool.
func ActorOrganizeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "actor_organize",
		Description: "Moves actors into a World Outliner folder, selected by explicit labels or a label pattern.",
	}
}
