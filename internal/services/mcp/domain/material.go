package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// MaterialListInput represents the MCP tool input for listing materials.
type MaterialListInput struct {
	Path  string `json:"path,omitempty" jsonschema:"content path to search under (default /Game)"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of materials to return"`
}

// MaterialListResult represents the MCP tool output for listing materials.
type MaterialListResult struct {
	Count     int          `json:"count" jsonschema:"number of materials returned"`
	Materials []AssetEntry `json:"materials" jsonschema:"matching material assets"`
}

// MaterialInfoInput represents the MCP tool input for material details.
type MaterialInfoInput struct {
	MaterialPath string `json:"materialPath" jsonschema:"full material asset path"`
}

// MaterialInfoResult represents the MCP tool output for material details.
type MaterialInfoResult struct {
	MaterialPath string         `json:"materialPath" jsonschema:"material asset path"`
	Details      map[string]any `json:"details,omitempty" jsonschema:"material parameters and parent chain"`
}

// MaterialApplyInput represents the MCP tool input for applying a material
// to one slot of an actor's mesh component.
type MaterialApplyInput struct {
	ActorName    string `json:"actorName" jsonschema:"label of the target actor"`
	MaterialPath string `json:"materialPath" jsonschema:"material asset path to apply"`
	SlotIndex    int    `json:"slotIndex,omitempty" jsonschema:"material slot index (default 0)"`
}

// MaterialApplyResult represents the MCP tool output for applying a material.
type MaterialApplyResult struct {
	ActorName    string `json:"actorName" jsonschema:"label of the target actor"`
	MaterialPath string `json:"materialPath" jsonschema:"applied material"`
	SlotIndex    int    `json:"slotIndex" jsonschema:"material slot index"`
	HistoryID    string `json:"historyId" jsonschema:"operation history record id"`
}

// MaterialListTool describes the material_list MCP tool.
func MaterialListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "material_list",
		Description: "Lists material assets under a content path.",
	}
}

// MaterialInfoTool describes the material_info MCP tool.
func MaterialInfoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "material_info",
		Description: "Returns a material's parameters and parent chain.",
	}
}

// MaterialApplyTool describes the material_apply MCP tool.
func MaterialApplyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "material_apply",
		Description: "Applies a material to a slot on an actor's mesh component. The prior material is recorded for undo.",
	}
}
