package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// AssetListInput represents the MCP tool input for listing project assets.
type AssetListInput struct {
	Path      string `json:"path,omitempty" jsonschema:"content path to search under (default /Game)"`
	AssetType string `json:"assetType,omitempty" jsonschema:"optional asset class filter (e.g. StaticMesh, Material)"`
	Limit     int    `json:"limit,omitempty" jsonschema:"maximum number of assets to return"`
}

// AssetEntry is one asset in a listing.
type AssetEntry struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	Path string `json:"path"`
}

// AssetListResult represents the MCP tool output for listing project assets.
type AssetListResult struct {
	Count  int          `json:"count" jsonschema:"number of assets returned"`
	Assets []AssetEntry `json:"assets" jsonschema:"matching assets"`
}

// AssetInfoInput represents the MCP tool input for asset details.
type AssetInfoInput struct {
	AssetPath string `json:"assetPath" jsonschema:"full asset path (e.g. /Game/Meshes/SM_Wall01)"`
}

// AssetInfoResult represents the MCP tool output for asset details.
type AssetInfoResult struct {
	AssetPath string         `json:"assetPath" jsonschema:"asset path"`
	AssetType string         `json:"assetType,omitempty" jsonschema:"asset class"`
	Details   map[string]any `json:"details,omitempty" jsonschema:"type-specific details (bounds, sockets, materials)"`
}

// AssetListTool describes the asset_list MCP tool.
func AssetListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "asset_list",
		Description: "Lists project assets under a content path, optionally filtered by asset class.",
	}
}

// AssetInfoTool describes the asset_info MCP tool.
func AssetInfoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "asset_info",
		Description: "Returns detailed information about an asset: bounds, pivot, sockets, material slots.",
	}
}
