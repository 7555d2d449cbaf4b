package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ViewportScreenshotInput represents the MCP tool input for a screenshot.
type ViewportScreenshotInput struct {
	Width    int  `json:"width,omitempty" jsonschema:"screenshot width in pixels"`
	Height   int  `json:"height,omitempty" jsonschema:"screenshot height in pixels"`
	Compress bool `json:"compress,omitempty" jsonschema:"compress the captured image"`
}

// ViewportScreenshotResult represents the MCP tool output for a screenshot.
type ViewportScreenshotResult struct {
	FilePath string `json:"filePath" jsonschema:"path of the captured image on the editor host"`
}

// ViewportCameraInput represents the MCP tool input for moving the camera.
type ViewportCameraInput struct {
	Location   []float64 `json:"location,omitempty" jsonschema:"camera location [x, y, z]"`
	Rotation   []float64 `json:"rotation,omitempty" jsonschema:"camera rotation [roll, pitch, yaw] in degrees"`
	FocusActor string    `json:"focusActor,omitempty" jsonschema:"actor label to aim the camera at"`
	Distance   float64   `json:"distance,omitempty" jsonschema:"distance from the focus actor"`
}

// ViewportCameraResult represents the MCP tool output for moving the camera.
type ViewportCameraResult struct {
	Location []float64 `json:"location,omitempty" jsonschema:"resulting camera location"`
	Rotation []float64 `json:"rotation,omitempty" jsonschema:"resulting camera rotation"`
}

// ViewportModeInput represents the MCP tool input for switching view mode.
type ViewportModeInput struct {
	Mode string `json:"mode" jsonschema:"view mode: perspective, top, bottom, left, right, front, back"`
}

// ViewportModeResult represents the MCP tool output for switching view mode.
type ViewportModeResult struct {
	Mode string `json:"mode" jsonschema:"active view mode"`
}

// ViewportFocusInput represents the MCP tool input for focusing an actor.
type ViewportFocusInput struct {
	ActorName string `json:"actorName" jsonschema:"actor label to focus the viewport on"`
}

// ViewportFocusResult represents the MCP tool output for focusing an actor.
type ViewportFocusResult struct {
	ActorName string `json:"actorName" jsonschema:"focused actor"`
}

// ViewportRenderModeInput represents the MCP tool input for the render mode.
type ViewportRenderModeInput struct {
	Mode string `json:"mode" jsonschema:"render mode: lit, unlit, wireframe, detail_lighting, lighting_only"`
}

// ViewportRenderModeResult represents the MCP tool output for the render mode.
type ViewportRenderModeResult struct {
	Mode string `json:"mode" jsonschema:"active render mode"`
}

// ViewportScreenshotTool describes the viewport_screenshot MCP tool.
func ViewportScreenshotTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "viewport_screenshot",
		Description: "Captures the active viewport to an image file on the editor host.",
	}
}

// ViewportCameraTool describes the viewport_camera MCP tool.
func ViewportCameraTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "viewport_camera",
		Description: "Positions the viewport camera by explicit transform or by focusing an actor at a distance.",
	}
}

// ViewportModeTool describes the viewport_mode MCP tool.
func ViewportModeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "viewport_mode",
		Description: "Switches the viewport between perspective and orthographic view modes.",
	}
}

// ViewportFocusTool describes the viewport_focus MCP tool.
func ViewportFocusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "viewport_focus",
		Description: "Frames an actor in the viewport.",
	}
}

// ViewportRenderModeTool describes the viewport_render_mode MCP tool.
func ViewportRenderModeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "viewport_render_mode",
		Description: "Changes the viewport render mode (lit, unlit, wireframe, ...).",
	}
}
