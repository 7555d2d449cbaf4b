package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Viewport operations are ephemeral editor state: they never touch the
// level, so none of them are recorded on the history timeline.

// ViewportScreenshotHandler captures the viewport to a file.
func ViewportScreenshotHandler(executor Executor) mcp.ToolHandlerFor[ViewportScreenshotInput, ViewportScreenshotResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ViewportScreenshotInput) (*mcp.CallToolResult, ViewportScreenshotResult, error) {
		params, err := commandParams(input)
		if err != nil {
			return nil, ViewportScreenshotResult{}, err
		}
		result, err := executor.Execute(ctx, "viewport.screenshot", params)
		if err != nil {
			return nil, ViewportScreenshotResult{}, fmt.Errorf("viewport screenshot failed: %w", err)
		}
		filePath := resultString(result, "filepath")
		if filePath == "" {
			filePath = resultString(result, "filePath")
		}
		return textResult("Screenshot saved to %s", filePath), ViewportScreenshotResult{FilePath: filePath}, nil
	}
}

// ViewportCameraHandler positions the viewport camera.
func ViewportCameraHandler(executor Executor) mcp.ToolHandlerFor[ViewportCameraInput, ViewportCameraResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ViewportCameraInput) (*mcp.CallToolResult, ViewportCameraResult, error) {
		if input.Location == nil && input.Rotation == nil && input.FocusActor == "" {
			return nil, ViewportCameraResult{}, fmt.Errorf("either location/rotation or focusActor is required")
		}
		params, err := commandParams(input)
		if err != nil {
			return nil, ViewportCameraResult{}, err
		}
		result, err := executor.Execute(ctx, "viewport.camera", params)
		if err != nil {
			return nil, ViewportCameraResult{}, fmt.Errorf("viewport camera failed: %w", err)
		}
		moved := ViewportCameraResult{
			Location: resultFloats(result, "location"),
			Rotation: resultFloats(result, "rotation"),
		}
		return textResult("Camera moved"), moved, nil
	}
}

// ViewportModeHandler switches the viewport view mode.
func ViewportModeHandler(executor Executor) mcp.ToolHandlerFor[ViewportModeInput, ViewportModeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ViewportModeInput) (*mcp.CallToolResult, ViewportModeResult, error) {
		if input.Mode == "" {
			return nil, ViewportModeResult{}, fmt.Errorf("mode is required")
		}
		params, err := commandParams(input)
		if err != nil {
			return nil, ViewportModeResult{}, err
		}
		if _, err := executor.Execute(ctx, "viewport.mode", params); err != nil {
			return nil, ViewportModeResult{}, fmt.Errorf("viewport mode failed: %w", err)
		}
		return textResult("Viewport set to %s", input.Mode), ViewportModeResult{Mode: input.Mode}, nil
	}
}

// ViewportFocusHandler frames an actor in the viewport.
func ViewportFocusHandler(executor Executor) mcp.ToolHandlerFor[ViewportFocusInput, ViewportFocusResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ViewportFocusInput) (*mcp.CallToolResult, ViewportFocusResult, error) {
		if input.ActorName == "" {
			return nil, ViewportFocusResult{}, fmt.Errorf("actorName is required")
		}
		params, err := commandParams(input)
		if err != nil {
			return nil, ViewportFocusResult{}, err
		}
		if _, err := executor.Execute(ctx, "viewport.focus", params); err != nil {
			return nil, ViewportFocusResult{}, fmt.Errorf("viewport focus failed: %w", err)
		}
		return textResult("Focused %s", input.ActorName), ViewportFocusResult{ActorName: input.ActorName}, nil
	}
}

// ViewportRenderModeHandler changes the render mode.
func ViewportRenderModeHandler(executor Executor) mcp.ToolHandlerFor[ViewportRenderModeInput, ViewportRenderModeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ViewportRenderModeInput) (*mcp.CallToolResult, ViewportRenderModeResult, error) {
		if input.Mode == "" {
			return nil, ViewportRenderModeResult{}, fmt.Errorf("mode is required")
		}
		params, err := commandParams(input)
		if err != nil {
			return nil, ViewportRenderModeResult{}, err
		}
		if _, err := executor.Execute(ctx, "viewport.render_mode", params); err != nil {
			return nil, ViewportRenderModeResult{}, fmt.Errorf("viewport render mode failed: %w", err)
		}
		return textResult("Render mode set to %s", input.Mode), ViewportRenderModeResult{Mode: input.Mode}, nil
	}
}
