package service

import (
	"github.com/louisbranch/uemcp/internal/bridge"
	"github.com/louisbranch/uemcp/internal/history"
	"github.com/louisbranch/uemcp/internal/services/mcp/domain"
)

// registerActorTools wires the actor lifecycle tools. Every mutating tool
// records into the shared history before it touches the editor.
func registerActorTools(registrar mcpRegistrationTarget, client *bridge.Client, manager *history.Manager) error {
	if err := registrar.AddTool(domain.ActorSpawnTool(), domain.ActorSpawnHandler(client, manager)); err != nil {
		return err
	}
	if err := registrar.AddTool(domain.ActorDeleteTool(), domain.ActorDeleteHandler(client, manager)); err != nil {
		return err
	}
	if err := registrar.AddTool(domain.ActorModifyTool(), domain.ActorModifyHandler(client, manager)); err != nil {
		return err
	}
	if err := registrar.AddTool(domain.ActorDuplicateTool(), domain.ActorDuplicateHandler(client, manager)); err != nil {
		return err
	}
	return registrar.AddTool(domain.ActorOrganizeTool(), domain.ActorOrganizeHandler(client, manager))
}

// registerMaterialTools wires material discovery and application.
func registerMaterialTools(registrar mcpRegistrationTarget, client *bridge.Client, manager *history.Manager) error {
	if err := registrar.AddTool(domain.MaterialListTool(), domain.MaterialListHandler(client)); err != nil {
		return err
	}
	if err := registrar.AddTool(domain.MaterialInfoTool(), domain.MaterialInfoHandler(client)); err != nil {
		return err
	}
	return registrar.AddTool(domain.MaterialApplyTool(), domain.MaterialApplyHandler(client, manager))
}

// registerLevelTools wires level inspection and saving.
func registerLevelTools(registrar mcpRegistrationTarget, client *bridge.Client, manager *history.Manager) error {
	if err := registrar.AddTool(domain.LevelActorsTool(), domain.LevelActorsHandler(client)); err != nil {
		return err
	}
	if err := registrar.AddTool(domain.LevelSaveTool(), domain.LevelSaveHandler(client, manager)); err != nil {
		return err
	}
	return registrar.AddTool(domain.LevelOutlinerTool(), domain.LevelOutlinerHandler(client))
}

// registerViewportTools wires viewport control. Viewport state is ephemeral
// and never recorded.
func registerViewportTools(registrar mcpRegistrationTarget, client *bridge.Client) error {
	if err := registrar.AddTool(domain.ViewportScreenshotTool(), domain.ViewportScreenshotHandler(client)); err != nil {
		return err
	}
	if err := registrar.AddTool(domain.ViewportCameraTool(), domain.ViewportCameraHandler(client)); err != nil {
		return err
	}
	if err := registrar.AddTool(domain.ViewportModeTool(), domain.ViewportModeHandler(client)); err != nil {
		return err
	}
	if err := registrar.AddTool(domain.ViewportFocusTool(), domain.ViewportFocusHandler(client)); err != nil {
		return err
	}
	return registrar.AddTool(domain.ViewportRenderModeTool(), domain.ViewportRenderModeHandler(client))
}

// registerAssetTools wires read-only asset discovery.
func registerAssetTools(registrar mcpRegistrationTarget, client *bridge.Client) error {
	if err := registrar.AddTool(domain.AssetListTool(), domain.AssetListHandler(client)); err != nil {
		return err
	}
	return registrar.AddTool(domain.AssetInfoTool(), domain.AssetInfoHandler(client))
}

// registerSystemTools wires connectivity, listener restart, and the Python
// escape hatch.
func registerSystemTools(registrar mcpRegistrationTarget, client *bridge.Client, manager *history.Manager) error {
	if err := registrar.AddTool(domain.TestConnectionTool(), domain.TestConnectionHandler(client, client.Addr())); err != nil {
		return err
	}
	if err := registrar.AddTool(domain.RestartListenerTool(), domain.RestartListenerHandler(client)); err != nil {
		return err
	}
	return registrar.AddTool(domain.PythonProxyTool(), domain.PythonProxyHandler(client, manager))
}

// registerHistoryTools wires the undo/redo timeline tools.
func registerHistoryTools(registrar mcpRegistrationTarget, client *bridge.Client, manager *history.Manager) error {
	if err := registrar.AddTool(domain.UndoTool(), domain.UndoHandler(client, manager)); err != nil {
		return err
	}
	if err := registrar.AddTool(domain.RedoTool(), domain.RedoHandler(client, manager)); err != nil {
		return err
	}
	if err := registrar.AddTool(domain.HistoryListTool(), domain.HistoryListHandler(manager)); err != nil {
		return err
	}
	if err := registrar.AddTool(domain.HistoryStatusTool(), domain.HistoryStatusHandler(manager)); err != nil {
		return err
	}
	if err := registrar.AddTool(domain.CheckpointCreateTool(), domain.CheckpointCreateHandler(manager)); err != nil {
		return err
	}
	if err := registrar.AddTool(domain.CheckpointRestoreTool(), domain.CheckpointRestoreHandler(client, manager)); err != nil {
		return err
	}
	return registrar.AddTool(domain.HistoryClearTool(), domain.HistoryClearHandler(manager))
}
