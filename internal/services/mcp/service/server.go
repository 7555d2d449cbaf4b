package service

import (
	"fmt"

	"github.com/louisbranch/uemcp/internal/bridge"
	"github.com/louisbranch/uemcp/internal/history"
	"github.com/louisbranch/uemcp/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "UEMCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.7.0"
)

type mcpRegistrationModule struct {
	name     string
	register func(mcpRegistrationTarget) error
}

const (
	mcpActorToolsModuleName    = "actor-tools"
	mcpMaterialToolsModuleName = "material-tools"
	mcpLevelToolsModuleName    = "level-tools"
	mcpViewportToolsModuleName = "viewport-tools"
	mcpAssetToolsModuleName    = "asset-tools"
	mcpSystemToolsModuleName   = "system-tools"
	mcpHistoryToolsModuleName  = "history-tools"
)

// mcpRegistrationTarget is what a registration module needs from the server.
type mcpRegistrationTarget interface {
	AddTool(tool *mcp.Tool, handler any) error
}

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.ActorSpawnInput, domain.ActorSpawnResult](),
	newMCPToolRegistrar[domain.ActorDeleteInput, domain.ActorDeleteResult](),
	newMCPToolRegistrar[domain.ActorModifyInput, domain.ActorModifyResult](),
	newMCPToolRegistrar[domain.ActorDuplicateInput, domain.ActorDuplicateResult](),
	newMCPToolRegistrar[domain.ActorOrganizeInput, domain.ActorOrganizeResult](),
	newMCPToolRegistrar[domain.MaterialListInput, domain.MaterialListResult](),
	newMCPToolRegistrar[domain.MaterialInfoInput, domain.MaterialInfoResult](),
	newMCPToolRegistrar[domain.MaterialApplyInput, domain.MaterialApplyResult](),
	newMCPToolRegistrar[domain.LevelActorsInput, domain.LevelActorsResult](),
	newMCPToolRegistrar[domain.LevelSaveInput, domain.LevelSaveResult](),
	newMCPToolRegistrar[domain.LevelOutlinerInput, domain.LevelOutlinerResult](),
	newMCPToolRegistrar[domain.ViewportScreenshotInput, domain.ViewportScreenshotResult](),
	newMCPToolRegistrar[domain.ViewportCameraInput, domain.ViewportCameraResult](),
	newMCPToolRegistrar[domain.ViewportModeInput, domain.ViewportModeResult](),
	newMCPToolRegistrar[domain.ViewportFocusInput, domain.ViewportFocusResult](),
	newMCPToolRegistrar[domain.ViewportRenderModeInput, domain.ViewportRenderModeResult](),
	newMCPToolRegistrar[domain.AssetListInput, domain.AssetListResult](),
	newMCPToolRegistrar[domain.AssetInfoInput, domain.AssetInfoResult](),
	newMCPToolRegistrar[domain.TestConnectionInput, domain.TestConnectionResult](),
	newMCPToolRegistrar[domain.RestartListenerInput, domain.RestartListenerResult](),
	newMCPToolRegistrar[domain.PythonProxyInput, domain.PythonProxyResult](),
	newMCPToolRegistrar[domain.UndoInput, domain.UndoResult](),
	newMCPToolRegistrar[domain.RedoInput, domain.RedoResult](),
	newMCPToolRegistrar[domain.HistoryListInput, domain.HistoryListResult](),
	newMCPToolRegistrar[domain.HistoryStatusInput, domain.HistoryStatusResult](),
	newMCPToolRegistrar[domain.CheckpointCreateInput, domain.CheckpointCreateResult](),
	newMCPToolRegistrar[domain.CheckpointRestoreInput, domain.CheckpointRestoreResult](),
	newMCPToolRegistrar[domain.HistoryClearInput, domain.HistoryClearResult](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

func newMCPRegistrationModules(client *bridge.Client, manager *history.Manager) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{
			name: mcpActorToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerActorTools(registrar, client, manager)
			},
		},
		{
			name: mcpMaterialToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerMaterialTools(registrar, client, manager)
			},
		},
		{
			name: mcpLevelToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerLevelTools(registrar, client, manager)
			},
		},
		{
			name: mcpViewportToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerViewportTools(registrar, client)
			},
		},
		{
			name: mcpAssetToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerAssetTools(registrar, client)
			},
		},
		{
			name: mcpSystemToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerSystemTools(registrar, client, manager)
			},
		},
		{
			name: mcpHistoryToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerHistoryTools(registrar, client, manager)
			},
		},
	}
}

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	// ListenerAddr is the in-editor listener endpoint, e.g. http://localhost:8765.
	ListenerAddr string
	Transport    TransportKind
	// HTTPAddr is the bind address for the HTTP transport. Defaults to
	// localhost:8091 so the server is not exposed beyond the machine unless
	// explicitly configured.
	HTTPAddr string
	// AuthToken, when set, requires a matching bearer token on every HTTP
	// request. Stdio runs ignore it.
	AuthToken string
	// HistoryCapacity bounds the operation history ring.
	HistoryCapacity int
}

// Server hosts the MCP server together with its editor bridge and the
// operation history shared by every tool handler.
type Server struct {
	mcpServer *mcp.Server
	bridge    *bridge.Client
	history   *history.Manager
}

// New creates a configured MCP server bound to the in-editor listener at
// cfg.ListenerAddr, with a fresh operation history.
func New(cfg Config) (*Server, error) {
	client := bridge.New(cfg.ListenerAddr)
	manager := history.New(cfg.HistoryCapacity)

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	for _, module := range newMCPRegistrationModules(client, manager) {
		if err := module.register(mcpServerRegistrationAdapter{server: mcpServer}); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
	}

	return &Server{mcpServer: mcpServer, bridge: client, history: manager}, nil
}

// History exposes the server's operation history.
func (s *Server) History() *history.Manager {
	return s.history
}

// Bridge exposes the server's editor bridge client.
func (s *Server) Bridge() *bridge.Client {
	return s.bridge
}
