package service

import (
	"context"
	"testing"

	"github.com/louisbranch/uemcp/internal/bridge"
	"github.com/louisbranch/uemcp/internal/history"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type capturingRegistrar struct {
	tools []string
}

func (c *capturingRegistrar) AddTool(tool *mcp.Tool, _ any) error {
	c.tools = append(c.tools, tool.Name)
	return nil
}

func TestRegistrationModulesCoverToolSurface(t *testing.T) {
	client := bridge.New("http://localhost:8765")
	manager := history.New(10)

	registrar := &capturingRegistrar{}
	for _, module := range newMCPRegistrationModules(client, manager) {
		if err := module.register(registrar); err != nil {
			t.Fatalf("register module %q: %v", module.name, err)
		}
	}

	want := []string{
		"actor_spawn", "actor_delete", "actor_modify", "actor_duplicate", "actor_organize",
		"material_list", "material_info", "material_apply",
		"level_actors", "level_save", "level_outliner",
		"viewport_screenshot", "viewport_camera", "viewport_mode", "viewport_focus", "viewport_render_mode",
		"asset_list", "asset_info",
		"test_connection", "restart_listener", "python_proxy",
		"undo", "redo", "history_list", "history_status",
		"checkpoint_create", "checkpoint_restore", "history_clear",
	}
	if len(registrar.tools) != len(want) {
		t.Fatalf("expected %d tools, got %d: %v", len(want), len(registrar.tools), registrar.tools)
	}
	registered := make(map[string]bool, len(registrar.tools))
	for _, name := range registrar.tools {
		if registered[name] {
			t.Fatalf("tool %q registered twice", name)
		}
		registered[name] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Fatalf("tool %q not registered", name)
		}
	}
}

func TestNewRegistersEveryHandlerType(t *testing.T) {
	// New fails if any module registers a handler type the adapter does not
	// know, so constructing the server exercises the full registrar table.
	server, err := New(Config{ListenerAddr: "http://localhost:8765", HistoryCapacity: 10})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if server.History() == nil {
		t.Fatal("expected history manager")
	}
	if server.Bridge() == nil {
		t.Fatal("expected bridge client")
	}
}

func TestAddMCPToolRejectsUnknownHandler(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0.0.0"}, nil)
	err := addMCPTool(server, &mcp.Tool{Name: "bogus"}, func() {})
	if err == nil {
		t.Fatal("expected error for unsupported handler type")
	}
}

func TestRunRejectsUnknownTransport(t *testing.T) {
	err := Run(context.Background(), Config{Transport: TransportKind("carrier-pigeon")})
	if err == nil {
		t.Fatal("expected error for unsupported transport")
	}
}
