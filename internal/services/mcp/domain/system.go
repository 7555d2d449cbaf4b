package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// TestConnectionInput represents the MCP tool input for the health check.
type TestConnectionInput struct{}

// TestConnectionResult represents the MCP tool output for the health check.
type TestConnectionResult struct {
	Connected bool   `json:"connected" jsonschema:"whether the editor listener answered"`
	Version   string `json:"version,omitempty" jsonschema:"listener version"`
	Addr      string `json:"addr,omitempty" jsonschema:"listener endpoint"`
}

// RestartListenerInput represents the MCP tool input for restarting the
// in-editor listener.
type RestartListenerInput struct {
	Force bool `json:"force,omitempty" jsonschema:"force a restart even if the listener reports busy"`
}

// RestartListenerResult represents the MCP tool output for restarting the
// listener.
type RestartListenerResult struct {
	Restarting bool `json:"restarting" jsonschema:"whether the restart was accepted"`
}

// PythonProxyInput represents the MCP tool input for arbitrary Python
// execution inside the editor.
type PythonProxyInput struct {
	Code string `json:"code" jsonschema:"Python code to run in the editor's interpreter"`
}

// PythonProxyResult represents the MCP tool output for Python execution.
type PythonProxyResult struct {
	Output string `json:"output,omitempty" jsonschema:"captured stdout"`
	Result any    `json:"result,omitempty" jsonschema:"value of the final expression, when JSON-serializable"`
}

// TestConnectionTool describes the test_connection MCP tool.
func TestConnectionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "test_connection",
		Description: "Checks whether the in-editor listener is reachable and reports its version.",
	}
}

// RestartListenerTool describes the restart_listener MCP tool.
func RestartListenerTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "restart_listener",
		Description: "Restarts the in-editor Python listener to pick up code changes without restarting the editor.",
	}
}

// PythonProxyTool describes the python_proxy MCP tool.
func PythonProxyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "python_proxy",
		Description: "Runs arbitrary Python inside the editor. Escape hatch for operations without a dedicated tool; not undoable.",
	}
}
