package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/uemcp/internal/history"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TestConnectionHandler probes the listener's status endpoint. Failure to
// reach the listener is reported in the result, not as a tool error, so
// agents can branch on connectivity.
func TestConnectionHandler(executor Executor, addr string) mcp.ToolHandlerFor[TestConnectionInput, TestConnectionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ TestConnectionInput) (*mcp.CallToolResult, TestConnectionResult, error) {
		status, err := executor.Status(ctx)
		if err != nil {
			return textResult("Editor listener at %s is not responding: %v", addr, err),
				TestConnectionResult{Connected: false, Addr: addr}, nil
		}
		version := resultString(status, "version")
		return textResult("Connected to editor listener at %s (version %s)", addr, version), TestConnectionResult{
			Connected: true,
			Version:   version,
			Addr:      addr,
		}, nil
	}
}

// RestartListenerHandler asks the listener to restart itself. The reply may
// be cut short by the restart, so transport errors after acceptance are
// tolerated.
func RestartListenerHandler(executor Executor) mcp.ToolHandlerFor[RestartListenerInput, RestartListenerResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RestartListenerInput) (*mcp.CallToolResult, RestartListenerResult, error) {
		params, err := commandParams(input)
		if err != nil {
			return nil, RestartListenerResult{}, err
		}
		if _, err := executor.Execute(ctx, "system.restart", params); err != nil {
			// The listener often drops the connection mid-restart.
			return textResult("Restart requested; listener connection dropped (%v)", err),
				RestartListenerResult{Restarting: true}, nil
		}
		return textResult("Listener restarting"), RestartListenerResult{Restarting: true}, nil
	}
}

// PythonProxyHandler forwards arbitrary Python to the editor. The call is
// recorded so the audit trail shows it ran, but with an opaque payload:
// there is no structured way to reverse user code.
func PythonProxyHandler(executor Executor, recorder *history.Manager) mcp.ToolHandlerFor[PythonProxyInput, PythonProxyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PythonProxyInput) (*mcp.CallToolResult, PythonProxyResult, error) {
		if input.Code == "" {
			return nil, PythonProxyResult{}, fmt.Errorf("code is required")
		}
		params, err := commandParams(input)
		if err != nil {
			return nil, PythonProxyResult{}, err
		}
		id := recorder.Record("python_proxy", params, history.Options{
			Description: "Execute Python in editor",
			UndoData:    history.UndoCustom{Payload: "python.execute"},
		})

		result, err := executor.Execute(ctx, "python.execute", params)
		if err != nil {
			return nil, PythonProxyResult{}, fmt.Errorf("python execution failed: %w", err)
		}
		recorder.SetResult(id, result)

		output := resultString(result, "output")
		return textResult("%s", output), PythonProxyResult{
			Output: output,
			Result: result["result"],
		}, nil
	}
}
