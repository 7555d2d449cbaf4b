package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Executor issues commands against the editor listener. Satisfied by
// *bridge.Client; handler tests substitute a fake.
type Executor interface {
	Execute(ctx context.Context, commandType string, params map[string]any) (map[string]any, error)
	Status(ctx context.Context) (map[string]any, error)
}

// textResult wraps a human-readable summary as MCP text content. The typed
// result struct travels alongside it as structured output.
func textResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
	}
}

// commandParams converts a tool input struct into the parameter map the
// listener expects, dropping empty optional fields via the json tags.
func commandParams(input any) (map[string]any, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encode command params: %w", err)
	}
	var params map[string]any
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("decode command params: %w", err)
	}
	return params, nil
}

// resultString extracts a string field from a listener response.
func resultString(result map[string]any, key string) string {
	value, _ := result[key].(string)
	return value
}

// resultStrings extracts a string list from a listener response.
func resultStrings(result map[string]any, key string) []string {
	values, ok := result[key].([]any)
	if !ok {
		return nil
	}
	strs := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		strs = append(strs, s)
	}
	return strs
}

// resultFloats extracts a numeric triple ([x y z]) from a listener response.
func resultFloats(result map[string]any, key string) []float64 {
	values, ok := result[key].([]any)
	if !ok {
		return nil
	}
	floats := make([]float64, 0, len(values))
	for _, v := range values {
		f, ok := v.(float64)
		if !ok {
			return nil
		}
		floats = append(floats, f)
	}
	return floats
}
