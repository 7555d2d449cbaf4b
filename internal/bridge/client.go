package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultAddr is the listener endpoint inside a locally running editor.
const DefaultAddr = "http://localhost:8765"

// defaultTimeout bounds one command round-trip. Commands run on the editor's
// game thread, so slow operations (screenshots, large spawns) need headroom.
const defaultTimeout = 30 * time.Second

// CommandError is a failure reported by the listener itself, as opposed to a
// transport failure reaching it.
type CommandError struct {
	Command string
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("editor command %s failed: %s", e.Command, e.Message)
}

// Client executes commands against the in-editor listener.
type Client struct {
	addr       string
	httpClient *http.Client
	tracer     trace.Tracer
}

// New creates a client for the listener at addr. An empty addr falls back to
// DefaultAddr; a bare host:port gains an http scheme.
func New(addr string) *Client {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		addr = DefaultAddr
	}
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	return &Client{
		addr:       strings.TrimSuffix(addr, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		tracer:     otel.Tracer("uemcp/bridge"),
	}
}

// command is the wire shape the listener expects on POST.
type command struct {
	Type   string         `json:"type"`
	Params map[string]any `json:"params,omitempty"`
}

// Execute posts one command and decodes the listener's JSON reply. A reply
// with success=false becomes a *CommandError carrying the listener's error
// text.
func (c *Client) Execute(ctx context.Context, commandType string, params map[string]any) (map[string]any, error) {
	ctx, span := c.tracer.Start(ctx, "uemcp.bridge/execute",
		trace.WithAttributes(attribute.String("uemcp.command", commandType)))
	defer span.End()

	body, err := json.Marshal(command{Type: commandType, Params: params})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("encode command %s: %w", commandType, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.addr+"/", bytes.NewReader(body))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("build request for %s: %w", commandType, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("send command %s to editor listener: %w", commandType, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("read response for %s: %w", commandType, err)
	}
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("editor listener returned %s for %s", resp.Status, commandType)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var result map[string]any
	if err := json.Unmarshal(payload, &result); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("decode response for %s: %w", commandType, err)
	}

	if success, ok := result["success"].(bool); ok && !success {
		message, _ := result["error"].(string)
		if message == "" {
			message = "unknown error"
		}
		cmdErr := &CommandError{Command: commandType, Message: message}
		span.SetStatus(codes.Error, cmdErr.Message)
		return nil, cmdErr
	}
	return result, nil
}

// Status fetches the listener's status document. It is the health probe for
// test_connection and the background monitor.
func (c *Client) Status(ctx context.Context) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.addr+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("build status request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reach editor listener: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("editor listener returned %s", resp.Status)
	}
	var status map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("decode listener status: %w", err)
	}
	return status, nil
}

// Addr reports the listener endpoint the client talks to.
func (c *Client) Addr() string {
	return c.addr
}
