package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var listenTCP = net.Listen

const (
	// defaultShutdownTimeout is the maximum time to wait for graceful HTTP
	// server shutdown, long enough for in-flight tool calls to finish.
	defaultShutdownTimeout = 35 * time.Second
)

// HTTPTransport serves MCP over streamable HTTP. It binds to localhost by
// default and optionally requires a shared bearer token, since anyone who
// can reach the endpoint can drive the editor.
type HTTPTransport struct {
	addr       string
	server     *mcp.Server
	authToken  string
	httpServer *http.Server
}

// NewHTTPTransport creates an HTTP transport for the given MCP server.
func NewHTTPTransport(addr string, server *mcp.Server) *HTTPTransport {
	if addr == "" {
		addr = "localhost:8091"
	}
	return &HTTPTransport{addr: addr, server: server}
}

// Start runs the HTTP server until the context is cancelled or the server
// fails, then shuts down gracefully.
func (t *HTTPTransport) Start(ctx context.Context) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return t.server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", t.requireAuth(handler))
	mux.HandleFunc("/mcp/health", t.handleHealth)

	t.httpServer = &http.Server{
		Addr:    t.addr,
		Handler: mux,
	}

	log.Printf("Starting MCP HTTP server on %s", t.addr)

	errChan := make(chan error, 1)
	go func() {
		listener, err := listenTCP("tcp", t.addr)
		if err != nil {
			errChan <- err
			return
		}
		if err := t.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("Shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		if err := t.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	}
}

// requireAuth enforces the shared bearer token when one is configured.
func (t *HTTPTransport) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if t.authToken == "" {
			next.ServeHTTP(w, r)
			return
		}
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(t.authToken)) != 1 {
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleHealth reports transport liveness. It says nothing about the editor
// listener; test_connection covers that end to end.
func (t *HTTPTransport) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		log.Printf("health response write failed: %v", err)
	}
}
