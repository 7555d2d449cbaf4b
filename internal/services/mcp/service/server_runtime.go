package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run is the service entrypoint for MCP and blocks until context
// cancellation. Stdio serves local MCP clients; HTTP serves remote ones.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	server, err := New(cfg)
	if err != nil {
		return err
	}

	switch cfg.Transport {
	case TransportStdio:
		return server.serveWithTransport(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		return server.runWithHTTPTransport(ctx, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// runWithHTTPTransport serves the MCP server over HTTP while a background
// monitor keeps an eye on listener connectivity.
func (s *Server) runWithHTTPTransport(ctx context.Context, cfg Config) error {
	healthCtx, healthCancel := context.WithCancel(ctx)
	defer healthCancel()
	go s.monitorHealth(healthCtx)

	transport := NewHTTPTransport(cfg.HTTPAddr, s.mcpServer)
	transport.authToken = cfg.AuthToken
	return transport.Start(ctx)
}

// monitorHealth periodically probes the editor listener. Failures are
// logged but never terminate the HTTP server; the editor may be restarting
// or temporarily busy, and individual tool calls surface their own errors.
func (s *Server) monitorHealth(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			callCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			_, err := s.bridge.Status(callCtx)
			cancel()
			if err != nil {
				log.Printf("editor listener health check failed: %v", err)
			}
		}
	}
}
