// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/louisbranch/uemcp/internal/platform/config"
	"github.com/louisbranch/uemcp/internal/platform/otel"
	"github.com/louisbranch/uemcp/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	ListenerAddr    string `env:"UEMCP_LISTENER_ADDR"    envDefault:"http://localhost:8765"`
	HTTPAddr        string `env:"UEMCP_MCP_HTTP_ADDR"    envDefault:"localhost:8091"`
	Transport       string `env:"UEMCP_MCP_TRANSPORT"    envDefault:"stdio"`
	AuthToken       string `env:"UEMCP_MCP_AUTH_TOKEN"`
	HistoryCapacity int    `env:"UEMCP_HISTORY_CAPACITY" envDefault:"100"`
}

// ParseConfig parses environment and flags into a Config. Flags override
// environment values.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.ListenerAddr, "listener-addr", cfg.ListenerAddr, "In-editor listener address")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.IntVar(&cfg.HistoryCapacity, "history-capacity", cfg.HistoryCapacity, "Maximum operations kept on the undo timeline")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP server.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "mcp")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	return service.Run(ctx, service.Config{
		ListenerAddr:    cfg.ListenerAddr,
		HTTPAddr:        cfg.HTTPAddr,
		Transport:       service.TransportKind(cfg.Transport),
		AuthToken:       cfg.AuthToken,
		HistoryCapacity: cfg.HistoryCapacity,
	})
}
