package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	mcpapi "github.com/ASolomatin/weather-mcp/internal/api/mcp"
	"github.com/ASolomatin/weather-mcp/internal/config"
	"github.com/ASolomatin/weather-mcp/internal/version"
	"github.com/ASolomatin/weather-mcp/internal/weather"
	"github.com/ASolomatin/weather-mcp/internal/weather/providers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// stdout carries the MCP stdio framing; all logging goes to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := providers.NewOpenWeatherClient(httpClient, cfg.OpenWeatherAPIKey, cfg.BaseURL)
	service := weather.NewService(provider, weather.NewDispatcher(logger))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "weather-mcp",
		Version: version.Version,
	}, nil)
	mcpapi.RegisterTools(server, service)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting weather-mcp server", "version", version.Version)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("server shut down")
}
