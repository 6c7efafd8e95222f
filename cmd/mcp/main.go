// The mcp binary serves the lookup operations over the Model Context
// Protocol on stdio. Everything diagnostic (logs, traces) goes to stderr;
// stdout belongs to the protocol transport.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"finnhub-mcp/internal/config"
	"finnhub-mcp/internal/finnhub"
	"finnhub-mcp/internal/httpclient"
	"finnhub-mcp/internal/mcptools"
	"finnhub-mcp/internal/trace"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	// Unlike the web front end, the protocol server refuses to start
	// without a token: every advertised tool would be dead on arrival.
	if !cfg.Configured() {
		logger.Error("FINNHUB_API_KEY environment variable is required")
		os.Exit(1)
	}

	if err := trace.Init("finnhub-mcp", os.Stderr); err != nil {
		logger.Warn("tracing disabled", "error", err)
	}
	defer trace.Shutdown(context.Background())

	client := finnhub.New(httpclient.New(cfg.FinnhubAPIKey))

	s := server.NewMCPServer("finnhub-mcp-server", version)
	mcptools.Register(s, client)

	logger.Info("serving on stdio", "version", version)
	if err := server.ServeStdio(s); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
