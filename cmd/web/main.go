// The web binary serves the interactive form front end. A missing API
// token is not fatal here: the page stays up with a warning and every
// lookup answers with an explicit "not configured" result.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"finnhub-mcp/internal/config"
	"finnhub-mcp/internal/finnhub"
	"finnhub-mcp/internal/httpclient"
	"finnhub-mcp/internal/trace"
	"finnhub-mcp/internal/web"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: config.ParseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	if err := trace.Init("finnhub-web", os.Stdout); err != nil {
		logger.Warn("tracing disabled", "error", err)
	}
	defer trace.Shutdown(context.Background())

	if !cfg.Configured() {
		logger.Warn("FINNHUB_API_KEY is not set; running in degraded mode")
	}

	client := finnhub.New(httpclient.New(cfg.FinnhubAPIKey))
	srv := web.New(client, cfg.Configured())
	handler := requestLog(securityHeaders(srv.Routes()))

	logger.Info("listening", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
