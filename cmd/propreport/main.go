// File path: cmd/propreport/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/alyprop/propreport/internal/agent"
	"github.com/alyprop/propreport/internal/analyzer"
	"github.com/alyprop/propreport/internal/api"
	"github.com/alyprop/propreport/internal/common"
	"github.com/alyprop/propreport/internal/config"
	"github.com/alyprop/propreport/internal/llm"
	"github.com/alyprop/propreport/internal/property"
	"github.com/alyprop/propreport/internal/report"
)

func main() {
	_ = godotenv.Load()
	logger := common.Logger()
	cfg := config.Load()

	addr := flag.String("addr", ":"+cfg.Port, "listen address")
	flag.Parse()

	if !cfg.PropertyDataConfigured() {
		logger.Warn("main: ESTATED_API_KEY not set, property lookups will fail")
	}

	provider := llm.NewProvider(cfg)

	lookup := property.NewClient(cfg.EstatedBaseURL, cfg.EstatedAPIKey)
	generator := report.NewGenerator(lookup, analyzer.New(provider))
	assistant := agent.NewAssistant(provider)

	server := api.NewServer(cfg, generator, assistant, provider.Name())

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("main: shutdown failed", "error", err)
		}
	}()

	logger.Info("main: server listening", "addr", *addr, "provider", provider.Name())
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("main: server exited", "error", err)
		os.Exit(1)
	}
	logger.Info("main: server stopped")
}
