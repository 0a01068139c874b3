package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sevigo/review-analyzer/internal/config"
	"github.com/sevigo/review-analyzer/internal/fakeapi"
	"github.com/sevigo/review-analyzer/internal/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("stand-in API failed to run", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// A server logs to stdout regardless of the client setting.
	logCfg := cfg.Logging
	logCfg.Output = "stdout"
	log := logger.NewLogger(logCfg, nil)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := fakeapi.NewServer(cfg.FakeAPI.Port, fakeapi.NewRouter(log), log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		log.Info("received shutdown signal")
		return srv.Stop(context.Background())
	})

	return g.Wait()
}
