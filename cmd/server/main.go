package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"anoa.com/askify/internal/config"
	"anoa.com/askify/internal/server"
	"anoa.com/askify/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.InitLogger(!cfg.IsProduction())
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := server.Connect(ctx, cfg)
	if err != nil {
		logger.Log.Fatalf("failed to connect dependencies: %v", err)
	}
	defer func() {
		if err := deps.Close(); err != nil {
			logger.Log.Warnw("error closing dependencies", "error", err)
		}
	}()

	srv, err := server.NewServer(cfg, deps)
	if err != nil {
		logger.Log.Fatalf("failed to build server: %v", err)
	}

	if err := srv.Run(ctx, ":"+cfg.Port); err != nil {
		logger.Log.Errorf("server exited with error: %v", err)
	}
}
