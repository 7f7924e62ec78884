package main

import (
	"context"
	"log"

	"phishsim-server/internal/bootstrap"
	"phishsim-server/internal/config"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	logger := observability.NewLogger()
	defer logger.Sync()

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()
	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Error(ctx, "shutdown failed", err)
	}
}
