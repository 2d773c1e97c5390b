package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/target/crawl-admin/config"
	"github.com/target/crawl-admin/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	bootstrap.ApplyLogLevel(&cfg)

	if err = bootstrap.ValidateConfig(&cfg); err != nil {
		return err
	}
	logStartupInfo(ctx, logger, &cfg)

	adapters, err := bootstrap.ConnectAdapters(ctx, bootstrap.AdapterDeps{Config: &cfg, Logger: logger})
	if err != nil {
		return err
	}
	defer adapters.Close(logger)

	services, err := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config:  &cfg,
		API:     adapters.Backend,
		Cache:   adapters.Cache,
		Metrics: adapters.Metrics,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	return bootstrap.RunWithShutdown(ctx, bootstrap.RunConfig{
		Config:   &cfg,
		Services: services,
		Logger:   logger,
	})
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting crawl admin console",
		"addr", cfg.HTTP.Addr,
		"backend", cfg.Backend.BaseURL,
		"dev", cfg.IsDev,
		"dashboard_cache", cfg.IsCacheEnabled(),
		"metrics", cfg.Observability.Metrics.IsEnabled())
}
