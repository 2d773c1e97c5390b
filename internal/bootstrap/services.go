package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/target/crawl-admin/config"
	"github.com/target/crawl-admin/internal/core"
	"github.com/target/crawl-admin/internal/observability/statsd"
	"github.com/target/crawl-admin/internal/service"
)

const shutdownWaitTimeout = 10 * time.Second

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Accounts      *service.AccountService
	Tasks         *service.TaskService
	Proxies       *service.ProxyService
	Quotas        *service.QuotaService
	RedisConfigs  *service.RedisConfigService
	CrawlerParams *service.CrawlerParamService
	Records       *service.RecordService
	Exports       *service.ExportService
	Dashboard     *service.DashboardService
	Jobs          *service.JobWatcher
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config  *config.AppConfig
	API     core.PipelineAPI
	Cache   core.CacheRepository // Optional
	Metrics statsd.Sink          // Optional
	Logger  *slog.Logger
}

// JobPolicy converts the job watch settings into a backoff policy.
func JobPolicy(cfg config.JobWatchConfig) service.Policy {
	return service.Policy{
		InitialDelay: cfg.InitialDelay,
		MaxDelay:     cfg.MaxDelay,
		Factor:       cfg.Factor,
		MaxAttempts:  cfg.MaxAttempts,
	}
}

// NewServices builds every service over the backend API.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.API == nil {
		return ServiceContainer{}, errors.New("backend API is required")
	}
	appCfg := deps.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	api := deps.API

	dash := service.DashboardServiceOptions{
		Sources: service.DashboardSources{Accounts: api, Tasks: api, Proxies: api, Records: api},
		Logger:  logger.With("component", "dashboard"),
	}
	if deps.Cache != nil {
		dash.Cache = service.DashboardCache{Repo: deps.Cache, TTL: appCfg.Cache.DashboardTTL}
	}

	return ServiceContainer{
		Accounts:      service.NewAccountService(service.AccountServiceOptions{API: api, Logger: logger}),
		Tasks:         service.NewTaskService(service.TaskServiceOptions{API: api, Logger: logger}),
		Proxies:       service.NewProxyService(service.ProxyServiceOptions{API: api, Logger: logger}),
		Quotas:        service.NewQuotaService(service.QuotaServiceOptions{API: api, Logger: logger}),
		RedisConfigs:  service.NewRedisConfigService(service.RedisConfigServiceOptions{API: api, Logger: logger}),
		CrawlerParams: service.NewCrawlerParamService(service.CrawlerParamServiceOptions{API: api, Logger: logger}),
		Records:       service.NewRecordService(service.RecordServiceOptions{API: api, Logger: logger}),
		Exports:       service.NewExportService(service.ExportServiceOptions{API: api, Logger: logger}),
		Dashboard:     service.NewDashboardService(dash),
		Jobs: service.NewJobWatcher(service.JobWatcherOptions{
			Sources: service.JobSources{Exports: api, Records: api},
			Policy:  JobPolicy(appCfg.JobWatch),
			Metrics: deps.Metrics,
		}),
	}, nil
}

// RunConfig contains everything needed to serve the console until shutdown.
type RunConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunWithShutdown starts the HTTP server and blocks until SIGINT/SIGTERM or
// a server failure, then shuts the server down gracefully.
func RunWithShutdown(ctx context.Context, cfg RunConfig) error {
	if cfg.Config == nil {
		return errors.New("run config missing AppConfig")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	serviceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	server := StartHTTPServer(&HTTPServerConfig{
		Context:  serviceCtx,
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
		ErrCh:    errCh,
	})

	return waitForShutdown(shutdownConfig{
		ctx:        serviceCtx,
		cancel:     cancel,
		errCh:      errCh,
		httpServer: server,
		logger:     logger,
	})
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	ctx        context.Context
	cancel     context.CancelFunc
	errCh      <-chan error
	httpServer *http.Server
	logger     *slog.Logger
}

// waitForShutdown waits for shutdown signal or server error.
func waitForShutdown(cfg shutdownConfig) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		cfg.logger.Info("shutting down...")
		return gracefulStop(cfg)
	case <-cfg.ctx.Done():
		return gracefulStop(cfg)
	case err := <-cfg.errCh:
		cfg.logger.Error("http server error", "error", err)
		if stopErr := gracefulStop(cfg); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

func gracefulStop(cfg shutdownConfig) error {
	// Stop the template watcher before the server drains.
	cfg.cancel()
	if err := ShutdownHTTPServer(ShutdownConfig{
		Context: context.WithoutCancel(cfg.ctx),
		Server:  cfg.httpServer,
		Logger:  cfg.logger,
	}); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
