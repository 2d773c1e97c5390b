package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/target/crawl-admin/config"
	"github.com/target/crawl-admin/internal/adapters/pipelineapi"
	"github.com/target/crawl-admin/internal/adapters/rediscache"
	"github.com/target/crawl-admin/internal/core"
	"github.com/target/crawl-admin/internal/observability/statsd"
)

const (
	redisPingTimeout = 3 * time.Second
	cacheKeyPrefix   = "crawl-admin:"
)

// Adapters holds the outbound connections shared by the services.
type Adapters struct {
	Backend *pipelineapi.Client
	Cache   core.CacheRepository // nil when caching is disabled or Redis is unreachable
	Metrics statsd.Sink

	redis  *redis.Client
	statsd *statsd.Client
}

// AdapterDeps groups dependencies for ConnectAdapters.
type AdapterDeps struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// ConnectAdapters builds the metrics sink, the backend client and, when
// enabled, the Redis dashboard cache. A Redis outage only disables caching.
func ConnectAdapters(ctx context.Context, deps AdapterDeps) (*Adapters, error) {
	if deps.Config == nil {
		return nil, errors.New("adapter config is required")
	}
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	a := &Adapters{Metrics: statsd.NoopSink{}}

	sink, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Observability.Metrics.IsEnabled(),
		Address: cfg.Observability.Metrics.StatsdAddress,
		Prefix:  cfg.Observability.Metrics.Prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.WarnContext(ctx, "statsd unavailable; metrics disabled", "error", err)
	} else {
		a.statsd = sink
		a.Metrics = sink
	}

	backend, err := pipelineapi.NewClient(pipelineapi.Options{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		Metrics: a.Metrics,
		Logger:  logger,
	})
	if err != nil {
		a.Close(logger)
		return nil, fmt.Errorf("create backend client: %w", err)
	}
	a.Backend = backend

	if cfg.IsCacheEnabled() {
		a.connectCache(ctx, cfg.Redis, logger)
	}
	return a, nil
}

func (a *Adapters) connectCache(ctx context.Context, rc config.RedisConfig, logger *slog.Logger) {
	client := rediscache.NewClient(rediscache.Config{Addr: rc.Addr, Password: rc.Password, DB: rc.DB})
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.WarnContext(ctx, "redis unreachable; dashboard cache disabled", "addr", rc.Addr, "error", err)
		if cerr := client.Close(); cerr != nil {
			logger.WarnContext(ctx, "close redis failed", "error", cerr)
		}
		return
	}
	logger.InfoContext(ctx, "dashboard cache enabled", "addr", rc.Addr, "db", rc.DB)
	a.redis = client
	a.Cache = rediscache.New(client, cacheKeyPrefix)
}

// Close releases the Redis and StatsD connections.
func (a *Adapters) Close(logger *slog.Logger) {
	if a == nil {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logger.Error("close redis failed", "error", err)
		}
	}
	if a.statsd != nil {
		if err := a.statsd.Close(); err != nil {
			logger.Error("close statsd failed", "error", err)
		}
	}
}

var _ core.PipelineAPI = (*pipelineapi.Client)(nil)
