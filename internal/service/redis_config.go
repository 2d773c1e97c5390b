package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/target/crawl-admin/internal/core"
	"github.com/target/crawl-admin/internal/domain/model"
)

// RedisConfigServiceOptions groups dependencies for RedisConfigService.
type RedisConfigServiceOptions struct {
	API    core.RedisConfigAPI // Required
	Logger *slog.Logger        // Optional
}

// RedisConfigService manages the Redis connections used by the pipeline workers.
type RedisConfigService struct {
	api    core.RedisConfigAPI
	logger *slog.Logger
}

// NewRedisConfigService constructs a new RedisConfigService.
func NewRedisConfigService(opts RedisConfigServiceOptions) *RedisConfigService {
	if opts.API == nil {
		panic("RedisConfigAPI is required")
	}
	return &RedisConfigService{api: opts.API, logger: opts.Logger}
}

// List returns every config. The backend does not page them.
func (s *RedisConfigService) List(ctx context.Context) ([]model.RedisConfig, error) {
	configs, err := s.api.ListRedisConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list redis configs: %w", err)
	}
	return configs, nil
}

// Get finds a config by id. The backend has no item endpoint, so the list is scanned.
func (s *RedisConfigService) Get(ctx context.Context, id int64) (*model.RedisConfig, error) {
	configs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range configs {
		if configs[i].ID == id {
			return &configs[i], nil
		}
	}
	return nil, notFoundf("Redis config %d not found.", id)
}

// Default returns the config flagged as default, or nil.
func (s *RedisConfigService) Default(ctx context.Context) (*model.RedisConfig, error) {
	c, err := s.api.DefaultRedisConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("get default redis config: %w", err)
	}
	return c, nil
}

// Create validates and creates a config.
func (s *RedisConfigService) Create(ctx context.Context, req model.RedisConfigRequest) (*model.RedisConfig, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	c, err := s.api.CreateRedisConfig(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create redis config: %w", err)
	}
	return c, nil
}

// Update validates and replaces a config. An empty password keeps the stored one.
func (s *RedisConfigService) Update(
	ctx context.Context,
	id int64,
	req model.RedisConfigRequest,
) (*model.RedisConfig, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	c, err := s.api.UpdateRedisConfig(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update redis config %d: %w", id, err)
	}
	return c, nil
}

// Delete removes a config.
func (s *RedisConfigService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteRedisConfig(ctx, id); err != nil {
		return fmt.Errorf("delete redis config %d: %w", id, err)
	}
	return nil
}

// Test asks the backend to connect with unsaved settings.
func (s *RedisConfigService) Test(ctx context.Context, req model.RedisTestRequest) (*model.RedisTestResult, error) {
	if req.Password != nil && *req.Password == "" {
		req.Password = nil
	}
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	res, err := s.api.TestRedisConnection(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("test redis connection: %w", err)
	}
	if res == nil {
		res = &model.RedisTestResult{}
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "redis connection tested",
			"host", req.Host, "port", req.Port, "db", req.DB, "success", res.Success)
	}
	return res, nil
}

// TestSaved tests a stored config.
func (s *RedisConfigService) TestSaved(ctx context.Context, id int64) (*model.RedisTestResult, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Test(ctx, c.TestRequest())
}

// Reload makes the backend re-read its default config.
func (s *RedisConfigService) Reload(ctx context.Context) (*model.ActionMessage, error) {
	msg, err := s.api.ReloadRedis(ctx)
	if err != nil {
		return nil, fmt.Errorf("reload redis: %w", err)
	}
	if msg == nil {
		msg = &model.ActionMessage{}
	}
	return msg, nil
}
