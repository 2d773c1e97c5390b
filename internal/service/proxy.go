package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/target/crawl-admin/internal/core"
	"github.com/target/crawl-admin/internal/domain/model"
)

// ProxyServiceOptions groups dependencies for ProxyService.
type ProxyServiceOptions struct {
	API    core.ProxyAPI // Required
	Logger *slog.Logger  // Optional
}

// ProxyService manages crawler proxies through the backend.
type ProxyService struct {
	api    core.ProxyAPI
	logger *slog.Logger
}

// NewProxyService constructs a new ProxyService.
func NewProxyService(opts ProxyServiceOptions) *ProxyService {
	if opts.API == nil {
		panic("ProxyAPI is required")
	}
	return &ProxyService{api: opts.API, logger: opts.Logger}
}

// List returns up to limit proxies starting at offset.
func (s *ProxyService) List(ctx context.Context, limit, offset int) ([]model.Proxy, error) {
	proxies, err := s.api.ListProxies(ctx, listOptions(limit, offset))
	if err != nil {
		return nil, fmt.Errorf("list proxies: %w", err)
	}
	return proxies, nil
}

// Get returns one proxy.
func (s *ProxyService) Get(ctx context.Context, id int64) (*model.Proxy, error) {
	p, err := s.api.GetProxy(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get proxy %d: %w", id, err)
	}
	if p == nil {
		return nil, notFoundf("Proxy %d not found.", id)
	}
	return p, nil
}

// Create validates and creates a proxy.
func (s *ProxyService) Create(ctx context.Context, req model.ProxyRequest) (*model.Proxy, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	p, err := s.api.CreateProxy(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create proxy: %w", err)
	}
	if s.logger != nil && p != nil {
		s.logger.InfoContext(ctx, "proxy created", "id", p.ID, "type", p.ProxyType)
	}
	return p, nil
}

// Update validates and replaces a proxy.
func (s *ProxyService) Update(ctx context.Context, id int64, req model.ProxyRequest) (*model.Proxy, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	p, err := s.api.UpdateProxy(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update proxy %d: %w", id, err)
	}
	return p, nil
}

// Delete removes a proxy.
func (s *ProxyService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteProxy(ctx, id); err != nil {
		return fmt.Errorf("delete proxy %d: %w", id, err)
	}
	return nil
}
