package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/target/crawl-admin/internal/core"
	"github.com/target/crawl-admin/internal/domain/model"
)

// QuotaServiceOptions groups dependencies for QuotaService.
type QuotaServiceOptions struct {
	API    core.QuotaAPI // Required
	Logger *slog.Logger  // Optional
}

// QuotaService manages the year-range sampling quotas.
type QuotaService struct {
	api    core.QuotaAPI
	logger *slog.Logger
}

// NewQuotaService constructs a new QuotaService.
func NewQuotaService(opts QuotaServiceOptions) *QuotaService {
	if opts.API == nil {
		panic("QuotaAPI is required")
	}
	return &QuotaService{api: opts.API, logger: opts.Logger}
}

// List returns every quota ordered by start year.
func (s *QuotaService) List(ctx context.Context) ([]model.Quota, error) {
	quotas, err := s.api.ListQuotas(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotas: %w", err)
	}
	sort.SliceStable(quotas, func(i, j int) bool { return quotas[i].StartYear < quotas[j].StartYear })
	return quotas, nil
}

// Get returns one quota.
func (s *QuotaService) Get(ctx context.Context, id int64) (*model.Quota, error) {
	q, err := s.api.GetQuota(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quota %d: %w", id, err)
	}
	if q == nil {
		return nil, notFoundf("Quota %d not found.", id)
	}
	return q, nil
}

// Create validates and creates a quota.
func (s *QuotaService) Create(ctx context.Context, req model.QuotaRequest) (*model.Quota, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	q, err := s.api.CreateQuota(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create quota: %w", err)
	}
	return q, nil
}

// Update validates and replaces a quota.
func (s *QuotaService) Update(ctx context.Context, id int64, req model.QuotaRequest) (*model.Quota, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	q, err := s.api.UpdateQuota(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update quota %d: %w", id, err)
	}
	return q, nil
}

// Delete removes a quota.
func (s *QuotaService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteQuota(ctx, id); err != nil {
		return fmt.Errorf("delete quota %d: %w", id, err)
	}
	return nil
}

// Init replaces the quotas with the backend defaults.
func (s *QuotaService) Init(ctx context.Context) ([]model.Quota, error) {
	quotas, err := s.api.InitQuotas(ctx)
	if err != nil {
		return nil, fmt.Errorf("init quotas: %w", err)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "quotas reset to defaults", "count", len(quotas))
	}
	return quotas, nil
}
