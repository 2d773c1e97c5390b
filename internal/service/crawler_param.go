package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/target/crawl-admin/internal/core"
	"github.com/target/crawl-admin/internal/domain/model"
)

// CrawlerParamServiceOptions groups dependencies for CrawlerParamService.
type CrawlerParamServiceOptions struct {
	API    core.CrawlerParamAPI // Required
	Logger *slog.Logger         // Optional
}

// CrawlerParamService manages crawler schedules and targets.
type CrawlerParamService struct {
	api    core.CrawlerParamAPI
	logger *slog.Logger
}

// NewCrawlerParamService constructs a new CrawlerParamService.
func NewCrawlerParamService(opts CrawlerParamServiceOptions) *CrawlerParamService {
	if opts.API == nil {
		panic("CrawlerParamAPI is required")
	}
	return &CrawlerParamService{api: opts.API, logger: opts.Logger}
}

// List returns up to limit param sets starting at offset.
func (s *CrawlerParamService) List(ctx context.Context, limit, offset int) ([]model.CrawlerParam, error) {
	params, err := s.api.ListCrawlerParams(ctx, listOptions(limit, offset))
	if err != nil {
		return nil, fmt.Errorf("list crawler params: %w", err)
	}
	return params, nil
}

// Get returns one param set.
func (s *CrawlerParamService) Get(ctx context.Context, id int64) (*model.CrawlerParam, error) {
	p, err := s.api.GetCrawlerParam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get crawler param %d: %w", id, err)
	}
	if p == nil {
		return nil, notFoundf("Crawler params %d not found.", id)
	}
	return p, nil
}

// Create validates and creates a param set.
func (s *CrawlerParamService) Create(ctx context.Context, req model.CrawlerParamRequest) (*model.CrawlerParam, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	p, err := s.api.CreateCrawlerParam(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create crawler param: %w", err)
	}
	return p, nil
}

// Update validates and replaces a param set.
func (s *CrawlerParamService) Update(
	ctx context.Context,
	id int64,
	req model.CrawlerParamRequest,
) (*model.CrawlerParam, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}
	p, err := s.api.UpdateCrawlerParam(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update crawler param %d: %w", id, err)
	}
	return p, nil
}

// Delete removes a param set.
func (s *CrawlerParamService) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteCrawlerParam(ctx, id); err != nil {
		return fmt.Errorf("delete crawler param %d: %w", id, err)
	}
	return nil
}
