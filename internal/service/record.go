package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/target/crawl-admin/internal/core"
	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
)

// RecordServiceOptions groups dependencies for RecordService.
type RecordServiceOptions struct {
	API    core.RecordAPI // Required
	Logger *slog.Logger   // Optional
}

// RecordService reads and maintains the raw and sample data tables.
type RecordService struct {
	api    core.RecordAPI
	logger *slog.Logger
}

// NewRecordService constructs a new RecordService.
func NewRecordService(opts RecordServiceOptions) *RecordService {
	if opts.API == nil {
		panic("RecordAPI is required")
	}
	return &RecordService{api: opts.API, logger: opts.Logger}
}

func checkKind(kind model.RecordKind) error {
	if !kind.Valid() {
		return apperrors.Validationf("unknown data set %q", kind)
	}
	return nil
}

// List returns up to limit records of the kind starting at offset.
func (s *RecordService) List(
	ctx context.Context,
	kind model.RecordKind,
	filter model.RecordFilter,
	limit, offset int,
) ([]model.Record, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	recs, err := s.api.ListRecords(ctx, kind, model.RecordListOptions{
		ListOptions:  listOptions(limit, offset),
		RecordFilter: filter,
	})
	if err != nil {
		return nil, fmt.Errorf("list %s data: %w", kind, err)
	}
	return recs, nil
}

// Get returns one record.
func (s *RecordService) Get(ctx context.Context, kind model.RecordKind, id int64) (*model.Record, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	rec, err := s.api.GetRecord(ctx, kind, id)
	if err != nil {
		return nil, fmt.Errorf("get %s data %d: %w", kind, id, err)
	}
	if rec == nil {
		return nil, notFoundf("%s record %d not found.", kind.Label(), id)
	}
	return rec, nil
}

// Delete removes one record.
func (s *RecordService) Delete(ctx context.Context, kind model.RecordKind, id int64) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	if err := s.api.DeleteRecord(ctx, kind, id); err != nil {
		return fmt.Errorf("delete %s data %d: %w", kind, id, err)
	}
	return nil
}

// Clear deletes every record of the kind and returns the backend's message.
func (s *RecordService) Clear(ctx context.Context, kind model.RecordKind) (string, error) {
	if err := checkKind(kind); err != nil {
		return "", err
	}
	msg, err := s.api.ClearRecords(ctx, kind)
	if err != nil {
		return "", fmt.Errorf("clear %s data: %w", kind, err)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "data cleared", "kind", kind)
	}
	if msg == nil || msg.Message == "" {
		return kind.Label() + " cleared.", nil
	}
	return msg.Message, nil
}

// StatsByYear returns per-year counts for the kind.
func (s *RecordService) StatsByYear(ctx context.Context, kind model.RecordKind) (model.YearCounts, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	counts, err := s.api.RecordStatsByYear(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("%s stats by year: %w", kind, err)
	}
	return counts, nil
}

// StatsByTask returns per-task counts for the kind.
func (s *RecordService) StatsByTask(ctx context.Context, kind model.RecordKind) (model.TaskCounts, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	counts, err := s.api.RecordStatsByTask(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("%s stats by task: %w", kind, err)
	}
	return counts, nil
}

// Sample starts quota-based sampling and returns the backend's message.
// Completion is observed through the JobWatcher.
func (s *RecordService) Sample(ctx context.Context) (string, error) {
	msg, err := s.api.SampleRecords(ctx)
	if err != nil {
		return "", err
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "sampling started")
	}
	if msg == nil || msg.Message == "" {
		return "Sampling started.", nil
	}
	return msg.Message, nil
}
