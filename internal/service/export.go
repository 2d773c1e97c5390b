package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/target/crawl-admin/internal/core"
	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
)

// ExportServiceOptions groups dependencies for ExportService.
type ExportServiceOptions struct {
	API    core.ExportAPI // Required
	Logger *slog.Logger   // Optional
}

// ExportService lists, generates and serves export spreadsheets.
type ExportService struct {
	api    core.ExportAPI
	logger *slog.Logger
}

// NewExportService constructs a new ExportService.
func NewExportService(opts ExportServiceOptions) *ExportService {
	if opts.API == nil {
		panic("ExportAPI is required")
	}
	return &ExportService{api: opts.API, logger: opts.Logger}
}

// List returns the export files, newest first.
func (s *ExportService) List(ctx context.Context) ([]model.ExportFile, error) {
	files, err := s.api.ListExports(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	return files, nil
}

// Trigger records how many exports of the kind exist, then starts a new
// export. The returned job completes once a file beyond that baseline appears.
func (s *ExportService) Trigger(ctx context.Context, kind model.RecordKind) (Job, string, error) {
	if err := checkKind(kind); err != nil {
		return Job{}, "", err
	}
	files, err := s.api.ListExports(ctx)
	if err != nil {
		return Job{}, "", fmt.Errorf("count exports: %w", err)
	}
	job := Job{Kind: ExportJobKind(kind), Baseline: model.CountExports(files, kind)}

	msg, err := s.api.TriggerExport(ctx, kind)
	if err != nil {
		return Job{}, "", fmt.Errorf("start %s export: %w", kind, err)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "export started", "kind", kind, "baseline", job.Baseline)
	}
	text := kind.Label() + " export started."
	if msg != nil && msg.Message != "" {
		text = msg.Message
	}
	return job, text, nil
}

// Open streams an export file. The caller must close the download body.
func (s *ExportService) Open(ctx context.Context, filename string) (*model.ExportDownload, error) {
	if err := model.ValidateFilename(filename); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}
	dl, err := s.api.OpenExport(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", filename, err)
	}
	return dl, nil
}

// Delete removes an export file.
func (s *ExportService) Delete(ctx context.Context, filename string) error {
	if err := model.ValidateFilename(filename); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}
	if err := s.api.DeleteExport(ctx, filename); err != nil {
		return fmt.Errorf("delete export %s: %w", filename, err)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "export deleted", "filename", filename)
	}
	return nil
}
