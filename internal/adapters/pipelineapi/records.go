package pipelineapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
)

func recordsPath(kind model.RecordKind) (string, error) {
	switch kind {
	case model.RecordKindRaw:
		return "/api/raw-data/", nil
	case model.RecordKindSample:
		return "/api/sample-data/", nil
	default:
		return "", apperrors.Validationf("unknown record kind %q", kind)
	}
}

// ListRecords returns a filtered page of raw or sample records.
func (c *Client) ListRecords(ctx context.Context, kind model.RecordKind, opts model.RecordListOptions) ([]model.Record, error) {
	base, err := recordsPath(kind)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	opts.ListOptions.Apply(q)
	opts.RecordFilter.Apply(q)
	return fetchList[model.Record](ctx, c, request{method: http.MethodGet, route: base, path: base, query: q})
}

// GetRecord fetches one record.
func (c *Client) GetRecord(ctx context.Context, kind model.RecordKind, id int64) (*model.Record, error) {
	base, err := recordsPath(kind)
	if err != nil {
		return nil, err
	}
	return fetch[*model.Record](ctx, c, request{
		method: http.MethodGet, route: base + "{id}", path: itemPath(base, id),
	})
}

// DeleteRecord removes one record.
func (c *Client) DeleteRecord(ctx context.Context, kind model.RecordKind, id int64) error {
	base, err := recordsPath(kind)
	if err != nil {
		return err
	}
	return c.do(ctx, request{method: http.MethodDelete, route: base + "{id}", path: itemPath(base, id)}, nil)
}

// ClearRecords deletes every record of the kind.
func (c *Client) ClearRecords(ctx context.Context, kind model.RecordKind) (*model.ActionMessage, error) {
	base, err := recordsPath(kind)
	if err != nil {
		return nil, err
	}
	return fetch[*model.ActionMessage](ctx, c, request{
		method: http.MethodDelete, route: base + "clear-all", path: base + "clear-all",
	})
}

// RecordStatsByYear returns per-year record counts.
func (c *Client) RecordStatsByYear(ctx context.Context, kind model.RecordKind) (model.YearCounts, error) {
	base, err := recordsPath(kind)
	if err != nil {
		return nil, err
	}
	out, err := fetch[model.YearCounts](ctx, c, request{
		method: http.MethodGet, route: base + "stats/by-year", path: base + "stats/by-year",
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = model.YearCounts{}
	}
	return out, nil
}

// RecordStatsByTask returns per-task record counts keyed by task id.
func (c *Client) RecordStatsByTask(ctx context.Context, kind model.RecordKind) (model.TaskCounts, error) {
	base, err := recordsPath(kind)
	if err != nil {
		return nil, err
	}
	out, err := fetch[model.TaskCounts](ctx, c, request{
		method: http.MethodGet, route: base + "stats/by-task", path: base + "stats/by-task",
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = model.TaskCounts{}
	}
	return out, nil
}

// ImportRawRecords posts a JSON array of records to the raw-data importer.
func (c *Client) ImportRawRecords(ctx context.Context, records json.RawMessage) (*model.ImportResult, error) {
	if !json.Valid(records) {
		return nil, apperrors.Validation("Import payload is not valid JSON.")
	}
	base, _ := recordsPath(model.RecordKindRaw)
	return fetch[*model.ImportResult](ctx, c, request{
		method: http.MethodPost, route: base + "import-json", path: base + "import-json", body: records,
	})
}

// SampleRecords starts quota-based sampling; the backend answers 202 and
// fills the sample table asynchronously.
func (c *Client) SampleRecords(ctx context.Context) (*model.ActionMessage, error) {
	base, _ := recordsPath(model.RecordKindSample)
	msg, err := fetch[*model.ActionMessage](ctx, c, request{
		method: http.MethodPost, route: base + "sample", path: base + "sample",
	})
	if err != nil {
		return nil, fmt.Errorf("start sampling: %w", err)
	}
	return msg, nil
}
