package pipelineapi

import (
	"context"
	"net/http"
	"net/url"
	"sort"

	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
)

// ListExports returns the generated export files, newest first.
func (c *Client) ListExports(ctx context.Context) ([]model.ExportFile, error) {
	files, err := fetchList[model.ExportFile](ctx, c, request{
		method: http.MethodGet, route: exportsPath, path: exportsPath,
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].CreatedTime.After(files[j].CreatedTime.Time)
	})
	return files, nil
}

// TriggerExport starts generating an export of the kind; the backend answers
// 202 and writes the file asynchronously.
func (c *Client) TriggerExport(ctx context.Context, kind model.RecordKind) (*model.ActionMessage, error) {
	var p string
	switch kind {
	case model.RecordKindRaw:
		p = exportsPath + "export-raw-data"
	case model.RecordKindSample:
		p = exportsPath + "export-sample-data"
	default:
		return nil, apperrors.Validationf("unknown export kind %q", kind)
	}
	return fetch[*model.ActionMessage](ctx, c, request{method: http.MethodPost, route: p, path: p})
}

// OpenExport streams an export file. The caller must close the returned Body.
// Only connecting and the response headers are bounded by the client
// timeout; reading the body is bounded by ctx.
func (c *Client) OpenExport(ctx context.Context, filename string) (*model.ExportDownload, error) {
	if err := model.ValidateFilename(filename); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}
	resp, err := c.send(ctx, request{
		method: http.MethodGet,
		route:  exportsPath + "download/{filename}",
		path:   exportsPath + "download/" + url.PathEscape(filename),
		stream: true,
	})
	if err != nil {
		return nil, err
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &model.ExportDownload{
		Filename:      filename,
		ContentType:   ct,
		ContentLength: resp.ContentLength,
		Body:          resp.Body,
	}, nil
}

// DeleteExport removes an export file.
func (c *Client) DeleteExport(ctx context.Context, filename string) error {
	if err := model.ValidateFilename(filename); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}
	return c.do(ctx, request{
		method: http.MethodDelete,
		route:  exportsPath + "delete/{filename}",
		path:   exportsPath + "delete/" + url.PathEscape(filename),
	}, nil)
}
