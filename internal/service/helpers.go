package service

import (
	"context"
	"fmt"

	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
)

// DefaultPageSize is the backend page size for list endpoints.
const DefaultPageSize = 20

// validationError converts a request validation failure into an AppError so
// the transport layer can render it as a user-facing message.
func validationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
}

// notFoundf builds a not-found error for a resource the backend did not return.
func notFoundf(format string, args ...any) error {
	return apperrors.NotFound(fmt.Sprintf(format, args...))
}

// listOptions converts limit/offset into the backend's skip/limit.
func listOptions(limit, offset int) model.ListOptions {
	if limit < 1 {
		limit = DefaultPageSize
	}
	return model.ListOptions{Skip: max(offset, 0), Limit: limit}
}

const (
	collectPageSize = 100
	collectMaxPages = 50
)

// collectAll pages through a backend list until a short page is returned.
// It stops after collectMaxPages pages.
func collectAll[T any](ctx context.Context, fetch func(context.Context, model.ListOptions) ([]T, error)) ([]T, error) {
	var all []T
	for page := range collectMaxPages {
		batch, err := fetch(ctx, model.ListOptions{Skip: page * collectPageSize, Limit: collectPageSize})
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < collectPageSize {
			break
		}
	}
	return all, nil
}
