package httpx

import (
	"context"
	"net/http"
	"net/url"

	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/http/ui/viewmodel"
)

// ListFetcher fetches one look-ahead page (limit = PageSize+1) without filters.
type ListFetcher[T any] func(ctx context.Context, pg pageOpts) ([]T, error)

// FilterParser parses URL query parameters into filter data.
// The error is shown to the operator in place of the table.
type FilterParser[F any] func(url.Values) (F, error)

// FilteredFetcher fetches one look-ahead page with filters applied.
type FilteredFetcher[T any, F any] func(ctx context.Context, filters F, pg pageOpts) ([]T, error)

// DataEnricher adds panel-specific data after the items are fetched.
type DataEnricher[T any, F any] func(builder *TemplateDataBuilder, items []T, filters F)

// ListHandlerOpts contains all options needed for the generic list handler.
type ListHandlerOpts[T any, F any] struct {
	// Handler is the UIHandlers instance for rendering (required)
	Handler *UIHandlers
	W       http.ResponseWriter
	R       *http.Request
	// Fetcher is used when the panel has no filters.
	Fetcher ListFetcher[T]
	// FilteredFetcher takes precedence over Fetcher.
	FilteredFetcher FilteredFetcher[T, F]
	FilterParser    FilterParser[F]
	EnrichData      DataEnricher[T, F]
	// BasePath is the base URL path for pagination links (e.g., "/accounts")
	BasePath string
	PageMeta PageMeta
	// ItemsKey is the template data key for the items (e.g., "Accounts")
	ItemsKey string
	// PageSize defaults to the handler's page size.
	PageSize int
	// ErrorMessage is shown when the backend error carries no detail.
	ErrorMessage string
}

// HandleList renders a paginated panel: it parses page and filters, fetches
// one extra row to learn whether a next page exists and renders the table
// (full page or content fragment).
func HandleList[T, F any](opts ListHandlerOpts[T, F]) {
	if opts.W == nil || opts.R == nil || opts.Handler == nil {
		if opts.W != nil {
			http.Error(opts.W, "Internal configuration error", http.StatusInternalServerError)
		}
		return
	}

	pg := pageOpts{Page: parsePage(opts.R), PageSize: opts.PageSize}
	if pg.PageSize <= 0 {
		pg.PageSize = opts.Handler.pageSize()
	}

	var filters F
	if opts.FilterParser != nil {
		var filterErr error
		filters, filterErr = opts.FilterParser(opts.R.URL.Query())
		if filterErr != nil {
			opts.renderListError(pg, filters, "Invalid filter parameters: "+filterErr.Error())
			return
		}
	}

	fetch := opts.fetcher(filters)
	if fetch == nil {
		opts.renderListError(pg, filters, "No data fetcher configured.")
		return
	}

	items, err := fetch(opts.R.Context(), pg)
	if err != nil {
		opts.Handler.logger().WarnContext(opts.R.Context(), "list fetch failed",
			"page", opts.PageMeta.CurrentPage, "error", err)
		msg := apperrors.UserMessage(err, opts.ErrorMessage)
		notify(opts.W, msg, viewmodel.ToastError)
		opts.renderListError(pg, filters, msg)
		return
	}

	hasNext := len(items) > pg.PageSize
	if hasNext {
		items = items[:pg.PageSize]
	}

	builder := NewTemplateData(opts.R, opts.PageMeta).
		WithPagination(PaginationData{
			Page:      pg.Page,
			PageSize:  pg.PageSize,
			HasNext:   hasNext,
			ItemCount: len(items),
			BasePath:  opts.BasePath,
		}).
		With(opts.ItemsKey, items)
	if opts.EnrichData != nil {
		opts.EnrichData(builder, items, filters)
	}
	opts.Handler.renderDashboardPage(opts.W, opts.R, builder.Build())
}

func (lh *ListHandlerOpts[T, F]) fetcher(filters F) ListFetcher[T] {
	switch {
	case lh.FilteredFetcher != nil:
		return func(ctx context.Context, pg pageOpts) ([]T, error) {
			return lh.FilteredFetcher(ctx, filters, pg)
		}
	case lh.Fetcher != nil:
		return lh.Fetcher
	default:
		return nil
	}
}

// renderListError renders the panel with an error in place of the table.
func (lh *ListHandlerOpts[T, F]) renderListError(pg pageOpts, filters F, errMsg string) {
	builder := NewTemplateData(lh.R, lh.PageMeta).
		WithPagination(PaginationData{Page: pg.Page, PageSize: pg.PageSize, BasePath: lh.BasePath}).
		WithError(errMsg)
	if lh.ItemsKey != "" {
		builder.With(lh.ItemsKey, []T{})
	}
	if lh.EnrichData != nil {
		lh.EnrichData(builder, nil, filters)
	}
	lh.Handler.renderDashboardPage(lh.W, lh.R, builder.Build())
}
