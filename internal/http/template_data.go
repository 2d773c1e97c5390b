package httpx

import (
	"net/http"

	"github.com/target/crawl-admin/internal/http/ui/viewmodel"
)

// PaginationData contains pagination information for list views.
type PaginationData struct {
	Page     int
	PageSize int
	// HasNext comes from the look-ahead fetch. It is ignored when TotalPages is set.
	HasNext bool
	// TotalPages is the exact page count when the full list is known (0 otherwise).
	TotalPages int
	// ItemCount is the number of items shown on this page.
	ItemCount int
	BasePath  string
}

// pager derives the Pager: an exact total when known, else Current+1 when
// another row exists.
func (p PaginationData) pager() viewmodel.Pager {
	if p.TotalPages > 0 {
		return viewmodel.NewPager(p.Page, p.TotalPages)
	}
	total := p.Page
	if p.HasNext {
		total++
	}
	return viewmodel.NewPager(p.Page, total)
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
	r    *http.Request
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{
		data: basePageData(r, meta),
		r:    r,
	}
}

// WithPagination adds the page position and builds PrevURL/NextURL only
// where the pager can actually move.
func (b *TemplateDataBuilder) WithPagination(opts PaginationData) *TemplateDataBuilder {
	pager := opts.pager()
	pg := viewmodel.Pagination{Pager: pager, PageSize: opts.PageSize}
	if opts.ItemCount > 0 {
		offset := (pager.Current - 1) * opts.PageSize
		pg.StartIndex = offset + 1
		pg.EndIndex = offset + opts.ItemCount
	}

	q := b.r.URL.Query()
	if prev, ok := pager.Advance(-1); ok {
		pg.PrevURL = pageURL(opts.BasePath, q, prev.Current)
	}
	if next, ok := pager.Advance(1); ok {
		pg.NextURL = pageURL(opts.BasePath, q, next.Current)
	}

	b.data["Pagination"] = pg
	return b
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}
