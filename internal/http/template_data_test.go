package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/crawl-admin/internal/http/ui/viewmodel"
)

func paginationOf(t *testing.T, data map[string]any) viewmodel.Pagination {
	t.Helper()
	pg, ok := data["Pagination"].(viewmodel.Pagination)
	require.True(t, ok, "Pagination missing: %v", data)
	return pg
}

func TestNewTemplateData(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	data := NewTemplateData(r, PageMeta{Title: "Accounts", PageTitle: "Accounts", CurrentPage: PageAccounts}).Build()

	assert.Equal(t, "Accounts", data["Title"])
	assert.Equal(t, "Accounts", data["PageTitle"])
	assert.Equal(t, PageAccounts, data["CurrentPage"])
	assert.NotEmpty(t, data["Nav"])
}

func TestWithPagination_LookAheadTotal(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/raw-data?year=2020&page=2", nil)
	data := NewTemplateData(r, PageMeta{CurrentPage: PageRawData}).
		WithPagination(PaginationData{Page: 2, PageSize: 20, HasNext: true, ItemCount: 20, BasePath: "/raw-data"}).
		Build()

	pg := paginationOf(t, data)
	assert.Equal(t, viewmodel.Pager{Current: 2, Total: 3}, pg.Pager)
	assert.Equal(t, 21, pg.StartIndex)
	assert.Equal(t, 40, pg.EndIndex)
	assert.Equal(t, "/raw-data?year=2020", pg.PrevURL)
	assert.Equal(t, "/raw-data?page=3&year=2020", pg.NextURL)
}

func TestWithPagination_LastPageHasNoNext(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/accounts?page=3", nil)
	pg := paginationOf(t, NewTemplateData(r, PageMeta{}).
		WithPagination(PaginationData{Page: 3, PageSize: 20, ItemCount: 4, BasePath: "/accounts"}).
		Build())

	assert.Equal(t, viewmodel.Pager{Current: 3, Total: 3}, pg.Pager)
	assert.Empty(t, pg.NextURL)
	assert.Equal(t, "/accounts?page=2", pg.PrevURL)
}

func TestWithPagination_ExactTotalClampsPage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/redis-configs?page=9", nil)
	pg := paginationOf(t, NewTemplateData(r, PageMeta{}).
		WithPagination(PaginationData{Page: 9, PageSize: 10, TotalPages: 2, HasNext: true, BasePath: "/redis-configs"}).
		Build())

	assert.Equal(t, viewmodel.Pager{Current: 2, Total: 2}, pg.Pager)
	assert.Empty(t, pg.NextURL, "exact total wins over look-ahead")
}

func TestWithPagination_FirstPageEmpty(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/proxies", nil)
	pg := paginationOf(t, NewTemplateData(r, PageMeta{}).
		WithPagination(PaginationData{Page: 1, PageSize: 20, BasePath: "/proxies"}).
		Build())

	assert.Equal(t, viewmodel.Pager{Current: 1, Total: 1}, pg.Pager)
	assert.Zero(t, pg.StartIndex)
	assert.Empty(t, pg.PrevURL)
	assert.Empty(t, pg.NextURL)
}

func TestTemplateDataBuilder_ErrorsAndCustom(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/quotas", nil)
	data := NewTemplateData(r, PageMeta{}).
		WithError("Unable to load quotas.").
		WithFieldErrors(map[string]string{"start_year": "required"}).
		WithFieldErrors(nil).
		With("Quotas", []int{1}).
		Build()

	assert.Equal(t, true, data["Error"])
	assert.Equal(t, "Unable to load quotas.", data["ErrorMessage"])
	assert.Equal(t, map[string]string{"start_year": "required"}, data["Errors"])
	assert.Equal(t, []int{1}, data["Quotas"])
}
