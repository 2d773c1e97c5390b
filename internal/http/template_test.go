package httpx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/crawl-admin/internal/domain/model"
	"github.com/target/crawl-admin/internal/http/ui/viewmodel"
)

func renderDoc(t *testing.T, tr *TemplateRenderer, name string, data any) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tr.RenderNamed(&buf, name, data))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestTemplateRenderer_LoadTemplates(t *testing.T) {
	tr := RequireTemplateRenderer(t)

	expected := []string{
		"layout", "sidebar", "error-layout",
		"modal", "pager", "page-error", "field-error",
		"job-watcher", "job-watcher-oob",
		"account-form", "task-form", "proxy-form", "quota-form",
		"redis-config-form", "crawler-param-form",
		"record-detail", "import-form",
	}
	for _, name := range ContentTemplateMap() {
		expected = append(expected, name)
	}
	for _, name := range expected {
		assert.True(t, tr.Has(name), "template %s should be defined", name)
	}
	assert.False(t, tr.Has("alerts-content"))
}

func TestTemplateRenderer_Reload(t *testing.T) {
	tr := RequireTemplateRenderer(t)
	require.NoError(t, tr.Reload())
	assert.True(t, tr.Has("layout"))
}

func TestTemplateRenderer_Modal(t *testing.T) {
	tr := RequireTemplateRenderer(t)

	doc := renderDoc(t, tr, "modal", viewmodel.Modal{
		ID:           "account-modal",
		Title:        "New account",
		BodyTemplate: "account-form",
		Body: map[string]any{
			"Mode":     FormModeCreate,
			"Action":   "/accounts",
			"FormID":   "account-form",
			"FormData": model.AccountRequest{Status: model.ToggleOn},
		},
		Buttons: []viewmodel.ModalButton{viewmodel.CancelButton(), viewmodel.SubmitButton("Save", "account-form")},
	})

	backdrop := doc.Find("#account-modal.modal-backdrop")
	require.Equal(t, 1, backdrop.Length())
	assert.Equal(t, "New account", strings.TrimSpace(doc.Find(".modal-title").Text()))
	assert.Equal(t, 1, doc.Find("form#account-form").Length())

	submit := doc.Find(`.modal-footer button[type="submit"]`)
	require.Equal(t, 1, submit.Length())
	form, _ := submit.Attr("form")
	assert.Equal(t, "account-form", form)
	_, closes := doc.Find(".modal-footer button").First().Attr("data-close-modal")
	assert.True(t, closes)
}

func TestTemplateRenderer_Pager(t *testing.T) {
	tr := RequireTemplateRenderer(t)

	t.Run("middle page links both ways", func(t *testing.T) {
		p := viewmodel.Pagination{
			Pager:      viewmodel.NewPager(2, 3),
			PageSize:   20,
			StartIndex: 21,
			EndIndex:   40,
			PrevURL:    "/tasks",
			NextURL:    "/tasks?page=3",
		}
		doc := renderDoc(t, tr, "pager", map[string]any{"P": p, "Target": "#tasks-content"})

		prev := doc.Find("a.pager-prev")
		require.Equal(t, 1, prev.Length())
		assert.Equal(t, "/tasks", prev.AttrOr("hx-get", ""))
		assert.Equal(t, "#tasks-content", prev.AttrOr("hx-target", ""))
		assert.Equal(t, "/tasks?page=3", doc.Find("a.pager-next").AttrOr("hx-get", ""))
		assert.Equal(t, "Page 2 of 3 (21-40)", strings.TrimSpace(doc.Find(".pager-status").Text()))
	})

	t.Run("single page disables both buttons", func(t *testing.T) {
		doc := renderDoc(t, tr, "pager", map[string]any{"P": viewmodel.Pagination{Pager: viewmodel.NewPager(1, 1)}, "Target": "#x"})
		assert.Equal(t, 2, doc.Find("button[disabled]").Length())
		assert.Equal(t, 0, doc.Find("a").Length())
		assert.Equal(t, "Page 1 of 1", strings.TrimSpace(doc.Find(".pager-status").Text()))
	})
}

func TestTemplateRenderer_JobWatcher(t *testing.T) {
	tr := RequireTemplateRenderer(t)

	doc := renderDoc(t, tr, "job-watcher-oob", JobWatcher{URL: "/jobs/watch?attempt=0&kind=sampling", DelayMS: 3000})

	host := doc.Find("#job-watch")
	require.Equal(t, 1, host.Length())
	assert.Equal(t, "beforeend", host.AttrOr("hx-swap-oob", ""))
	watcher := host.Find("[hx-get]")
	assert.Equal(t, "/jobs/watch?attempt=0&kind=sampling", watcher.AttrOr("hx-get", ""))
	assert.Equal(t, "load delay:3000ms", watcher.AttrOr("hx-trigger", ""))
}

func TestTemplateRenderer_AccountFormKeepsValues(t *testing.T) {
	tr := RequireTemplateRenderer(t)

	doc := renderDoc(t, tr, "account-form", map[string]any{
		"FormID":       "account-form",
		"Action":       "/accounts/4",
		"FormData":     model.AccountRequest{AccountName: "cookie=abc", Status: model.ToggleOn},
		"Errors":       map[string]string{"account_name": "Too long."},
		"Error":        true,
		"ErrorMessage": "Please fix the errors below.",
	})

	assert.Equal(t, "/accounts/4", doc.Find("form").AttrOr("hx-post", ""))
	assert.Equal(t, "cookie=abc", doc.Find("textarea#account_name").Text())
	_, checked := doc.Find(`input[name="status"]`).Attr("checked")
	assert.True(t, checked)
	assert.Equal(t, "Too long.", doc.Find(".field-error").Text())
	assert.Equal(t, "Please fix the errors below.", doc.Find(".alert-error").Text())
}
