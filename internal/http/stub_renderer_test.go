package httpx

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/target/crawl-admin/internal/http/ui/viewmodel"
)

// stubTemplates is a minimal template set that prints the data the generic
// handlers compute, so their tests do not depend on the real frontend.
//
//nolint:gochecknoglobals // test fixture
var stubTemplates = fstest.MapFS{
	"layout.tmpl": {Data: []byte(
		`{{define "layout"}}FULL[{{.Title}}] {{renderSection .CurrentPage .}}{{end}}` +
			`{{define "error-layout"}}ERROR {{.Code}} {{.Message}}{{end}}`)},
	"pages/stub.tmpl": {Data: []byte(
		`{{define "dashboard-content"}}items={{range .Items}}{{.Name}},{{end}}` +
			` error={{.ErrorMessage}}` +
			`{{with .Pagination}} page={{.Current}}/{{.Total}} prev={{.PrevURL}} next={{.NextURL}} range={{.StartIndex}}-{{.EndIndex}}{{end}}` +
			`{{with .Extra}} extra={{.}}{{end}}{{end}}`)},
	"partials/stub.tmpl": {Data: []byte(
		`{{define "modal"}}MODAL[{{.Title}}] {{partial .BodyTemplate .Body}}{{end}}` +
			`{{define "stub-form"}}form mode={{.Mode}} action={{.Action}} error={{.ErrorMessage}}{{with .Errors}}{{range $k, $v := .}} {{$k}}={{$v}}{{end}}{{end}}{{end}}`)},
}

func newStubRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: stubTemplates})
	require.NoError(t, err)
	return tr
}

func newStubHandlers(t *testing.T) *UIHandlers {
	t.Helper()
	return &UIHandlers{T: newStubRenderer(t)}
}

// triggers decodes the Hx-Trigger header of a recorded response.
func triggers(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	raw := w.Header().Get("Hx-Trigger")
	if raw == "" {
		return map[string]json.RawMessage{}
	}
	events := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal([]byte(raw), &events))
	return events
}

// toastOf returns the showToast payload, failing when there is none.
func toastOf(t *testing.T, w *httptest.ResponseRecorder) viewmodel.Toast {
	t.Helper()
	raw, ok := triggers(t, w)[EventShowToast]
	require.True(t, ok, "expected a showToast trigger, got %q", w.Header().Get("Hx-Trigger"))
	var toast viewmodel.Toast
	require.NoError(t, json.Unmarshal(raw, &toast))
	return toast
}
