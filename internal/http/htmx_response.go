package httpx

import (
	"net/http"

	"github.com/target/crawl-admin/internal/http/ui/viewmodel"
)

// HTMXResponse provides a fluent API for building HTMX responses.
type HTMXResponse struct {
	w http.ResponseWriter
}

// HTMX creates a new HTMXResponse for fluent response building.
func HTMX(w http.ResponseWriter) *HTMXResponse {
	return &HTMXResponse{w: w}
}

// Redirect instructs htmx to redirect the browser to the given URL.
// It sets the HX-Redirect header and returns a 204 No Content status.
func (h *HTMXResponse) Redirect(url string) {
	SetHXRedirect(h.w, url)
	h.w.WriteHeader(http.StatusNoContent)
}

// Trigger adds a client-side event with optional payload. Chainable.
func (h *HTMXResponse) Trigger(event string, payload any) *HTMXResponse {
	SetHXTrigger(h.w, event, payload)
	return h
}

// Toast queues a showToast notification. Chainable.
func (h *HTMXResponse) Toast(message string, kind viewmodel.ToastKind) *HTMXResponse {
	return h.Trigger(EventShowToast, viewmodel.Toast{Message: message, Type: kind})
}

// CloseModal asks the client to remove the open modal. Chainable.
func (h *HTMXResponse) CloseModal() *HTMXResponse {
	return h.Trigger(EventCloseModal, nil)
}

// Reload asks the given panel to reload its content root. Chainable.
func (h *HTMXResponse) Reload(page string) *HTMXResponse {
	return h.Trigger(ReloadEvent(page), nil)
}

// PushURL pushes the given URL into the browser history for the new content.
func (h *HTMXResponse) PushURL(url string) *HTMXResponse {
	SetHXPushURL(h.w, url)
	return h
}

// NoContent ends the response with 204 and keeps the headers set so far.
func (h *HTMXResponse) NoContent() {
	h.w.WriteHeader(http.StatusNoContent)
}

// Refresh forces a full page refresh.
// It sets the HX-Refresh header and returns a 204 No Content status.
func (h *HTMXResponse) Refresh() {
	SetHXRefresh(h.w, true)
	h.w.WriteHeader(http.StatusNoContent)
}
