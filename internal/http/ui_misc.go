package httpx

import (
	"errors"
	"net/http"
	"strings"
)

// wantsHTML reports whether the client is a browser (or htmx) rather than an API caller.
func wantsHTML(r *http.Request) bool {
	if IsHTMX(r) {
		return true
	}
	accept := r.Header.Get("Accept")
	return accept == "" || strings.Contains(accept, "text/html") || strings.Contains(accept, "*/*")
}

// NotFound handles 404 errors.
// Browser requests get the HTML error page, API callers a JSON error.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if !wantsHTML(r) || strings.HasPrefix(r.URL.Path, "/api/") {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errors.New("not found"),
		})
		return
	}

	data := map[string]any{
		"Title":   "Page Not Found - Crawl Admin",
		"Code":    "404",
		"Message": "The page you're looking for doesn't exist.",
		"Nav":     navItems,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if h.T == nil {
		_, _ = w.Write([]byte("Page not found"))
		return
	}
	if err := h.T.RenderError(w, r, data); err != nil {
		h.logger().Error("failed to render not-found page", "error", err)
	}
}
