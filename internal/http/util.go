package httpx

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	apperrors "github.com/target/crawl-admin/internal/errors"
)

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return def
}

// parsePage returns the requested 1-based page; values below 1 clamp to 1.
func parsePage(r *http.Request) int {
	return max(parseIntQuery(r, "page", 1), 1)
}

// parseID reads the int64 path value name. A missing or non-numeric id is a
// validation error.
func parseID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.Validationf("invalid %s %q", name, raw)
	}
	return id, nil
}

// optionalInt parses an optional integer form/query value. Empty means nil.
func optionalInt(values url.Values, key string) (*int, bool) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// optionalInt64 is optionalInt for identifiers.
func optionalInt64(values url.Values, key string) (*int64, bool) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// pageURL returns basePath with q and page=n encoded.
func pageURL(basePath string, q url.Values, n int) string {
	out := url.Values{}
	for k, vs := range q {
		if k == "page" {
			continue
		}
		for _, v := range vs {
			if v != "" {
				out.Add(k, v)
			}
		}
	}
	if n > 1 {
		out.Set("page", strconv.Itoa(n))
	}
	if enc := out.Encode(); enc != "" {
		return basePath + "?" + enc
	}
	return basePath
}
