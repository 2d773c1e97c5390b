package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf16"
)

const headerHXTrigger = "Hx-Trigger"

// IsHTMX reports whether the request was initiated by htmx (Hx-Request: true).
func IsHTMX(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-Request"), "true")
}

// IsBoosted reports whether the request was initiated by hx-boost (Hx-Boosted: true).
func IsBoosted(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-Boosted"), "true")
}

// IsHistoryRestore reports true when htmx is restoring history (Hx-History-Restore-Request: true).
func IsHistoryRestore(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-History-Restore-Request"), "true")
}

// WantsPartial returns true when the handler should return only the main fragment (not full layout).
// History restores swap the whole body, so they get the full page.
func WantsPartial(r *http.Request) bool {
	return IsHTMX(r) && !IsHistoryRestore(r)
}

// HXTarget returns the id of the target element being updated.
func HXTarget(r *http.Request) string { return r.Header.Get("Hx-Target") }

// HXTrigger returns the id/name of the element that triggered the request.
func HXTrigger(r *http.Request) string { return r.Header.Get(headerHXTrigger) }

// SetHXRedirect instructs htmx to redirect the browser to the given URL.
func SetHXRedirect(w http.ResponseWriter, url string) { w.Header().Set("Hx-Redirect", url) }

// SetHXPushURL pushes the given URL into the browser history for the new content.
func SetHXPushURL(w http.ResponseWriter, url string) { w.Header().Set("Hx-Push-Url", url) }

// SetHXRefresh forces a full page refresh when true.
func SetHXRefresh(w http.ResponseWriter, refresh bool) {
	if refresh {
		w.Header().Set("Hx-Refresh", "true")
		return
	}
	w.Header().Set("Hx-Refresh", "false")
}

// SetHXTrigger adds a client-side event to the Hx-Trigger response header.
// The header is a single JSON object {"<event>": <payload>, ...}; events
// already set on the response are kept and an event set twice takes the
// later payload. A nil payload is sent as true.
func SetHXTrigger(w http.ResponseWriter, event string, payload any) {
	var value any = true
	if payload != nil {
		value = payload
	}

	events := map[string]any{}
	if existing := w.Header().Get(headerHXTrigger); existing != "" {
		if err := json.Unmarshal([]byte(existing), &events); err != nil {
			// A bare event name ("a" or "a, b") written elsewhere.
			events = map[string]any{}
			for _, name := range strings.Split(existing, ",") {
				if name = strings.TrimSpace(name); name != "" {
					events[name] = true
				}
			}
		}
	}
	events[event] = value

	b, err := json.Marshal(events)
	if err != nil {
		events[event] = true
		b, _ = json.Marshal(events) //nolint:errchkjson // values are now only previously-decoded JSON
	}
	w.Header().Set(headerHXTrigger, asciiJSON(b))
}

// asciiJSON escapes every non-ASCII rune of a JSON document as \uXXXX.
// Browsers read response headers as Latin-1.
func asciiJSON(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, r := range string(b) {
		switch {
		case r < 0x80:
			sb.WriteRune(r)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&sb, "\\u%04x\\u%04x", hi, lo)
		default:
			fmt.Fprintf(&sb, "\\u%04x", r)
		}
	}
	return sb.String()
}
