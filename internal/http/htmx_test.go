package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTMX_RequestDetection(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.Header.Set("Hx-Request", "true")
	r.Header.Set("Hx-Boosted", "true")
	if !IsHTMX(r) {
		t.Fatal("expected IsHTMX true")
	}
	if !IsBoosted(r) {
		t.Fatal("expected IsBoosted true")
	}

	r2 := httptest.NewRequest(http.MethodGet, "/x", nil)
	if IsHTMX(r2) || IsBoosted(r2) {
		t.Fatal("expected defaults to false")
	}
}

func TestHTMX_HistoryRestore_WantsPartial(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.Header.Set("Hx-Request", "true")
	if !WantsPartial(r) {
		t.Fatal("htmx request should want partial")
	}
	r.Header.Set("Hx-History-Restore-Request", "true")
	if WantsPartial(r) {
		t.Fatal("history restore should get the full page")
	}
}

func TestHTMX_TargetAndTrigger_Read(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/x", nil)
	r.Header.Set("Hx-Target", "main")
	r.Header.Set("Hx-Trigger", "btn1")
	if HXTarget(r) != "main" {
		t.Fatalf("HXTarget mismatch: %q", HXTarget(r))
	}
	if HXTrigger(r) != "btn1" {
		t.Fatalf("HXTrigger mismatch: %q", HXTrigger(r))
	}
}

func TestHTMX_ResponseHeaders_Setters(t *testing.T) {
	rr := httptest.NewRecorder()
	SetHXRedirect(rr, "/exports")
	SetHXPushURL(rr, "/proxies")
	SetHXRefresh(rr, true)
	SetHXTrigger(rr, "saved", map[string]any{"id": "123"})
	res := rr.Result()
	t.Cleanup(func() { _ = res.Body.Close() })
	if got := res.Header.Get("Hx-Redirect"); got != "/exports" {
		t.Fatalf("HX-Redirect: %q", got)
	}
	if got := res.Header.Get("Hx-Push-Url"); got != "/proxies" {
		t.Fatalf("HX-Push-Url: %q", got)
	}
	if got := res.Header.Get("Hx-Refresh"); got != "true" {
		t.Fatalf("HX-Refresh: %q", got)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(res.Header.Get("Hx-Trigger")), &payload); err != nil {
		t.Fatalf("unmarshal trigger: %v", err)
	}
	if _, ok := payload["saved"]; !ok {
		t.Fatalf("expected 'saved' key in HX-Trigger: %v", payload)
	}
}

func TestSetHXTrigger_MergesEvents(t *testing.T) {
	rr := httptest.NewRecorder()
	SetHXTrigger(rr, "showToast", map[string]string{"message": "Saved", "type": "success"})
	SetHXTrigger(rr, "closeModal", nil)
	SetHXTrigger(rr, "accounts:reload", nil)

	var payload map[string]any
	if err := json.Unmarshal([]byte(rr.Header().Get("Hx-Trigger")), &payload); err != nil {
		t.Fatalf("unmarshal trigger: %v", err)
	}
	if len(payload) != 3 {
		t.Fatalf("expected 3 merged events, got %v", payload)
	}
	if payload["closeModal"] != true || payload["accounts:reload"] != true {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestSetHXTrigger_KeepsBareEventNames(t *testing.T) {
	rr := httptest.NewRecorder()
	rr.Header().Set("Hx-Trigger", "first, second")
	SetHXTrigger(rr, "third", nil)

	var payload map[string]any
	if err := json.Unmarshal([]byte(rr.Header().Get("Hx-Trigger")), &payload); err != nil {
		t.Fatalf("unmarshal trigger: %v", err)
	}
	for _, k := range []string{"first", "second", "third"} {
		if payload[k] != true {
			t.Fatalf("missing %q in %v", k, payload)
		}
	}
}

func TestSetHXTrigger_EscapesNonASCII(t *testing.T) {
	rr := httptest.NewRecorder()
	SetHXTrigger(rr, "showToast", map[string]string{"message": "任务运行中 😀", "type": "error"})

	raw := rr.Header().Get("Hx-Trigger")
	for i := 0; i < len(raw); i++ {
		if raw[i] >= 0x80 {
			t.Fatalf("non-ASCII byte at %d in %q", i, raw)
		}
	}
	if !strings.Contains(raw, `\u4efb`) || !strings.Contains(raw, `\ud83d\ude00`) {
		t.Fatalf("expected \\u escapes with a surrogate pair, got %q", raw)
	}

	// Merging decodes the escaped header and keeps the message intact.
	SetHXTrigger(rr, "closeModal", nil)
	var payload struct {
		ShowToast map[string]string `json:"showToast"`
	}
	if err := json.Unmarshal([]byte(rr.Header().Get("Hx-Trigger")), &payload); err != nil {
		t.Fatalf("unmarshal trigger: %v", err)
	}
	if got := payload.ShowToast["message"]; got != "任务运行中 😀" {
		t.Fatalf("message = %q", got)
	}
}
