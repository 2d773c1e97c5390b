package metrics

import (
	"strconv"
	"time"

	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// BackendCall captures one request to the pipeline backend.
type BackendCall struct {
	Method   string
	Route    string // templated path, e.g. /api/tasks/{id}
	Status   int    // 0 when no response was received
	Duration time.Duration
	Err      error
}

// EmitBackendCall emits a counter and a timing for a backend request.
func EmitBackendCall(sink statsd.Sink, in BackendCall) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"method": in.Method,
		"route":  in.Route,
		"result": ResultSuccess,
	}
	if in.Status > 0 {
		tags["status"] = strconv.Itoa(in.Status)
	}
	if in.Err != nil {
		tags["result"] = ResultError
		if code := apperrors.GetCode(in.Err); code != "" {
			tags["error_class"] = string(code)
		}
	}

	sink.Count("backend.request", 1, tags)
	if in.Duration > 0 {
		sink.Timing("backend.duration", in.Duration, tags)
	}
}

// JobWatchOutcome values tag job watch completions.
const (
	WatchCompleted = "completed"
	WatchExhausted = "exhausted"
)

// EmitJobWatch records how a background-job watch ended and after how many polls.
func EmitJobWatch(sink statsd.Sink, kind, outcome string, attempts int) {
	if sink == nil {
		return
	}
	tags := map[string]string{"kind": kind, "outcome": outcome}
	sink.Count("jobwatch.finished", 1, tags)
	sink.Gauge("jobwatch.attempts", float64(attempts), tags)
}
