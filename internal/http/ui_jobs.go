package httpx

import (
	"net/http"
	"net/url"
	"strconv"

	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/http/ui/viewmodel"
	"github.com/target/crawl-admin/internal/service"
)

// JobWatcher is one pending poll, rendered by the job-watcher template.
type JobWatcher struct {
	Kind    service.JobKind
	URL     string
	DelayMS int64
}

func newJobWatcher(policy service.Policy, job service.Job, attempt int) JobWatcher {
	q := url.Values{}
	q.Set("kind", string(job.Kind))
	q.Set("attempt", strconv.Itoa(attempt))
	if job.Baseline > 0 {
		q.Set("baseline", strconv.Itoa(job.Baseline))
	}
	return JobWatcher{
		Kind:    job.Kind,
		URL:     "/jobs/watch?" + q.Encode(),
		DelayMS: policy.Delay(attempt).Milliseconds(),
	}
}

// jobPage is the panel refreshed when a job of kind finishes.
func jobPage(kind service.JobKind) string {
	if kind == service.JobKindSampling {
		return PageSampleData
	}
	return PageExports
}

func jobDoneMessage(kind service.JobKind) string {
	switch kind {
	case service.JobKindExportRaw:
		return "Raw data export finished."
	case service.JobKindExportSample:
		return "Sample data export finished."
	default:
		return "Sampling finished."
	}
}

// startJobWatch answers a job trigger: an info toast plus the first watcher,
// appended out of band to #job-watch so it survives panel navigation.
func (h *UIHandlers) startJobWatch(w http.ResponseWriter, r *http.Request, job service.Job, message string) {
	notify(w, message, viewmodel.ToastInfo)
	watcher := newJobWatcher(h.Jobs.Policy(), job, 0)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.T.RenderNamed(w, "job-watcher-oob", watcher); err != nil {
		h.logAndRenderTemplateError(w, r, err, "job watcher render")
	}
}

// JobWatch handles GET /jobs/watch?kind=&attempt=&baseline=. Each call is
// one check: done ends with a success toast and a panel reload, exhaustion
// with a warning, anything else schedules the next watcher.
func (h *UIHandlers) JobWatch(w http.ResponseWriter, r *http.Request) {
	kind, ok := service.ParseJobKind(r.URL.Query().Get("kind"))
	if !ok {
		http.Error(w, "unknown job kind", http.StatusBadRequest)
		return
	}
	job := service.Job{Kind: kind, Baseline: max(parseIntQuery(r, "baseline", 0), 0)}
	attempt := max(parseIntQuery(r, "attempt", 0), 0)

	step, err := h.Jobs.Poll(r.Context(), job, attempt)
	if err != nil {
		if apperrors.IsCanceled(err) || r.Context().Err() != nil {
			return
		}
		h.actionError(w, r, err, "Unable to check job progress.")
		return
	}

	switch {
	case step.Done:
		h.invalidateDashboard(r.Context())
		HTMX(w).Toast(jobDoneMessage(kind), viewmodel.ToastSuccess).Reload(jobPage(kind))
		w.WriteHeader(http.StatusOK)
	case step.Exhausted:
		HTMX(w).Toast("Still running. Refresh the panel later to see the result.", viewmodel.ToastWarning)
		w.WriteHeader(http.StatusOK)
	default:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		next := newJobWatcher(h.Jobs.Policy(), job, step.NextAttempt)
		next.DelayMS = step.NextDelay.Milliseconds()
		if err := h.T.RenderNamed(w, "job-watcher", next); err != nil {
			h.logAndRenderTemplateError(w, r, err, "job watcher render")
		}
	}
}
