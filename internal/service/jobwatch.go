package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/target/crawl-admin/internal/core"
	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/observability/metrics"
	"github.com/target/crawl-admin/internal/observability/statsd"
)

// JobKind names a background backend job the console can watch.
type JobKind string

const (
	JobKindExportRaw    JobKind = "export-raw"
	JobKindExportSample JobKind = "export-sample"
	JobKindSampling     JobKind = "sample"
)

// ExportJobKind maps a data set onto its export job kind.
func ExportJobKind(kind model.RecordKind) JobKind {
	if kind == model.RecordKindSample {
		return JobKindExportSample
	}
	return JobKindExportRaw
}

// ParseJobKind validates a job kind from a query string.
func ParseJobKind(v string) (JobKind, bool) {
	switch k := JobKind(v); k {
	case JobKindExportRaw, JobKindExportSample, JobKindSampling:
		return k, true
	default:
		return "", false
	}
}

// Job identifies a watched job. Baseline is the export count of the kind
// before the job was triggered; it is unused for sampling.
type Job struct {
	Kind     JobKind
	Baseline int
}

// ErrWatchExhausted is returned by Wait when the attempts run out before the
// job is observed as complete.
var ErrWatchExhausted = errors.New("job still running after the last check")

// Policy is a bounded exponential backoff.
type Policy struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Factor       float64
	MaxAttempts  int
}

// DefaultPolicy returns the stock 2s ×2 capped at 30s, 10 attempts.
func DefaultPolicy() Policy {
	return Policy{InitialDelay: 2 * time.Second, MaxDelay: 30 * time.Second, Factor: 2, MaxAttempts: 10}
}

// normalized fills zero values from DefaultPolicy and clamps nonsense.
func (p Policy) normalized() Policy {
	d := DefaultPolicy()
	if p.InitialDelay <= 0 {
		p.InitialDelay = d.InitialDelay
	}
	if p.MaxDelay < p.InitialDelay {
		p.MaxDelay = max(d.MaxDelay, p.InitialDelay)
	}
	if p.Factor < 1 {
		p.Factor = d.Factor
	}
	if p.MaxAttempts < 1 {
		p.MaxAttempts = d.MaxAttempts
	}
	return p
}

// Delay returns the wait before check number attempt (0-based):
// min(initial·factor^attempt, max).
func (p Policy) Delay(attempt int) time.Duration {
	p = p.normalized()
	attempt = max(attempt, 0)
	d := float64(p.InitialDelay) * math.Pow(p.Factor, float64(attempt))
	if math.IsInf(d, 0) || d >= float64(p.MaxDelay) {
		return p.MaxDelay
	}
	return time.Duration(d)
}

// Attempts returns the bounded number of checks.
func (p Policy) Attempts() int {
	return p.normalized().MaxAttempts
}

// JobSources groups the backend ports the watcher reads.
type JobSources struct {
	Exports core.ExportAPI // Required
	Records core.RecordAPI // Required
}

// JobWatcherOptions groups dependencies for JobWatcher.
type JobWatcherOptions struct {
	Sources JobSources
	Policy  Policy
	Metrics statsd.Sink // Optional
}

// JobWatcher decides whether a background backend job has finished.
type JobWatcher struct {
	exports core.ExportAPI
	records core.RecordAPI
	policy  Policy
	metrics statsd.Sink
	logger  *slog.Logger
}

// NewJobWatcher constructs a new JobWatcher.
func NewJobWatcher(opts JobWatcherOptions) *JobWatcher {
	if opts.Sources.Exports == nil {
		panic("ExportAPI is required")
	}
	if opts.Sources.Records == nil {
		panic("RecordAPI is required")
	}
	return &JobWatcher{
		exports: opts.Sources.Exports,
		records: opts.Sources.Records,
		policy:  opts.Policy.normalized(),
		metrics: opts.Metrics,
		logger:  slog.Default(),
	}
}

// Policy returns the effective backoff policy.
func (w *JobWatcher) Policy() Policy {
	return w.policy
}

// Done checks once whether the job has completed.
func (w *JobWatcher) Done(ctx context.Context, job Job) (bool, error) {
	switch job.Kind {
	case JobKindExportRaw, JobKindExportSample:
		kind := model.RecordKindRaw
		if job.Kind == JobKindExportSample {
			kind = model.RecordKindSample
		}
		files, err := w.exports.ListExports(ctx)
		if err != nil {
			return false, fmt.Errorf("check %s: %w", job.Kind, err)
		}
		return model.CountExports(files, kind) > job.Baseline, nil
	case JobKindSampling:
		counts, err := w.records.RecordStatsByYear(ctx, model.RecordKindSample)
		if err != nil {
			return false, fmt.Errorf("check %s: %w", job.Kind, err)
		}
		return counts.Total() > 0, nil
	default:
		return false, apperrors.Validationf("unknown job kind %q", job.Kind)
	}
}

// Step is the outcome of one poll.
type Step struct {
	Done      bool
	Exhausted bool
	// NextAttempt and NextDelay schedule the following poll when neither
	// Done nor Exhausted is set.
	NextAttempt int
	NextDelay   time.Duration
}

// Poll performs check number attempt (0-based) and schedules the next one.
// A failed check counts as "not done yet".
func (w *JobWatcher) Poll(ctx context.Context, job Job, attempt int) (Step, error) {
	attempt = max(attempt, 0)
	done, err := w.Done(ctx, job)
	if err != nil && (apperrors.IsValidation(err) || apperrors.IsCanceled(err) || ctx.Err() != nil) {
		return Step{}, err
	}
	if err != nil {
		w.logger.WarnContext(ctx, "job watch check failed", "kind", job.Kind, "attempt", attempt, "error", err)
	}
	switch {
	case done:
		metrics.EmitJobWatch(w.metrics, string(job.Kind), metrics.WatchCompleted, attempt+1)
		return Step{Done: true}, nil
	case attempt+1 >= w.policy.MaxAttempts:
		metrics.EmitJobWatch(w.metrics, string(job.Kind), metrics.WatchExhausted, attempt+1)
		return Step{Exhausted: true}, nil
	default:
		return Step{NextAttempt: attempt + 1, NextDelay: w.policy.Delay(attempt + 1)}, nil
	}
}

// Wait blocks until the job completes, the attempts run out
// (ErrWatchExhausted) or ctx ends. It waits Delay(0) before the first check.
func (w *JobWatcher) Wait(ctx context.Context, job Job) error {
	delay := w.policy.Delay(0)
	for attempt := 0; ; {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		step, err := w.Poll(ctx, job, attempt)
		if err != nil {
			return err
		}
		if step.Done {
			return nil
		}
		if step.Exhausted {
			return ErrWatchExhausted
		}
		attempt, delay = step.NextAttempt, step.NextDelay
	}
}
