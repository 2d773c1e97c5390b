package httpx

import (
	"log/slog"
	"net/http"

	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/http/ui/viewmodel"
)

// ErrorOpts contains the options needed to report a failed action.
type ErrorOpts struct {
	W   http.ResponseWriter
	R   *http.Request
	Err error
	// Fallback is the toast text when the error carries no backend detail.
	Fallback string
	// StatusCode overrides the response status (optional, defaults to 200 for
	// htmx requests so the toast header is processed, else the error class).
	StatusCode int
	Logger     *slog.Logger
}

// DetermineErrorStatus returns the status to answer with for err. htmx
// requests get 0 (use 200) so the client still handles the trigger header.
func DetermineErrorStatus(r *http.Request, err error) int {
	if err == nil || (r != nil && IsHTMX(r)) {
		return 0
	}
	return apperrors.HTTPStatus(err)
}

// RenderError reports a failed action: one log line, one error toast and no
// reload. The response body is empty for htmx requests.
func RenderError(opts ErrorOpts) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	msg := apperrors.UserMessage(opts.Err, opts.Fallback)
	if msg == "" {
		msg = "Operation failed."
	}
	logger.WarnContext(opts.R.Context(), "ui action failed",
		"method", opts.R.Method,
		"path", opts.R.URL.Path,
		"error", opts.Err,
	)

	status := opts.StatusCode
	if status == 0 {
		status = DetermineErrorStatus(opts.R, opts.Err)
	}

	notify(opts.W, msg, viewmodel.ToastError)
	if !IsHTMX(opts.R) {
		http.Error(opts.W, msg, max(status, http.StatusBadRequest))
		return
	}
	opts.W.WriteHeader(max(status, http.StatusOK))
}

// actionError is RenderError with the handler's logger.
func (h *UIHandlers) actionError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	RenderError(ErrorOpts{W: w, R: r, Err: err, Fallback: fallback, Logger: h.logger()})
}
