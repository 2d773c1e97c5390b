package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/http/ui/viewmodel"
)

func htmxRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set("HX-Request", "true")
	return r
}

func TestRenderError_HTMXAnswersOK(t *testing.T) {
	w := httptest.NewRecorder()
	r := htmxRequest(http.MethodDelete, "/accounts/3")

	RenderError(ErrorOpts{W: w, R: r, Err: apperrors.Conflict("Account has running tasks."), Fallback: "Unable to delete account."})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, viewmodel.Toast{Message: "Account has running tasks.", Type: viewmodel.ToastError}, toastOf(t, w))
	assert.NotContains(t, triggers(t, w), ReloadEvent(PageAccounts))
}

func TestRenderError_PlainRequestUsesErrorStatus(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/accounts/3", nil)

	RenderError(ErrorOpts{W: w, R: r, Err: apperrors.NotFound("Account not found."), Fallback: "Unable to delete account."})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Account not found.", strings.TrimSpace(w.Body.String()))
}

func TestRenderError_FallbackMessage(t *testing.T) {
	w := httptest.NewRecorder()
	r := htmxRequest(http.MethodPost, "/quotas/init")

	RenderError(ErrorOpts{W: w, R: r, Err: errors.New("connection reset"), Fallback: "Unable to initialize quotas."})

	assert.Equal(t, "Unable to initialize quotas.", toastOf(t, w).Message)
}

func TestRenderError_DefaultMessageWithoutFallback(t *testing.T) {
	w := httptest.NewRecorder()
	r := htmxRequest(http.MethodPost, "/x")

	RenderError(ErrorOpts{W: w, R: r, Err: errors.New("boom")})

	assert.Equal(t, "Operation failed.", toastOf(t, w).Message)
}

func TestRenderError_StatusOverride(t *testing.T) {
	w := httptest.NewRecorder()
	r := htmxRequest(http.MethodPost, "/x")

	RenderError(ErrorOpts{W: w, R: r, Err: errors.New("boom"), StatusCode: http.StatusUnprocessableEntity})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRenderError_PlainRequestNeverSucceeds(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/x", nil)

	RenderError(ErrorOpts{W: w, R: r, Err: errors.New("boom"), StatusCode: http.StatusOK})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDetermineErrorStatus(t *testing.T) {
	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	tests := []struct {
		name string
		r    *http.Request
		err  error
		want int
	}{
		{"nil error", plain, nil, 0},
		{"htmx request", htmxRequest(http.MethodGet, "/"), apperrors.NotFound("gone"), 0},
		{"not found", plain, apperrors.NotFound("gone"), http.StatusNotFound},
		{"conflict", plain, apperrors.Conflict("busy"), http.StatusConflict},
		{"validation", plain, apperrors.Validation("bad"), http.StatusBadRequest},
		{"wrapped validation", plain, fmt.Errorf("save: %w", apperrors.Validation("bad")), http.StatusBadRequest},
		{"plain error", plain, errors.New("x"), http.StatusInternalServerError},
		{"nil request", nil, apperrors.Conflict("busy"), http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineErrorStatus(tt.r, tt.err))
		})
	}
}

func TestActionError_UsesHandlerLogger(t *testing.T) {
	h := &UIHandlers{}
	w := httptest.NewRecorder()
	r := htmxRequest(http.MethodPost, "/tasks/1/start").WithContext(context.Background())

	h.actionError(w, r, apperrors.Validation("Task is already running."), "Unable to run action.")

	assert.Equal(t, "Task is already running.", toastOf(t, w).Message)
}
