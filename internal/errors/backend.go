package errors

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
)

// CodeForStatus maps a backend HTTP status onto an ErrorCode.
func CodeForStatus(status int) ErrorCode {
	switch {
	case status == http.StatusNotFound:
		return ErrCodeNotFound
	case status == http.StatusConflict:
		return ErrCodeConflict
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ErrCodeValidation
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return ErrCodeTimeout
	case status == http.StatusBadGateway, status == http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// FromTransport classifies an error returned by http.Client.Do.
func FromTransport(err error) *AppError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.Canceled):
		return Wrap(err, ErrCodeCanceled, "Request canceled.")
	case errors.Is(err, context.DeadlineExceeded):
		return Wrap(err, ErrCodeTimeout, "Backend request timed out.")
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Wrap(err, ErrCodeTimeout, "Backend request timed out.")
	}
	return Wrap(err, ErrCodeUnavailable, "Backend unavailable.")
}

// HTTPStatus maps an error onto the status the console responds with.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeUnavailable:
		return http.StatusBadGateway
	case ErrCodeCanceled:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage returns the operator-facing message carried by err, or fallback
// when the error carries none (plain errors, empty backend detail).
func UserMessage(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if msg := strings.TrimSpace(appErr.Message); msg != "" {
			return msg
		}
	}
	return fallback
}
