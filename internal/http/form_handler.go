package httpx

import (
	"context"
	"fmt"
	"net/http"
	"os"

	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/http/ui/viewmodel"
)

// FormParser parses the submitted form. The returned map holds advisory
// field errors; a non-empty map stops the submission before any backend call.
type FormParser[T any] func(r *http.Request) (T, map[string]string)

// FormService is the persistence side of a form.
type FormService[T any] interface {
	Create(ctx context.Context, req T) (any, error)
	Update(ctx context.Context, id int64, req T) (any, error)
}

// FormRenderer re-renders the form (inside its modal) with data.
type FormRenderer func(w http.ResponseWriter, r *http.Request, data map[string]any)

// ErrorHandler optionally maps a service error onto field and general errors.
type ErrorHandler func(err error) (fieldErrors map[string]string, generalError string)

// FormHandlerOpts groups everything HandleForm needs.
type FormHandlerOpts[T any] struct {
	W        http.ResponseWriter
	R        *http.Request
	Mode     FormMode
	Parser   FormParser[T]
	Service  FormService[T]
	Renderer FormRenderer
	// Page is the panel reloaded after a successful save.
	Page string
	// SuccessMessage is the toast text after a successful save.
	SuccessMessage string
	PageMeta       PageMeta
	ExtraData      map[string]any
	GetID          func(r *http.Request) (int64, error)
	HandleError    ErrorHandler
	// ErrorStatus, when set, is written before re-rendering with field errors.
	ErrorStatus int
	// OnSuccess runs after a successful save, before the response is written.
	OnSuccess func(ctx context.Context)
}

// HandleForm processes a create (no id, backend POST) or edit (id, backend
// PUT) submission. Success closes the modal, shows a toast and reloads the
// panel; failure re-renders the form with the message and an error toast.
func HandleForm[T any](opts FormHandlerOpts[T]) {
	if opts.Parser == nil || opts.Service == nil || opts.Renderer == nil {
		http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
		return
	}
	if opts.Mode != FormModeEdit && opts.Mode != FormModeCreate {
		http.Error(opts.W, "invalid form mode", http.StatusBadRequest)
		return
	}

	var id int64
	if opts.Mode == FormModeEdit {
		var err error
		if id, err = opts.formID(); err != nil {
			http.NotFound(opts.W, opts.R)
			return
		}
	}

	data, fieldErrors := opts.Parser(opts.R)
	if len(fieldErrors) > 0 {
		opts.renderFormError(fieldErrors, "", data)
		return
	}

	var err error
	if opts.Mode == FormModeEdit {
		_, err = opts.Service.Update(opts.R.Context(), id, data)
	} else {
		_, err = opts.Service.Create(opts.R.Context(), data)
	}
	if err != nil {
		opts.handleServiceError(err, data)
		return
	}

	if opts.OnSuccess != nil {
		opts.OnSuccess(opts.R.Context())
	}
	msg := opts.SuccessMessage
	if msg == "" {
		msg = "Saved."
	}
	mutationDone(opts.W, opts.Page, msg)
}

func (fh FormHandlerOpts[T]) formID() (int64, error) {
	if fh.GetID != nil {
		return fh.GetID(fh.R)
	}
	return parseID(fh.R, "id")
}

func (fh FormHandlerOpts[T]) handleServiceError(err error, data T) {
	if apperrors.IsCanceled(err) || fh.R.Context().Err() != nil {
		http.Error(fh.W, "request canceled", http.StatusRequestTimeout)
		return
	}

	if fh.HandleError != nil {
		fieldErrors, generalError := fh.HandleError(err)
		if fieldErrors != nil || generalError != "" {
			fh.renderFormError(fieldErrors, generalError, data)
			return
		}
	}

	msg := apperrors.UserMessage(err, "Unable to save. Please try again.")
	if field := apperrors.GetField(err); field != "" {
		fh.renderFormError(map[string]string{field: msg}, msg, data)
		return
	}
	fh.renderFormError(nil, msg, data)
}

func (fh FormHandlerOpts[T]) renderFormError(fieldErrors map[string]string, generalError string, data T) {
	if os.Getenv("CRAWL_ADMIN_DEBUG_FORMS") == "1" {
		fmt.Fprintf(os.Stderr, "FormError mode=%v fieldErrors=%v general=%q\n", fh.Mode, fieldErrors, generalError)
	}

	toast := generalError
	if toast == "" {
		toast = errMsgFixBelow
	}
	notify(fh.W, toast, viewmodel.ToastError)

	if fh.ErrorStatus != 0 && len(fieldErrors) > 0 {
		fh.W.WriteHeader(fh.ErrorStatus)
	}

	templateData := NewTemplateData(fh.R, fh.PageMeta).WithFieldErrors(fieldErrors)
	if generalError != "" {
		templateData.WithError(generalError)
	} else if len(fieldErrors) > 0 {
		templateData.WithError(errMsgFixBelow)
	}
	templateData.With("Mode", fh.Mode)
	for k, v := range fh.ExtraData {
		templateData.With(k, v)
	}
	templateData.With("FormData", data)

	fh.Renderer(fh.W, fh.R, templateData.Build())
}

// saver is the Create/Update pair every editable resource service has.
type saver[T, R any] interface {
	Create(ctx context.Context, req R) (*T, error)
	Update(ctx context.Context, id int64, req R) (*T, error)
}

type formServiceAdapter[T, R any] struct{ svc saver[T, R] }

func (a formServiceAdapter[T, R]) Create(ctx context.Context, req R) (any, error) {
	return a.svc.Create(ctx, req)
}

func (a formServiceAdapter[T, R]) Update(ctx context.Context, id int64, req R) (any, error) {
	return a.svc.Update(ctx, id, req)
}

// asFormService adapts a typed resource service to FormService.
func asFormService[T, R any](svc saver[T, R]) FormService[R] {
	return formServiceAdapter[T, R]{svc: svc}
}
