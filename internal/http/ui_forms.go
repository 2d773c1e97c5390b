package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/target/crawl-admin/internal/http/ui/viewmodel"
)

// optionListLimit bounds dropdown option fetches.
const optionListLimit = 1000

// formModal describes a panel's create/edit dialog.
type formModal struct {
	Page     string // panel id; the form id is "<page>-form"
	Noun     string // "Account"
	Template string // body template, e.g. "account-form"
}

func (fm formModal) formID() string { return fm.Page + "-form" }

func (fm formModal) title(mode FormMode) string {
	if mode == FormModeEdit {
		return "Edit " + fm.Noun
	}
	return "New " + fm.Noun
}

// action is where the form posts: /<page> creates, /<page>/{id} updates.
func (fm formModal) action(mode FormMode, id int64) string {
	if mode == FormModeEdit && id > 0 {
		return "/" + fm.Page + "/" + strconv.FormatInt(id, 10)
	}
	return "/" + fm.Page
}

// showFormModal renders the dialog around the form body. data carries Mode,
// FormData and, when editing, ID (taken from the path when absent).
func (h *UIHandlers) showFormModal(w http.ResponseWriter, r *http.Request, fm formModal, data map[string]any) {
	mode, _ := data["Mode"].(FormMode)
	if mode != FormModeEdit {
		mode = FormModeCreate
	}
	id, _ := data["ID"].(int64)
	if mode == FormModeEdit && id == 0 {
		id, _ = parseID(r, "id")
	}
	data["Mode"] = mode
	data["ID"] = id
	data["Action"] = fm.action(mode, id)
	data["FormID"] = fm.formID()

	h.renderModal(w, r, viewmodel.Modal{
		ID:           fm.Page + "-modal",
		Title:        fm.title(mode),
		BodyTemplate: fm.Template,
		Body:         data,
		Buttons:      []viewmodel.ModalButton{viewmodel.CancelButton(), viewmodel.SubmitButton("Save", fm.formID())},
	})
}

// formRenderer adapts showFormModal to HandleForm.
func (h *UIHandlers) formRenderer(fm formModal, extra func(ctx context.Context, data map[string]any)) FormRenderer {
	return func(w http.ResponseWriter, r *http.Request, data map[string]any) {
		if extra != nil {
			extra(r.Context(), data)
		}
		h.showFormModal(w, r, fm, data)
	}
}

// deleteHandlerOpts configures handleDelete.
type deleteHandlerOpts struct {
	Page           string
	Delete         func(ctx context.Context, id int64) error
	SuccessMessage string
	ErrorMessage   string
}

// handleDelete runs one backend delete. On success: one toast and one panel
// reload; on failure: one error toast and no reload. The confirmation prompt
// is the button's hx-confirm.
func (h *UIHandlers) handleDelete(w http.ResponseWriter, r *http.Request, opts deleteHandlerOpts) {
	id, err := parseID(r, "id")
	if err != nil {
		h.actionError(w, r, err, "Invalid id.")
		return
	}
	if err := opts.Delete(r.Context(), id); err != nil {
		h.actionError(w, r, err, opts.ErrorMessage)
		return
	}
	h.invalidateDashboard(r.Context())
	actionDone(w, opts.Page, opts.SuccessMessage)
}

// invalidateDashboard drops the cached dashboard snapshot after a mutation.
func (h *UIHandlers) invalidateDashboard(ctx context.Context) {
	if h.Dashboard != nil {
		h.Dashboard.Invalidate(ctx)
	}
}

// formFields collects typed form values and advisory field errors.
type formFields struct {
	r    *http.Request
	errs map[string]string
}

func newFormFields(r *http.Request) *formFields {
	f := &formFields{r: r, errs: map[string]string{}}
	if err := r.ParseForm(); err != nil {
		f.errs["_"] = "Invalid form submission."
	}
	return f
}

func (f *formFields) str(key string) string {
	return strings.TrimSpace(f.r.Form.Get(key))
}

// intVal parses key; empty yields def, garbage records msg.
func (f *formFields) intVal(key string, def int, msg string) int {
	raw := f.str(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		f.errs[key] = msg
		return def
	}
	return n
}

func (f *formFields) int64Val(key, msg string) int64 {
	raw := f.str(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f.errs[key] = msg
		return 0
	}
	return n
}

func (f *formFields) floatVal(key, msg string) float64 {
	raw := f.str(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		f.errs[key] = msg
		return 0
	}
	return v
}

// checked reports a checkbox ("on", "true" or "1").
func (f *formFields) checked(key string) bool {
	switch strings.ToLower(f.str(key)) {
	case "on", "true", "1":
		return true
	default:
		return false
	}
}

// fail records msg for key unless the field already has an error.
func (f *formFields) fail(key, msg string) {
	if _, ok := f.errs[key]; !ok {
		f.errs[key] = msg
	}
}

// merge adds validator output without overwriting parse errors.
func (f *formFields) merge(errs map[string]string) {
	for k, v := range errs {
		f.fail(k, v)
	}
}

func (f *formFields) errors() map[string]string {
	if len(f.errs) == 0 {
		return nil
	}
	return f.errs
}
