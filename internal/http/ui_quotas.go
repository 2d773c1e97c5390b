package httpx

import (
	"context"
	"net/http"

	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/http/ui/viewmodel"
	"github.com/target/crawl-admin/internal/http/validation"
)

//nolint:gochecknoglobals // static dialog description
var quotaModal = formModal{Page: PageQuotas, Noun: "Quota", Template: "quota-form"}

func quotasMeta() PageMeta {
	return PageMeta{Title: "Crawl Admin - Quotas", PageTitle: "Quotas", CurrentPage: PageQuotas}
}

// QuotaList renders every quota; the backend does not page them.
func (h *UIHandlers) QuotaList(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: quotasMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Quotas"] = []model.Quota{}
			quotas, err := h.Quotas.List(ctx)
			if err != nil {
				msg := apperrors.UserMessage(err, "Unable to load quotas.")
				data["ErrorMessage"] = msg
				notify(w, msg, viewmodel.ToastError)
				return err
			}
			data["Quotas"] = quotas
			return nil
		},
	})
}

func parseQuotaForm(r *http.Request) (model.QuotaRequest, map[string]string) {
	f := newFormFields(r)
	req := model.QuotaRequest{
		StartYear:  f.intVal("start_year", 0, "Start year must be a number."),
		EndYear:    f.intVal("end_year", 0, "End year must be a number."),
		StockRatio: f.floatVal("stock_ratio", "Stock ratio must be a number."),
		SampleNum:  f.intVal("sample_num", 0, "Sample number must be a number."),
	}
	f.merge(validation.New().
		Expect("start_year", req.StartYear != 0, "Start year is required.").
		Expect("end_year", req.EndYear != 0, "End year is required.").
		Expect("end_year", req.StartYear <= req.EndYear, "End year cannot be before start year.").
		Expect("stock_ratio", req.StockRatio > 0 && req.StockRatio <= 1, "Stock ratio must be greater than 0 and at most 1.").
		CheckInt("sample_num", int64(req.SampleNum), validation.Min("Sample number", 1)).
		Errors())
	return req, f.errors()
}

// QuotaNew opens the create dialog.
func (h *UIHandlers) QuotaNew(w http.ResponseWriter, r *http.Request) {
	h.showFormModal(w, r, quotaModal, map[string]any{
		"Mode":     FormModeCreate,
		"FormData": model.QuotaRequest{StockRatio: 1, SampleNum: 1},
	})
}

// QuotaEdit opens the edit dialog pre-filled from the backend.
func (h *UIHandlers) QuotaEdit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.NotFound(w, r)
		return
	}
	q, err := h.Quotas.Get(r.Context(), id)
	if err != nil {
		h.actionError(w, r, err, "Unable to load quota.")
		return
	}
	h.showFormModal(w, r, quotaModal, map[string]any{
		"Mode": FormModeEdit,
		"ID":   q.ID,
		"FormData": model.QuotaRequest{
			StartYear:  q.StartYear,
			EndYear:    q.EndYear,
			StockRatio: q.StockRatio,
			SampleNum:  q.SampleNum,
		},
	})
}

// QuotaCreate handles POST /quotas.
func (h *UIHandlers) QuotaCreate(w http.ResponseWriter, r *http.Request) {
	h.saveQuota(w, r, FormModeCreate)
}

// QuotaUpdate handles POST /quotas/{id}.
func (h *UIHandlers) QuotaUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveQuota(w, r, FormModeEdit)
}

func (h *UIHandlers) saveQuota(w http.ResponseWriter, r *http.Request, mode FormMode) {
	HandleForm(FormHandlerOpts[model.QuotaRequest]{
		W:              w,
		R:              r,
		Mode:           mode,
		Parser:         parseQuotaForm,
		Service:        asFormService[model.Quota, model.QuotaRequest](h.Quotas),
		Renderer:       h.formRenderer(quotaModal, nil),
		Page:           PageQuotas,
		SuccessMessage: "Quota saved.",
		PageMeta:       quotasMeta(),
	})
}

// QuotaDelete handles DELETE /quotas/{id}.
func (h *UIHandlers) QuotaDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Page:           PageQuotas,
		Delete:         h.Quotas.Delete,
		SuccessMessage: "Quota deleted.",
		ErrorMessage:   "Unable to delete quota.",
	})
}

// QuotaInit handles POST /quotas/init: the backend replaces every quota
// with its defaults.
func (h *UIHandlers) QuotaInit(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Quotas.Init(r.Context()); err != nil {
		h.actionError(w, r, err, "Unable to initialize quotas.")
		return
	}
	actionDone(w, PageQuotas, "Quotas initialized.")
}
