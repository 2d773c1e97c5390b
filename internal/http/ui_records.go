package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/http/ui/viewmodel"
	"github.com/target/crawl-admin/internal/service"
)

// maxImportBytes bounds a pasted or uploaded import document.
const maxImportBytes = 10 << 20

// recordPanel binds a data set to its panel.
type recordPanel struct {
	Kind model.RecordKind
	Page string
}

func (p recordPanel) path() string { return "/" + p.Page }

func (p recordPanel) meta() PageMeta {
	return PageMeta{Title: "Crawl Admin - " + p.Kind.Label(), PageTitle: p.Kind.Label(), CurrentPage: p.Page}
}

//nolint:gochecknoglobals // static panel descriptions
var (
	rawPanel    = recordPanel{Kind: model.RecordKindRaw, Page: PageRawData}
	samplePanel = recordPanel{Kind: model.RecordKindSample, Page: PageSampleData}
)

// parseRecordFilter reads the optional year and task_id filters.
func parseRecordFilter(q url.Values) (model.RecordFilter, error) {
	var f model.RecordFilter
	year, ok := optionalInt(q, "year")
	if !ok {
		return f, errors.New("year must be a number")
	}
	taskID, ok := optionalInt64(q, "task_id")
	if !ok {
		return f, errors.New("task must be a number")
	}
	f.Year, f.TaskID = year, taskID
	return f, nil
}

// taskOptions builds the "id - task_name" filter dropdown.
func (h *UIHandlers) taskOptions(ctx context.Context, selected *int64) ([]selectOption, error) {
	tasks, err := h.Tasks.Options(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]selectOption, 0, len(tasks))
	for i := range tasks {
		out = append(out, selectOption{
			Value:    strconv.FormatInt(tasks[i].ID, 10),
			Label:    fmt.Sprintf("%d - %s", tasks[i].ID, tasks[i].TaskName),
			Selected: selected != nil && *selected == tasks[i].ID,
		})
	}
	return out, nil
}

// RecordList renders the raw-data or sample-data panel.
func (h *UIHandlers) RecordList(p recordPanel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		HandleList(ListHandlerOpts[model.Record, model.RecordFilter]{
			Handler: h,
			W:       w,
			R:       r,
			FilteredFetcher: func(ctx context.Context, f model.RecordFilter, pg pageOpts) ([]model.Record, error) {
				limit, offset := pg.LimitAndOffset()
				return h.Records.List(ctx, p.Kind, f, limit, offset)
			},
			FilterParser: parseRecordFilter,
			EnrichData: func(b *TemplateDataBuilder, _ []model.Record, f model.RecordFilter) {
				b.With("Kind", p.Kind).With("BasePath", p.path())
				if f.Year != nil {
					b.With("FilterYear", strconv.Itoa(*f.Year))
				}
				if f.TaskID != nil {
					b.With("FilterTaskID", strconv.FormatInt(*f.TaskID, 10))
				}
				opts, err := h.taskOptions(r.Context(), f.TaskID)
				if err != nil {
					h.logger().WarnContext(r.Context(), "load task filter options failed", "error", err)
				}
				b.With("TaskOptions", opts)
			},
			BasePath:     p.path(),
			PageMeta:     p.meta(),
			ItemsKey:     "Records",
			ErrorMessage: "Unable to load " + strings.ToLower(p.Kind.Label()) + ".",
		})
	}
}

// RecordView opens the detail dialog of one record.
func (h *UIHandlers) RecordView(p recordPanel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			h.NotFound(w, r)
			return
		}
		rec, err := h.Records.Get(r.Context(), p.Kind, id)
		if err != nil {
			h.actionError(w, r, err, "Unable to load record.")
			return
		}
		h.renderModal(w, r, viewmodel.Modal{
			ID:           p.Page + "-modal",
			Title:        fmt.Sprintf("%s #%d", p.Kind.Label(), rec.ID),
			BodyTemplate: "record-detail",
			Body:         rec,
			Buttons:      []viewmodel.ModalButton{{Label: "Close", Class: "btn-secondary", Close: true}},
		})
	}
}

// RecordDelete handles DELETE /<kind>-data/{id}.
func (h *UIHandlers) RecordDelete(p recordPanel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.handleDelete(w, r, deleteHandlerOpts{
			Page: p.Page,
			Delete: func(ctx context.Context, id int64) error {
				return h.Records.Delete(ctx, p.Kind, id)
			},
			SuccessMessage: "Record deleted.",
			ErrorMessage:   "Unable to delete record.",
		})
	}
}

// RecordClear handles DELETE /<kind>-data: the backend drops every record.
func (h *UIHandlers) RecordClear(p recordPanel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg, err := h.Records.Clear(r.Context(), p.Kind)
		if err != nil {
			h.actionError(w, r, err, "Unable to clear "+strings.ToLower(p.Kind.Label())+".")
			return
		}
		h.invalidateDashboard(r.Context())
		actionDone(w, p.Page, msg)
	}
}

// importForm is the state of the import dialog.
type importForm struct {
	Document   string
	Expression string
}

func (h *UIHandlers) showImportModal(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data["Action"] = "/raw-data/import"
	data["FormID"] = "import-form"
	h.renderModal(w, r, viewmodel.Modal{
		ID:           "import-modal",
		Title:        "Import JSON",
		BodyTemplate: "import-form",
		Body:         data,
		Buttons:      []viewmodel.ModalButton{viewmodel.CancelButton(), viewmodel.SubmitButton("Import", "import-form")},
	})
}

// ImportNew opens the import dialog.
func (h *UIHandlers) ImportNew(w http.ResponseWriter, r *http.Request) {
	h.showImportModal(w, r, map[string]any{"FormData": importForm{}})
}

// readImportDocument takes the uploaded file when present, else the pasted text.
func readImportDocument(w http.ResponseWriter, r *http.Request) ([]byte, importForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	form := importForm{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportBytes); err != nil {
			return nil, form, apperrors.Validationf("invalid upload: %v", err)
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, form, apperrors.Validationf("invalid form submission: %v", err)
	}
	form.Expression = strings.TrimSpace(r.FormValue("expression"))
	form.Document = r.FormValue("document")

	file, _, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		doc, readErr := io.ReadAll(file)
		if readErr != nil {
			return nil, form, apperrors.Validationf("unable to read upload: %v", readErr)
		}
		return doc, form, nil
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return []byte(form.Document), form, nil
	default:
		return nil, form, apperrors.Validationf("unable to read upload: %v", err)
	}
}

// ImportSubmit handles POST /raw-data/import.
func (h *UIHandlers) ImportSubmit(w http.ResponseWriter, r *http.Request) {
	doc, form, err := readImportDocument(w, r)
	if err == nil {
		var res *model.ImportResult
		res, err = h.Records.ImportRaw(r.Context(), service.ImportRequest{Document: doc, Expression: form.Expression})
		if err == nil {
			h.invalidateDashboard(r.Context())
			msg := res.Message
			if msg == "" {
				msg = fmt.Sprintf("Imported %d records.", res.Imported)
			}
			mutationDone(w, PageRawData, msg)
			return
		}
	}
	if apperrors.IsCanceled(err) || r.Context().Err() != nil {
		http.Error(w, "request canceled", http.StatusRequestTimeout)
		return
	}

	h.logger().WarnContext(r.Context(), "import failed", "error", err)
	msg := apperrors.UserMessage(err, "Import failed.")
	notify(w, msg, viewmodel.ToastError)
	h.showImportModal(w, r, map[string]any{
		"FormData":     form,
		"Error":        true,
		"ErrorMessage": msg,
	})
}

// SampleRun handles POST /sample-data/sample: the backend samples in the
// background and the page watches for the first sampled rows.
func (h *UIHandlers) SampleRun(w http.ResponseWriter, r *http.Request) {
	msg, err := h.Records.Sample(r.Context())
	if err != nil {
		h.actionError(w, r, err, "Unable to start sampling.")
		return
	}
	if msg == "" {
		msg = "Sampling started."
	}
	h.startJobWatch(w, r, service.Job{Kind: service.JobKindSampling}, msg)
}
