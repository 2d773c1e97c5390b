package httpx

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/http/ui/viewmodel"
)

func exportsMeta() PageMeta {
	return PageMeta{Title: "Crawl Admin - Exports", PageTitle: "Exports", CurrentPage: PageExports}
}

// ExportList renders the export files, newest first.
func (h *UIHandlers) ExportList(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: exportsMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Files"] = []model.ExportFile{}
			files, err := h.Exports.List(ctx)
			if err != nil {
				msg := apperrors.UserMessage(err, "Unable to load exports.")
				data["ErrorMessage"] = msg
				notify(w, msg, viewmodel.ToastError)
				return err
			}
			data["Files"] = files
			return nil
		},
	})
}

// ExportRun handles POST /exports/{kind} (raw or sample).
func (h *UIHandlers) ExportRun(w http.ResponseWriter, r *http.Request) {
	kind := model.RecordKind(r.PathValue("kind"))
	if !kind.Valid() {
		h.actionError(w, r, apperrors.Validationf("unknown export kind %q", kind), "Unknown export kind.")
		return
	}
	job, msg, err := h.Exports.Trigger(r.Context(), kind)
	if err != nil {
		h.actionError(w, r, err, "Unable to start export.")
		return
	}
	h.startJobWatch(w, r, job, msg)
}

// ExportDownload streams GET /exports/download/{filename} from the backend.
func (h *UIHandlers) ExportDownload(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("filename")
	dl, err := h.Exports.Open(r.Context(), name)
	if err != nil {
		status := apperrors.HTTPStatus(err)
		h.logger().WarnContext(r.Context(), "export download failed", "filename", name, "error", err)
		http.Error(w, apperrors.UserMessage(err, "Unable to download export."), status)
		return
	}
	defer dl.Body.Close()

	contentType := dl.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": dl.Filename}))
	if dl.ContentLength >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(dl.ContentLength, 10))
	}
	if _, err := io.Copy(w, dl.Body); err != nil {
		h.logger().WarnContext(r.Context(), "export download interrupted", "filename", name, "error", err)
	}
}

// ExportDelete handles DELETE /exports/{filename}.
func (h *UIHandlers) ExportDelete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("filename")
	if err := h.Exports.Delete(r.Context(), name); err != nil {
		h.actionError(w, r, err, "Unable to delete export.")
		return
	}
	actionDone(w, PageExports, "Export deleted.")
}
