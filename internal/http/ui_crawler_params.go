package httpx

import (
	"context"
	"net/http"

	"github.com/target/crawl-admin/internal/domain/model"
	"github.com/target/crawl-admin/internal/http/validation"
)

//nolint:gochecknoglobals // static dialog description
var crawlerParamModal = formModal{Page: PageCrawlerParams, Noun: "Crawler Parameters", Template: "crawler-param-form"}

func crawlerParamsMeta() PageMeta {
	return PageMeta{Title: "Crawl Admin - Crawler Parameters", PageTitle: "Crawler Parameters", CurrentPage: PageCrawlerParams}
}

// CrawlerParamList renders the crawler parameters panel.
func (h *UIHandlers) CrawlerParamList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.CrawlerParam, struct{}]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, pg pageOpts) ([]model.CrawlerParam, error) {
			limit, offset := pg.LimitAndOffset()
			return h.CrawlerParams.List(ctx, limit, offset)
		},
		BasePath:     "/crawler-params",
		PageMeta:     crawlerParamsMeta(),
		ItemsKey:     "Params",
		ErrorMessage: "Unable to load crawler parameters.",
	})
}

func parseCrawlerParamForm(r *http.Request) (model.CrawlerParamRequest, map[string]string) {
	f := newFormFields(r)
	const notNumber = "Must be a number."
	req := model.CrawlerParamRequest{
		URL:                f.str("url"),
		APIRequest:         f.str("api_request"),
		TaskType:           f.str("task_type"),
		StartTime:          f.intVal("start_time", 0, notNumber),
		EndTime:            f.intVal("end_time", 0, notNumber),
		IntervalTime:       f.intVal("interval_time", model.DefaultIntervalTime, notNumber),
		ErrorCount:         f.intVal("error_count", model.DefaultErrorCount, notNumber),
		RestartBrowserTime: f.intVal("restart_browser_time", model.DefaultRestartBrowserTime, notNumber),
	}

	f.merge(validation.New().
		Check("url", req.URL, validation.URL("URL", 2048)).
		Check("api_request", req.APIRequest, validation.Required("API request", 2048)).
		CheckInt("start_time", int64(req.StartTime), validation.Hour("Start hour")).
		CheckInt("end_time", int64(req.EndTime), validation.Hour("End hour")).
		CheckInt("interval_time", int64(req.IntervalTime), validation.Min("Interval (hours)", 1)).
		CheckInt("error_count", int64(req.ErrorCount), validation.Min("Error count", 1)).
		CheckInt("restart_browser_time", int64(req.RestartBrowserTime), validation.Min("Browser restart interval (hours)", 1)).
		Errors())
	return req, f.errors()
}

// CrawlerParamNew opens the create dialog.
func (h *UIHandlers) CrawlerParamNew(w http.ResponseWriter, r *http.Request) {
	h.showFormModal(w, r, crawlerParamModal, map[string]any{
		"Mode": FormModeCreate,
		"FormData": model.CrawlerParamRequest{
			TaskType:           string(model.TaskTypeCrawler),
			EndTime:            23,
			IntervalTime:       model.DefaultIntervalTime,
			ErrorCount:         model.DefaultErrorCount,
			RestartBrowserTime: model.DefaultRestartBrowserTime,
		},
	})
}

// CrawlerParamEdit opens the edit dialog pre-filled from the backend.
func (h *UIHandlers) CrawlerParamEdit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.NotFound(w, r)
		return
	}
	p, err := h.CrawlerParams.Get(r.Context(), id)
	if err != nil {
		h.actionError(w, r, err, "Unable to load crawler parameters.")
		return
	}
	h.showFormModal(w, r, crawlerParamModal, map[string]any{
		"Mode": FormModeEdit,
		"ID":   p.ID,
		"FormData": model.CrawlerParamRequest{
			URL:                p.URL,
			APIRequest:         p.APIRequest,
			TaskType:           p.TaskType,
			StartTime:          p.StartTime,
			EndTime:            p.EndTime,
			IntervalTime:       p.IntervalTime,
			ErrorCount:         p.ErrorCount,
			RestartBrowserTime: p.RestartBrowserTime,
		},
	})
}

// CrawlerParamCreate handles POST /crawler-params.
func (h *UIHandlers) CrawlerParamCreate(w http.ResponseWriter, r *http.Request) {
	h.saveCrawlerParam(w, r, FormModeCreate)
}

// CrawlerParamUpdate handles POST /crawler-params/{id}.
func (h *UIHandlers) CrawlerParamUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveCrawlerParam(w, r, FormModeEdit)
}

func (h *UIHandlers) saveCrawlerParam(w http.ResponseWriter, r *http.Request, mode FormMode) {
	HandleForm(FormHandlerOpts[model.CrawlerParamRequest]{
		W:              w,
		R:              r,
		Mode:           mode,
		Parser:         parseCrawlerParamForm,
		Service:        asFormService[model.CrawlerParam, model.CrawlerParamRequest](h.CrawlerParams),
		Renderer:       h.formRenderer(crawlerParamModal, nil),
		Page:           PageCrawlerParams,
		SuccessMessage: "Crawler parameters saved.",
		PageMeta:       crawlerParamsMeta(),
	})
}

// CrawlerParamDelete handles DELETE /crawler-params/{id}.
func (h *UIHandlers) CrawlerParamDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Page:           PageCrawlerParams,
		Delete:         h.CrawlerParams.Delete,
		SuccessMessage: "Crawler parameters deleted.",
		ErrorMessage:   "Unable to delete crawler parameters.",
	})
}
