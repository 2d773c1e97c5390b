package httpx

import (
	"context"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"github.com/target/crawl-admin/internal/domain/model"
	"github.com/target/crawl-admin/internal/http/ui/viewmodel"
	"github.com/target/crawl-admin/internal/service"
)

const errMsgFixBelow = "Please fix the errors below."

// CRUDService is the shape shared by the paginated resource services.
type CRUDService[T, R any] interface {
	List(ctx context.Context, limit, offset int) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, req R) (*T, error)
	Update(ctx context.Context, id int64, req R) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// AccountsService is the account panel's view of the backend.
type AccountsService = CRUDService[model.Account, model.AccountRequest]

// ProxiesService is the proxy panel's view of the backend.
type ProxiesService = CRUDService[model.Proxy, model.ProxyRequest]

// CrawlerParamsService is the crawler parameter panel's view of the backend.
type CrawlerParamsService = CRUDService[model.CrawlerParam, model.CrawlerParamRequest]

// TasksService adds lifecycle actions and dropdown options to task CRUD.
type TasksService interface {
	CRUDService[model.Task, model.TaskRequest]
	RunAction(ctx context.Context, id int64, action model.TaskAction) (*model.Task, error)
	Options(ctx context.Context) ([]model.Task, error)
}

// QuotasService lists every quota (no paging) and resets to defaults.
type QuotasService interface {
	List(ctx context.Context) ([]model.Quota, error)
	Get(ctx context.Context, id int64) (*model.Quota, error)
	Create(ctx context.Context, req model.QuotaRequest) (*model.Quota, error)
	Update(ctx context.Context, id int64, req model.QuotaRequest) (*model.Quota, error)
	Delete(ctx context.Context, id int64) error
	Init(ctx context.Context) ([]model.Quota, error)
}

// RedisConfigsService manages Redis connection configs.
type RedisConfigsService interface {
	List(ctx context.Context) ([]model.RedisConfig, error)
	Get(ctx context.Context, id int64) (*model.RedisConfig, error)
	Create(ctx context.Context, req model.RedisConfigRequest) (*model.RedisConfig, error)
	Update(ctx context.Context, id int64, req model.RedisConfigRequest) (*model.RedisConfig, error)
	Delete(ctx context.Context, id int64) error
	Test(ctx context.Context, req model.RedisTestRequest) (*model.RedisTestResult, error)
	TestSaved(ctx context.Context, id int64) (*model.RedisTestResult, error)
	Reload(ctx context.Context) (*model.ActionMessage, error)
}

// RecordsService serves the raw-data and sample-data panels.
type RecordsService interface {
	List(ctx context.Context, kind model.RecordKind, filter model.RecordFilter, limit, offset int) ([]model.Record, error)
	Get(ctx context.Context, kind model.RecordKind, id int64) (*model.Record, error)
	Delete(ctx context.Context, kind model.RecordKind, id int64) error
	Clear(ctx context.Context, kind model.RecordKind) (string, error)
	ImportRaw(ctx context.Context, req service.ImportRequest) (*model.ImportResult, error)
	Sample(ctx context.Context) (string, error)
}

// ExportsService manages export files.
type ExportsService interface {
	List(ctx context.Context) ([]model.ExportFile, error)
	Trigger(ctx context.Context, kind model.RecordKind) (service.Job, string, error)
	Open(ctx context.Context, filename string) (*model.ExportDownload, error)
	Delete(ctx context.Context, filename string) error
}

// DashboardService aggregates the landing page snapshot.
type DashboardService interface {
	Snapshot(ctx context.Context) (*model.DashboardSnapshot, error)
	Invalidate(ctx context.Context)
}

// JobWatchService performs one bounded job check per poll.
type JobWatchService interface {
	Poll(ctx context.Context, job service.Job, attempt int) (service.Step, error)
	Policy() service.Policy
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ AccountsService      = (*service.AccountService)(nil)
	_ TasksService         = (*service.TaskService)(nil)
	_ ProxiesService       = (*service.ProxyService)(nil)
	_ QuotasService        = (*service.QuotaService)(nil)
	_ RedisConfigsService  = (*service.RedisConfigService)(nil)
	_ CrawlerParamsService = (*service.CrawlerParamService)(nil)
	_ RecordsService       = (*service.RecordService)(nil)
	_ ExportsService       = (*service.ExportService)(nil)
	_ DashboardService     = (*service.DashboardService)(nil)
	_ JobWatchService      = (*service.JobWatcher)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T             *TemplateRenderer
	Accounts      AccountsService
	Tasks         TasksService
	Proxies       ProxiesService
	Quotas        QuotasService
	RedisConfigs  RedisConfigsService
	CrawlerParams CrawlerParamsService
	Records       RecordsService
	Exports       ExportsService
	Dashboard     DashboardService
	Jobs          JobWatchService
	IsDev         bool // Development mode flag for enhanced error reporting
	PageSize      int  // Backend page size of paginated panels; defaults to ListPageSize
	Logger        *slog.Logger
}

func (h *UIHandlers) pageSize() int {
	if h != nil && h.PageSize > 0 {
		return h.PageSize
	}
	return ListPageSize
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// pageOpts represents pagination options for list views.
type pageOpts struct {
	Page     int
	PageSize int
}

// LimitAndOffset returns limit/offset used for pagination fetches,
// always fetching one extra item to detect next-page availability.
func (p pageOpts) LimitAndOffset() (int, int) {
	page := max(p.Page, 1)
	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = ListPageSize
	}
	return pageSize + 1, (page - 1) * pageSize
}

// notify sends one toast of the given kind.
func notify(w http.ResponseWriter, message string, kind viewmodel.ToastKind) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Toast(message, kind)
}

// mutationDone finishes a successful mutation: one toast, closes any modal
// and reloads the panel exactly once.
func mutationDone(w http.ResponseWriter, page, message string) {
	HTMX(w).Toast(message, viewmodel.ToastSuccess).CloseModal().Reload(page).NoContent()
}

// actionDone finishes an action that leaves the modal alone.
func actionDone(w http.ResponseWriter, page, message string) {
	HTMX(w).Toast(message, viewmodel.ToastSuccess).Reload(page).NoContent()
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

//nolint:gochecknoglobals // static navigation
var navItems = []viewmodel.NavItem{
	{Page: PageDashboard, Label: "Dashboard", Path: "/"},
	{Page: PageAccounts, Label: "Accounts", Path: "/accounts"},
	{Page: PageTasks, Label: "Tasks", Path: "/tasks"},
	{Page: PageProxies, Label: "Proxies", Path: "/proxies"},
	{Page: PageQuotas, Label: "Quotas", Path: "/quotas"},
	{Page: PageRedisConfigs, Label: "Redis", Path: "/redis-configs"},
	{Page: PageCrawlerParams, Label: "Crawler params", Path: "/crawler-params"},
	{Page: PageRawData, Label: "Raw data", Path: "/raw-data"},
	{Page: PageSampleData, Label: "Sample data", Path: "/sample-data"},
	{Page: PageExports, Label: "Exports", Path: "/exports"},
}

// buildLayout constructs shared layout metadata.
func buildLayout(meta PageMeta) viewmodel.Layout {
	return viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		Nav:         navItems,
	}
}

// basePageData constructs the common page data map.
// SelfURL is what a panel's content root re-fetches on reload, so the
// current page and filters survive mutations.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(meta)
	data := map[string]any{
		"Title":       layout.Title,
		"PageTitle":   layout.PageTitle,
		"CurrentPage": layout.CurrentPage,
		"Nav":         layout.Nav,
		"SelfURL":     "/",
	}
	if r != nil && r.Method == http.MethodGet {
		data["SelfURL"] = r.URL.RequestURI()
	}
	return data
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
}

// Page builds base data, optionally fetches content data, and renders.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, ps PageSpec) {
	data := basePageData(r, ps.Meta)
	if ps.Fetch != nil {
		if err := ps.Fetch(r.Context(), data); err != nil {
			h.logger().WarnContext(r.Context(), "page fetch failed", "page", ps.Meta.CurrentPage, "error", err)
			markPageError(data)
		}
	}
	h.renderDashboardPage(w, r, data)
}

// renderDashboardPage renders a page with proper HTMX partial support.
func (h *UIHandlers) renderDashboardPage(w http.ResponseWriter, r *http.Request, data any) {
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	layout := extractLayoutInfo(data)

	// A panel reloading itself (hx-trigger "<panel>:reload") replaces only its
	// own root; navigation also refreshes the title and nav state.
	if HXTarget(r) != "main-content" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := h.T.RenderNamed(w, ContentTemplateFor(layout.CurrentPage), data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "panel reload render")
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	SetHXTrigger(w, EventNavigate, map[string]string{"path": r.URL.Path})

	safeDocTitle := html.EscapeString(layout.Title)
	if _, err := w.Write([]byte(`<title>` + safeDocTitle + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}

	safeTitle := html.EscapeString(layout.PageTitle)
	if _, err := w.Write([]byte(`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` + safeTitle + `</h1>`)); err != nil {
		h.logger().Error("failed to write partial header title", "error", err)
		return
	}

	if err := h.T.RenderNamed(w, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
	}
}

// renderModal renders m into #modal-root.
func (h *UIHandlers) renderModal(w http.ResponseWriter, r *http.Request, m viewmodel.Modal) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.T.RenderNamed(w, "modal", m); err != nil {
		h.logAndRenderTemplateError(w, r, err, "modal render")
	}
}

func markPageError(data map[string]any) {
	data["Error"] = true
	if _, ok := data["ErrorMessage"]; ok {
		return
	}
	data["ErrorMessage"] = "An unexpected error occurred. Please try again."
}

func extractLayoutInfo(data any) viewmodel.Layout {
	switch v := data.(type) {
	case viewmodel.LayoutProvider:
		if l := v.LayoutData(); l != nil {
			return *l
		}
	case viewmodel.Layout:
		return v
	case *viewmodel.Layout:
		if v != nil {
			return *v
		}
	case map[string]any:
		layout := viewmodel.Layout{}
		layout.Title, _ = v["Title"].(string)
		layout.PageTitle, _ = v["PageTitle"].(string)
		layout.CurrentPage, _ = v["CurrentPage"].(string)
		return layout
	}
	return viewmodel.Layout{}
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		errHTML := html.EscapeString(err.Error())
		pathHTML := html.EscapeString(r.URL.Path)
		contextHTML := html.EscapeString(context)
		if _, writeErr := w.Write([]byte(`
			<div class="dev-error">
				<h2>Template Rendering Error</h2>
				<p><strong>Context:</strong> ` + contextHTML + `</p>
				<p><strong>Path:</strong> ` + pathHTML + `</p>
				<pre>` + errHTML + `</pre>
			</div>
		`)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}
