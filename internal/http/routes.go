package httpx

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	crawladmin "github.com/target/crawl-admin"
	httpassets "github.com/target/crawl-admin/internal/http/assets"
)

const staticPathFromRoot = "frontend/static"

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
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

	// TemplateFS and StaticFS override the embedded (prod) or on-disk (dev)
	// frontend. Tests point them at fstest.MapFS or the source tree.
	TemplateFS fs.FS
	StaticFS   fs.FS

	// Context bounds background work such as the dev template watcher.
	Context context.Context
	IsDev    bool         // Serve the frontend from disk and hot reload templates
	PageSize int          // Backend page size of paginated panels (optional)
	Logger   *slog.Logger // Logger for template and HTTP errors (optional)
}

func (s RouterServices) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// NewRouter creates and configures the console router. Middleware is applied
// by the caller (see bootstrap).
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	staticFS := resolveStaticFS(services)
	mux.Handle("GET /static/", staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))))

	ui := setupUIHandlers(services, staticFS)
	if ui != nil {
		registerUIRoutes(mux, ui)
	}

	return &notFoundHandler{mux: mux, uiHandlers: ui}
}

// resolveStaticFS picks the static file tree: explicit override, disk in dev
// mode, the embedded copy otherwise.
func resolveStaticFS(services RouterServices) fs.FS {
	if services.StaticFS != nil {
		return services.StaticFS
	}
	if services.IsDev {
		if dir, ok := DirFSIfExists(staticPathFromRoot); ok {
			return dir
		}
	}
	sub, err := fs.Sub(crawladmin.StaticFS, staticPathFromRoot)
	if err != nil {
		services.logger().Error("failed to open embedded static assets", "error", err)
		return os.DirFS(staticPathFromRoot)
	}
	return sub
}

// resolveTemplateFS mirrors resolveStaticFS for templates. The watched
// directory is returned when templates come from disk.
func resolveTemplateFS(services RouterServices) (fs.FS, string) {
	if services.TemplateFS != nil {
		return services.TemplateFS, ""
	}
	if services.IsDev {
		if dir, ok := DirFSIfExists(TemplatePathFromRoot); ok {
			return dir, TemplatePathFromRoot
		}
	}
	sub, err := fs.Sub(crawladmin.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		services.logger().Error("failed to open embedded templates; falling back to disk", "error", err)
		return os.DirFS(TemplatePathFromRoot), ""
	}
	return sub, ""
}

// setupUIHandlers creates UI handlers with template renderer and asset resolver.
// In dev mode templates are reloaded from disk as they change.
func setupUIHandlers(services RouterServices, staticFS fs.FS) *UIHandlers {
	templateFS, watchDir := resolveTemplateFS(services)
	resolver := httpassets.NewAssetResolver(httpassets.Options{
		FS:      staticFS,
		NoCache: services.IsDev,
		Logger:  services.Logger,
	})

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS:    templateFS,
		Resolver:      resolver,
		CriticalCSSFS: staticFS,
		DevMode:       services.IsDev,
		Logger:        services.Logger,
	})
	if err != nil {
		services.logger().Error("failed to create template renderer", slog.Any("error", err))
		return nil
	}

	if services.IsDev && watchDir != "" {
		ctx := services.Context
		if ctx == nil {
			ctx = context.Background()
		}
		if err := tr.Watch(ctx, filepath.Clean(watchDir)); err != nil {
			services.logger().Warn("template hot reload disabled", "dir", watchDir, "error", err)
		}
	}

	return &UIHandlers{
		T:             tr,
		Accounts:      services.Accounts,
		Tasks:         services.Tasks,
		Proxies:       services.Proxies,
		Quotas:        services.Quotas,
		RedisConfigs:  services.RedisConfigs,
		CrawlerParams: services.CrawlerParams,
		Records:       services.Records,
		Exports:       services.Exports,
		Dashboard:     services.Dashboard,
		Jobs:          services.Jobs,
		IsDev:         services.IsDev,
		PageSize:      services.PageSize,
		Logger:        services.Logger,
	}
}

// staticWithCacheHeaders marks fingerprinted URLs (?v=<hash>) immutable and
// everything else uncacheable.
func staticWithCacheHeaders(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") != "" {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}
		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and renders the console 404 page for
// unmatched GET/HEAD requests. Method mismatches keep the mux's 405.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, pattern := h.mux.Handler(r); pattern == "" && isReadMethod(r.Method) && !strings.HasPrefix(r.URL.Path, "/static/") {
		if h.uiHandlers != nil {
			h.uiHandlers.NotFound(w, r)
			return
		}
		http.NotFound(w, r)
		return
	}
	h.mux.ServeHTTP(w, r)
}

func isReadMethod(m string) bool {
	return m == http.MethodGet || m == http.MethodHead
}

// panelRoutes describes the standard dialog-driven CRUD surface of a panel.
type panelRoutes struct {
	Base   string
	List   http.HandlerFunc
	New    http.HandlerFunc
	Edit   http.HandlerFunc
	Create http.HandlerFunc
	Update http.HandlerFunc
	Delete http.HandlerFunc
}

func registerPanel(mux *http.ServeMux, p panelRoutes) {
	mux.HandleFunc("GET "+p.Base, p.List)
	mux.HandleFunc("GET "+p.Base+"/new", p.New)
	mux.HandleFunc("GET "+p.Base+"/{id}/edit", p.Edit)
	mux.HandleFunc("POST "+p.Base, p.Create)
	mux.HandleFunc("POST "+p.Base+"/{id}", p.Update)
	mux.HandleFunc("DELETE "+p.Base+"/{id}", p.Delete)
}

func registerUIRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /dashboard", h.DashboardRedirect)

	registerPanel(mux, panelRoutes{
		Base: "/accounts", List: h.AccountList, New: h.AccountNew, Edit: h.AccountEdit,
		Create: h.AccountCreate, Update: h.AccountUpdate, Delete: h.AccountDelete,
	})
	registerPanel(mux, panelRoutes{
		Base: "/tasks", List: h.TaskList, New: h.TaskNew, Edit: h.TaskEdit,
		Create: h.TaskCreate, Update: h.TaskUpdate, Delete: h.TaskDelete,
	})
	mux.HandleFunc("POST /tasks/{id}/{action}", h.TaskAction)

	registerPanel(mux, panelRoutes{
		Base: "/proxies", List: h.ProxyList, New: h.ProxyNew, Edit: h.ProxyEdit,
		Create: h.ProxyCreate, Update: h.ProxyUpdate, Delete: h.ProxyDelete,
	})
	registerPanel(mux, panelRoutes{
		Base: "/quotas", List: h.QuotaList, New: h.QuotaNew, Edit: h.QuotaEdit,
		Create: h.QuotaCreate, Update: h.QuotaUpdate, Delete: h.QuotaDelete,
	})
	mux.HandleFunc("POST /quotas/init", h.QuotaInit)

	registerPanel(mux, panelRoutes{
		Base: "/redis-configs", List: h.RedisConfigList, New: h.RedisConfigNew, Edit: h.RedisConfigEdit,
		Create: h.RedisConfigCreate, Update: h.RedisConfigUpdate, Delete: h.RedisConfigDelete,
	})
	mux.HandleFunc("POST /redis-configs/test", h.RedisConfigTest)
	mux.HandleFunc("POST /redis-configs/reload", h.RedisReload)
	mux.HandleFunc("POST /redis-configs/{id}/test", h.RedisConfigTestSaved)

	registerPanel(mux, panelRoutes{
		Base: "/crawler-params", List: h.CrawlerParamList, New: h.CrawlerParamNew, Edit: h.CrawlerParamEdit,
		Create: h.CrawlerParamCreate, Update: h.CrawlerParamUpdate, Delete: h.CrawlerParamDelete,
	})

	registerRecordRoutes(mux, h, rawPanel)
	registerRecordRoutes(mux, h, samplePanel)
	mux.HandleFunc("GET /raw-data/import", h.ImportNew)
	mux.HandleFunc("POST /raw-data/import", h.ImportSubmit)
	mux.HandleFunc("POST /sample-data/sample", h.SampleRun)

	mux.HandleFunc("GET /exports", h.ExportList)
	mux.HandleFunc("POST /exports/{kind}", h.ExportRun)
	mux.HandleFunc("GET /exports/download/{filename}", h.ExportDownload)
	mux.HandleFunc("DELETE /exports/{filename}", h.ExportDelete)

	mux.HandleFunc("GET /jobs/watch", h.JobWatch)
}

func registerRecordRoutes(mux *http.ServeMux, h *UIHandlers, p recordPanel) {
	mux.HandleFunc("GET "+p.path(), h.RecordList(p))
	mux.HandleFunc("GET "+p.path()+"/{id}", h.RecordView(p))
	mux.HandleFunc("DELETE "+p.path()+"/{id}", h.RecordDelete(p))
	mux.HandleFunc("DELETE "+p.path(), h.RecordClear(p))
}
