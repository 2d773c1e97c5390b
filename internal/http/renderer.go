package httpx

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	httpassets "github.com/target/crawl-admin/internal/http/assets"
	assetfuncs "github.com/target/crawl-admin/internal/http/templates/assets"
	corefuncs "github.com/target/crawl-admin/internal/http/templates/core"
)

// AssetResolver aliases the asset resolver so callers only import httpx.
type AssetResolver = httpassets.AssetResolver

const (
	criticalCSSPath     = "css/critical.css"
	fallbackCriticalCSS = ":root{--bg:#f6f7f9;--surface:#fff;--text:#2e3138;}"
	reloadDebounce      = 100 * time.Millisecond
)

//nolint:gochecknoglobals // parse patterns shared by initial parse and reloads
var templatePatterns = []string{"*.tmpl", "pages/*.tmpl", "partials/*.tmpl"}

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	mu            sync.RWMutex
	t             *template.Template
	templateFS    fs.FS
	resolver      *AssetResolver
	criticalCSSFS fs.FS
	criticalCSS   string
	devMode       bool
	logger        *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS    fs.FS          // Filesystem containing templates (required)
	Resolver      *AssetResolver // Asset fingerprinting (optional)
	CriticalCSSFS fs.FS          // Filesystem containing css/critical.css (optional)
	DevMode       bool           // Re-read critical CSS on each request
	Logger        *slog.Logger   // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the provided config.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer := &TemplateRenderer{
		templateFS:    cfg.TemplateFS,
		resolver:      cfg.Resolver,
		criticalCSSFS: cfg.CriticalCSSFS,
		devMode:       cfg.DevMode,
		logger:        logger,
	}
	if cfg.CriticalCSSFS != nil && !cfg.DevMode {
		renderer.criticalCSS = renderer.readCriticalCSS()
	}

	t, err := renderer.parse()
	if err != nil {
		logger.Error("template parsing failed", slog.Any("error", err), slog.String("phase", "initialization"))
		return nil, err
	}
	renderer.t = t
	return renderer, nil
}

// parse builds a fresh template set. Template funcs that execute nested
// templates read r.t, so they always see the current set.
func (r *TemplateRenderer) parse() (*template.Template, error) {
	return template.New("root").Funcs(r.templateFuncs()).ParseFS(r.templateFS, templatePatterns...)
}

// Reload re-parses every template. The previous set stays active when parsing fails.
func (r *TemplateRenderer) Reload() error {
	t, err := r.parse()
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.t = t
	r.mu.Unlock()
	return nil
}

// Watch re-parses templates whenever a file under dir changes, until ctx ends.
// dir must be the on-disk directory TemplateFS was opened from.
func (r *TemplateRenderer) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	walkErr := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
	if walkErr != nil {
		_ = watcher.Close()
		return walkErr
	}

	go r.watchLoop(ctx, watcher)
	return nil
}

func (r *TemplateRenderer) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() { _ = watcher.Close() }()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if strings.HasSuffix(ev.Name, ".tmpl") && ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				pending = time.After(reloadDebounce)
			}
		case <-pending:
			pending = nil
			if err := r.Reload(); err != nil {
				r.logger.Error("template reload failed", slog.Any("error", err))
				continue
			}
			r.logger.Info("templates reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			r.logger.Warn("template watcher error", slog.Any("error", err))
		}
	}
}

func (r *TemplateRenderer) readCriticalCSS() string {
	cssBytes, err := fs.ReadFile(r.criticalCSSFS, criticalCSSPath)
	if err != nil {
		r.logger.Warn("failed to load critical CSS", slog.String("path", criticalCSSPath), slog.Any("error", err))
		return fallbackCriticalCSS
	}
	return string(cssBytes)
}

// getCriticalCSS returns the critical CSS, reloading from disk in dev mode.
func (r *TemplateRenderer) getCriticalCSS() string {
	if r.devMode && r.criticalCSSFS != nil {
		return r.readCriticalCSS()
	}
	return r.criticalCSS
}

// RenderFull renders the full page (layout + page content).
func (r *TemplateRenderer) RenderFull(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "layout", data)
}

// RenderError renders an error page using the error template.
func (r *TemplateRenderer) RenderError(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "error-layout", data)
}

// RenderNamed renders one named template (a content block, modal or partial).
func (r *TemplateRenderer) RenderNamed(w io.Writer, name string, data any) error {
	return r.renderTemplate(w, name, data)
}

// Has reports whether a template with the name is defined.
func (r *TemplateRenderer) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.t.Lookup(name) != nil
}

func (r *TemplateRenderer) renderTemplate(w io.Writer, templateName string, data any) error {
	var buf bytes.Buffer
	r.mu.RLock()
	err := r.t.ExecuteTemplate(&buf, templateName, data)
	r.mu.RUnlock()
	if err != nil {
		r.logger.Error("template execution failed", slog.String("template", templateName), slog.Any("error", err))
		return err
	}

	if rw, ok := w.(http.ResponseWriter); ok && rw.Header().Get("Content-Type") == "" {
		rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Error("failed to write rendered template", slog.String("template", templateName), slog.Any("error", err))
		return err
	}
	return nil
}

func (r *TemplateRenderer) templateFuncs() template.FuncMap {
	funcs := template.FuncMap{}
	maps.Copy(funcs, corefuncs.Funcs(corefuncs.Deps{
		Template:           &r.t,
		ContentTemplateFor: ContentTemplateFor,
	}))
	maps.Copy(funcs, assetfuncs.Funcs(assetfuncs.Options{
		Resolver:    r.resolver,
		CriticalCSS: r.getCriticalCSS,
	}))
	return funcs
}

// DirFSIfExists returns os.DirFS(dir) when dir is an existing directory.
func DirFSIfExists(dir string) (fs.FS, bool) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, false
	}
	return os.DirFS(dir), true
}
