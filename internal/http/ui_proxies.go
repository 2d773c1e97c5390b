package httpx

import (
	"context"
	"net/http"

	"github.com/target/crawl-admin/internal/domain/model"
	"github.com/target/crawl-admin/internal/http/validation"
)

//nolint:gochecknoglobals // static dialog description
var proxyModal = formModal{Page: PageProxies, Noun: "Proxy", Template: "proxy-form"}

func proxiesMeta() PageMeta {
	return PageMeta{Title: "Crawl Admin - Proxies", PageTitle: "Proxies", CurrentPage: PageProxies}
}

// ProxyList renders the proxies panel.
func (h *UIHandlers) ProxyList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Proxy, struct{}]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, pg pageOpts) ([]model.Proxy, error) {
			limit, offset := pg.LimitAndOffset()
			return h.Proxies.List(ctx, limit, offset)
		},
		BasePath:     "/proxies",
		PageMeta:     proxiesMeta(),
		ItemsKey:     "Proxies",
		ErrorMessage: "Unable to load proxies.",
	})
}

func withProxyOptions(_ context.Context, data map[string]any) {
	data["ProxyTypes"] = model.ProxyTypes()
	data["Strategies"] = model.ProxyStrategies()
}

func parseProxyForm(r *http.Request) (model.ProxyRequest, map[string]string) {
	f := newFormFields(r)
	req := model.ProxyRequest{
		ProxyType: model.ProxyType(f.str("proxy_type")),
		ProxyAddr: f.str("proxy_addr"),
		Strategy:  model.ProxyStrategy(f.str("strategy")),
		Status:    model.ToggleOff,
	}
	if f.checked("status") {
		req.Status = model.ToggleOn
	}
	req.Normalize()

	f.merge(validation.New().
		Expect("proxy_type", req.ProxyType.Valid(), "Select a proxy type.").
		Expect("proxy_addr", model.ValidateHostPort(req.ProxyAddr) == nil,
			"Address must be host:port with a port between 1 and 65535.").
		Expect("strategy", req.Strategy.Valid(), "Select a strategy.").
		Errors())
	return req, f.errors()
}

// ProxyNew opens the create dialog.
func (h *UIHandlers) ProxyNew(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Mode": FormModeCreate,
		"FormData": model.ProxyRequest{
			ProxyType: model.ProxyTypeHTTP,
			Status:    model.ToggleOn,
			Strategy:  model.ProxyStrategyRoundRobin,
		},
	}
	withProxyOptions(r.Context(), data)
	h.showFormModal(w, r, proxyModal, data)
}

// ProxyEdit opens the edit dialog pre-filled from the backend.
func (h *UIHandlers) ProxyEdit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.NotFound(w, r)
		return
	}
	p, err := h.Proxies.Get(r.Context(), id)
	if err != nil {
		h.actionError(w, r, err, "Unable to load proxy.")
		return
	}
	data := map[string]any{
		"Mode": FormModeEdit,
		"ID":   p.ID,
		"FormData": model.ProxyRequest{
			ProxyType: p.ProxyType,
			ProxyAddr: p.ProxyAddr,
			Status:    p.Status,
			Strategy:  p.Strategy,
		},
	}
	withProxyOptions(r.Context(), data)
	h.showFormModal(w, r, proxyModal, data)
}

// ProxyCreate handles POST /proxies.
func (h *UIHandlers) ProxyCreate(w http.ResponseWriter, r *http.Request) {
	h.saveProxy(w, r, FormModeCreate)
}

// ProxyUpdate handles POST /proxies/{id}.
func (h *UIHandlers) ProxyUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveProxy(w, r, FormModeEdit)
}

func (h *UIHandlers) saveProxy(w http.ResponseWriter, r *http.Request, mode FormMode) {
	HandleForm(FormHandlerOpts[model.ProxyRequest]{
		W:              w,
		R:              r,
		Mode:           mode,
		Parser:         parseProxyForm,
		Service:        asFormService[model.Proxy, model.ProxyRequest](h.Proxies),
		Renderer:       h.formRenderer(proxyModal, withProxyOptions),
		Page:           PageProxies,
		SuccessMessage: "Proxy saved.",
		PageMeta:       proxiesMeta(),
		OnSuccess:      h.invalidateDashboard,
	})
}

// ProxyDelete handles DELETE /proxies/{id}.
func (h *UIHandlers) ProxyDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Page:           PageProxies,
		Delete:         h.Proxies.Delete,
		SuccessMessage: "Proxy deleted.",
		ErrorMessage:   "Unable to delete proxy.",
	})
}
