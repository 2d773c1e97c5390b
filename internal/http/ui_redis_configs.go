package httpx

import (
	"net/http"

	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/http/ui/viewmodel"
	"github.com/target/crawl-admin/internal/http/validation"
)

//nolint:gochecknoglobals // static dialog description
var redisConfigModal = formModal{Page: PageRedisConfigs, Noun: "Redis Config", Template: "redis-config-form"}

func redisConfigsMeta() PageMeta {
	return PageMeta{Title: "Crawl Admin - Redis", PageTitle: "Redis Configs", CurrentPage: PageRedisConfigs}
}

// redisConfigPage cuts one client-side page out of the full list. The
// returned total is ceil(len/size), at least 1.
func redisConfigPage(all []model.RedisConfig, page, size int) ([]model.RedisConfig, int) {
	total := max((len(all)+size-1)/size, 1)
	page = min(max(page, 1), total)
	start := (page - 1) * size
	end := min(start+size, len(all))
	if start >= end {
		return []model.RedisConfig{}, total
	}
	return all[start:end], total
}

// RedisConfigList fetches every config and pages them by RedisConfigPageSize.
func (h *UIHandlers) RedisConfigList(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)
	builder := NewTemplateData(r, redisConfigsMeta())

	all, err := h.RedisConfigs.List(r.Context())
	if err != nil {
		h.logger().WarnContext(r.Context(), "list fetch failed", "page", PageRedisConfigs, "error", err)
		msg := apperrors.UserMessage(err, "Unable to load Redis configs.")
		notify(w, msg, viewmodel.ToastError)
		builder.WithError(msg).
			With("Configs", []model.RedisConfig{}).
			WithPagination(PaginationData{Page: 1, PageSize: RedisConfigPageSize, TotalPages: 1, BasePath: "/redis-configs"})
		h.renderDashboardPage(w, r, builder.Build())
		return
	}

	items, total := redisConfigPage(all, page, RedisConfigPageSize)
	builder.With("Configs", items).
		WithPagination(PaginationData{
			Page:       min(page, total),
			PageSize:   RedisConfigPageSize,
			TotalPages: total,
			ItemCount:  len(items),
			BasePath:   "/redis-configs",
		})
	h.renderDashboardPage(w, r, builder.Build())
}

type redisFormValues struct {
	req  model.RedisConfigRequest
	errs map[string]string
}

func readRedisForm(r *http.Request) redisFormValues {
	f := newFormFields(r)
	req := model.RedisConfigRequest{
		Name:      f.str("name"),
		Host:      f.str("host"),
		Port:      f.intVal("port", model.DefaultRedisPort, "Port must be a number."),
		DB:        f.intVal("db", 0, "DB must be a number."),
		IsDefault: f.checked("is_default"),
	}
	if pw := r.Form.Get("password"); pw != "" {
		req.Password = &pw
	}
	req.Normalize()

	f.merge(validation.New().
		Check("host", req.Host, validation.Required("Host", 255)).
		CheckInt("port", int64(req.Port), validation.Port("Port")).
		CheckInt("db", int64(req.DB), validation.RedisDB("DB")).
		Errors())
	return redisFormValues{req: req, errs: f.errs}
}

func parseRedisConfigForm(r *http.Request) (model.RedisConfigRequest, map[string]string) {
	v := readRedisForm(r)
	if v.req.Name == "" {
		if _, ok := v.errs["name"]; !ok {
			v.errs["name"] = "Name is required."
		}
	}
	if len(v.errs) == 0 {
		return v.req, nil
	}
	return v.req, v.errs
}

// RedisConfigNew opens the create dialog.
func (h *UIHandlers) RedisConfigNew(w http.ResponseWriter, r *http.Request) {
	h.showFormModal(w, r, redisConfigModal, map[string]any{
		"Mode":     FormModeCreate,
		"FormData": model.RedisConfigRequest{Host: model.DefaultRedisHost, Port: model.DefaultRedisPort},
	})
}

// RedisConfigEdit opens the edit dialog. The stored password is never
// rendered; a blank field leaves it unchanged.
func (h *UIHandlers) RedisConfigEdit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.NotFound(w, r)
		return
	}
	c, err := h.RedisConfigs.Get(r.Context(), id)
	if err != nil {
		h.actionError(w, r, err, "Unable to load Redis config.")
		return
	}
	h.showFormModal(w, r, redisConfigModal, map[string]any{
		"Mode": FormModeEdit,
		"ID":   c.ID,
		"FormData": model.RedisConfigRequest{
			Name:      c.Name,
			Host:      c.Host,
			Port:      c.Port,
			DB:        c.DB,
			IsDefault: c.IsDefault,
		},
	})
}

// RedisConfigCreate handles POST /redis-configs.
func (h *UIHandlers) RedisConfigCreate(w http.ResponseWriter, r *http.Request) {
	h.saveRedisConfig(w, r, FormModeCreate)
}

// RedisConfigUpdate handles POST /redis-configs/{id}.
func (h *UIHandlers) RedisConfigUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveRedisConfig(w, r, FormModeEdit)
}

func (h *UIHandlers) saveRedisConfig(w http.ResponseWriter, r *http.Request, mode FormMode) {
	HandleForm(FormHandlerOpts[model.RedisConfigRequest]{
		W:              w,
		R:              r,
		Mode:           mode,
		Parser:         parseRedisConfigForm,
		Service:        asFormService[model.RedisConfig, model.RedisConfigRequest](h.RedisConfigs),
		Renderer:       h.formRenderer(redisConfigModal, nil),
		Page:           PageRedisConfigs,
		SuccessMessage: "Redis config saved.",
		PageMeta:       redisConfigsMeta(),
	})
}

// RedisConfigDelete handles DELETE /redis-configs/{id}.
func (h *UIHandlers) RedisConfigDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Page:           PageRedisConfigs,
		Delete:         h.RedisConfigs.Delete,
		SuccessMessage: "Redis config deleted.",
		ErrorMessage:   "Unable to delete Redis config.",
	})
}

// RedisConfigTestSaved handles POST /redis-configs/{id}/test.
func (h *UIHandlers) RedisConfigTestSaved(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.actionError(w, r, err, "Invalid Redis config id.")
		return
	}
	res, err := h.RedisConfigs.TestSaved(r.Context(), id)
	if err != nil {
		h.actionError(w, r, err, "Connection test failed.")
		return
	}
	reportRedisTest(w, res)
}

// RedisConfigTest handles POST /redis-configs/test with unsaved form values.
func (h *UIHandlers) RedisConfigTest(w http.ResponseWriter, r *http.Request) {
	v := readRedisForm(r)
	if len(v.errs) > 0 {
		for _, key := range []string{"_", "host", "port", "db"} {
			if msg, ok := v.errs[key]; ok {
				notify(w, msg, viewmodel.ToastError)
				break
			}
		}
		HTMX(w).NoContent()
		return
	}
	res, err := h.RedisConfigs.Test(r.Context(), v.req.TestRequest())
	if err != nil {
		h.actionError(w, r, err, "Connection test failed.")
		return
	}
	reportRedisTest(w, res)
}

// reportRedisTest turns the backend verdict into one toast.
func reportRedisTest(w http.ResponseWriter, res *model.RedisTestResult) {
	switch {
	case res.Success && res.Message != "":
		notify(w, res.Message, viewmodel.ToastSuccess)
	case res.Success:
		notify(w, "Connection succeeded.", viewmodel.ToastSuccess)
	case res.Message != "":
		notify(w, res.Message, viewmodel.ToastError)
	default:
		notify(w, "Connection failed.", viewmodel.ToastError)
	}
	HTMX(w).NoContent()
}

// RedisReload handles POST /redis-configs/reload.
func (h *UIHandlers) RedisReload(w http.ResponseWriter, r *http.Request) {
	msg, err := h.RedisConfigs.Reload(r.Context())
	if err != nil {
		h.actionError(w, r, err, "Unable to reload Redis configuration.")
		return
	}
	text := "Redis configuration reloaded."
	if msg != nil && msg.Message != "" {
		text = msg.Message
	}
	notify(w, text, viewmodel.ToastSuccess)
	HTMX(w).NoContent()
}
