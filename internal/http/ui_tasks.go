package httpx

import (
	"context"
	"fmt"
	"net/http"

	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/http/uiutil"
	"github.com/target/crawl-admin/internal/http/validation"
)

//nolint:gochecknoglobals // static dialog description
var taskModal = formModal{Page: PageTasks, Noun: "Task", Template: "task-form"}

func tasksMeta() PageMeta {
	return PageMeta{Title: "Crawl Admin - Tasks", PageTitle: "Tasks", CurrentPage: PageTasks}
}

// TaskList renders the tasks panel.
func (h *UIHandlers) TaskList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Task, struct{}]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, pg pageOpts) ([]model.Task, error) {
			limit, offset := pg.LimitAndOffset()
			return h.Tasks.List(ctx, limit, offset)
		},
		BasePath:     "/tasks",
		PageMeta:     tasksMeta(),
		ItemsKey:     "Tasks",
		ErrorMessage: "Unable to load tasks.",
	})
}

// selectOption is one <option> of a form dropdown.
type selectOption struct {
	Value    string
	Label    string
	Selected bool
}

// loadTaskFormOptions fills the account and crawler parameter dropdowns.
// A failed lookup leaves the dropdown empty and flags the form.
func (h *UIHandlers) loadTaskFormOptions(ctx context.Context, data map[string]any) {
	req, _ := data["FormData"].(model.TaskRequest)

	var accounts []selectOption
	list, err := h.Accounts.List(ctx, optionListLimit, 0)
	if err != nil {
		h.logger().WarnContext(ctx, "task form: load accounts failed", "error", err)
		data["OptionsError"] = "Unable to load accounts."
	}
	for i := range list {
		accounts = append(accounts, selectOption{
			Value:    fmt.Sprint(list[i].ID),
			Label:    fmt.Sprintf("%d - %s", list[i].ID, uiutil.Truncate(list[i].AccountName, AccountNameMaxLen)),
			Selected: list[i].ID == req.AccountID,
		})
	}

	var params []selectOption
	if h.CrawlerParams != nil {
		plist, perr := h.CrawlerParams.List(ctx, optionListLimit, 0)
		if perr != nil {
			h.logger().WarnContext(ctx, "task form: load crawler params failed", "error", perr)
			data["OptionsError"] = "Unable to load crawler parameters."
		}
		for i := range plist {
			params = append(params, selectOption{
				Value:    fmt.Sprint(plist[i].ID),
				Label:    fmt.Sprintf("%d - %s", plist[i].ID, plist[i].URL),
				Selected: req.CrawlerParamID != nil && *req.CrawlerParamID == plist[i].ID,
			})
		}
	}

	data["AccountOptions"] = accounts
	data["CrawlerParamOptions"] = params
	data["TaskTypes"] = []model.TaskType{model.TaskTypeCrawler, model.TaskTypeExport}
}

func parseTaskForm(r *http.Request) (model.TaskRequest, map[string]string) {
	f := newFormFields(r)
	req := model.TaskRequest{
		TaskName:  f.str("task_name"),
		AccountID: f.int64Val("account_id", "Select an account."),
		TaskType:  model.TaskType(f.str("task_type")),
	}
	if id := f.int64Val("crawler_param_id", "Select a valid crawler parameter."); id > 0 {
		req.CrawlerParamID = &id
	}
	req.Normalize()

	f.merge(validation.New().
		Check("task_name", req.TaskName, validation.Required("Task name", 100)).
		Check("task_type", string(req.TaskType),
			validation.OneOf("Task type", string(model.TaskTypeCrawler), string(model.TaskTypeExport))).
		CheckInt("account_id", req.AccountID, validation.Selected("Select an account.")).
		Errors())
	return req, f.errors()
}

// TaskNew opens the create dialog.
func (h *UIHandlers) TaskNew(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Mode":     FormModeCreate,
		"FormData": model.TaskRequest{TaskType: model.TaskTypeCrawler},
	}
	h.loadTaskFormOptions(r.Context(), data)
	h.showFormModal(w, r, taskModal, data)
}

// TaskEdit opens the edit dialog pre-filled from the backend.
func (h *UIHandlers) TaskEdit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.NotFound(w, r)
		return
	}
	t, err := h.Tasks.Get(r.Context(), id)
	if err != nil {
		h.actionError(w, r, err, "Unable to load task.")
		return
	}
	data := map[string]any{
		"Mode": FormModeEdit,
		"ID":   t.ID,
		"FormData": model.TaskRequest{
			TaskName:       t.TaskName,
			AccountID:      t.AccountID,
			CrawlerParamID: t.CrawlerParamID,
			TaskType:       t.TaskType,
		},
	}
	h.loadTaskFormOptions(r.Context(), data)
	h.showFormModal(w, r, taskModal, data)
}

// TaskCreate handles POST /tasks.
func (h *UIHandlers) TaskCreate(w http.ResponseWriter, r *http.Request) {
	h.saveTask(w, r, FormModeCreate)
}

// TaskUpdate handles POST /tasks/{id}.
func (h *UIHandlers) TaskUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveTask(w, r, FormModeEdit)
}

func (h *UIHandlers) saveTask(w http.ResponseWriter, r *http.Request, mode FormMode) {
	HandleForm(FormHandlerOpts[model.TaskRequest]{
		W:              w,
		R:              r,
		Mode:           mode,
		Parser:         parseTaskForm,
		Service:        asFormService[model.Task, model.TaskRequest](h.Tasks),
		Renderer:       h.formRenderer(taskModal, h.loadTaskFormOptions),
		Page:           PageTasks,
		SuccessMessage: "Task saved.",
		PageMeta:       tasksMeta(),
		OnSuccess:      h.invalidateDashboard,
	})
}

// TaskDelete handles DELETE /tasks/{id}.
func (h *UIHandlers) TaskDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Page:           PageTasks,
		Delete:         h.Tasks.Delete,
		SuccessMessage: "Task deleted.",
		ErrorMessage:   "Unable to delete task.",
	})
}

// TaskAction handles POST /tasks/{id}/{action} (start, pause, resume, stop).
func (h *UIHandlers) TaskAction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.actionError(w, r, err, "Invalid task id.")
		return
	}
	action, ok := model.ParseTaskAction(r.PathValue("action"))
	if !ok {
		h.actionError(w, r, apperrors.Validationf("unknown task action %q", r.PathValue("action")), "Unknown task action.")
		return
	}
	if _, err := h.Tasks.RunAction(r.Context(), id, action); err != nil {
		h.actionError(w, r, err, fmt.Sprintf("Unable to %s task.", action))
		return
	}
	h.invalidateDashboard(r.Context())
	actionDone(w, PageTasks, "Task "+action.PastTense()+".")
}
