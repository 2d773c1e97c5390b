package httpx

import (
	"context"
	"net/http"

	"github.com/target/crawl-admin/internal/domain/model"
	"github.com/target/crawl-admin/internal/http/uiutil"
	"github.com/target/crawl-admin/internal/http/validation"
)

//nolint:gochecknoglobals // static dialog description
var accountModal = formModal{Page: PageAccounts, Noun: "Account", Template: "account-form"}

func accountsMeta() PageMeta {
	return PageMeta{Title: "Crawl Admin - Accounts", PageTitle: "Accounts", CurrentPage: PageAccounts}
}

// accountRow is an account as shown in the table; the cookie is cut to
// AccountNameMaxLen characters.
type accountRow struct {
	ID         int64
	Name       string
	FullName   string
	Enabled    bool
	StatusText string
}

func toAccountRows(accounts []model.Account) []accountRow {
	rows := make([]accountRow, 0, len(accounts))
	for i := range accounts {
		a := &accounts[i]
		rows = append(rows, accountRow{
			ID:         a.ID,
			Name:       uiutil.Truncate(a.AccountName, AccountNameMaxLen),
			FullName:   a.AccountName,
			Enabled:    a.Status.On(),
			StatusText: a.StatusText(),
		})
	}
	return rows
}

// AccountList renders the accounts panel.
func (h *UIHandlers) AccountList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[accountRow, struct{}]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, pg pageOpts) ([]accountRow, error) {
			limit, offset := pg.LimitAndOffset()
			accounts, err := h.Accounts.List(ctx, limit, offset)
			if err != nil {
				return nil, err
			}
			return toAccountRows(accounts), nil
		},
		BasePath:     "/accounts",
		PageMeta:     accountsMeta(),
		ItemsKey:     "Accounts",
		ErrorMessage: "Unable to load accounts.",
	})
}

func parseAccountForm(r *http.Request) (model.AccountRequest, map[string]string) {
	f := newFormFields(r)
	req := model.AccountRequest{AccountName: f.str("account_name"), Status: model.ToggleOff}
	if f.checked("status") {
		req.Status = model.ToggleOn
	}
	f.merge(validation.New().
		Check("account_name", req.AccountName, validation.Required("Account cookie", 10000)).
		Errors())
	return req, f.errors()
}

// AccountNew opens the create dialog.
func (h *UIHandlers) AccountNew(w http.ResponseWriter, r *http.Request) {
	h.showFormModal(w, r, accountModal, map[string]any{
		"Mode":     FormModeCreate,
		"FormData": model.AccountRequest{Status: model.ToggleOn},
	})
}

// AccountEdit opens the edit dialog pre-filled from the backend.
func (h *UIHandlers) AccountEdit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.NotFound(w, r)
		return
	}
	a, err := h.Accounts.Get(r.Context(), id)
	if err != nil {
		h.actionError(w, r, err, "Unable to load account.")
		return
	}
	h.showFormModal(w, r, accountModal, map[string]any{
		"Mode":     FormModeEdit,
		"ID":       a.ID,
		"FormData": model.AccountRequest{AccountName: a.AccountName, Status: a.Status},
	})
}

// AccountCreate handles POST /accounts.
func (h *UIHandlers) AccountCreate(w http.ResponseWriter, r *http.Request) {
	h.saveAccount(w, r, FormModeCreate)
}

// AccountUpdate handles POST /accounts/{id}.
func (h *UIHandlers) AccountUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveAccount(w, r, FormModeEdit)
}

func (h *UIHandlers) saveAccount(w http.ResponseWriter, r *http.Request, mode FormMode) {
	HandleForm(FormHandlerOpts[model.AccountRequest]{
		W:              w,
		R:              r,
		Mode:           mode,
		Parser:         parseAccountForm,
		Service:        asFormService[model.Account, model.AccountRequest](h.Accounts),
		Renderer:       h.formRenderer(accountModal, nil),
		Page:           PageAccounts,
		SuccessMessage: "Account saved.",
		PageMeta:       accountsMeta(),
		OnSuccess:      h.invalidateDashboard,
	})
}

// AccountDelete handles DELETE /accounts/{id}.
func (h *UIHandlers) AccountDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Page:           PageAccounts,
		Delete:         h.Accounts.Delete,
		SuccessMessage: "Account deleted.",
		ErrorMessage:   "Unable to delete account.",
	})
}
