package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/mocks"
	"github.com/target/crawl-admin/internal/service"
)

func newAccountHandlers(t *testing.T) (*UIHandlers, *mocks.MockAccountAPI) {
	t.Helper()
	h := CreateUIHandlersForTest(t)
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAccountAPI(ctrl)
	h.Accounts = service.NewAccountService(service.AccountServiceOptions{API: api})
	return h, api
}

func panelRequest(method, target, panel string, body url.Values) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, strings.NewReader(body.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	r.Header.Set("HX-Request", "true")
	if panel != "" {
		r.Header.Set("HX-Target", panel)
	}
	return r
}

func parseHTML(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return doc
}

func TestAccountList_RendersRows(t *testing.T) {
	h, api := newAccountHandlers(t)
	long := strings.Repeat("c", 30)
	api.EXPECT().ListAccounts(gomock.Any(), model.ListOptions{Skip: 0, Limit: ListPageSize + 1}).
		Return([]model.Account{
			{ID: 1, AccountName: long, Status: model.ToggleOn},
			{ID: 2, AccountName: "short", Status: model.ToggleOff},
		}, nil)

	w := httptest.NewRecorder()
	h.AccountList(w, panelRequest(http.MethodGet, "/accounts", "accounts-content", nil))

	require.Equal(t, http.StatusOK, w.Code)
	doc := parseHTML(t, w)
	panel := doc.Find("#accounts-content")
	require.Equal(t, 1, panel.Length())
	assert.Equal(t, "/accounts", panel.AttrOr("hx-get", ""))
	assert.Equal(t, "accounts:reload from:body", panel.AttrOr("hx-trigger", ""))

	rows := doc.Find("tbody tr[id^=account-]")
	require.Equal(t, 2, rows.Length())
	first := rows.First().Find("td").Eq(1)
	assert.Equal(t, strings.Repeat("c", AccountNameMaxLen)+"...", first.Text())
	assert.Equal(t, long, first.AttrOr("title", ""))
	assert.Equal(t, "Normal", rows.First().Find(".badge").Text())
	assert.Equal(t, "Disabled", rows.Last().Find(".badge").Text())
	assert.Equal(t, "/accounts/2", rows.Last().Find("[hx-delete]").AttrOr("hx-delete", ""))
	assert.Equal(t, 2, doc.Find(".pager button[disabled]").Length())
}

func TestAccountList_SecondPage(t *testing.T) {
	h, api := newAccountHandlers(t)
	api.EXPECT().ListAccounts(gomock.Any(), model.ListOptions{Skip: ListPageSize, Limit: ListPageSize + 1}).
		Return([]model.Account{{ID: 21, AccountName: "x", Status: model.ToggleOn}}, nil)

	w := httptest.NewRecorder()
	h.AccountList(w, panelRequest(http.MethodGet, "/accounts?page=2", "accounts-content", nil))

	doc := parseHTML(t, w)
	assert.Equal(t, "/accounts?page=2", doc.Find("#accounts-content").AttrOr("hx-get", ""))
	assert.Equal(t, "/accounts", doc.Find("a.pager-prev").AttrOr("hx-get", ""))
	assert.Equal(t, "Page 2 of 2 (21-21)", strings.TrimSpace(doc.Find(".pager-status").Text()))
}

func TestAccountList_BackendFailure(t *testing.T) {
	h, api := newAccountHandlers(t)
	api.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(nil, apperrors.Wrap(errors.New("dial tcp: refused"), apperrors.ErrCodeUnavailable, "Backend unreachable."))

	w := httptest.NewRecorder()
	h.AccountList(w, panelRequest(http.MethodGet, "/accounts", "accounts-content", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	doc := parseHTML(t, w)
	assert.Equal(t, "Backend unreachable.", doc.Find(".alert-error").Text())
	assert.Equal(t, "No accounts.", doc.Find("td.empty").Text())
	assert.Equal(t, "Backend unreachable.", toastOf(t, w).Message)
}

func TestAccountList_Navigation(t *testing.T) {
	h, api := newAccountHandlers(t)
	api.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(nil, nil)

	w := httptest.NewRecorder()
	h.AccountList(w, panelRequest(http.MethodGet, "/accounts", "main-content", nil))

	doc := parseHTML(t, w)
	assert.Equal(t, "Crawl Admin - Accounts", doc.Find("title").Text())
	assert.Equal(t, "Accounts", doc.Find("#header-title").Text())
	assert.Equal(t, "outerHTML", doc.Find("#header-title").AttrOr("hx-swap-oob", ""))
	assert.Contains(t, triggers(t, w), EventNavigate)
}

func TestAccountList_FullPage(t *testing.T) {
	h, api := newAccountHandlers(t)
	api.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return([]model.Account{{ID: 5, AccountName: "a", Status: model.ToggleOn}}, nil)

	w := httptest.NewRecorder()
	h.AccountList(w, httptest.NewRequest(http.MethodGet, "/accounts", nil))

	doc := parseHTML(t, w)
	assert.Equal(t, 1, doc.Find("#main-content #accounts-content").Length())
	assert.Equal(t, 1, doc.Find("#modal-root").Length())
	assert.Equal(t, 1, doc.Find("#account-5").Length())
}

func TestAccountNew_OpensDialog(t *testing.T) {
	h, _ := newAccountHandlers(t)

	w := httptest.NewRecorder()
	h.AccountNew(w, panelRequest(http.MethodGet, "/accounts/new", "modal-root", nil))

	doc := parseHTML(t, w)
	assert.Equal(t, "New Account", doc.Find(".modal-title").Text())
	form := doc.Find("form#accounts-form")
	require.Equal(t, 1, form.Length())
	assert.Equal(t, "/accounts", form.AttrOr("hx-post", ""))
	_, checked := form.Find(`input[name="status"]`).Attr("checked")
	assert.True(t, checked, "new accounts default to enabled")
}

func TestAccountEdit_PrefillsFromBackend(t *testing.T) {
	h, api := newAccountHandlers(t)
	api.EXPECT().GetAccount(gomock.Any(), int64(9)).Return(&model.Account{ID: 9, AccountName: "cookie=1", Status: model.ToggleOff}, nil)

	r := panelRequest(http.MethodGet, "/accounts/9/edit", "modal-root", nil)
	r.SetPathValue("id", "9")
	w := httptest.NewRecorder()
	h.AccountEdit(w, r)

	doc := parseHTML(t, w)
	assert.Equal(t, "Edit Account", doc.Find(".modal-title").Text())
	assert.Equal(t, "/accounts/9", doc.Find("form").AttrOr("hx-post", ""))
	assert.Equal(t, "cookie=1", doc.Find("textarea#account_name").Text())
	_, checked := doc.Find(`input[name="status"]`).Attr("checked")
	assert.False(t, checked)
}

func TestAccountEdit_MissingAccount(t *testing.T) {
	h, api := newAccountHandlers(t)
	api.EXPECT().GetAccount(gomock.Any(), int64(9)).Return(nil, apperrors.NotFound("Account not found."))

	r := panelRequest(http.MethodGet, "/accounts/9/edit", "modal-root", nil)
	r.SetPathValue("id", "9")
	w := httptest.NewRecorder()
	h.AccountEdit(w, r)

	assert.Empty(t, w.Body.String())
	assert.Equal(t, "Account not found.", toastOf(t, w).Message)
}

func TestAccountCreate_PostsToBackend(t *testing.T) {
	h, api := newAccountHandlers(t)
	api.EXPECT().CreateAccount(gomock.Any(), model.AccountRequest{AccountName: "cookie=abc", Status: model.ToggleOn}).
		Return(&model.Account{ID: 3, AccountName: "cookie=abc", Status: model.ToggleOn}, nil)

	w := httptest.NewRecorder()
	h.AccountCreate(w, panelRequest(http.MethodPost, "/accounts", "modal-root", url.Values{
		"account_name": {"  cookie=abc "},
		"status":       {"1"},
	}))

	assert.Equal(t, http.StatusNoContent, w.Code)
	events := triggers(t, w)
	assert.Contains(t, events, EventCloseModal)
	assert.Contains(t, events, ReloadEvent(PageAccounts))
	assert.Equal(t, "Account saved.", toastOf(t, w).Message)
}

func TestAccountUpdate_PutsToBackend(t *testing.T) {
	h, api := newAccountHandlers(t)
	api.EXPECT().UpdateAccount(gomock.Any(), int64(3), model.AccountRequest{AccountName: "cookie=new", Status: model.ToggleOff}).
		Return(&model.Account{ID: 3}, nil)

	r := panelRequest(http.MethodPost, "/accounts/3", "modal-root", url.Values{"account_name": {"cookie=new"}})
	r.SetPathValue("id", "3")
	w := httptest.NewRecorder()
	h.AccountUpdate(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAccountCreate_RequiresCookie(t *testing.T) {
	h, _ := newAccountHandlers(t)

	w := httptest.NewRecorder()
	h.AccountCreate(w, panelRequest(http.MethodPost, "/accounts", "modal-root", url.Values{"account_name": {"   "}}))

	doc := parseHTML(t, w)
	assert.Equal(t, "Account cookie is required.", doc.Find(".field-error").Text())
	assert.Equal(t, 1, doc.Find("form#accounts-form").Length())
	assert.NotContains(t, triggers(t, w), ReloadEvent(PageAccounts))
}

func TestAccountCreate_BackendRejection(t *testing.T) {
	h, api := newAccountHandlers(t)
	api.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil, apperrors.Conflict("Duplicate account."))

	w := httptest.NewRecorder()
	h.AccountCreate(w, panelRequest(http.MethodPost, "/accounts", "modal-root", url.Values{"account_name": {"cookie"}}))

	doc := parseHTML(t, w)
	assert.Equal(t, "Duplicate account.", doc.Find(".alert-error").Text())
	assert.Equal(t, "cookie", doc.Find("textarea#account_name").Text())
	assert.Equal(t, "Duplicate account.", toastOf(t, w).Message)
}

func TestAccountDelete(t *testing.T) {
	t.Run("success reloads once", func(t *testing.T) {
		h, api := newAccountHandlers(t)
		api.EXPECT().DeleteAccount(gomock.Any(), int64(4)).Return(nil)

		r := panelRequest(http.MethodDelete, "/accounts/4", "", nil)
		r.SetPathValue("id", "4")
		w := httptest.NewRecorder()
		h.AccountDelete(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, triggers(t, w), ReloadEvent(PageAccounts))
		assert.NotContains(t, triggers(t, w), EventCloseModal)
		assert.Equal(t, "Account deleted.", toastOf(t, w).Message)
	})

	t.Run("failure shows backend message", func(t *testing.T) {
		h, api := newAccountHandlers(t)
		api.EXPECT().DeleteAccount(gomock.Any(), int64(4)).Return(apperrors.Conflict("Account is used by a task."))

		r := panelRequest(http.MethodDelete, "/accounts/4", "", nil)
		r.SetPathValue("id", "4")
		w := httptest.NewRecorder()
		h.AccountDelete(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, triggers(t, w), ReloadEvent(PageAccounts))
		assert.Equal(t, "Account is used by a task.", toastOf(t, w).Message)
	})

	t.Run("non-ASCII backend message survives the header", func(t *testing.T) {
		h, api := newAccountHandlers(t)
		api.EXPECT().DeleteAccount(gomock.Any(), int64(4)).Return(apperrors.Conflict("账号名已存在"))

		r := panelRequest(http.MethodDelete, "/accounts/4", "", nil)
		r.SetPathValue("id", "4")
		w := httptest.NewRecorder()
		h.AccountDelete(w, r)

		raw := w.Header().Get("Hx-Trigger")
		for i := 0; i < len(raw); i++ {
			require.Less(t, raw[i], byte(0x80), "header byte %d is not ASCII: %q", i, raw)
		}
		assert.Equal(t, "账号名已存在", toastOf(t, w).Message)
	})

	t.Run("bad id never reaches backend", func(t *testing.T) {
		h, _ := newAccountHandlers(t)

		r := panelRequest(http.MethodDelete, "/accounts/x", "", nil)
		r.SetPathValue("id", "x")
		w := httptest.NewRecorder()
		h.AccountDelete(w, r)

		assert.Contains(t, toastOf(t, w).Message, "invalid id")
	})
}
