package httpx

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/crawl-admin/internal/domain/model"
	"github.com/target/crawl-admin/internal/mocks"
	"github.com/target/crawl-admin/internal/service"
	"github.com/target/crawl-admin/internal/testutil"
)

func redisConfigs(n int) []model.RedisConfig {
	out := make([]model.RedisConfig, n)
	for i := range out {
		out[i] = model.RedisConfig{ID: int64(i + 1), Name: fmt.Sprintf("redis-%d", i+1), Host: "127.0.0.1", Port: 6379}
	}
	return out
}

func TestRedisConfigPage(t *testing.T) {
	all := redisConfigs(23)
	tests := []struct {
		name      string
		page      int
		wantFirst int64
		wantLen   int
	}{
		{"first", 1, 1, 10},
		{"second", 2, 11, 10},
		{"last partial", 3, 21, 3},
		{"past the end clamps", 9, 21, 3},
		{"below one clamps", 0, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total := redisConfigPage(all, tt.page, RedisConfigPageSize)
			assert.Equal(t, 3, total)
			require.Len(t, items, tt.wantLen)
			assert.Equal(t, tt.wantFirst, items[0].ID)
		})
	}

	items, total := redisConfigPage(nil, 1, RedisConfigPageSize)
	assert.Empty(t, items)
	assert.Equal(t, 1, total)
}

func newRedisHandlers(t *testing.T) (*UIHandlers, *mocks.MockRedisConfigAPI) {
	t.Helper()
	h := CreateUIHandlersForTest(t)
	api := mocks.NewMockRedisConfigAPI(gomock.NewController(t))
	h.RedisConfigs = service.NewRedisConfigService(service.RedisConfigServiceOptions{API: api})
	return h, api
}

func TestRedisConfigList_PagesClientSide(t *testing.T) {
	h, api := newRedisHandlers(t)
	api.EXPECT().ListRedisConfigs(gomock.Any()).Return(redisConfigs(12), nil)

	w := httptest.NewRecorder()
	h.RedisConfigList(w, panelRequest(http.MethodGet, "/redis-configs?page=2", "redis-configs-content", nil))

	require.Equal(t, http.StatusOK, w.Code)
	doc := parseHTML(t, w)
	assert.Equal(t, 2, doc.Find("#redis-configs-content tbody tr[id]").Length())
	assert.Equal(t, "Page 2 of 2 (11-12)", strings.TrimSpace(doc.Find(".pager-status").Text()))
	assert.Equal(t, "/redis-configs", doc.Find("a.pager-prev").AttrOr("hx-get", ""))
}

func TestRedisConfigTest_ReportsVerdict(t *testing.T) {
	tests := []struct {
		name   string
		result *model.RedisTestResult
		toast  string
		kind   string
	}{
		{"success with message", &model.RedisTestResult{Success: true, Message: "PONG"}, "PONG", "success"},
		{"success", &model.RedisTestResult{Success: true}, "Connection succeeded.", "success"},
		{"failure with message", &model.RedisTestResult{Message: "NOAUTH"}, "NOAUTH", "error"},
		{"failure", &model.RedisTestResult{}, "Connection failed.", "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, api := newRedisHandlers(t)
			api.EXPECT().TestRedisConnection(gomock.Any(), model.RedisTestRequest{Host: "10.0.0.5", Port: 6380, DB: 2}).
				Return(tt.result, nil)

			w := httptest.NewRecorder()
			h.RedisConfigTest(w, panelRequest(http.MethodPost, "/redis-configs/test", "", url.Values{
				"name": {"ignored"}, "host": {"10.0.0.5"}, "port": {"6380"}, "db": {"2"}, "password": {""},
			}))

			assert.Equal(t, http.StatusNoContent, w.Code)
			toast := toastOf(t, w)
			assert.Equal(t, tt.toast, toast.Message)
			assert.Equal(t, tt.kind, string(toast.Type))
		})
	}
}

func TestRedisConfigTest_InvalidPortSkipsBackend(t *testing.T) {
	h, _ := newRedisHandlers(t)

	w := httptest.NewRecorder()
	h.RedisConfigTest(w, panelRequest(http.MethodPost, "/redis-configs/test", "", url.Values{
		"host": {"10.0.0.5"}, "port": {"99999"},
	}))

	assert.Equal(t, "Port must be between 1 and 65535.", toastOf(t, w).Message)
}

func TestRedisReload(t *testing.T) {
	h, api := newRedisHandlers(t)
	api.EXPECT().ReloadRedis(gomock.Any()).Return(&model.ActionMessage{Message: "Workers reloaded."}, nil)

	w := httptest.NewRecorder()
	h.RedisReload(w, panelRequest(http.MethodPost, "/redis-configs/reload", "", nil))

	assert.Equal(t, "Workers reloaded.", toastOf(t, w).Message)
}

func TestRedisConfigEdit_NeverRendersPassword(t *testing.T) {
	h, api := newRedisHandlers(t)
	configs := redisConfigs(2)
	configs[1].Password = testutil.StringPtr("s3cr3t-pw")
	api.EXPECT().ListRedisConfigs(gomock.Any()).Return(configs, nil)

	r := panelRequest(http.MethodGet, "/redis-configs/2/edit", "modal-root", nil)
	r.SetPathValue("id", "2")
	w := httptest.NewRecorder()
	h.RedisConfigEdit(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "s3cr3t-pw")
	doc := parseHTML(t, w)
	pw := doc.Find("input#password")
	require.Equal(t, 1, pw.Length())
	_, hasValue := pw.Attr("value")
	assert.False(t, hasValue)
	assert.Equal(t, "Leave blank to keep the current password.", strings.TrimSpace(doc.Find(".field-hint").Text()))
	assert.Equal(t, "redis-2", doc.Find("input#name").AttrOr("value", ""))
}

func TestRedisConfigUpdate_BlankPasswordKeepsStored(t *testing.T) {
	h, api := newRedisHandlers(t)
	api.EXPECT().UpdateRedisConfig(gomock.Any(), int64(2), model.RedisConfigRequest{
		Name: "main", Host: "10.0.0.5", Port: 6380, DB: 2,
	}).Return(&model.RedisConfig{ID: 2}, nil)

	r := panelRequest(http.MethodPost, "/redis-configs/2", "modal-root", url.Values{
		"name": {"main"}, "host": {"10.0.0.5"}, "port": {"6380"}, "db": {"2"}, "password": {""},
	})
	r.SetPathValue("id", "2")
	w := httptest.NewRecorder()
	h.RedisConfigUpdate(w, r)

	assert.Equal(t, "Redis config saved.", toastOf(t, w).Message)
}
