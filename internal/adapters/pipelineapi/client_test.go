package pipelineapi

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/requestid"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(Options{BaseURL: srv.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Options{})
	require.Error(t, err)

	_, err = NewClient(Options{BaseURL: "ftp://backend"})
	require.Error(t, err)

	_, err = NewClient(Options{BaseURL: "http://"})
	require.Error(t, err)

	c, err := NewClient(Options{BaseURL: "http://127.0.0.1:8000/"})
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000", c.BaseURL())
	assert.NotNil(t, c.http.Jar)
}

func TestListTasks_SendsPagingAndHeaders(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tasks/", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("skip"))
		assert.Equal(t, "21", r.URL.Query().Get("limit"))
		assert.Equal(t, "req-42", r.Header.Get(requestid.Header))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": 1, "task_name": "t1", "status": 1, "progress": 40, "start_time": "2024-03-01T10:00:00"},
		})
	}))

	ctx := requestid.WithID(context.Background(), "req-42")
	tasks, err := c.ListTasks(ctx, model.ListOptions{Skip: 20, Limit: 21})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, model.TaskStatusRunning, tasks[0].Status)
	assert.Equal(t, 2024, tasks[0].StartTime.Year())
}

func TestCreateAndUpdate_UseExpectedMethods(t *testing.T) {
	var seen []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		var body model.ProxyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, model.ProxyTypeSOCKS5, body.ProxyType)
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 9, "proxy_type": "SOCKS5", "proxy_addr": body.ProxyAddr})
	}))

	req := model.ProxyRequest{ProxyType: model.ProxyTypeSOCKS5, ProxyAddr: "10.0.0.1:1080", Status: model.ToggleOn}
	_, err := c.CreateProxy(context.Background(), req)
	require.NoError(t, err)
	p, err := c.UpdateProxy(context.Background(), 9, req)
	require.NoError(t, err)
	assert.Equal(t, int64(9), p.ID)

	assert.Equal(t, []string{"POST /api/proxies/", "PUT /api/proxies/9"}, seen)
}

func TestErrorDetail_String(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"detail": "Account not found"})
	}))

	_, err := c.GetAccount(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Account not found", apperrors.UserMessage(err, "fallback"))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "/api/accounts/7", apiErr.Path)
}

func TestErrorDetail_ValidationArray(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]any{
				{"loc": []string{"body", "start_year"}, "msg": "field required"},
				{"loc": []string{"body", "sample_num"}, "msg": "value is not a valid integer"},
			},
		})
	}))

	_, err := c.CreateQuota(context.Background(), model.QuotaRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "field required; value is not a valid integer", apperrors.UserMessage(err, ""))
}

func TestErrorDetail_NonJSONFallsBack(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}))

	err := c.DeleteTask(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInternal, apperrors.GetCode(err))
	assert.Equal(t, "Delete failed", apperrors.UserMessage(err, "Delete failed"))
}

func TestTransportError_IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(Options{BaseURL: url, Timeout: time.Second})
	require.NoError(t, err)
	_, err = c.ListAccounts(context.Background(), model.ListOptions{})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestCanceledContext(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, []any{})
	}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListProxies(ctx, model.ListOptions{})
	require.Error(t, err)
	assert.True(t, apperrors.IsCanceled(err))
}

func TestDecodesCompressedResponses(t *testing.T) {
	payload := []byte(`{"2019": 5, "2024": 12}`)

	for name, encode := range map[string]func([]byte) []byte{
		"br": func(b []byte) []byte {
			var buf bytes.Buffer
			w := brotli.NewWriter(&buf)
			_, _ = w.Write(b)
			_ = w.Close()
			return buf.Bytes()
		},
		"gzip": func(b []byte) []byte {
			var buf bytes.Buffer
			w := gzip.NewWriter(&buf)
			_, _ = w.Write(b)
			_ = w.Close()
			return buf.Bytes()
		},
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "br, gzip", r.Header.Get("Accept-Encoding"))
				w.Header().Set("Content-Encoding", name)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write(encode(payload))
			}))

			counts, err := c.RecordStatsByYear(context.Background(), model.RecordKindRaw)
			require.NoError(t, err)
			assert.Equal(t, 17, counts.Total())
			assert.Equal(t, 12, counts.For(2024))
		})
	}
}

func TestRecords_FiltersAndPaths(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sample-data/", r.URL.Path)
		assert.Equal(t, "2021", r.URL.Query().Get("year"))
		assert.Equal(t, "3", r.URL.Query().Get("task_id"))
		assert.Empty(t, r.URL.Query().Get("skip"))
		writeJSON(t, w, http.StatusOK, nil)
	}))

	year, task := 2021, int64(3)
	recs, err := c.ListRecords(context.Background(), model.RecordKindSample, model.RecordListOptions{
		ListOptions:  model.ListOptions{Limit: 21},
		RecordFilter: model.RecordFilter{Year: &year, TaskID: &task},
	})
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)

	_, err = c.ListRecords(context.Background(), model.RecordKind("bogus"), model.RecordListOptions{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestClearRecords_ReturnsMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/raw-data/clear-all", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "Deleted 12 records"})
	}))

	msg, err := c.ClearRecords(context.Background(), model.RecordKindRaw)
	require.NoError(t, err)
	assert.Equal(t, "Deleted 12 records", msg.Message)
}

func TestImportRawRecords(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/raw-data/import-json", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `[{"answer_url":"https://a","year":2020}]`, string(body))
		writeJSON(t, w, http.StatusOK, map[string]any{"message": "Imported 1", "imported": 1})
	}))

	res, err := c.ImportRawRecords(context.Background(), json.RawMessage(`[{"answer_url":"https://a","year":2020}]`))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)

	_, err = c.ImportRawRecords(context.Background(), json.RawMessage(`[`))
	assert.True(t, apperrors.IsValidation(err))
}

func TestRunTaskAction_Path(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tasks/5/pause", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 5, "status": 2})
	}))

	task, err := c.RunTaskAction(context.Background(), 5, model.TaskActionPause)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusPaused, task.Status)
}

func TestDeleteNoContent(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quotas/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	require.NoError(t, c.DeleteQuota(context.Background(), 3))
}

func TestExports(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/exports/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"filename": "raw_data_20240101_000000.xlsx", "size": 10, "created_time": "2024-01-01T00:00:00"},
			{"filename": "sample_data_20240301_000000.xlsx", "size": 20, "created_time": "2024-03-01T00:00:00"},
		})
	})
	mux.HandleFunc("GET /api/exports/download/{name}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "raw data 1.xlsx", r.PathValue("name"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		_, _ = w.Write([]byte("xlsx-bytes"))
	})
	mux.HandleFunc("DELETE /api/exports/delete/{name}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "deleted"})
	})
	mux.HandleFunc("POST /api/exports/export-sample-data", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusAccepted, map[string]string{"message": "Export started"})
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	files, err := c.ListExports(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "sample_data_20240301_000000.xlsx", files[0].Filename, "newest first")

	dl, err := c.OpenExport(ctx, "raw data 1.xlsx")
	require.NoError(t, err)
	body, err := io.ReadAll(dl.Body)
	require.NoError(t, err)
	require.NoError(t, dl.Body.Close())
	assert.Equal(t, "xlsx-bytes", string(body))
	assert.Contains(t, dl.ContentType, "spreadsheetml")

	_, err = c.OpenExport(ctx, "../etc/passwd")
	assert.True(t, apperrors.IsValidation(err))

	require.NoError(t, c.DeleteExport(ctx, "raw data 1.xlsx"))

	msg, err := c.TriggerExport(ctx, model.RecordKindSample)
	require.NoError(t, err)
	assert.Equal(t, "Export started", msg.Message)
}

func TestRedisConfigEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/redis-configs/test", func(w http.ResponseWriter, r *http.Request) {
		var body model.RedisTestRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "10.1.1.1", body.Host)
		assert.Nil(t, body.Password)
		writeJSON(t, w, http.StatusOK, map[string]any{"success": false, "message": "connection refused"})
	})
	mux.HandleFunc("GET /api/redis-configs/default", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, nil)
	})
	mux.HandleFunc("POST /api/system/reload-redis", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "reloaded"})
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	res, err := c.TestRedisConnection(ctx, model.RedisTestRequest{Host: "10.1.1.1", Port: 6379})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "connection refused", res.Message)

	def, err := c.DefaultRedisConfig(ctx)
	require.NoError(t, err)
	assert.Nil(t, def)

	msg, err := c.ReloadRedis(ctx)
	require.NoError(t, err)
	assert.Equal(t, "reloaded", msg.Message)
}

func TestParseDetail(t *testing.T) {
	assert.Equal(t, "boom", parseDetail([]byte(`{"detail":" boom "}`)))
	assert.Equal(t, "a; b", parseDetail([]byte(`{"detail":[{"msg":"a"},{"msg":""},{"msg":"b"}]}`)))
	assert.Equal(t, "from message", parseDetail([]byte(`{"message":"from message"}`)))
	assert.Empty(t, parseDetail([]byte(`not json`)))
	assert.Empty(t, parseDetail(nil))
}

// trickle writes n chunks of size bytes, pausing between them.
func trickle(w http.ResponseWriter, r *http.Request, n, size int, pause time.Duration) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.WriteHeader(http.StatusOK)
	flusher, _ := w.(http.Flusher)
	chunk := bytes.Repeat([]byte("x"), size)
	for i := 0; i < n; i++ {
		if _, err := w.Write(chunk); err != nil {
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
		select {
		case <-r.Context().Done():
			return
		case <-time.After(pause):
		}
	}
}

func newSlowExportClient(t *testing.T, timeout time.Duration, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(Options{BaseURL: srv.URL, Timeout: timeout})
	require.NoError(t, err)
	return c
}

func TestOpenExport_BodyOutlivesClientTimeout(t *testing.T) {
	c := newSlowExportClient(t, 250*time.Millisecond, func(w http.ResponseWriter, r *http.Request) {
		trickle(w, r, 6, 1024, 100*time.Millisecond)
	})

	dl, err := c.OpenExport(context.Background(), "raw.xlsx")
	require.NoError(t, err)
	defer dl.Body.Close()

	n, err := io.Copy(io.Discard, dl.Body)
	require.NoError(t, err)
	assert.Equal(t, int64(6*1024), n)
}

func TestOpenExport_ContextStopsBody(t *testing.T) {
	c := newSlowExportClient(t, time.Second, func(w http.ResponseWriter, r *http.Request) {
		trickle(w, r, 50, 1024, 50*time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	dl, err := c.OpenExport(ctx, "raw.xlsx")
	require.NoError(t, err)
	defer dl.Body.Close()

	_, err = io.Copy(io.Discard, dl.Body)
	require.Error(t, err)
}

func TestOpenExport_HeadersStillBounded(t *testing.T) {
	c := newSlowExportClient(t, 150*time.Millisecond, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	_, err := c.OpenExport(context.Background(), "raw.xlsx")
	require.Error(t, err)
}

func TestListExports_KeepsWholeCallTimeout(t *testing.T) {
	c := newSlowExportClient(t, 150*time.Millisecond, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{"files":[`)
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	_, err := c.ListExports(context.Background())
	require.Error(t, err)
}

func TestUpdateRedisConfig_OmitsUnsetPassword(t *testing.T) {
	var bodies []map[string]json.RawMessage
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/redis-configs/7", r.URL.Path)
		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies = append(bodies, body)
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 7, "name": "main"})
	}))
	ctx := context.Background()

	_, err := c.UpdateRedisConfig(ctx, 7, model.RedisConfigRequest{Name: "main", Host: "10.0.0.5", Port: 6379})
	require.NoError(t, err)
	pw := "rotated"
	_, err = c.UpdateRedisConfig(ctx, 7, model.RedisConfigRequest{Name: "main", Host: "10.0.0.5", Port: 6379, Password: &pw})
	require.NoError(t, err)

	require.Len(t, bodies, 2)
	assert.NotContains(t, bodies[0], "password")
	assert.JSONEq(t, `"rotated"`, string(bodies[1]["password"]))
}
