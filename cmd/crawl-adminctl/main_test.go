package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/target/crawl-admin/config"
)

// fakeBackend answers the subset of the pipeline API the commands use.
type fakeBackend struct {
	srv       *httptest.Server
	exports   atomic.Int32
	cleared   atomic.Int32
	quotaInit atomic.Int32
	deleted   atomic.Int32
	lastQuery atomic.Value
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{}
	fb.exports.Store(1)

	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, body string) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
	mux.HandleFunc("GET /api/tasks/{$}", func(w http.ResponseWriter, r *http.Request) {
		fb.lastQuery.Store(r.URL.RawQuery)
		writeJSON(w, `[{"id":3,"task_name":"crawl-2024","task_type":"crawler","status":1,"progress":40,"start_time":"2024-05-01T10:00:00"}]`)
	})
	mux.HandleFunc("POST /api/tasks/3/pause", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, `{"id":3,"task_name":"crawl-2024","task_type":"crawler","status":2}`)
	})
	mux.HandleFunc("POST /api/tasks/4/start", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail":"Task is already running"}`)
	})
	mux.HandleFunc("GET /api/raw-data/stats/by-year", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, `{"2023":5,"2024":7}`)
	})
	mux.HandleFunc("DELETE /api/raw-data/clear-all", func(w http.ResponseWriter, _ *http.Request) {
		fb.cleared.Add(1)
		writeJSON(w, `{"message":"Deleted 12 records"}`)
	})
	mux.HandleFunc("GET /api/redis-configs/{$}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, `[{"id":1,"name":"main","host":"redis","port":6379,"db":0,"password":"s3cret","is_default":true}]`)
	})
	mux.HandleFunc("GET /api/exports/{$}", func(w http.ResponseWriter, _ *http.Request) {
		files := make([]map[string]any, 0, fb.exports.Load())
		for i := range int(fb.exports.Load()) {
			files = append(files, map[string]any{
				"filename":     "raw_data_2024010" + string(rune('1'+i)) + "_120000.xlsx",
				"size":         1536,
				"created_time": "2024-01-0" + string(rune('1'+i)) + "T12:00:00",
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(files)
	})
	mux.HandleFunc("POST /api/exports/export-raw-data", func(w http.ResponseWriter, _ *http.Request) {
		fb.exports.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = io.WriteString(w, `{"message":"Export started"}`)
	})
	mux.HandleFunc("GET /api/exports/download/{name}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		_, _ = io.WriteString(w, "hello")
	})

	mux.HandleFunc("POST /api/quotas/init", func(w http.ResponseWriter, _ *http.Request) {
		fb.quotaInit.Add(1)
		writeJSON(w, `[{"id":1,"start_year":2015,"end_year":2025,"stock_ratio":1,"sample_num":100}]`)
	})
	mux.HandleFunc("DELETE /api/exports/delete/{name}", func(w http.ResponseWriter, _ *http.Request) {
		fb.deleted.Add(1)
		writeJSON(w, `{"message":"File deleted"}`)
	})

	fb.srv = httptest.NewServer(mux)
	t.Cleanup(fb.srv.Close)
	return fb
}

func runCLI(t *testing.T, backend string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := newApp(&out, slog.New(slog.NewTextHandler(io.Discard, nil)))
	a.loadConfig = func() (config.AppConfig, error) {
		return config.AppConfig{
			JobWatch: config.JobWatchConfig{
				InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond, Factor: 1, MaxAttempts: 3,
			},
		}, nil
	}
	root := newRootCmd(a)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--backend", backend}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTasksList_Table(t *testing.T) {
	fb := newFakeBackend(t)
	out, err := runCLI(t, fb.srv.URL, "tasks", "list", "--page", "2", "--page-size", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"ID", "NAME", "TYPE", "STATUS", "PROGRESS", "START", "END"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"3", "crawl-2024", "crawler", "Running", "40%", "2024-05-01", "10:00:00", "-"}, strings.Fields(lines[1]))
	assert.Equal(t, "limit=5&skip=5", fb.lastQuery.Load())
}

func TestTasksList_JSONAndYAML(t *testing.T) {
	fb := newFakeBackend(t)

	out, err := runCLI(t, fb.srv.URL, "-o", "json", "tasks", "list")
	require.NoError(t, err)
	var tasks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "crawl-2024", tasks[0]["task_name"])

	out, err = runCLI(t, fb.srv.URL, "-o", "yaml", "tasks", "list")
	require.NoError(t, err)
	var doc []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc, 1)
	assert.Equal(t, "crawl-2024", doc[0]["task_name"])
}

func TestUnknownOutputFormat(t *testing.T) {
	fb := newFakeBackend(t)
	_, err := runCLI(t, fb.srv.URL, "-o", "xml", "tasks", "list")
	require.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestTaskAction(t *testing.T) {
	fb := newFakeBackend(t)

	out, err := runCLI(t, fb.srv.URL, "tasks", "pause", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Paused")

	_, err = runCLI(t, fb.srv.URL, "tasks", "start", "4")
	require.ErrorContains(t, err, "Task is already running")

	_, err = runCLI(t, fb.srv.URL, "tasks", "stop", "abc")
	require.ErrorContains(t, err, `invalid id "abc"`)
}

func TestRawDataStats(t *testing.T) {
	fb := newFakeBackend(t)
	out, err := runCLI(t, fb.srv.URL, "raw-data", "stats")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"2023", "5"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2024", "7"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"TOTAL", "12"}, strings.Fields(lines[3]))
}

func TestRawDataClear_RequiresConfirmation(t *testing.T) {
	fb := newFakeBackend(t)

	_, err := runCLI(t, fb.srv.URL, "raw-data", "clear")
	require.ErrorIs(t, err, errConfirm)
	assert.Zero(t, fb.cleared.Load())

	out, err := runCLI(t, fb.srv.URL, "raw-data", "clear", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "Deleted 12 records", strings.TrimSpace(out))
	assert.EqualValues(t, 1, fb.cleared.Load())
}

func TestQuotasInit_RequiresConfirmation(t *testing.T) {
	fb := newFakeBackend(t)

	_, err := runCLI(t, fb.srv.URL, "quotas", "init")
	require.ErrorIs(t, err, errConfirm)
	assert.Zero(t, fb.quotaInit.Load())

	out, err := runCLI(t, fb.srv.URL, "quotas", "init", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "2015")
	assert.EqualValues(t, 1, fb.quotaInit.Load())
}

func TestExportsDelete_RequiresConfirmation(t *testing.T) {
	fb := newFakeBackend(t)

	_, err := runCLI(t, fb.srv.URL, "exports", "delete", "raw_data_20240101_120000.xlsx")
	require.ErrorIs(t, err, errConfirm)
	assert.Zero(t, fb.deleted.Load())

	out, err := runCLI(t, fb.srv.URL, "exports", "delete", "raw_data_20240101_120000.xlsx", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "Export deleted.", strings.TrimSpace(out))
	assert.EqualValues(t, 1, fb.deleted.Load())
}

func TestRedisConfigsList_MasksPassword(t *testing.T) {
	fb := newFakeBackend(t)

	out, err := runCLI(t, fb.srv.URL, "redis-configs", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "redis:6379")
	assert.Contains(t, out, "******")
	assert.NotContains(t, out, "s3cret")

	out, err = runCLI(t, fb.srv.URL, "-o", "json", "redis-configs", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "s3cret")
}

func TestExportsRun_Wait(t *testing.T) {
	fb := newFakeBackend(t)
	out, err := runCLI(t, fb.srv.URL, "exports", "run", "raw", "--wait")
	require.NoError(t, err)
	assert.Equal(t, "Raw data export finished.", strings.TrimSpace(out))
	assert.EqualValues(t, 2, fb.exports.Load())
}

func TestExportsRun_UnknownKind(t *testing.T) {
	fb := newFakeBackend(t)
	_, err := runCLI(t, fb.srv.URL, "exports", "run", "everything")
	require.ErrorContains(t, err, "unknown export kind")
}

func TestExportsList(t *testing.T) {
	fb := newFakeBackend(t)
	fb.exports.Store(2)
	out, err := runCLI(t, fb.srv.URL, "exports", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "raw_data_20240102_120000.xlsx"), "newest first: %q", lines[1])
	assert.Contains(t, lines[1], "1.5 KB")
}

func TestExportsDownload(t *testing.T) {
	fb := newFakeBackend(t)
	target := filepath.Join(t.TempDir(), "out.xlsx")

	out, err := runCLI(t, fb.srv.URL, "exports", "download", "raw_data_20240101_120000.xlsx", "-f", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved "+target)

	body, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))

	_, err = runCLI(t, fb.srv.URL, "exports", "download", "../etc/passwd")
	require.Error(t, err)
}

func TestMissingBackend(t *testing.T) {
	_, err := runCLI(t, "", "tasks", "list")
	require.ErrorContains(t, err, "BACKEND_BASE_URL")
}
