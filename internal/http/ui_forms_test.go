package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/target/crawl-admin/internal/domain/model"
)

func formPost(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestParseCrawlerParamForm_FieldErrors(t *testing.T) {
	req, errs := parseCrawlerParamForm(formPost(url.Values{
		"url":           {"ftp://example.com"},
		"start_time":    {"24"},
		"end_time":      {"late"},
		"interval_time": {"0"},
	}))

	assert.Equal(t, map[string]string{
		"url":           "Enter a valid http(s) URL.",
		"api_request":   "API request is required.",
		"start_time":    "Start hour must be between 0 and 23.",
		"end_time":      "Must be a number.",
		"interval_time": "Interval (hours) must be at least 1.",
	}, errs)
	assert.Equal(t, model.DefaultErrorCount, req.ErrorCount)
	assert.Equal(t, model.DefaultRestartBrowserTime, req.RestartBrowserTime)
}

func TestParseCrawlerParamForm_Valid(t *testing.T) {
	req, errs := parseCrawlerParamForm(formPost(url.Values{
		"url":         {"https://example.com/search"},
		"api_request": {"https://example.com/api/questions"},
		"task_type":   {"crawler"},
		"start_time":  {"2"},
		"end_time":    {"23"},
	}))

	assert.Nil(t, errs)
	assert.Equal(t, 2, req.StartTime)
	assert.Equal(t, model.DefaultIntervalTime, req.IntervalTime)
}

func TestParseQuotaForm_FieldErrors(t *testing.T) {
	_, errs := parseQuotaForm(formPost(url.Values{
		"start_year":  {"2022"},
		"end_year":    {"2020"},
		"stock_ratio": {"1.5"},
		"sample_num":  {"0"},
	}))

	assert.Equal(t, map[string]string{
		"end_year":    "End year cannot be before start year.",
		"stock_ratio": "Stock ratio must be greater than 0 and at most 1.",
		"sample_num":  "Sample number must be at least 1.",
	}, errs)
}

func TestParseProxyForm_DefaultsStrategy(t *testing.T) {
	req, errs := parseProxyForm(formPost(url.Values{
		"proxy_type": {"socks5"},
		"proxy_addr": {"nohost"},
	}))

	assert.Equal(t, map[string]string{
		"proxy_addr": "Address must be host:port with a port between 1 and 65535.",
	}, errs)
	assert.Equal(t, model.ProxyType("SOCKS5"), req.ProxyType)
	assert.Equal(t, model.ProxyStrategyRoundRobin, req.Strategy)
}

func TestParseTaskForm_RequiresAccount(t *testing.T) {
	_, errs := parseTaskForm(formPost(url.Values{
		"task_name": {"nightly"},
		"task_type": {"export"},
	}))

	assert.Equal(t, map[string]string{"account_id": "Select an account."}, errs)
}
