package model

import (
	"errors"
	"net/url"
	"strings"
)

const (
	DefaultErrorCount         = 3
	DefaultRestartBrowserTime = 24
	DefaultIntervalTime       = 1
)

// CrawlerParam holds the crawl schedule and target for crawler tasks.
// StartTime and EndTime are hours of the day (0-23).
type CrawlerParam struct {
	ID                 int64     `json:"id"`
	URL                string    `json:"url"`
	APIRequest         string    `json:"api_request"`
	TaskType           string    `json:"task_type"`
	StartTime          int       `json:"start_time"`
	EndTime            int       `json:"end_time"`
	IntervalTime       int       `json:"interval_time"`
	ErrorCount         int       `json:"error_count"`
	RestartBrowserTime int       `json:"restart_browser_time"`
	CreatedAt          Timestamp `json:"created_at"`
	UpdatedAt          Timestamp `json:"updated_at"`
}

// CrawlerParamRequest is the create/update payload for crawler params.
type CrawlerParamRequest struct {
	URL                string `json:"url"`
	APIRequest         string `json:"api_request"`
	TaskType           string `json:"task_type"`
	StartTime          int    `json:"start_time"`
	EndTime            int    `json:"end_time"`
	IntervalTime       int    `json:"interval_time"`
	ErrorCount         int    `json:"error_count"`
	RestartBrowserTime int    `json:"restart_browser_time"`
}

// Normalize trims strings and fills backend defaults for unset counters.
func (r *CrawlerParamRequest) Normalize() {
	r.URL = strings.TrimSpace(r.URL)
	r.APIRequest = strings.TrimSpace(r.APIRequest)
	r.TaskType = strings.TrimSpace(r.TaskType)
	if r.IntervalTime == 0 {
		r.IntervalTime = DefaultIntervalTime
	}
	if r.ErrorCount == 0 {
		r.ErrorCount = DefaultErrorCount
	}
	if r.RestartBrowserTime == 0 {
		r.RestartBrowserTime = DefaultRestartBrowserTime
	}
}

// Validate checks the request before it is sent to the backend.
func (r *CrawlerParamRequest) Validate() error {
	if r.URL == "" {
		return errors.New("url is required")
	}
	if u, err := url.Parse(r.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("url must be a valid http(s) URL")
	}
	if r.APIRequest == "" {
		return errors.New("api request is required")
	}
	if r.StartTime < 0 || r.StartTime > 23 {
		return errors.New("start time must be between 0 and 23")
	}
	if r.EndTime < 0 || r.EndTime > 23 {
		return errors.New("end time must be between 0 and 23")
	}
	if r.IntervalTime < 1 {
		return errors.New("interval must be at least 1 hour")
	}
	if r.ErrorCount < 1 {
		return errors.New("error count must be at least 1")
	}
	if r.RestartBrowserTime < 1 {
		return errors.New("browser restart interval must be at least 1 hour")
	}
	return nil
}
