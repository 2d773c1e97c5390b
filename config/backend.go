package config

import (
	"strings"
	"time"
)

const (
	defaultBackendTimeout  = 15 * time.Second
	defaultBackendPageSize = 20
	maxBackendPageSize     = 500
)

// BackendConfig points the console at the crawl pipeline backend.
type BackendConfig struct {
	// BaseURL is the backend root, e.g. "http://localhost:8000".
	BaseURL string `env:"BACKEND_BASE_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds a single backend request.
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`

	// PageSize is the number of rows per paginated panel.
	PageSize int `env:"BACKEND_PAGE_SIZE" envDefault:"20"`
}

// Sanitize applies guardrails to backend configuration values.
func (c *BackendConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = defaultBackendTimeout
	}
	if c.PageSize <= 0 {
		c.PageSize = defaultBackendPageSize
	}
	if c.PageSize > maxBackendPageSize {
		c.PageSize = maxBackendPageSize
	}
}

// JobWatchConfig is the bounded backoff used to watch exports and sampling.
type JobWatchConfig struct {
	InitialDelay time.Duration `env:"JOB_WATCH_INITIAL_DELAY" envDefault:"2s"`
	MaxDelay     time.Duration `env:"JOB_WATCH_MAX_DELAY"     envDefault:"30s"`
	Factor       float64       `env:"JOB_WATCH_FACTOR"        envDefault:"2"`
	MaxAttempts  int           `env:"JOB_WATCH_MAX_ATTEMPTS"  envDefault:"10"`
}

// Sanitize keeps the delay sequence non-decreasing and bounded.
func (c *JobWatchConfig) Sanitize() {
	if c.InitialDelay <= 0 {
		c.InitialDelay = 2 * time.Second
	}
	if c.MaxDelay < c.InitialDelay {
		c.MaxDelay = c.InitialDelay
	}
	if c.Factor < 1 {
		c.Factor = 1
	}
	if c.MaxAttempts < 1 {
		c.MaxAttempts = 1
	}
}
