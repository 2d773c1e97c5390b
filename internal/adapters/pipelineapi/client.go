// Package pipelineapi is the typed REST client for the crawl pipeline backend.
package pipelineapi

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"golang.org/x/net/publicsuffix"

	apperrors "github.com/target/crawl-admin/internal/errors"
	"github.com/target/crawl-admin/internal/observability/metrics"
	"github.com/target/crawl-admin/internal/observability/statsd"
	"github.com/target/crawl-admin/internal/requestid"
)

const (
	// DefaultTimeout bounds every backend call unless overridden.
	DefaultTimeout = 15 * time.Second
	// DefaultUserAgent identifies the console to the backend.
	DefaultUserAgent = "crawl-admin"

	// maxErrorBody caps how much of an error response is read for its detail.
	maxErrorBody = 64 << 10
)

// Options configures the backend client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client // optional; a client with a cookie jar is built when nil
	Metrics    statsd.Sink
	Logger     *slog.Logger
	UserAgent  string
}

// Client talks to the pipeline backend over HTTP JSON. It is safe for
// concurrent use.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	// stream serves downloads: same jar and transport, no whole-request
	// timeout, so a long body is bounded only by the caller's context.
	stream    *http.Client
	metrics   statsd.Sink
	logger    *slog.Logger
	userAgent string
}

// NewClient validates the options and builds a client.
func NewClient(opts Options) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		return nil, errors.New("backend base URL is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse backend base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backend base URL must use http or https, got %q", base.Scheme)
	}
	if base.Host == "" {
		return nil, errors.New("backend base URL must have a host")
	}
	base.Path = strings.TrimRight(base.Path, "/")

	hc := opts.HTTPClient
	if hc == nil {
		var err error
		if hc, err = newHTTPClient(opts.Timeout); err != nil {
			return nil, err
		}
	}
	stream := *hc
	stream.Timeout = 0

	sink := opts.Metrics
	if sink == nil {
		sink = statsd.NoopSink{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ua := strings.TrimSpace(opts.UserAgent)
	if ua == "" {
		ua = DefaultUserAgent
	}

	return &Client{baseURL: base, http: hc, stream: &stream, metrics: sink, logger: logger, userAgent: ua}, nil
}

// newHTTPClient builds the default client. The timeout covers whole calls;
// the transport also bounds the wait for response headers, which is all
// that applies to streamed downloads.
func newHTTPClient(timeout time.Duration) (*http.Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // stdlib default
	transport.ResponseHeaderTimeout = timeout
	return &http.Client{Timeout: timeout, Jar: jar, Transport: transport}, nil
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend %s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("backend %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
}

// request describes one backend call. route is the templated path used for
// metrics; path is the concrete, already-escaped path.
type request struct {
	method string
	route  string
	path   string
	query  url.Values
	body   any
	// stream sends the call without the client-wide timeout; the caller
	// reads the body under its own context.
	stream bool
}

// do sends the request and decodes a JSON response into out (nil discards it).
func (c *Client) do(ctx context.Context, rq request, out any) error {
	resp, err := c.send(ctx, rq)
	if err != nil {
		return err
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return drainAndClose(resp.Body)
	}

	decErr := json.NewDecoder(resp.Body).Decode(out)
	closeErr := drainAndClose(resp.Body)
	if decErr != nil {
		if errors.Is(decErr, io.EOF) {
			return closeErr
		}
		return apperrors.Wrap(
			fmt.Errorf("decode %s %s response: %w", rq.method, rq.path, decErr),
			apperrors.ErrCodeInternal,
			"Backend returned an unreadable response.",
		)
	}
	return closeErr
}

// send performs the request and returns the response for 2xx statuses with a
// body already unwrapped from any content encoding. Errors are AppErrors.
func (c *Client) send(ctx context.Context, rq request) (*http.Response, error) {
	req, err := c.newRequest(ctx, rq)
	if err != nil {
		return nil, err
	}

	hc := c.http
	if rq.stream {
		hc = c.stream
	}
	start := time.Now()
	resp, err := hc.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		appErr := apperrors.FromTransport(fmt.Errorf("%s %s: %w", rq.method, rq.path, err))
		c.observe(ctx, rq, 0, elapsed, appErr)
		return nil, appErr
	}

	body, err := decodedBody(resp)
	if err != nil {
		_ = resp.Body.Close()
		appErr := apperrors.Wrap(err, apperrors.ErrCodeInternal, "Backend returned an unreadable response.")
		c.observe(ctx, rq, resp.StatusCode, elapsed, appErr)
		return nil, appErr
	}
	resp.Body = body

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := readAPIError(resp, rq)
		appErr := apperrors.Wrap(apiErr, apperrors.CodeForStatus(resp.StatusCode), apiErr.Detail)
		c.observe(ctx, rq, resp.StatusCode, elapsed, appErr)
		return nil, appErr
	}

	c.observe(ctx, rq, resp.StatusCode, elapsed, nil)
	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, rq request) (*http.Request, error) {
	u, err := url.Parse(c.baseURL.String() + rq.path)
	if err != nil {
		return nil, apperrors.Wrap(fmt.Errorf("build backend URL: %w", err), apperrors.ErrCodeInternal, "")
	}
	if len(rq.query) > 0 {
		u.RawQuery = rq.query.Encode()
	}

	var body io.Reader
	if rq.body != nil {
		buf, err := json.Marshal(rq.body)
		if err != nil {
			return nil, apperrors.Wrap(
				fmt.Errorf("encode %s %s body: %w", rq.method, rq.path, err),
				apperrors.ErrCodeInternal, "",
			)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, rq.method, u.String(), body)
	if err != nil {
		return nil, apperrors.Wrap(fmt.Errorf("create backend request: %w", err), apperrors.ErrCodeInternal, "")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br, gzip")
	req.Header.Set("User-Agent", c.userAgent)
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}
	return req, nil
}

func (c *Client) observe(ctx context.Context, rq request, status int, elapsed time.Duration, err error) {
	metrics.EmitBackendCall(c.metrics, metrics.BackendCall{
		Method:   rq.method,
		Route:    rq.route,
		Status:   status,
		Duration: elapsed,
		Err:      err,
	})

	attrs := []any{
		"method", rq.method,
		"path", rq.path,
		"status", status,
		"duration_ms", elapsed.Milliseconds(),
	}
	if id := requestid.FromContext(ctx); id != "" {
		attrs = append(attrs, "request_id", id)
	}
	switch {
	case err == nil:
		c.logger.DebugContext(ctx, "backend call", attrs...)
	case apperrors.IsCanceled(err):
		c.logger.DebugContext(ctx, "backend call canceled", attrs...)
	default:
		c.logger.WarnContext(ctx, "backend call failed", append(attrs, "error", err)...)
	}
}

// readAPIError consumes and closes the body of a failed response.
func readAPIError(resp *http.Response, rq request) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = drainAndClose(resp.Body)
	return &APIError{
		Method:     rq.method,
		Path:       rq.path,
		StatusCode: resp.StatusCode,
		Detail:     parseDetail(raw),
	}
}

// parseDetail extracts the operator-facing message from an error body:
// {"detail": "..."}, FastAPI's {"detail": [{"msg": ...}, ...]}, or {"message": "..."}.
func parseDetail(raw []byte) string {
	var body struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if len(body.Detail) > 0 {
		var s string
		if err := json.Unmarshal(body.Detail, &s); err == nil {
			return strings.TrimSpace(s)
		}
		var items []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(body.Detail, &items); err == nil {
			msgs := make([]string, 0, len(items))
			for _, it := range items {
				if m := strings.TrimSpace(it.Msg); m != "" {
					msgs = append(msgs, m)
				}
			}
			return strings.Join(msgs, "; ")
		}
	}
	return strings.TrimSpace(body.Message)
}

// decodedBody unwraps br/gzip content encodings. The transport's transparent
// gzip is off because Accept-Encoding is set explicitly.
func decodedBody(resp *http.Response) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "":
		return resp.Body, nil
	case "br":
		resp.Header.Del("Content-Encoding")
		resp.ContentLength = -1
		return &wrappedBody{Reader: brotli.NewReader(resp.Body), closers: []io.Closer{resp.Body}}, nil
	case "gzip":
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return resp.Body, nil
			}
			return nil, fmt.Errorf("open gzip response: %w", err)
		}
		resp.Header.Del("Content-Encoding")
		resp.ContentLength = -1
		return &wrappedBody{Reader: zr, closers: []io.Closer{zr, resp.Body}}, nil
	default:
		return resp.Body, nil
	}
}

type wrappedBody struct {
	io.Reader
	closers []io.Closer
}

func (b *wrappedBody) Close() error {
	var errs []error
	for _, c := range b.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func drainAndClose(body io.ReadCloser) error {
	if _, err := io.Copy(io.Discard, body); err != nil {
		if closeErr := body.Close(); closeErr != nil {
			return errors.Join(
				fmt.Errorf("drain backend response body: %w", err),
				fmt.Errorf("close response body: %w", closeErr),
			)
		}
		return fmt.Errorf("drain backend response body: %w", err)
	}
	if err := body.Close(); err != nil {
		return fmt.Errorf("close response body: %w", err)
	}
	return nil
}

func itemPath(collection string, id int64) string {
	return collection + strconv.FormatInt(id, 10)
}
