package httpx

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/andybalholm/brotli"

	"github.com/target/crawl-admin/internal/requestid"
)

// RequestID tags every request with an id: the client's X-Request-Id when
// usable, else a fresh one. The id is echoed in the response and carried on
// the context to backend calls.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := requestid.Sanitize(r.Header.Get(requestid.Header))
			if id == "" {
				id = requestid.New()
			}
			w.Header().Set(requestid.Header, id)
			next.ServeHTTP(w, r.WithContext(requestid.WithID(r.Context(), id)))
		})
	}
}

// Logging logs one line per request.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.InfoContext(r.Context(), "http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", requestid.FromContext(r.Context())),
				slog.Bool("htmx", IsHTMX(r)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *respWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *respWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *respWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// Recover turns a handler panic into a logged 500.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity as net/http does
						panic(err)
					}
					logger.ErrorContext(r.Context(), "panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("request_id", requestid.FromContext(r.Context())),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Content encodings the Compression middleware can produce.
const (
	encodingBrotli = "br"
	encodingGzip   = "gzip"
)

// CompressionConfig holds configuration for the compression middleware.
type CompressionConfig struct {
	Level       int // gzip level (1-9, 0 = default)
	BrotliLevel int // brotli quality (0-11, 0 = brotli default)
	MinSize     int // Minimum response size to compress (bytes, 0 = always compress)
	Logger      *slog.Logger
}

// encoder is the shared surface of gzip.Writer and brotli.Writer.
type encoder interface {
	io.Writer
	Flush() error
	Close() error
	Reset(w io.Writer)
}

type encoderPools struct {
	gzip   sync.Pool
	brotli sync.Pool
}

func newEncoderPools(cfg CompressionConfig) *encoderPools {
	gzipLevel := cfg.Level
	if gzipLevel == 0 {
		gzipLevel = gzip.DefaultCompression
	}
	brLevel := cfg.BrotliLevel
	if brLevel <= 0 {
		brLevel = brotli.DefaultCompression
	}
	p := &encoderPools{}
	p.gzip.New = func() any {
		w, err := gzip.NewWriterLevel(io.Discard, gzipLevel)
		if err != nil {
			return gzip.NewWriter(io.Discard)
		}
		return w
	}
	p.brotli.New = func() any {
		return brotli.NewWriterLevel(io.Discard, brLevel)
	}
	return p
}

func (p *encoderPools) get(encoding string, dst io.Writer) encoder {
	var enc encoder
	if encoding == encodingBrotli {
		enc, _ = p.brotli.Get().(encoder)
	} else {
		enc, _ = p.gzip.Get().(encoder)
	}
	enc.Reset(dst)
	return enc
}

func (p *encoderPools) put(encoding string, enc encoder) {
	enc.Reset(io.Discard)
	if encoding == encodingBrotli {
		p.brotli.Put(enc)
		return
	}
	p.gzip.Put(enc)
}

//nolint:gochecknoglobals // read-only lookup
var compressibleTypes = map[string]bool{
	"text/html":              true,
	"text/css":               true,
	"text/plain":             true,
	"text/xml":               true,
	"text/javascript":        true,
	"application/javascript": true,
	"application/json":       true,
	"application/xml":        true,
	"image/svg+xml":          true,
}

// Compression returns a middleware that compresses responses with brotli
// when the client accepts it, else gzip. It compresses only when:
// - the Content-Type is compressible;
// - the status is not 1xx, 204 or 304 and the method is not HEAD;
// - the handler set no Content-Encoding of its own;
// - the body reaches MinSize (smaller bodies are sent as-is).
func Compression(cfg CompressionConfig) func(http.Handler) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	pools := newEncoderPools(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept-Encoding")
			encoding := negotiateEncoding(r.Header.Get("Accept-Encoding"))
			if encoding == "" || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			cw := &compressWriter{
				ResponseWriter: w,
				encoding:       encoding,
				pools:          pools,
				minSize:        cfg.MinSize,
			}
			next.ServeHTTP(cw, r)
			if err := cw.finish(); err != nil {
				cfg.Logger.ErrorContext(r.Context(), "closing compressor failed", "encoding", encoding, "error", err)
			}
		})
	}
}

// negotiateEncoding picks br over gzip among the encodings the client
// accepts with a non-zero q-value. "*" accepts both.
func negotiateEncoding(acceptEncoding string) string {
	if strings.TrimSpace(acceptEncoding) == "" {
		return ""
	}
	accepted := map[string]bool{}
	wildcard := false
	for _, part := range strings.Split(acceptEncoding, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		name = strings.ToLower(strings.TrimSpace(name))
		q := 1.0
		for _, p := range strings.Split(params, ";") {
			k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
			if ok && strings.EqualFold(k, "q") {
				if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
					q = f
				}
			}
		}
		if name == "*" {
			wildcard = q > 0
			continue
		}
		accepted[name] = q > 0
	}
	for _, enc := range []string{encodingBrotli, encodingGzip} {
		if ok, listed := accepted[enc]; ok || (!listed && wildcard) {
			return enc
		}
	}
	return ""
}

func isCompressibleContentType(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return compressibleTypes[strings.TrimSpace(strings.ToLower(mediaType))]
}

// compressWriter buffers up to minSize bytes before choosing between a
// compressed and a pass-through response.
type compressWriter struct {
	http.ResponseWriter
	encoding string
	pools    *encoderPools
	minSize  int

	status      int
	headerSeen  bool // handler called WriteHeader/Write
	passthrough bool // decided against compression
	enc         encoder
	buf         []byte
}

func (w *compressWriter) WriteHeader(statusCode int) {
	if w.headerSeen {
		return
	}
	w.headerSeen = true
	w.status = statusCode

	if statusCode < http.StatusOK || statusCode == http.StatusNoContent || statusCode == http.StatusNotModified ||
		w.Header().Get("Content-Encoding") != "" ||
		(w.Header().Get("Content-Type") != "" && !isCompressibleContentType(w.Header().Get("Content-Type"))) {
		w.passthrough = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func (w *compressWriter) Write(b []byte) (int, error) {
	if !w.headerSeen {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(b))
		}
		w.WriteHeader(http.StatusOK)
	}
	switch {
	case w.passthrough:
		return w.ResponseWriter.Write(b)
	case w.enc != nil:
		return w.enc.Write(b)
	}

	w.buf = append(w.buf, b...)
	if len(w.buf) < w.minSize {
		return len(b), nil
	}
	if err := w.startCompression(); err != nil {
		return 0, err
	}
	return len(b), nil
}

// startCompression commits to the compressed response and flushes the buffer.
func (w *compressWriter) startCompression() error {
	if !isCompressibleContentType(w.Header().Get("Content-Type")) {
		return w.startPassthrough()
	}
	w.Header().Set("Content-Encoding", w.encoding)
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(w.status)
	w.enc = w.pools.get(w.encoding, w.ResponseWriter)
	buffered := w.buf
	w.buf = nil
	_, err := w.enc.Write(buffered)
	return err
}

func (w *compressWriter) startPassthrough() error {
	w.passthrough = true
	w.ResponseWriter.WriteHeader(w.status)
	buffered := w.buf
	w.buf = nil
	_, err := w.ResponseWriter.Write(buffered)
	return err
}

// finish flushes whatever is pending once the handler returns.
func (w *compressWriter) finish() error {
	switch {
	case w.enc != nil:
		err := w.enc.Close()
		w.pools.put(w.encoding, w.enc)
		w.enc = nil
		return err
	case !w.headerSeen || w.passthrough:
		return nil
	default:
		// Body stayed under MinSize.
		return w.startPassthrough()
	}
}

// Flush implements http.Flusher for streaming support.
func (w *compressWriter) Flush() {
	if w.headerSeen && !w.passthrough && w.enc == nil {
		if err := w.startCompression(); err != nil {
			return
		}
	}
	if w.enc != nil {
		_ = w.enc.Flush()
	}
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack implements http.Hijacker.
func (w *compressWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, errors.New("http.Hijacker not supported")
}
