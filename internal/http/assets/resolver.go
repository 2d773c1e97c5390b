// Package assets fingerprints static files so they can be cached forever.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"sync"
)

const fingerprintLen = 8

// AssetResolver maps logical asset names ("js/app.js") to versioned URLs
// ("/static/js/app.js?v=1a2b3c4d") using a content hash of the file.
type AssetResolver struct {
	fsys   fs.FS
	mu     sync.RWMutex
	hashes map[string]string
	// noCache recomputes hashes on every call (dev mode, files edited in place).
	noCache bool
	logger  *slog.Logger
}

// Options configures a resolver.
type Options struct {
	// FS holds the static files rooted at the /static/ prefix (required).
	FS      fs.FS
	NoCache bool
	Logger  *slog.Logger
}

// NewAssetResolver creates a resolver over opts.FS.
func NewAssetResolver(opts Options) *AssetResolver {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AssetResolver{
		fsys:    opts.FS,
		hashes:  make(map[string]string),
		noCache: opts.NoCache,
		logger:  logger,
	}
}

// Resolve returns the URL for a logical asset name. A missing file resolves
// to the unversioned path and is logged once per lookup.
func (ar *AssetResolver) Resolve(logicalName string) string {
	name := strings.TrimPrefix(path.Clean("/"+logicalName), "/")
	base := "/static/" + name
	if ar == nil || ar.fsys == nil {
		return base
	}

	if v := ar.fingerprint(name); v != "" {
		return base + "?v=" + v
	}
	return base
}

func (ar *AssetResolver) fingerprint(name string) string {
	if !ar.noCache {
		ar.mu.RLock()
		v, ok := ar.hashes[name]
		ar.mu.RUnlock()
		if ok {
			return v
		}
	}

	data, err := fs.ReadFile(ar.fsys, name)
	if err != nil {
		ar.logger.Warn("static asset not found", slog.String("asset", name), slog.Any("error", err))
		return ""
	}
	sum := sha256.Sum256(data)
	v := hex.EncodeToString(sum[:])[:fingerprintLen]

	if !ar.noCache {
		ar.mu.Lock()
		ar.hashes[name] = v
		ar.mu.Unlock()
	}
	return v
}

// Exists reports whether the asset is present.
func (ar *AssetResolver) Exists(logicalName string) bool {
	if ar == nil || ar.fsys == nil {
		return false
	}
	_, err := fs.Stat(ar.fsys, strings.TrimPrefix(path.Clean("/"+logicalName), "/"))
	return err == nil
}
