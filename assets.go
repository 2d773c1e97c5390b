// Package crawladmin provides embedded assets for production builds.
package crawladmin

import "embed"

// In dev mode (IsDev=true) the frontend is read from disk for hot reloading;
// otherwise it is served from these embedded filesystems.

//go:embed all:frontend/static
var StaticFS embed.FS

//go:embed all:frontend/templates
var TemplateFS embed.FS
