package assets

import (
	"html/template"

	httpassets "github.com/target/crawl-admin/internal/http/assets"
)

// Options configures asset-related template helpers.
type Options struct {
	Resolver    *httpassets.AssetResolver
	CriticalCSS func() string
}

// Funcs returns template helpers for asset resolution and critical CSS embedding.
func Funcs(opts Options) template.FuncMap {
	return template.FuncMap{
		"asset": opts.Resolver.Resolve,
		"criticalCSS": func() template.CSS {
			if opts.CriticalCSS == nil {
				return ""
			}
			// #nosec G203 - critical CSS is read from our own embedded stylesheet
			return template.CSS(opts.CriticalCSS())
		},
	}
}
