package assets

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestResolve_Fingerprints(t *testing.T) {
	fsys := fstest.MapFS{"js/app.js": {Data: []byte("console.log(1)")}}
	r := NewAssetResolver(Options{FS: fsys})

	got := r.Resolve("js/app.js")
	assert.True(t, strings.HasPrefix(got, "/static/js/app.js?v="), got)
	assert.Len(t, strings.TrimPrefix(got, "/static/js/app.js?v="), fingerprintLen)
	assert.Equal(t, got, r.Resolve("/js/app.js"), "leading slash is ignored")

	fsys["js/app.js"] = &fstest.MapFile{Data: []byte("console.log(2)")}
	assert.Equal(t, got, r.Resolve("js/app.js"), "cached without NoCache")
}

func TestResolve_NoCacheTracksEdits(t *testing.T) {
	fsys := fstest.MapFS{"css/app.css": {Data: []byte("a{}")}}
	r := NewAssetResolver(Options{FS: fsys, NoCache: true})

	first := r.Resolve("css/app.css")
	fsys["css/app.css"] = &fstest.MapFile{Data: []byte("b{}")}
	assert.NotEqual(t, first, r.Resolve("css/app.css"))
}

func TestResolve_MissingAndNil(t *testing.T) {
	r := NewAssetResolver(Options{FS: fstest.MapFS{}})
	assert.Equal(t, "/static/js/none.js", r.Resolve("js/none.js"))
	assert.False(t, r.Exists("js/none.js"))

	var nilResolver *AssetResolver
	assert.Equal(t, "/static/js/app.js", nilResolver.Resolve("js/app.js"))
	assert.Equal(t, "/static/etc/passwd", nilResolver.Resolve("../../etc/passwd"))
}
