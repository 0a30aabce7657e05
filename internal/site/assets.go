package site

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

// StaticPrefix is the URL prefix of embedded assets.
const StaticPrefix = "/static"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

func assets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// StaticPaths lists the URL path of every embedded asset.
func StaticPaths() []string {
	var out []string
	_ = fs.WalkDir(assets(), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		out = append(out, StaticPrefix+"/"+p)
		return nil
	})
	return out
}

// cacheControlFor returns the Cache-Control value for an asset name.
func cacheControlFor(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".css", ".js":
		return "public, max-age=86400"
	case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".ico":
		return "public, max-age=604800"
	default:
		return ""
	}
}
