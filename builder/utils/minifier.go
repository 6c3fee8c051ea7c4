package utils

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/json"
	"github.com/tdewolff/minify/v2/svg"
	"github.com/tdewolff/minify/v2/xml"
)

// NewMinifier returns a minifier for every output type the builder writes.
func NewMinifier() *minify.M {
	m := minify.New()
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("application/javascript", js.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)
	m.AddFuncRegexp(regexp.MustCompile("[/+]json$"), json.Minify)
	m.AddFuncRegexp(regexp.MustCompile("[/+]xml$"), xml.Minify)
	return m
}

var mediaTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
	".json": "application/json",
	".xml":  "application/xml",
	".svg":  "image/svg+xml",
}

// MediaType returns the minifiable media type for path, or "" if none.
func MediaType(path string) string {
	return mediaTypes[strings.ToLower(filepath.Ext(path))]
}

// MinifyFile minifies data according to the extension of path. Data of
// unknown types, or data the minifier rejects, is returned unchanged.
func MinifyFile(m *minify.M, path string, data []byte) []byte {
	mt := MediaType(path)
	if m == nil || mt == "" {
		return data
	}
	out, err := m.Bytes(mt, data)
	if err != nil {
		return data
	}
	return out
}
