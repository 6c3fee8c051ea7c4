package renderer

import (
	"regexp"
	"strings"
)

var (
	rootHTMLHref = regexp.MustCompile(`href="/([^"]*\.html)"`)
	rootJSONHref = regexp.MustCompile(`href="/([^"]*\.json)"`)
)

// FixAssetPaths rewrites asset and navigation references in html for a site
// served under basePath.
//
// With an empty base path only "./assets/" references are made rooted.
// Otherwise each line that does not already mention basePath has its asset
// references, root links, .html/.json links and the search-data fetch
// prefixed. The guard is per line: a line holding one prefixed and one bare
// reference is left untouched.
func FixAssetPaths(html, basePath string) string {
	if basePath == "" {
		html = strings.ReplaceAll(html, `href="./assets/`, `href="/assets/`)
		html = strings.ReplaceAll(html, `src="./assets/`, `src="/assets/`)
		return html
	}

	lines := strings.Split(html, "\n")
	for i, line := range lines {
		if strings.Contains(line, basePath) {
			continue
		}

		line = strings.ReplaceAll(line, `href="./assets/`, `href="`+basePath+`/assets/`)
		line = strings.ReplaceAll(line, `src="./assets/`, `src="`+basePath+`/assets/`)

		line = strings.ReplaceAll(line, `href="/assets/`, `href="`+basePath+`/assets/`)
		line = strings.ReplaceAll(line, `src="/assets/`, `src="`+basePath+`/assets/`)

		line = strings.ReplaceAll(line, `href="/"`, `href="`+basePath+`/"`)
		prefix := func(m string) string {
			return `href="` + basePath + m[len(`href="`):]
		}
		line = rootHTMLHref.ReplaceAllStringFunc(line, prefix)
		line = rootJSONHref.ReplaceAllStringFunc(line, prefix)

		line = strings.ReplaceAll(line, `fetch('/search-data.json')`, `fetch('`+basePath+`/search-data.json')`)

		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
