// Package templates embeds the default page templates used when a site has
// no templates directory of its own.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
