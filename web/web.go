// Package web holds the embedded HTML templates and static assets served by
// the application.
package web

import "embed"

// Templates contains the layout and per-page HTML templates.
//
//go:embed templates/*.html
var Templates embed.FS

// Static contains stylesheets and other assets served under /static/.
//
//go:embed static
var Static embed.FS
