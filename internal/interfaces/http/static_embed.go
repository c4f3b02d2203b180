package http

import "embed"

// staticFiles holds the dashboard UI.
//
//go:embed static
var staticFiles embed.FS
