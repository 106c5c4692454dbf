package static

import "embed"

// FS exposes the landing page assets for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS
