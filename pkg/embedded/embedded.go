// Package embedded provides embedded static assets for the application.
package embedded

import (
	"embed"
)

// Files contains all files embedded in the Go binary:
// - Dashboard files (static/) - served directly via HTTP
//   - index.html - single page planner dashboard
//   - assets/ - scripts and styles referenced by the page
//
//go:embed static
var Files embed.FS
