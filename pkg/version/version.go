// Package version holds build-time version metadata for the barrelgen binary.
package version

// Populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
