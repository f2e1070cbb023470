// Package buildinfo carries release metadata injected at link time.
package buildinfo

// These values are set via ldflags for release binaries.
// They default to empty for local/dev builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
