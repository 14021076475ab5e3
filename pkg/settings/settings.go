// Package settings provides build metadata and per-run configuration used
// across the ldx CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "ldx"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single execution of the
// application: logging level, color handling, and geometry overrides.
type Run struct {
	MinLogLevel int8
	NoColor     bool
	Width       int
	Height      int
}

// NewCliParams returns a Run with CLI defaults: info-level logging, color
// on, geometry auto-detected from the terminal.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		NoColor:     false,
	}
}
