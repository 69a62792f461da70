package version

import (
	"fmt"
	"runtime"
)

// Populated at build time via -ldflags "-X github.com/faizmokh/diary/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the version string shown by `diary --version`.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s)", Version, Commit, Date, runtime.Version())
}
