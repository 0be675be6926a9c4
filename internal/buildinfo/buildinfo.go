// Package buildinfo holds version data set at link time.
package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/sivchari/gobasics/internal/buildinfo.Version=...".
var (
	Version = "0.1.0"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the version line printed by `gobasics version`.
func String() string {
	return fmt.Sprintf("gobasics version %s (commit=%s, date=%s)", Version, Commit, Date)
}
