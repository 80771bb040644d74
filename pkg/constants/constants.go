// Package constants provides shared constants used throughout the formatter
// codebase: file permissions, buffer sizes, and watch-mode timing values
// that should stay consistent across the application.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Watch mode timing constants
const (
	// WatchDebounce is how long watch mode waits after a change event
	// before re-running, coalescing editor write bursts into one run
	WatchDebounce = 250 * time.Millisecond
)
