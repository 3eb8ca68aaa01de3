// Package gos hides the difference between the desktop filesystem and the
// browser, where "files" are fetched relative to the page.
package gos

import "errors"

var (
	ErrNotExist    = errors.New("file does not exist (gos)")
	ErrUnsupported = errors.New("operation not supported on this platform (gos)")
)

// Every platform file provides:
// ReadFile(name) ([]byte, error)
// WriteFile(name, data, perm) error
// IsNotExist(err) bool
// Watchable() bool
