// ABOUTME: Sentinel errors shared by the storage layer.
// ABOUTME: Callers pick per-surface policy with errors.Is.
package storage

import "errors"

var (
	// ErrNotFound is returned when an operation targets a nonexistent id.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName is returned when a template name already exists.
	// The web layer ignores it silently; the CLI reports it.
	ErrDuplicateName = errors.New("template name already exists")

	// ErrEmptyTemplate is returned when expanding a template with no members.
	ErrEmptyTemplate = errors.New("template has no exercises")
)
