// ABOUTME: Sentinel error kinds for store operations.
// ABOUTME: Callers distinguish them with errors.Is; all wrap with %w.
package storage

import "errors"

var (
	// ErrValidation marks a malformed batch or entry (bad date, value out
	// of range). The offending batch is rejected with no partial write.
	ErrValidation = errors.New("validation error")

	// ErrReferential marks a batch referencing a row that does not exist
	// (unknown exercise, unknown catalog id).
	ErrReferential = errors.New("referential error")

	// ErrConflict marks an integrity conflict: a catalog UUID claimed
	// under a different identifier, or a duplicate plan start date.
	ErrConflict = errors.New("integrity conflict")

	// ErrNotFound marks a lookup that matched nothing.
	ErrNotFound = errors.New("not found")
)
