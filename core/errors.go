/*
errors.go - Centralized error types for the engine

PURPOSE:
  All sentinel errors in one place. Note the narrow scope: rejected GAME
  operations (insufficient credits, busy job slot, denied capability) are
  not errors at all - they are ordinary state transitions that touch only
  logs and notifications. Errors here cover the boundaries: bad saves, bad
  content, missing slots.

USAGE:
  if errors.Is(err, core.ErrInvalidSave) { ... }
*/
package core

import "errors"

var (
	// ErrInvalidSave is returned by the import boundary when a persisted
	// payload is corrupt, missing required sections, or carries non-numeric
	// resource fields. The engine never operates on partial data.
	ErrInvalidSave = errors.New("invalid save payload")

	// ErrInvalidContent is returned when a content bundle fails validation
	// (empty flavor fallback pool, unknown event references, ...).
	ErrInvalidContent = errors.New("invalid content bundle")

	// ErrSlotNotFound is returned by save stores for missing slot names.
	ErrSlotNotFound = errors.New("save slot not found")
)

// IsClientError reports whether the error is due to invalid caller input
// rather than an engine fault.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidSave) || errors.Is(err, ErrSlotNotFound)
}
