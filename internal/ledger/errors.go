package ledger

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conditions callers are expected to branch on.
var (
	// ErrEntryLocked is returned when a mutation targets a locked entry.
	ErrEntryLocked = errors.New("ledger entry is locked")

	// ErrLogLocked is returned when a mutation targets a consolidated day.
	ErrLogLocked = errors.New("daily log is locked")

	// ErrNotFound is returned for unknown property, entry, log or bank ids.
	ErrNotFound = errors.New("not found")

	// ErrVersionConflict is returned when an update carries an expected
	// version that no longer matches the stored one.
	ErrVersionConflict = errors.New("version conflict")
)

// ValidationError reports malformed input rejected at a construction
// boundary, before it can reach aggregation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// UnknownBankError reports an expense referencing a bank that has no
// opening balance in the day being consolidated.
type UnknownBankError struct {
	Name string
}

func (e *UnknownBankError) Error() string {
	return fmt.Sprintf("bank %q has no opening balance in this daily log", e.Name)
}
