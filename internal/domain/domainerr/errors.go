// Package domainerr defines the error taxonomy shared by the catalog,
// order and reporting components. Every operation either returns a
// valid value or one of these three kinds; handlers map them to HTTP
// statuses.
package domainerr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the requested entity (or entity with children,
	// for the join-backed reads) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument means a caller-supplied value failed a local
	// precondition, e.g. a malformed id or a quantity below one.
	ErrInvalidArgument = errors.New("invalid argument")
)

// PersistenceError reports that the underlying store rejected an
// operation. It keeps the cause for diagnostics. Constraint is set by
// the store layer when the cause is an integrity violation (foreign
// key, unique, check) rather than an infrastructure failure.
type PersistenceError struct {
	Op         string
	Err        error
	Constraint bool
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err as a PersistenceError for the given operation.
func Persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// IsPersistence reports whether err is (or wraps) a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

// IsConstraint reports whether err is a PersistenceError caused by an
// integrity constraint violation.
func IsConstraint(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe) && pe.Constraint
}
