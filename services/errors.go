package services

import "errors"

// ValidationError marks a user-correctable input problem (empty cart,
// missing name, invalid email, insufficient cash). Nothing has been
// persisted when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// PersistenceError wraps a storage failure during the atomic commit.
// The commit is all-or-nothing, so no partial rows exist.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return "sale could not be persisted: " + e.Err.Error() }

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
