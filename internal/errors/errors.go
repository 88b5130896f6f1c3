// internal/errors/errors.go
package errors

import "fmt"

// ErrInvalidUserID is returned when the configured user identity is not in
// 'given.surname' format.
type ErrInvalidUserID struct {
	UserID string
}

func (e *ErrInvalidUserID) Error() string {
	return fmt.Sprintf("invalid user id: %q, expected 'given.surname'", e.UserID)
}

// ErrInvalidProjectID is returned when a project id in the config is not an
// integer.
type ErrInvalidProjectID struct {
	ID string
}

func (e *ErrInvalidProjectID) Error() string {
	return fmt.Sprintf("invalid project id: %q, expected an integer", e.ID)
}
