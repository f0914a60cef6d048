package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// Repository lookups that miss return this instead of a nil-and-no-error pair;
// handlers translate it to a 404.
var ErrNotFound = errors.New("resource not found")

// ErrMissingID indicates an update or delete was attempted on an entry that
// was never saved. This is a programmer error, not a business rule violation,
// and is never surfaced to the caller as a domain message.
var ErrMissingID = errors.New("entry has no identifier assigned")

// BusinessRuleError is a domain invariant violation (invalid entry field,
// duplicate email). The message is human-readable and surfaced to the caller.
type BusinessRuleError struct {
	Message string
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

// NewBusinessRuleError creates a BusinessRuleError with the given message.
func NewBusinessRuleError(message string) *BusinessRuleError {
	return &BusinessRuleError{Message: message}
}

// AuthenticationError indicates a credential lookup or comparison failed.
// The message distinguishes an unknown email from a wrong password.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// NewAuthenticationError creates an AuthenticationError with the given message.
func NewAuthenticationError(message string) *AuthenticationError {
	return &AuthenticationError{Message: message}
}
