// Package apperrors holds the error taxonomy shared by use cases and
// repositories. Handlers translate these into HTTP status codes; anything
// else surfaces as a 500.
package apperrors

// ValidationError marks a malformed client payload (missing or wrongly
// typed fields). Maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError marks a missing thread, comment, reply or user. Maps to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// AuthorizationError marks a mutation attempted by a non-owner. Maps to 403.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

func NewAuthorizationError(message string) *AuthorizationError {
	return &AuthorizationError{Message: message}
}

// AuthenticationError marks failed credential verification. Maps to 401.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

func NewAuthenticationError(message string) *AuthenticationError {
	return &AuthenticationError{Message: message}
}
