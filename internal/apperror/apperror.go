package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email in use")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrRemoteUnavailable  = errors.New("remote service unavailable")
)

type AppError struct {
	Err     error  // underlying sentinel
	Message string // human-readable error message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// InvalidCredentials carries a fixed message so responses never reveal
// whether the email or the password was the wrong half.
func InvalidCredentials() *AppError {
	return &AppError{
		Err:     ErrInvalidCredentials,
		Message: "invalid email or password",
	}
}

func EmailInUse(email string) *AppError {
	return &AppError{
		Err:     ErrEmailInUse,
		Message: fmt.Sprintf("an account with email %s already exists", email),
	}
}

func NotAuthenticated() *AppError {
	return &AppError{
		Err:     ErrNotAuthenticated,
		Message: "sign in required",
	}
}

func RemoteUnavailable(service string) *AppError {
	return &AppError{
		Err:     ErrRemoteUnavailable,
		Message: fmt.Sprintf("%s is unavailable", service),
	}
}
