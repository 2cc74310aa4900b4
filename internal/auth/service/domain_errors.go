package service

import (
	"net/http"

	commonerrors "github.com/AlibekovAA/book-reviews/backend/internal/common/errors"
)

var (
	ErrInvalidCredentials = commonerrors.NewDomainError(
		"INVALID_CREDENTIALS",
		commonerrors.CategoryUnauthorized,
		http.StatusUnauthorized,
		"Invalid username or password",
	)

	ErrUsernameTaken = commonerrors.NewDomainError(
		"USERNAME_TAKEN",
		commonerrors.CategoryConflict,
		http.StatusConflict,
		"Username already exists",
	)

	ErrCredentialsRequired = commonerrors.NewDomainError(
		commonerrors.ErrValidation.Code(),
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Username and password are required",
	)

	ErrPasswordTooLong = commonerrors.NewDomainError(
		commonerrors.ErrValidation.Code(),
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"password must be at most 72 bytes",
	)
)

func newInternalError(code, message string, cause error) commonerrors.DomainError {
	err := commonerrors.NewDomainError(
		code,
		commonerrors.CategoryInternal,
		http.StatusInternalServerError,
		message,
	)
	if cause != nil {
		err = err.WithCause(cause)
	}
	return err
}
