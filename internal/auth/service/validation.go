package service

import (
	"github.com/AlibekovAA/book-reviews/backend/internal/common/constants"
)

func validateCredentials(username, password string) error {
	if username == "" || password == "" {
		return ErrCredentialsRequired
	}

	// bcrypt only looks at the first 72 bytes.
	if len(password) > constants.PasswordMaxLength {
		return ErrPasswordTooLong
	}

	return nil
}
