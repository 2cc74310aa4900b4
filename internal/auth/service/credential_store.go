package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/AlibekovAA/book-reviews/backend/internal/common/clock"
	commoncrypto "github.com/AlibekovAA/book-reviews/backend/internal/common/crypto"
	userdomain "github.com/AlibekovAA/book-reviews/backend/internal/user/domain"
	userrepo "github.com/AlibekovAA/book-reviews/backend/internal/user/repository"
)

// dummyPassword is hashed once and compared against for unknown usernames,
// so a miss costs the same as a wrong password.
const dummyPassword = "book-reviews-timing-equalizer"

// CredentialStore maps usernames to bcrypt hashes. It never returns or logs
// plaintext passwords or hashes.
type CredentialStore struct {
	repo   userrepo.Repository
	hasher commoncrypto.PasswordHasher
	clock  clock.Clock

	dummyOnce sync.Once
	dummyHash string
}

func NewCredentialStore(repo userrepo.Repository, hasher commoncrypto.PasswordHasher, clk clock.Clock) *CredentialStore {
	return &CredentialStore{
		repo:   repo,
		hasher: hasher,
		clock:  clk,
	}
}

// Add hashes password and stores it under username. It fails with
// ErrUsernameTaken when the username is already registered.
func (s *CredentialStore) Add(ctx context.Context, username, password string) error {
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, userrepo.ErrUserNotFound) {
		return newInternalError("USER_LOOKUP_FAILED", "Internal Server Error", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return ErrPasswordTooLong
		}
		return newInternalError("PASSWORD_HASH_FAILED", "Internal Server Error", err)
	}

	err = s.repo.Create(ctx, userdomain.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, userrepo.ErrUsernameAlreadyExists) {
			return ErrUsernameTaken
		}
		return newInternalError("USER_CREATE_FAILED", "Internal Server Error", err)
	}

	return nil
}

// Verify reports whether password matches the stored hash for username.
// Unknown usernames and mismatches both yield false without an error.
func (s *CredentialStore) Verify(ctx context.Context, username, password string) (bool, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, userrepo.ErrUserNotFound) {
			return false, newInternalError("USER_LOOKUP_FAILED", "Internal Server Error", err)
		}
		s.compareDummy(password)
		return false, nil
	}

	err = s.hasher.Compare(user.PasswordHash, password)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, commoncrypto.ErrMismatch), errors.Is(err, bcrypt.ErrPasswordTooLong):
		return false, nil
	default:
		return false, newInternalError("PASSWORD_COMPARE_FAILED", "Internal Server Error", fmt.Errorf("compare for %q: %w", username, err))
	}
}

func (s *CredentialStore) compareDummy(password string) {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(dummyPassword)
		if err == nil {
			s.dummyHash = hash
		}
	})
	if s.dummyHash != "" {
		_ = s.hasher.Compare(s.dummyHash, password)
	}
}
