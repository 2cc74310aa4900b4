package service

import (
	"context"
	"errors"

	"github.com/AlibekovAA/book-reviews/backend/internal/common/logger"
)

type AuthService struct {
	credentials *CredentialStore
	tokens      *TokenIssuer
	log         *logger.Logger
}

func NewAuthService(credentials *CredentialStore, tokens *TokenIssuer, log *logger.Logger) *AuthService {
	return &AuthService{
		credentials: credentials,
		tokens:      tokens,
		log:         log,
	}
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	Token string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "register_attempt",
	}).Info("register attempt")

	if err := validateCredentials(input.Username, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_validation_failed",
		}).Warnf("register validation failed: %v", err)
		recordRegistration("invalid")
		return err
	}

	if err := s.credentials.Add(ctx, input.Username, input.Password); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "register_username_exists",
			}).Warn("register failed: already exists")
			recordRegistration("conflict")
			return err
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_create_failed",
		}).Errorf("register failed: %v", err)
		recordRegistration("error")
		return err
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "register_success",
	}).Info("register success")
	recordRegistration("success")

	return nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (LoginResult, error) {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "login_attempt",
	}).Info("login attempt")

	if input.Username == "" || input.Password == "" {
		recordLogin("invalid")
		return LoginResult{}, ErrInvalidCredentials
	}

	ok, err := s.credentials.Verify(ctx, input.Username, input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_verify_failed",
		}).Errorf("login failed: %v", err)
		recordLogin("error")
		return LoginResult{}, err
	}
	if !ok {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_invalid_credentials",
		}).Warn("login failed: invalid credentials")
		recordLogin("invalid")
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(input.Username)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_token_issue_failed",
		}).Errorf("login failed: token issue error: %v", err)
		recordLogin("error")
		return LoginResult{}, newInternalError("TOKEN_ISSUE_FAILED", "Internal Server Error", err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "login_success",
	}).Info("login success")
	recordLogin("success")

	return LoginResult{Token: token}, nil
}

// SeedUser registers a user at startup; an existing username is not an error.
func (s *AuthService) SeedUser(ctx context.Context, username, password string) error {
	err := s.credentials.Add(ctx, username, password)
	if err == nil || errors.Is(err, ErrUsernameTaken) {
		return nil
	}
	return err
}
