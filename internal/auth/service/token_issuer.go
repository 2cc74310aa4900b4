package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AlibekovAA/book-reviews/backend/internal/common/clock"
	"github.com/AlibekovAA/book-reviews/backend/internal/common/constants"
	commoncrypto "github.com/AlibekovAA/book-reviews/backend/internal/common/crypto"
	"github.com/AlibekovAA/book-reviews/backend/internal/common/jwtverify"
)

// TokenIssuer signs and verifies stateless access tokens. Expiry is the only
// way a token stops being valid.
type TokenIssuer struct {
	jwtSecret      []byte
	idGenerator    commoncrypto.IDGenerator
	clock          clock.Clock
	accessTokenTTL time.Duration
	parser         *jwtverify.Parser
}

func NewTokenIssuer(
	jwtSecret string,
	idGenerator commoncrypto.IDGenerator,
	accessTokenTTL time.Duration,
	clock clock.Clock,
) *TokenIssuer {
	if accessTokenTTL <= 0 {
		accessTokenTTL = constants.DefaultTokenTTL
	}
	secret := []byte(jwtSecret)
	return &TokenIssuer{
		jwtSecret:      secret,
		idGenerator:    idGenerator,
		clock:          clock,
		accessTokenTTL: accessTokenTTL,
		parser:         jwtverify.NewParser(secret, constants.TokenIssuer, clock),
	}
}

func (ti *TokenIssuer) Issue(username string) (string, error) {
	jti, err := ti.idGenerator.NewID()
	if err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}

	now := ti.clock.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    constants.TokenIssuer,
		Subject:   username,
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ti.accessTokenTTL)),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	incrementAccessTokensIssued()
	return tokenString, nil
}

// Verify returns the claims of a valid token, or an INVALID_TOKEN domain
// error when the token is malformed, forged or expired.
func (ti *TokenIssuer) Verify(tokenString string) (jwtverify.Claims, error) {
	return ti.parser.Parse(tokenString)
}
