package jwtverify

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AlibekovAA/book-reviews/backend/internal/common/clock"
	commonerrors "github.com/AlibekovAA/book-reviews/backend/internal/common/errors"
	commonhttp "github.com/AlibekovAA/book-reviews/backend/internal/common/http"
	"github.com/AlibekovAA/book-reviews/backend/internal/common/logger"
	"github.com/AlibekovAA/book-reviews/backend/internal/observability/metrics"
)

const bearerPrefix = "Bearer "

type Claims struct {
	Username  string
	TokenID   string
	ExpiresAt time.Time
}

// Verifier resolves a raw token to the identity it was issued for.
type Verifier interface {
	Verify(tokenString string) (Claims, error)
}

type contextKey string

const claimsKey contextKey = "jwt_claims"

// Middleware rejects requests without a valid bearer token and stores the
// verified claims in the request context.
func Middleware(verifier Verifier, log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := ExtractBearerToken(r.Header.Get("Authorization"))
			if !ok {
				log.WithFields(r.Context(), logger.Fields{
					"path":   r.URL.Path,
					"action": "jwt_missing_authorization",
				}).Warn("jwt auth failed: missing or malformed authorization header")
				commonhttp.HandleError(w, r, commonerrors.ErrMissingAuthorization, log)
				return
			}

			claims, err := verifier.Verify(tokenString)
			if err != nil {
				log.WithFields(r.Context(), logger.Fields{
					"path":   r.URL.Path,
					"action": "jwt_invalid_token",
				}).Warnf("jwt auth failed: %v", err)
				if !errors.Is(err, commonerrors.ErrInvalidToken) {
					err = commonerrors.ErrInvalidToken.WithCause(err)
				}
				commonhttp.HandleError(w, r, err, log)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func ExtractBearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

func WithClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func FromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(Claims)
	return claims, ok
}

// Parser validates HS256 tokens signed with a shared secret.
type Parser struct {
	secret []byte
	issuer string
	clock  clock.Clock
}

func NewParser(secret []byte, issuer string, clk clock.Clock) *Parser {
	return &Parser{secret: secret, issuer: issuer, clock: clk}
}

func (p *Parser) Parse(tokenString string) (Claims, error) {
	metrics.JWTValidationsTotal.Inc()

	claims, err := p.parse(tokenString)
	if err != nil {
		metrics.JWTValidationsFailed.Inc()
		return Claims{}, commonerrors.ErrInvalidToken.WithCause(err)
	}
	return claims, nil
}

func (p *Parser) parse(tokenString string) (Claims, error) {
	registered := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		registered,
		func(token *jwt.Token) (any, error) {
			return p.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithIssuer(p.issuer),
		jwt.WithTimeFunc(p.clock.Now),
	)
	if err != nil {
		return Claims{}, err
	}
	if !parsed.Valid {
		return Claims{}, errors.New("token is not valid")
	}
	if registered.Subject == "" {
		return Claims{}, errors.New("missing sub claim")
	}

	return Claims{
		Username:  registered.Subject,
		TokenID:   registered.ID,
		ExpiresAt: registered.ExpiresAt.Time,
	}, nil
}
