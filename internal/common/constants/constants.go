package constants

import "time"

const (
	UsernameMaxLength  = 64
	PasswordMaxLength  = 72
	ReviewMaxLength    = 4000
	JWTSecretMinLength = 32

	DefaultBcryptCost     = 10
	DefaultMaxRequestSize = 1 << 20

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	ShutdownTimeout = 30 * time.Second
	DrainTimeout    = 10 * time.Second

	DefaultHTTPPort       = "3000"
	DefaultTokenTTL       = 1 * time.Hour
	DefaultRequestTimeout = 5 * time.Second
	TokenIssuer           = "book-reviews"

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28
)

type TraceIDKeyType string

const TraceIDKey TraceIDKeyType = "trace_id"
