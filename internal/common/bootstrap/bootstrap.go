package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/AlibekovAA/book-reviews/backend/internal/auth/http"
	authservice "github.com/AlibekovAA/book-reviews/backend/internal/auth/service"
	cataloghttp "github.com/AlibekovAA/book-reviews/backend/internal/catalog/http"
	catalogrepo "github.com/AlibekovAA/book-reviews/backend/internal/catalog/repository"
	"github.com/AlibekovAA/book-reviews/backend/internal/common/clock"
	"github.com/AlibekovAA/book-reviews/backend/internal/common/config"
	commoncrypto "github.com/AlibekovAA/book-reviews/backend/internal/common/crypto"
	commonhttp "github.com/AlibekovAA/book-reviews/backend/internal/common/http"
	"github.com/AlibekovAA/book-reviews/backend/internal/common/logger"
	reviewhttp "github.com/AlibekovAA/book-reviews/backend/internal/review/http"
	reviewrepo "github.com/AlibekovAA/book-reviews/backend/internal/review/repository"
	userrepo "github.com/AlibekovAA/book-reviews/backend/internal/user/repository"
)

const ServiceName = "book-reviews"

var demoUsers = []struct {
	username string
	password string
}{
	{"user1", "password1"},
	{"user2", "password2"},
}

type App struct {
	Log         *logger.Logger
	Config      config.Config
	Clock       clock.Clock
	UserRepo    userrepo.Repository
	Books       *catalogrepo.MemoryRepository
	Reviews     *reviewrepo.Ledger
	TokenIssuer *authservice.TokenIssuer
	AuthService *authservice.AuthService
}

// NewApp loads configuration from the environment and wires every component.
func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.LogDir, ServiceName, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return NewAppWithConfig(cfg, log, clock.NewRealClock()), nil
}

func NewAppWithConfig(cfg config.Config, log *logger.Logger, clk clock.Clock) *App {
	userRepo := userrepo.NewMemoryRepository()
	credentials := authservice.NewCredentialStore(userRepo, commoncrypto.NewBcryptHasher(cfg.BcryptCost), clk)
	tokenIssuer := authservice.NewTokenIssuer(cfg.JWTSecret, commoncrypto.NewUUIDGenerator(), cfg.TokenTTL, clk)

	books := catalogrepo.NewMemoryRepository(catalogrepo.DefaultBooks())

	return &App{
		Log:         log,
		Config:      cfg,
		Clock:       clk,
		UserRepo:    userRepo,
		Books:       books,
		Reviews:     reviewrepo.NewLedger(books.IDs()),
		TokenIssuer: tokenIssuer,
		AuthService: authservice.NewAuthService(credentials, tokenIssuer, log),
	}
}

// Seed registers the demo accounts when SEED_DEMO_USERS is enabled.
func (a *App) Seed(ctx context.Context) error {
	if !a.Config.SeedDemoUsers {
		return nil
	}
	for _, u := range demoUsers {
		if err := a.AuthService.SeedUser(ctx, u.username, u.password); err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
	}
	a.Log.Infof("seeded %d demo users", len(demoUsers))
	return nil
}

func (a *App) Router() *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = commonhttp.NotFoundHandler(a.Log)
	r.MethodNotAllowedHandler = commonhttp.MethodNotAllowedHandler(a.Log)

	r.Handle("/health", commonhttp.HealthHandler(a.Log)).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.NewRoute().Subrouter()
	api.Use(commonhttp.WithTimeout(a.Config.RequestTimeout))

	authhttp.NewHandler(a.AuthService, a.Log).Register(api)
	cataloghttp.NewHandler(a.Books, a.Reviews, a.Log).Register(api)
	reviewhttp.NewHandler(a.Reviews, a.TokenIssuer, a.Log).Register(api)

	return r
}

// Handler is the router wrapped in the shared middleware chain.
func (a *App) Handler() http.Handler {
	return commonhttp.BuildBaseHandler(a.Log, a.Config.MaxRequestSize, a.Router())
}
