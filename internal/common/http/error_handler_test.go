package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlibekovAA/book-reviews/backend/internal/common/constants"
	commonerrors "github.com/AlibekovAA/book-reviews/backend/internal/common/errors"
	"github.com/AlibekovAA/book-reviews/backend/internal/common/logger"
)

func handle(t *testing.T, err error) (int, ErrorEnvelope) {
	t.Helper()
	log := logger.NewWithWriter(io.Discard, "test", "debug")
	req := httptest.NewRequest(http.MethodGet, "/books/1/reviews", nil)
	req = req.WithContext(context.WithValue(req.Context(), constants.TraceIDKey, "trace-abc"))
	rec := httptest.NewRecorder()

	HandleError(rec, req, err, log)

	var env ErrorEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return rec.Code, env
}

func TestHandleError_DomainError(t *testing.T) {
	status, env := handle(t, commonerrors.ErrInvalidToken.WithCause(errors.New("token is expired")))

	assert.Equal(t, "INVALID_TOKEN", env.Code)
	assert.Equal(t, "Invalid token", env.Message)
	assert.Equal(t, "trace-abc", env.TraceID)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestHandleError_UnknownErrorIsHidden(t *testing.T) {
	status, env := handle(t, errors.New("secret detail"))

	assert.Equal(t, CodeInternal, env.Code)
	assert.Equal(t, "Internal Server Error", env.Message)
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestRecoveryMiddleware(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, "test", "info")
	h := RecoveryMiddleware(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal Server Error")
}
