package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonhttp "github.com/AlibekovAA/book-reviews/backend/internal/common/http"
	"github.com/AlibekovAA/book-reviews/backend/internal/common/jwtverify"
	"github.com/AlibekovAA/book-reviews/backend/internal/common/logger"
	reviewhttp "github.com/AlibekovAA/book-reviews/backend/internal/review/http"
	"github.com/AlibekovAA/book-reviews/backend/internal/review/repository"
)

type tokenTable map[string]string

func (t tokenTable) Verify(token string) (jwtverify.Claims, error) {
	username, ok := t[token]
	if !ok {
		return jwtverify.Claims{}, errors.New("unknown token")
	}
	return jwtverify.Claims{Username: username}, nil
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newTestRouter() (*mux.Router, *repository.Ledger) {
	log := logger.NewWithWriter(io.Discard, "test", "info")
	ledger := repository.NewLedger([]int64{1, 2})
	verifier := tokenTable{"alice-token": "alice", "bob-token": "bob"}

	r := mux.NewRouter()
	r.NotFoundHandler = commonhttp.NotFoundHandler(log)
	r.MethodNotAllowedHandler = commonhttp.MethodNotAllowedHandler(log)
	reviewhttp.NewHandler(ledger, verifier, log).Register(r)
	return r, ledger
}

func do(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestReviewHTTP_AddAndList(t *testing.T) {
	r, _ := newTestRouter()

	rec := do(r, http.MethodPost, "/books/1/reviews", "alice-token", `{"review":"Great book"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[map[string]any](t, rec)
	assert.Equal(t, "Review added successfully", created["message"])
	assert.Equal(t, float64(1), created["reviewId"])

	rec = do(r, http.MethodGet, "/books/1/reviews", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []reviewhttp.ReviewResponse{{ID: 1, Owner: "alice", Text: "Great book"}},
		decode[[]reviewhttp.ReviewResponse](t, rec))
}

func TestReviewHTTP_ListEmptyIsArray(t *testing.T) {
	r, _ := newTestRouter()

	rec := do(r, http.MethodGet, "/books/2/reviews", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestReviewHTTP_UnknownBook(t *testing.T) {
	r, _ := newTestRouter()

	for _, rec := range []*httptest.ResponseRecorder{
		do(r, http.MethodGet, "/books/99/reviews", "", ""),
		do(r, http.MethodPost, "/books/99/reviews", "alice-token", `{"review":"x"}`),
		do(r, http.MethodDelete, "/books/99/reviews/1", "alice-token", ""),
		do(r, http.MethodGet, "/books/99999999999999999999/reviews", "", ""),
	} {
		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decode[errorEnvelope](t, rec)
		assert.Equal(t, "BOOK_NOT_FOUND", env.Code)
		assert.Equal(t, "Book not found", env.Message)
	}
}

func TestReviewHTTP_NonNumericIDIsNotFound(t *testing.T) {
	r, _ := newTestRouter()

	rec := do(r, http.MethodGet, "/books/abc/reviews", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReviewHTTP_WritesRequireAuth(t *testing.T) {
	r, ledger := newTestRouter()
	id, err := ledger.Append(context.Background(), 1, "alice", "text")
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		code   string
	}{
		{"add without token", http.MethodPost, "/books/1/reviews", "", "MISSING_AUTHORIZATION"},
		{"add with bad token", http.MethodPost, "/books/1/reviews", "forged", "INVALID_TOKEN"},
		{"delete without token", http.MethodDelete, "/books/1/reviews/1", "", "MISSING_AUTHORIZATION"},
		{"delete with bad token", http.MethodDelete, "/books/1/reviews/1", "forged", "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(r, tt.method, tt.path, tt.token, `{"review":"sneaky"}`)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.code, decode[errorEnvelope](t, rec).Code)
		})
	}

	reviews, err := ledger.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, id, reviews[0].ID)
}

func TestReviewHTTP_AddValidation(t *testing.T) {
	r, _ := newTestRouter()

	for _, body := range []string{`{}`, `{"review":""}`, `{"review":"` + strings.Repeat("x", 4001) + `"}`} {
		rec := do(r, http.MethodPost, "/books/1/reviews", "alice-token", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode[errorEnvelope](t, rec).Code)
	}

	rec := do(r, http.MethodPost, "/books/1/reviews", "alice-token", `not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_JSON", decode[errorEnvelope](t, rec).Code)
}

func TestReviewHTTP_DeleteOwnership(t *testing.T) {
	r, ledger := newTestRouter()
	id, err := ledger.Append(context.Background(), 1, "alice", "Great book")
	require.NoError(t, err)

	rec := do(r, http.MethodDelete, "/books/1/reviews/1", "bob-token", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decode[errorEnvelope](t, rec)
	assert.Equal(t, "REVIEW_NOT_FOUND", env.Code)
	assert.Equal(t, "Review not found or unauthorized", env.Message)

	rec = do(r, http.MethodDelete, "/books/1/reviews/42", "alice-token", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, env, decode[errorEnvelope](t, rec))

	reviews, err := ledger.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, id, reviews[0].ID)

	rec = do(r, http.MethodDelete, "/books/1/reviews/1", "alice-token", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Review deleted successfully", decode[map[string]string](t, rec)["message"])

	reviews, err = ledger.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestReviewHTTP_WrongMethod(t *testing.T) {
	r, _ := newTestRouter()

	rec := do(r, http.MethodPut, "/books/1/reviews", "alice-token", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", decode[errorEnvelope](t, rec).Code)
}
