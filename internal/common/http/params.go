package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	commonerrors "github.com/AlibekovAA/book-reviews/backend/internal/common/errors"
	"github.com/AlibekovAA/book-reviews/backend/internal/common/logger"
)

// PathInt64 reads a numeric route variable. Values that do not fit in an
// int64 report false.
func PathInt64(r *http.Request, name string) (int64, bool) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NotFoundHandler and MethodNotAllowedHandler give unmatched routes the
// same JSON envelope as every other error.
func NotFoundHandler(log *logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleError(w, r, commonerrors.ErrNotFound, log)
	})
}

func MethodNotAllowedHandler(log *logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleError(w, r, commonerrors.ErrMethodNotAllowed, log)
	})
}
