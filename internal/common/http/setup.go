package http

import (
	"net/http"

	"github.com/AlibekovAA/book-reviews/backend/internal/common/httpmetrics"
	"github.com/AlibekovAA/book-reviews/backend/internal/common/logger"
)

// BuildBaseHandler wraps handler with the middleware every route shares.
// Trace IDs are assigned before recovery so panics are logged with them.
func BuildBaseHandler(log *logger.Logger, maxRequestSize int64, handler http.Handler) http.Handler {
	collector := httpmetrics.New()
	recovery := RecoveryMiddleware(log)
	maxSize := MaxRequestSizeMiddleware(maxRequestSize)

	return SecurityHeadersMiddleware(TraceIDMiddleware(recovery(maxSize(collector.Wrap(handler)))))
}
