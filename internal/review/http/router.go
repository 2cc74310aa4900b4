package http

import (
	"net/http"

	"github.com/gorilla/mux"

	commonerrors "github.com/AlibekovAA/book-reviews/backend/internal/common/errors"
	commonhttp "github.com/AlibekovAA/book-reviews/backend/internal/common/http"
	"github.com/AlibekovAA/book-reviews/backend/internal/common/jwtverify"
	"github.com/AlibekovAA/book-reviews/backend/internal/common/logger"
	"github.com/AlibekovAA/book-reviews/backend/internal/review/repository"
)

type Handler struct {
	ledger   repository.Repository
	verifier jwtverify.Verifier
	log      *logger.Logger
}

func NewHandler(ledger repository.Repository, verifier jwtverify.Verifier, log *logger.Logger) *Handler {
	return &Handler{ledger: ledger, verifier: verifier, log: log}
}

// Register mounts the review routes. Reads are public, writes need a
// bearer token.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/books/{id:[0-9]+}/reviews", h.list).Methods(http.MethodGet)

	authed := r.NewRoute().Subrouter()
	authed.Use(jwtverify.Middleware(h.verifier, h.log))
	authed.HandleFunc("/books/{id:[0-9]+}/reviews", h.add).Methods(http.MethodPost)
	authed.HandleFunc("/books/{id:[0-9]+}/reviews/{reviewId:[0-9]+}", h.remove).Methods(http.MethodDelete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	bookID, ok := commonhttp.PathInt64(r, "id")
	if !ok {
		commonhttp.HandleError(w, r, repository.ErrBookNotFound, h.log)
		return
	}

	reviews, err := h.ledger.List(r.Context(), bookID)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, ToResponses(reviews))
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	claims, ok := jwtverify.FromContext(r.Context())
	if !ok {
		commonhttp.HandleError(w, r, commonerrors.ErrMissingAuthorization, h.log)
		return
	}

	bookID, ok := commonhttp.PathInt64(r, "id")
	if !ok {
		commonhttp.HandleError(w, r, repository.ErrBookNotFound, h.log)
		return
	}

	var req addReviewRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}
	if err := commonhttp.ValidateStruct(req); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	reviewID, err := h.ledger.Append(r.Context(), bookID, claims.Username, req.Review)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	h.log.WithFields(r.Context(), logger.Fields{
		"book_id":   bookID,
		"review_id": reviewID,
		"username":  claims.Username,
		"action":    "review_added",
	}).Info("review added")

	commonhttp.WriteJSON(w, http.StatusCreated, addReviewResponse{
		Message:  "Review added successfully",
		ReviewID: reviewID,
	})
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	claims, ok := jwtverify.FromContext(r.Context())
	if !ok {
		commonhttp.HandleError(w, r, commonerrors.ErrMissingAuthorization, h.log)
		return
	}

	bookID, ok := commonhttp.PathInt64(r, "id")
	if !ok {
		commonhttp.HandleError(w, r, repository.ErrBookNotFound, h.log)
		return
	}
	reviewID, ok := commonhttp.PathInt64(r, "reviewId")
	if !ok {
		commonhttp.HandleError(w, r, repository.ErrReviewNotFound, h.log)
		return
	}

	if err := h.ledger.Remove(r.Context(), bookID, reviewID, claims.Username); err != nil {
		h.log.WithFields(r.Context(), logger.Fields{
			"book_id":   bookID,
			"review_id": reviewID,
			"username":  claims.Username,
			"action":    "review_remove_rejected",
		}).Warnf("review remove failed: %v", err)
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	h.log.WithFields(r.Context(), logger.Fields{
		"book_id":   bookID,
		"review_id": reviewID,
		"username":  claims.Username,
		"action":    "review_removed",
	}).Info("review removed")

	commonhttp.WriteMessage(w, http.StatusOK, "Review deleted successfully")
}
