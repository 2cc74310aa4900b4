package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AlibekovAA/book-reviews/backend/internal/catalog/domain"
	"github.com/AlibekovAA/book-reviews/backend/internal/catalog/repository"
	commonhttp "github.com/AlibekovAA/book-reviews/backend/internal/common/http"
	"github.com/AlibekovAA/book-reviews/backend/internal/common/logger"
	reviewdomain "github.com/AlibekovAA/book-reviews/backend/internal/review/domain"
	reviewhttp "github.com/AlibekovAA/book-reviews/backend/internal/review/http"
)

// ReviewLister supplies the reviews embedded in book listings.
type ReviewLister interface {
	List(ctx context.Context, bookID int64) ([]reviewdomain.Review, error)
}

type bookResponse struct {
	ID      int64                       `json:"id"`
	Title   string                      `json:"title"`
	Author  string                      `json:"author"`
	ISBN    string                      `json:"isbn"`
	Reviews []reviewhttp.ReviewResponse `json:"reviews"`
}

type Handler struct {
	books   repository.Repository
	reviews ReviewLister
	log     *logger.Logger
}

func NewHandler(books repository.Repository, reviews ReviewLister, log *logger.Logger) *Handler {
	return &Handler{books: books, reviews: reviews, log: log}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/books", h.listAll).Methods(http.MethodGet)
	r.HandleFunc("/books/search", h.search).Methods(http.MethodGet)
}

func (h *Handler) listAll(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.ListAll(r.Context())
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	h.writeBooks(w, r, books)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	books, err := h.books.Search(r.Context(), query)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	h.log.WithFields(r.Context(), logger.Fields{
		"query":   query,
		"matches": len(books),
		"action":  "books_search",
	}).Debug("books search")

	h.writeBooks(w, r, books)
}

func (h *Handler) writeBooks(w http.ResponseWriter, r *http.Request, books []domain.Book) {
	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		reviews, err := h.reviews.List(r.Context(), b.ID)
		if err != nil {
			commonhttp.HandleError(w, r, err, h.log)
			return
		}
		out = append(out, bookResponse{
			ID:      b.ID,
			Title:   b.Title,
			Author:  b.Author,
			ISBN:    b.ISBN,
			Reviews: reviewhttp.ToResponses(reviews),
		})
	}

	commonhttp.WriteJSON(w, http.StatusOK, out)
}
