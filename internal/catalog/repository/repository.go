package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/AlibekovAA/book-reviews/backend/internal/catalog/domain"
)

var ErrBookNotFound = errors.New("book not found")

type Repository interface {
	ListAll(ctx context.Context) ([]domain.Book, error)
	Search(ctx context.Context, query string) ([]domain.Book, error)
	FindByID(ctx context.Context, id int64) (domain.Book, error)
}

// DefaultBooks is the catalog the service starts with.
func DefaultBooks() []domain.Book {
	return []domain.Book{
		{ID: 1, Title: "Book 1", Author: "Author 1", ISBN: "1234567890"},
		{ID: 2, Title: "Book 2", Author: "Author 2", ISBN: "0987654321"},
	}
}

// MemoryRepository is a read-only catalog fixed at construction.
type MemoryRepository struct {
	mu    sync.RWMutex
	books []domain.Book
	byID  map[int64]int
}

func NewMemoryRepository(books []domain.Book) *MemoryRepository {
	sorted := make([]domain.Book, len(books))
	copy(sorted, books)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[int64]int, len(sorted))
	for i, b := range sorted {
		byID[b.ID] = i
	}
	return &MemoryRepository{books: sorted, byID: byID}
}

func (r *MemoryRepository) ListAll(ctx context.Context) ([]domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

// Search matches query as a plain substring of the ISBN, or as a
// case-insensitive substring of the title or author. An empty query
// matches every book.
func (r *MemoryRepository) Search(ctx context.Context, query string) ([]domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lowered := strings.ToLower(query)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Book, 0, len(r.books))
	for _, b := range r.books {
		if strings.Contains(b.ISBN, query) ||
			strings.Contains(strings.ToLower(b.Title), lowered) ||
			strings.Contains(strings.ToLower(b.Author), lowered) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id int64) (domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return domain.Book{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return domain.Book{}, ErrBookNotFound
	}
	return r.books[idx], nil
}

// IDs returns every book ID in ascending order.
func (r *MemoryRepository) IDs() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, len(r.books))
	for i, b := range r.books {
		ids[i] = b.ID
	}
	return ids
}
