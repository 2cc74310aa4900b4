package repository

import (
	"context"
	"sync"

	"github.com/AlibekovAA/book-reviews/backend/internal/observability/metrics"
	"github.com/AlibekovAA/book-reviews/backend/internal/review/domain"
)

type Repository interface {
	List(ctx context.Context, bookID int64) ([]domain.Review, error)
	Append(ctx context.Context, bookID int64, owner, text string) (int64, error)
	Remove(ctx context.Context, bookID, reviewID int64, requester string) error
}

// Ledger holds the reviews of every book. Review IDs come from a single
// counter shared by all books and are never reused. One mutex guards the
// counter and every per-book sequence.
type Ledger struct {
	mu     sync.Mutex
	lastID int64
	books  map[int64][]domain.Review
}

func NewLedger(bookIDs []int64) *Ledger {
	books := make(map[int64][]domain.Review, len(bookIDs))
	for _, id := range bookIDs {
		books[id] = nil
	}
	return &Ledger{books: books}
}

// List returns a copy of the book's reviews in insertion order.
func (l *Ledger) List(ctx context.Context, bookID int64) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	reviews, ok := l.books[bookID]
	if !ok {
		return nil, ErrBookNotFound
	}

	out := make([]domain.Review, len(reviews))
	copy(out, reviews)
	return out, nil
}

func (l *Ledger) Append(ctx context.Context, bookID int64, owner, text string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	reviews, ok := l.books[bookID]
	if !ok {
		return 0, ErrBookNotFound
	}

	l.lastID++
	l.books[bookID] = append(reviews, domain.Review{ID: l.lastID, Owner: owner, Text: text})

	metrics.ReviewsAdded.Inc()
	metrics.ReviewsStored.Inc()
	return l.lastID, nil
}

// Remove deletes the review only when requester owns it. A review owned by
// someone else is reported exactly like a missing one.
func (l *Ledger) Remove(ctx context.Context, bookID, reviewID int64, requester string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	reviews, ok := l.books[bookID]
	if !ok {
		return ErrBookNotFound
	}

	idx := -1
	for i, r := range reviews {
		if r.ID == reviewID && r.Owner == requester {
			idx = i
			break
		}
	}
	if idx == -1 {
		metrics.ReviewRemovalsRejected.Inc()
		return ErrReviewNotFound
	}

	l.books[bookID] = append(reviews[:idx:idx], reviews[idx+1:]...)

	metrics.ReviewsRemoved.Inc()
	metrics.ReviewsStored.Dec()
	return nil
}

// Count returns the number of reviews across all books.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, reviews := range l.books {
		n += len(reviews)
	}
	return n
}
