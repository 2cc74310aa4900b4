package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlibekovAA/book-reviews/backend/internal/catalog/domain"
	"github.com/AlibekovAA/book-reviews/backend/internal/catalog/repository"
)

func titles(books []domain.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func TestMemoryRepository_ListAll(t *testing.T) {
	repo := repository.NewMemoryRepository(repository.DefaultBooks())

	books, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Book 1", "Book 2"}, titles(books))

	books[0].Title = "mutated"
	again, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Book 1", again[0].Title)
}

func TestMemoryRepository_SortsByID(t *testing.T) {
	repo := repository.NewMemoryRepository([]domain.Book{
		{ID: 3, Title: "C"},
		{ID: 1, Title: "A"},
		{ID: 2, Title: "B"},
	})

	assert.Equal(t, []int64{1, 2, 3}, repo.IDs())
}

func TestMemoryRepository_Search(t *testing.T) {
	repo := repository.NewMemoryRepository(repository.DefaultBooks())
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"isbn substring", "12345", []string{"Book 1"}},
		{"isbn of second book", "0987", []string{"Book 2"}},
		{"title lower case", "book 2", []string{"Book 2"}},
		{"title upper case", "BOOK", []string{"Book 1", "Book 2"}},
		{"author mixed case", "aUtHoR 1", []string{"Book 1"}},
		{"empty query", "", []string{"Book 1", "Book 2"}},
		{"no match", "tolkien", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books, err := repo.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(books))
		})
	}
}

func TestMemoryRepository_SearchISBNIsCaseSensitive(t *testing.T) {
	repo := repository.NewMemoryRepository([]domain.Book{
		{ID: 1, Title: "T", Author: "A", ISBN: "080442957X"},
	})

	upper, err := repo.Search(context.Background(), "957X")
	require.NoError(t, err)
	assert.Len(t, upper, 1)

	lower, err := repo.Search(context.Background(), "957x")
	require.NoError(t, err)
	assert.Empty(t, lower)
}

func TestMemoryRepository_FindByID(t *testing.T) {
	repo := repository.NewMemoryRepository(repository.DefaultBooks())
	ctx := context.Background()

	book, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Author 2", book.Author)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrBookNotFound)
}

func TestMemoryRepository_CancelledContext(t *testing.T) {
	repo := repository.NewMemoryRepository(repository.DefaultBooks())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.Search(ctx, "book")
	assert.ErrorIs(t, err, context.Canceled)
}
