package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/AlibekovAA/book-reviews/backend/internal/user/domain"
)

func TestMemoryRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, domain.User{Username: "alice", PasswordHash: "h1"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	user, err := repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if user.PasswordHash != "h1" {
		t.Errorf("expected hash h1, got %s", user.PasswordHash)
	}
}

func TestMemoryRepository_DuplicateUsername(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_ = repo.Create(ctx, domain.User{Username: "alice", PasswordHash: "h1"})
	err := repo.Create(ctx, domain.User{Username: "alice", PasswordHash: "h2"})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}

	user, _ := repo.FindByUsername(ctx, "alice")
	if user.PasswordHash != "h1" {
		t.Errorf("original user must be kept, got hash %s", user.PasswordHash)
	}
}

func TestMemoryRepository_NotFound(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.FindByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMemoryRepository_ConcurrentCreateSameUsername(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	var successes atomic.Int32
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := repo.Create(ctx, domain.User{Username: "alice", PasswordHash: fmt.Sprint(i)}); err == nil {
				successes.Add(1)
			}
		}(i)
	}
	wg.Wait()

	if successes.Load() != 1 {
		t.Fatalf("expected exactly one successful create, got %d", successes.Load())
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Errorf("expected 1 user, got %d", n)
	}
}

func TestMemoryRepository_CancelledContext(t *testing.T) {
	repo := NewMemoryRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := repo.Create(ctx, domain.User{Username: "alice"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
