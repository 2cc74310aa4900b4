package repository

import (
	"net/http"

	commonerrors "github.com/AlibekovAA/book-reviews/backend/internal/common/errors"
)

var (
	ErrBookNotFound = commonerrors.NewDomainError(
		"BOOK_NOT_FOUND",
		commonerrors.CategoryNotFound,
		http.StatusNotFound,
		"Book not found",
	)

	// ErrReviewNotFound also covers reviews owned by someone else.
	ErrReviewNotFound = commonerrors.NewDomainError(
		"REVIEW_NOT_FOUND",
		commonerrors.CategoryNotFound,
		http.StatusNotFound,
		"Review not found or unauthorized",
	)
)
