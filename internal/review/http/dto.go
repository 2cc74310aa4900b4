package http

import "github.com/AlibekovAA/book-reviews/backend/internal/review/domain"

type ReviewResponse struct {
	ID    int64  `json:"id"`
	Owner string `json:"owner"`
	Text  string `json:"text"`
}

// ToResponses never returns nil so an empty list encodes as [].
func ToResponses(reviews []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewResponse{ID: r.ID, Owner: r.Owner, Text: r.Text})
	}
	return out
}

type addReviewRequest struct {
	Review string `json:"review" validate:"required,max=4000"`
}

type addReviewResponse struct {
	Message  string `json:"message"`
	ReviewID int64  `json:"reviewId"`
}
