package response

import (
	"time"

	"service-booking/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	UserID    string    `json:"user_id"`
	ServiceID string    `json:"service_id"`
	CreatedAt time.Time `json:"created_at"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		UserID:    review.UserID.String(),
		ServiceID: review.ServiceID.String(),
		CreatedAt: review.CreatedAt,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = ReviewToResponse(review)
	}
	return out
}

// AverageRating is nil when the matching review set is empty.
type RatingResponse struct {
	AverageRating *float64 `json:"average_rating"`
}
