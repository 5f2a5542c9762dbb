package dto

import (
	"time"

	"github.com/fornolabs/pizza-contest-api/internal/models"
)

// VoteSubmitRequest carries one user's scores for a pizza. Range and
// half-point granularity are enforced by the scoring engine so the
// rejection reason stays typed; the struct tags only gate the target.
type VoteSubmitRequest struct {
	PizzaID   uint    `json:"pizza_id" validate:"required,gt=0"`
	Category1 float64 `json:"category_1"`
	Category2 float64 `json:"category_2"`
	Category3 float64 `json:"category_3"`
	Category4 float64 `json:"category_4"`
	Category5 float64 `json:"category_5"`
}

// VoteResponse echoes a stored vote back to its owner, used to prefill
// the scoring sliders.
type VoteResponse struct {
	PizzaID   uint      `json:"pizza_id"`
	Category1 float64   `json:"category_1"`
	Category2 float64   `json:"category_2"`
	Category3 float64   `json:"category_3"`
	Category4 float64   `json:"category_4"`
	Category5 float64   `json:"category_5"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewVoteResponse converts a Vote model into a DTO.
func NewVoteResponse(model models.Vote) VoteResponse {
	return VoteResponse{
		PizzaID:   model.PizzaID,
		Category1: model.Category1,
		Category2: model.Category2,
		Category3: model.Category3,
		Category4: model.Category4,
		Category5: model.Category5,
		UpdatedAt: model.UpdatedAt,
	}
}

// NewVoteResponseSlice converts vote models into DTOs.
func NewVoteResponseSlice(models []models.Vote) []VoteResponse {
	responses := make([]VoteResponse, 0, len(models))
	for _, vote := range models {
		responses = append(responses, NewVoteResponse(vote))
	}

	return responses
}
