package dto

import (
	"time"

	"github.com/fornolabs/pizza-contest-api/internal/models"
)

// PizzaCreateRequest describes the payload for registering a new entry.
type PizzaCreateRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=255"`
	ContestantName string `json:"contestant_name" validate:"omitempty,max=255"`
}

// PizzaUpdateRequest carries partial updates to an existing entry.
type PizzaUpdateRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=255"`
	ContestantName *string `json:"contestant_name" validate:"omitempty,max=255"`
	OrderPosition  *int    `json:"order_position" validate:"omitempty,gt=0"`
	IsActive       *bool   `json:"is_active"`
}

// PizzaResponse is the administrative view of an entry.
type PizzaResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	ContestantName string    `json:"contestant_name,omitempty"`
	OrderPosition  int       `json:"order_position"`
	IsActive       bool      `json:"is_active"`
	PhotoURL       string    `json:"photo_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewPizzaResponse converts a Pizza model into a DTO.
func NewPizzaResponse(model models.Pizza) PizzaResponse {
	return PizzaResponse{
		ID:             model.ID,
		Name:           model.Name,
		ContestantName: model.ContestantName,
		OrderPosition:  model.OrderPosition,
		IsActive:       model.IsActive,
		PhotoURL:       model.PhotoURL,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

// NewPizzaResponseSlice converts pizza models into DTOs.
func NewPizzaResponseSlice(models []models.Pizza) []PizzaResponse {
	responses := make([]PizzaResponse, 0, len(models))
	for _, pizza := range models {
		responses = append(responses, NewPizzaResponse(pizza))
	}

	return responses
}
