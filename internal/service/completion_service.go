package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/fornolabs/pizza-contest-api/internal/dto"
	"github.com/fornolabs/pizza-contest-api/internal/repository"
	"github.com/fornolabs/pizza-contest-api/internal/scoring"
)

// CompletionService reports which eligible voters still have to score a
// pizza. Administrators are not eligible and are never listed as missing.
type CompletionService interface {
	ForPizza(ctx context.Context, pizzaID uint) (dto.CompletionResponse, error)
}

type completionService struct {
	pizzas   repository.PizzaRepository
	votes    repository.VoteRepository
	profiles repository.ProfileRepository
	logger   zerolog.Logger
}

// NewCompletionService constructs a CompletionService instance.
func NewCompletionService(pizzaRepo repository.PizzaRepository, voteRepo repository.VoteRepository, profileRepo repository.ProfileRepository, logger zerolog.Logger) CompletionService {
	return &completionService{
		pizzas:   pizzaRepo,
		votes:    voteRepo,
		profiles: profileRepo,
		logger:   logger.With().Str("component", "completion_service").Logger(),
	}
}

func (s *completionService) ForPizza(ctx context.Context, pizzaID uint) (dto.CompletionResponse, error) {
	// An unknown pizza is a caller contract violation, not an empty report.
	pizza, err := s.pizzas.GetByID(ctx, pizzaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CompletionResponse{}, ErrPizzaNotFound
		}
		return dto.CompletionResponse{}, err
	}

	profiles, err := s.profiles.List(ctx, repository.ProfileFilter{ExcludeAdmins: true})
	if err != nil {
		return dto.CompletionResponse{}, err
	}

	votes, err := s.votes.ListByPizza(ctx, pizza.ID)
	if err != nil {
		return dto.CompletionResponse{}, err
	}

	eligible := make([]scoring.Voter, 0, len(profiles))
	for _, profile := range profiles {
		eligible = append(eligible, scoring.Voter{ID: profile.ID, Username: profile.Username})
	}

	report := scoring.Completion(pizza.ID, eligible, votes)

	return dto.NewCompletionResponse(report), nil
}
