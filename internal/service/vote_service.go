package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/fornolabs/pizza-contest-api/internal/dto"
	"github.com/fornolabs/pizza-contest-api/internal/models"
	"github.com/fornolabs/pizza-contest-api/internal/observability"
	"github.com/fornolabs/pizza-contest-api/internal/repository"
	"github.com/fornolabs/pizza-contest-api/internal/scoring"
)

var (
	// ErrPizzaNotFound indicates the referenced pizza does not exist.
	ErrPizzaNotFound = errors.New("pizza not found")
	// ErrPizzaInactive indicates the pizza is not open for voting.
	ErrPizzaInactive = errors.New("pizza is not active")
)

// VoteService orchestrates score submissions. A vote is always written
// under the authenticated caller's identity, never on behalf of another
// user, and resubmissions replace the prior row.
type VoteService interface {
	Submit(ctx context.Context, actor AuditActor, payload dto.VoteSubmitRequest) (dto.VoteResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]dto.VoteResponse, error)
}

type voteService struct {
	votes     repository.VoteRepository
	pizzas    repository.PizzaRepository
	validator *validator.Validate
	cache     *redis.Client
	audit     AuditRecorder
	logger    zerolog.Logger
}

// NewVoteService constructs a VoteService instance.
func NewVoteService(voteRepo repository.VoteRepository, pizzaRepo repository.PizzaRepository, validate *validator.Validate, cache *redis.Client, audit AuditRecorder, logger zerolog.Logger) VoteService {
	return &voteService{
		votes:     voteRepo,
		pizzas:    pizzaRepo,
		validator: validate,
		cache:     cache,
		audit:     audit,
		logger:    logger.With().Str("component", "vote_service").Logger(),
	}
}

func (s *voteService) Submit(ctx context.Context, actor AuditActor, payload dto.VoteSubmitRequest) (dto.VoteResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.VoteResponse{}, err
	}

	card := scoring.ScoreCard{
		payload.Category1,
		payload.Category2,
		payload.Category3,
		payload.Category4,
		payload.Category5,
	}
	if err := card.Validate(); err != nil {
		observability.VoteSubmissions().WithLabelValues("rejected").Inc()
		return dto.VoteResponse{}, err
	}

	pizza, err := s.pizzas.GetByID(ctx, payload.PizzaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.VoteResponse{}, ErrPizzaNotFound
		}
		return dto.VoteResponse{}, err
	}

	if !pizza.IsActive {
		return dto.VoteResponse{}, ErrPizzaInactive
	}

	vote := models.Vote{
		UserID:    actor.ID,
		PizzaID:   pizza.ID,
		Category1: payload.Category1,
		Category2: payload.Category2,
		Category3: payload.Category3,
		Category4: payload.Category4,
		Category5: payload.Category5,
	}

	if err := s.votes.Upsert(ctx, &vote); err != nil {
		return dto.VoteResponse{}, err
	}

	observability.VoteSubmissions().WithLabelValues("accepted").Inc()
	invalidateLeaderboardCache(ctx, s.cache, s.logger)

	if s.audit != nil {
		pizzaID := pizza.ID
		if _, err := s.audit.Record(ctx, AuditEntry{
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
			Action:     "vote.submitted",
			EntityType: "pizza",
			EntityID:   &pizzaID,
		}); err != nil {
			s.logger.Warn().Err(err).Msg("failed to record vote audit entry")
		}
	}

	s.logger.Info().
		Str("user_id", actor.ID.String()).
		Uint("pizza_id", pizza.ID).
		Msg("vote submitted")

	return dto.NewVoteResponse(vote), nil
}

func (s *voteService) ListMine(ctx context.Context, userID uuid.UUID) ([]dto.VoteResponse, error) {
	votes, err := s.votes.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return dto.NewVoteResponseSlice(votes), nil
}
