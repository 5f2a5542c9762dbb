package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/fornolabs/pizza-contest-api/internal/dto"
	"github.com/fornolabs/pizza-contest-api/internal/models"
	"github.com/fornolabs/pizza-contest-api/internal/repository"
)

var (
	// ErrSeedDisabled indicates the seeding tools are disabled by configuration.
	ErrSeedDisabled = errors.New("seeding is disabled")
	// ErrSeedUnauthorized indicates the provided token is invalid.
	ErrSeedUnauthorized = errors.New("invalid seed token")
	// ErrSeedInvalid indicates the seed document failed schema validation.
	ErrSeedInvalid = errors.New("invalid seed document")
)

// seedSchema constrains the bootstrap document before anything is written.
const seedSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "profiles": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "username", "email"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string", "minLength": 36, "maxLength": 36},
          "username": {"type": "string", "minLength": 1},
          "email": {"type": "string", "minLength": 3},
          "is_admin": {"type": "boolean"}
        }
      }
    },
    "pizzas": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "contestant_name": {"type": "string"}
        }
      }
    }
  }
}`

type seedDocument struct {
	Profiles []struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		IsAdmin  bool   `json:"is_admin"`
	} `json:"profiles"`
	Pizzas []struct {
		Name           string `json:"name"`
		ContestantName string `json:"contestant_name"`
	} `json:"pizzas"`
}

// SeedService bootstraps profiles and pizzas from a JSON document.
type SeedService interface {
	Apply(ctx context.Context, token string, raw []byte) (dto.SeedSummary, error)
}

type seedService struct {
	profiles repository.ProfileRepository
	pizzas   repository.PizzaRepository
	schema   *jsonschema.Schema
	enabled  bool
	token    string
	logger   zerolog.Logger
}

// NewSeedService constructs a seeding service.
func NewSeedService(profileRepo repository.ProfileRepository, pizzaRepo repository.PizzaRepository, enabled bool, token string, logger zerolog.Logger) SeedService {
	return &seedService{
		profiles: profileRepo,
		pizzas:   pizzaRepo,
		schema:   jsonschema.MustCompileString("seed.schema.json", seedSchema),
		enabled:  enabled,
		token:    token,
		logger:   logger.With().Str("component", "seed_service").Logger(),
	}
}

func (s *seedService) Apply(ctx context.Context, token string, raw []byte) (dto.SeedSummary, error) {
	if !s.enabled {
		return dto.SeedSummary{}, ErrSeedDisabled
	}
	if !s.validateToken(token) {
		return dto.SeedSummary{}, ErrSeedUnauthorized
	}

	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return dto.SeedSummary{}, fmt.Errorf("%w: %v", ErrSeedInvalid, err)
	}
	if err := s.schema.Validate(generic); err != nil {
		return dto.SeedSummary{}, fmt.Errorf("%w: %v", ErrSeedInvalid, err)
	}

	var document seedDocument
	if err := json.Unmarshal(raw, &document); err != nil {
		return dto.SeedSummary{}, fmt.Errorf("%w: %v", ErrSeedInvalid, err)
	}

	summary := dto.SeedSummary{}

	for _, entry := range document.Profiles {
		id, err := uuid.Parse(entry.ID)
		if err != nil {
			return summary, fmt.Errorf("%w: profile id %q: %v", ErrSeedInvalid, entry.ID, err)
		}

		profile := models.Profile{
			ID:       id,
			Username: entry.Username,
			Email:    entry.Email,
			IsAdmin:  entry.IsAdmin,
		}
		if err := s.profiles.Create(ctx, &profile); err != nil {
			return summary, err
		}
		summary.ProfilesCreated++
	}

	position, err := s.pizzas.MaxPosition(ctx)
	if err != nil {
		return summary, err
	}

	for _, entry := range document.Pizzas {
		position++
		pizza := models.Pizza{
			Name:           entry.Name,
			ContestantName: entry.ContestantName,
			OrderPosition:  position,
			IsActive:       true,
		}
		if err := s.pizzas.Create(ctx, &pizza); err != nil {
			return summary, err
		}
		summary.PizzasCreated++
	}

	s.logger.Info().
		Int("profiles", summary.ProfilesCreated).
		Int("pizzas", summary.PizzasCreated).
		Msg("contest seeded")

	return summary, nil
}

func (s *seedService) validateToken(token string) bool {
	expected := strings.TrimSpace(s.token)
	return expected != "" && strings.TrimSpace(token) == expected
}
