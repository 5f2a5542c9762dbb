package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/fornolabs/pizza-contest-api/internal/dto"
	"github.com/fornolabs/pizza-contest-api/internal/models"
	"github.com/fornolabs/pizza-contest-api/internal/repository"
	"github.com/fornolabs/pizza-contest-api/internal/scoring"
)

// ErrUnsupportedPhotoType indicates an uploaded pizza photo is not an image.
var ErrUnsupportedPhotoType = errors.New("unsupported photo type")

// FileUploader abstracts uploading binary data and returning a URL.
type FileUploader interface {
	Upload(ctx context.Context, name string, reader io.Reader) (string, error)
}

// PizzaService manages contest entries. Writes are administrative;
// voters see entries through ListActive, which redacts contestant
// identities while voting is anonymous.
type PizzaService interface {
	List(ctx context.Context) ([]dto.PizzaResponse, error)
	ListActive(ctx context.Context, viewer scoring.Viewer) ([]dto.PizzaResponse, error)
	Create(ctx context.Context, actor AuditActor, payload dto.PizzaCreateRequest) (dto.PizzaResponse, error)
	Update(ctx context.Context, actor AuditActor, id uint, payload dto.PizzaUpdateRequest) (dto.PizzaResponse, error)
	Delete(ctx context.Context, actor AuditActor, id uint) error
	UploadPhoto(ctx context.Context, actor AuditActor, id uint, file *multipart.FileHeader) (dto.PizzaResponse, error)
}

type pizzaService struct {
	pizzas    repository.PizzaRepository
	validator *validator.Validate
	uploader  FileUploader
	cache     *redis.Client
	audit     AuditRecorder
	policy    *bluemonday.Policy
	logger    zerolog.Logger
}

// NewPizzaService constructs a PizzaService instance.
func NewPizzaService(pizzaRepo repository.PizzaRepository, validate *validator.Validate, uploader FileUploader, cache *redis.Client, audit AuditRecorder, logger zerolog.Logger) PizzaService {
	return &pizzaService{
		pizzas:    pizzaRepo,
		validator: validate,
		uploader:  uploader,
		cache:     cache,
		audit:     audit,
		policy:    bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "pizza_service").Logger(),
	}
}

func (s *pizzaService) List(ctx context.Context) ([]dto.PizzaResponse, error) {
	pizzas, err := s.pizzas.List(ctx, repository.PizzaFilter{})
	if err != nil {
		return nil, err
	}

	return dto.NewPizzaResponseSlice(pizzas), nil
}

// ListActive is the voter-facing catalogue: entries open for voting in
// listing order, with the contestant identity redacted per viewer.
func (s *pizzaService) ListActive(ctx context.Context, viewer scoring.Viewer) ([]dto.PizzaResponse, error) {
	pizzas, err := s.pizzas.List(ctx, repository.PizzaFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PizzaResponse, 0, len(pizzas))
	for _, pizza := range pizzas {
		response := dto.NewPizzaResponse(pizza)
		response.ContestantName = scoring.ContestantName(pizza, viewer)
		responses = append(responses, response)
	}

	return responses, nil
}

func (s *pizzaService) Create(ctx context.Context, actor AuditActor, payload dto.PizzaCreateRequest) (dto.PizzaResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.PizzaResponse{}, err
	}

	maxPosition, err := s.pizzas.MaxPosition(ctx)
	if err != nil {
		return dto.PizzaResponse{}, err
	}

	pizza := models.Pizza{
		Name:           s.sanitize(payload.Name),
		ContestantName: s.sanitize(payload.ContestantName),
		OrderPosition:  maxPosition + 1,
		IsActive:       true,
	}

	if pizza.Name == "" {
		return dto.PizzaResponse{}, fmt.Errorf("pizza name must not be empty")
	}

	if err := s.pizzas.Create(ctx, &pizza); err != nil {
		return dto.PizzaResponse{}, err
	}

	invalidateLeaderboardCache(ctx, s.cache, s.logger)
	s.recordAudit(ctx, actor, "pizza.created", pizza.ID, map[string]interface{}{"name": pizza.Name})

	s.logger.Info().Uint("pizza_id", pizza.ID).Msg("pizza created")

	return dto.NewPizzaResponse(pizza), nil
}

func (s *pizzaService) Update(ctx context.Context, actor AuditActor, id uint, payload dto.PizzaUpdateRequest) (dto.PizzaResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.PizzaResponse{}, err
	}

	pizza, err := s.pizzas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PizzaResponse{}, ErrPizzaNotFound
		}
		return dto.PizzaResponse{}, err
	}

	if payload.Name != nil {
		name := s.sanitize(*payload.Name)
		if name == "" {
			return dto.PizzaResponse{}, fmt.Errorf("pizza name must not be empty")
		}
		pizza.Name = name
	}

	if payload.ContestantName != nil {
		pizza.ContestantName = s.sanitize(*payload.ContestantName)
	}

	if payload.OrderPosition != nil {
		pizza.OrderPosition = *payload.OrderPosition
	}

	if payload.IsActive != nil {
		pizza.IsActive = *payload.IsActive
	}

	if err := s.pizzas.Update(ctx, &pizza); err != nil {
		return dto.PizzaResponse{}, err
	}

	invalidateLeaderboardCache(ctx, s.cache, s.logger)
	s.recordAudit(ctx, actor, "pizza.updated", pizza.ID, nil)

	return dto.NewPizzaResponse(pizza), nil
}

func (s *pizzaService) Delete(ctx context.Context, actor AuditActor, id uint) error {
	if _, err := s.pizzas.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPizzaNotFound
		}
		return err
	}

	if err := s.pizzas.Delete(ctx, id); err != nil {
		return err
	}

	invalidateLeaderboardCache(ctx, s.cache, s.logger)
	s.recordAudit(ctx, actor, "pizza.deleted", id, nil)

	s.logger.Info().Uint("pizza_id", id).Msg("pizza deleted")

	return nil
}

func (s *pizzaService) UploadPhoto(ctx context.Context, actor AuditActor, id uint, file *multipart.FileHeader) (dto.PizzaResponse, error) {
	if file == nil {
		return dto.PizzaResponse{}, fmt.Errorf("photo file is required")
	}

	pizza, err := s.pizzas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PizzaResponse{}, ErrPizzaNotFound
		}
		return dto.PizzaResponse{}, err
	}

	if err := validatePhotoType(file); err != nil {
		return dto.PizzaResponse{}, err
	}

	reader, err := file.Open()
	if err != nil {
		return dto.PizzaResponse{}, fmt.Errorf("failed to open photo: %w", err)
	}
	defer reader.Close()

	photoURL, err := s.uploader.Upload(ctx, file.Filename, reader)
	if err != nil {
		return dto.PizzaResponse{}, fmt.Errorf("failed to upload photo: %w", err)
	}

	pizza.PhotoURL = photoURL
	if err := s.pizzas.Update(ctx, &pizza); err != nil {
		return dto.PizzaResponse{}, err
	}

	s.recordAudit(ctx, actor, "pizza.photo_uploaded", pizza.ID, nil)

	return dto.NewPizzaResponse(pizza), nil
}

func (s *pizzaService) sanitize(value string) string {
	return strings.TrimSpace(s.policy.Sanitize(value))
}

func (s *pizzaService) recordAudit(ctx context.Context, actor AuditActor, action string, pizzaID uint, metadata map[string]interface{}) {
	if s.audit == nil {
		return
	}

	id := pizzaID
	if _, err := s.audit.Record(ctx, AuditEntry{
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Action:     action,
		EntityType: "pizza",
		EntityID:   &id,
		Metadata:   metadata,
	}); err != nil {
		s.logger.Warn().Err(err).Str("action", action).Msg("failed to record audit entry")
	}
}

func validatePhotoType(file *multipart.FileHeader) error {
	reader, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open photo: %w", err)
	}
	defer reader.Close()

	mime, err := mimetype.DetectReader(reader)
	if err != nil {
		return fmt.Errorf("failed to detect photo type: %w", err)
	}

	allowed := []string{"image/jpeg", "image/png", "image/webp"}
	for _, a := range allowed {
		if mime.Is(a) {
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrUnsupportedPhotoType, mime.String())
}
