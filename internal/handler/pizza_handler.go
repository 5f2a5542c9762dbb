package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/fornolabs/pizza-contest-api/internal/dto"
	"github.com/fornolabs/pizza-contest-api/internal/service"
	"github.com/fornolabs/pizza-contest-api/internal/utils"
)

// PizzaHandler exposes management of contest entries plus the
// voter-facing catalogue of entries open for voting.
type PizzaHandler struct {
	service service.PizzaService
	logger  zerolog.Logger
}

// NewPizzaHandler constructs a pizza handler.
func NewPizzaHandler(service service.PizzaService, logger zerolog.Logger) *PizzaHandler {
	return &PizzaHandler{
		service: service,
		logger:  logger.With().Str("component", "pizza_handler").Logger(),
	}
}

// Register wires pizza management routes.
func (h *PizzaHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
	router.Post("/:id/photo", h.uploadPhoto)
}

// RegisterVoter wires the read-only listing voters use to pick an
// entry to score.
func (h *PizzaHandler) RegisterVoter(router fiber.Router) {
	router.Get("", h.listActive)
}

func (h *PizzaHandler) list(c *fiber.Ctx) error {
	pizzas, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list pizzas")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list pizzas")
	}

	return utils.SendSuccess(c, "pizzas retrieved", pizzas)
}

func (h *PizzaHandler) listActive(c *fiber.Ctx) error {
	pizzas, err := h.service.ListActive(c.Context(), viewerFromContext(c))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list active pizzas")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list pizzas")
	}

	return utils.SendSuccess(c, "pizzas retrieved", pizzas)
}

func (h *PizzaHandler) create(c *fiber.Ctx) error {
	var payload dto.PizzaCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	pizza, err := h.service.Create(c.Context(), auditActorFromContext(c), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid pizza payload")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create pizza")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create pizza")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "pizza created", pizza)
}

func (h *PizzaHandler) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid pizza id")
	}

	var payload dto.PizzaUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	pizza, err := h.service.Update(c.Context(), auditActorFromContext(c), id, payload)
	if err != nil {
		return h.writeError(c, err, "failed to update pizza")
	}

	return utils.SendSuccess(c, "pizza updated", pizza)
}

func (h *PizzaHandler) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid pizza id")
	}

	if err := h.service.Delete(c.Context(), auditActorFromContext(c), id); err != nil {
		return h.writeError(c, err, "failed to delete pizza")
	}

	return utils.SendSuccess(c, "pizza deleted", nil)
}

func (h *PizzaHandler) uploadPhoto(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid pizza id")
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "photo file is required")
	}

	pizza, err := h.service.UploadPhoto(c.Context(), auditActorFromContext(c), id, file)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedPhotoType) {
			return utils.SendError(c, fiber.StatusUnsupportedMediaType, "unsupported photo type")
		}
		return h.writeError(c, err, "failed to upload photo")
	}

	return utils.SendSuccess(c, "photo uploaded", pizza)
}

func (h *PizzaHandler) writeError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrPizzaNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "pizza not found")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, "invalid pizza payload")
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg(fallback)
		return utils.SendError(c, fiber.StatusInternalServerError, fallback)
	}
}
