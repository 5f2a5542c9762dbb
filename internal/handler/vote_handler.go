package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/fornolabs/pizza-contest-api/internal/dto"
	"github.com/fornolabs/pizza-contest-api/internal/scoring"
	"github.com/fornolabs/pizza-contest-api/internal/service"
	"github.com/fornolabs/pizza-contest-api/internal/utils"
)

// VoteHandler exposes score submission endpoints for authenticated voters.
type VoteHandler struct {
	service service.VoteService
	logger  zerolog.Logger
}

// NewVoteHandler constructs a vote handler.
func NewVoteHandler(service service.VoteService, logger zerolog.Logger) *VoteHandler {
	return &VoteHandler{
		service: service,
		logger:  logger.With().Str("component", "vote_handler").Logger(),
	}
}

// Register wires vote routes.
func (h *VoteHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
	router.Get("/mine", h.listMine)
}

func (h *VoteHandler) submit(c *fiber.Ctx) error {
	var payload dto.VoteSubmitRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	actor := auditActorFromContext(c)
	response, err := h.service.Submit(c.Context(), actor, payload)
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrScoreOutOfRange), errors.Is(err, scoring.ErrInvalidGranularity):
			return utils.SendError(c, fiber.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, service.ErrPizzaNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "pizza not found")
		case errors.Is(err, service.ErrPizzaInactive):
			return utils.SendError(c, fiber.StatusConflict, "pizza is not open for voting")
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, "invalid vote payload")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to submit vote")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to submit vote")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "vote recorded", response)
}

func (h *VoteHandler) listMine(c *fiber.Ctx) error {
	votes, err := h.service.ListMine(c.Context(), userIDFromContext(c))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list votes")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list votes")
	}

	return utils.SendSuccess(c, "votes retrieved", votes)
}
