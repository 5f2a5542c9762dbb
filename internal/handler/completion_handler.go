package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/fornolabs/pizza-contest-api/internal/service"
	"github.com/fornolabs/pizza-contest-api/internal/utils"
)

// CompletionHandler reports voting progress per pizza for administrators.
type CompletionHandler struct {
	service service.CompletionService
	logger  zerolog.Logger
}

// NewCompletionHandler constructs a completion handler.
func NewCompletionHandler(service service.CompletionService, logger zerolog.Logger) *CompletionHandler {
	return &CompletionHandler{
		service: service,
		logger:  logger.With().Str("component", "completion_handler").Logger(),
	}
}

// Register wires completion routes.
func (h *CompletionHandler) Register(router fiber.Router) {
	router.Get("/:id/completion", h.forPizza)
}

func (h *CompletionHandler) forPizza(c *fiber.Ctx) error {
	pizzaID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid pizza id")
	}

	report, err := h.service.ForPizza(c.Context(), pizzaID)
	if err != nil {
		if errors.Is(err, service.ErrPizzaNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "pizza not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build completion report")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build completion report")
	}

	return utils.SendSuccess(c, "completion retrieved", report)
}
