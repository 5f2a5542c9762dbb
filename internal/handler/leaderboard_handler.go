package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/fornolabs/pizza-contest-api/internal/scoring"
	"github.com/fornolabs/pizza-contest-api/internal/service"
	"github.com/fornolabs/pizza-contest-api/internal/utils"
)

// LeaderboardHandler exposes the ranked contest view.
type LeaderboardHandler struct {
	service service.LeaderboardService
	logger  zerolog.Logger
}

// NewLeaderboardHandler constructs a leaderboard handler.
func NewLeaderboardHandler(service service.LeaderboardService, logger zerolog.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		service: service,
		logger:  logger.With().Str("component", "leaderboard_handler").Logger(),
	}
}

// Register wires leaderboard routes.
func (h *LeaderboardHandler) Register(router fiber.Router) {
	router.Get("", h.get)
}

func (h *LeaderboardHandler) get(c *fiber.Ctx) error {
	metric, err := scoring.ParseMetric(c.Query("metric", "overall"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid metric")
	}

	response, err := h.service.Get(c.Context(), viewerFromContext(c), metric)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build leaderboard")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build leaderboard")
	}

	return utils.SendSuccess(c, "leaderboard retrieved", response)
}
