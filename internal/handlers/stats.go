package handlers

import (
	"tripmate/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles the daily dashboard endpoint
type StatsHandler struct {
	stats *services.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Today returns the current day's aggregate
// GET /api/stats/today
func (h *StatsHandler) Today(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := h.stats.Today(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch today's stats",
		})
	}
	return c.JSON(stats)
}
