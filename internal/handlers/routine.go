package handlers

import (
	"tripmate/internal/models"
	"tripmate/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RoutineHandler handles daily routine endpoints
type RoutineHandler struct {
	routines *services.RoutineService
	stats    *services.StatsService
}

// NewRoutineHandler creates a new routine handler
func NewRoutineHandler(routines *services.RoutineService, stats *services.StatsService) *RoutineHandler {
	return &RoutineHandler{routines: routines, stats: stats}
}

// List returns the user's routine items with today's checks
// GET /api/routine
func (h *RoutineHandler) List(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	items, err := h.routines.ListItems(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch routine items",
		})
	}
	if items == nil {
		items = []models.RoutineItem{}
	}

	date := c.Query("date")
	if date == "" {
		date = services.TodayDate()
	}
	checks, err := h.routines.ChecksForDate(c.Context(), userID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch routine checks",
		})
	}
	if checks == nil {
		checks = []models.RoutineCheck{}
	}

	return c.JSON(fiber.Map{
		"items":  items,
		"checks": checks,
		"date":   date,
	})
}

// Create adds a routine item
// POST /api/routine
func (h *RoutineHandler) Create(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req models.CreateRoutineItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid routine item data",
		})
	}

	item, err := h.routines.CreateItem(c.Context(), userID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// MarkDone records today's completion state for an item
// POST /api/routine/:id/done
func (h *RoutineHandler) MarkDone(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	// Body is optional; an empty body marks the item done
	var req struct {
		Done *bool `json:"done"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}
	done := true
	if req.Done != nil {
		done = *req.Done
	}

	check, err := h.routines.MarkDone(c.Context(), userID, c.Params("id"), done)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.stats.Invalidate(c.Context(), userID)
	return c.JSON(check)
}
