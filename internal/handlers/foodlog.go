package handlers

import (
	"tripmate/internal/models"
	"tripmate/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FoodLogHandler handles meal and water logging endpoints
type FoodLogHandler struct {
	foodLogs *services.FoodLogService
	stats    *services.StatsService
}

// NewFoodLogHandler creates a new food log handler
func NewFoodLogHandler(foodLogs *services.FoodLogService, stats *services.StatsService) *FoodLogHandler {
	return &FoodLogHandler{foodLogs: foodLogs, stats: stats}
}

// CreateMeal logs a meal
// POST /api/meals
func (h *FoodLogHandler) CreateMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req models.CreateMealLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid meal data",
		})
	}

	mealLog, err := h.foodLogs.CreateMeal(c.Context(), userID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.stats.Invalidate(c.Context(), userID)
	return c.Status(fiber.StatusCreated).JSON(mealLog)
}

// CreateWater logs a water intake
// POST /api/water
func (h *FoodLogHandler) CreateWater(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	// Body is optional; an empty body logs one glass
	var req models.CreateWaterLogRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid water data",
			})
		}
	}

	water, err := h.foodLogs.CreateWater(c.Context(), userID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.stats.Invalidate(c.Context(), userID)
	return c.Status(fiber.StatusCreated).JSON(water)
}
