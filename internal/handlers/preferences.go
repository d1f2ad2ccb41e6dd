package handlers

import (
	"tripmate/internal/models"
	"tripmate/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PreferencesHandler handles the per-user settings endpoints
type PreferencesHandler struct {
	preferences *services.PreferencesService
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(preferences *services.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{preferences: preferences}
}

// Get returns the user's preferences
// GET /api/preferences
func (h *PreferencesHandler) Get(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	prefs, err := h.preferences.Get(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch preferences",
		})
	}
	return c.JSON(prefs)
}

// Update applies a partial preferences update
// PATCH /api/preferences
func (h *PreferencesHandler) Update(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if !h.preferences.Available() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Preferences storage not configured",
		})
	}

	var req models.UpdatePreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid preferences data",
		})
	}

	prefs, err := h.preferences.Update(c.Context(), userID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(prefs)
}
