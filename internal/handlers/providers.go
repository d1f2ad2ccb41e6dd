package handlers

import (
	"strconv"

	"tripmate/internal/models"
	"tripmate/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProviderHandler handles completion provider management (admin only)
type ProviderHandler struct {
	providers *services.ProviderService
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(providers *services.ProviderService) *ProviderHandler {
	return &ProviderHandler{providers: providers}
}

// List returns all configured providers with API keys redacted
// GET /api/providers
func (h *ProviderHandler) List(c *fiber.Ctx) error {
	if role, _ := c.Locals("user_role").(string); role != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Admin access required",
		})
	}

	providers, err := h.providers.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch providers",
		})
	}
	for i := range providers {
		providers[i].APIKey = ""
	}
	if providers == nil {
		providers = []models.LLMProvider{}
	}
	return c.JSON(providers)
}

// SetEnabled toggles a provider
// PATCH /api/providers/:id
func (h *ProviderHandler) SetEnabled(c *fiber.Ctx) error {
	if role, _ := c.Locals("user_role").(string); role != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Admin access required",
		})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider id",
		})
	}

	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.providers.SetEnabled(c.Context(), id, req.Enabled); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
