package handlers

import (
	"tripmate/internal/models"
	"tripmate/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PinHandler handles destination pin endpoints
type PinHandler struct {
	pins *services.PinService
}

// NewPinHandler creates a new pin handler
func NewPinHandler(pins *services.PinService) *PinHandler {
	return &PinHandler{pins: pins}
}

// List returns the user's pins, optionally filtered by ?status=
// GET /api/pins
func (h *PinHandler) List(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	pins, err := h.pins.List(c.Context(), userID, c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch pins",
		})
	}
	if pins == nil {
		pins = []models.Pin{}
	}
	return c.JSON(pins)
}

// Create adds a pin
// POST /api/pins
func (h *PinHandler) Create(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req models.CreatePinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid pin data",
		})
	}

	pin, err := h.pins.Create(c.Context(), userID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(pin)
}

// Update applies a partial update to a pin
// PATCH /api/pins/:id
func (h *PinHandler) Update(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req models.UpdatePinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid pin data",
		})
	}

	pin, err := h.pins.Update(c.Context(), userID, c.Params("id"), req)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(pin)
}

// Delete removes a pin
// DELETE /api/pins/:id
func (h *PinHandler) Delete(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.pins.Delete(c.Context(), userID, c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
