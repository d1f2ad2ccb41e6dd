package handlers

import (
	"tripmate/internal/models"
	"tripmate/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PackingHandler handles packing checklist endpoints
type PackingHandler struct {
	packing  *services.PackingService
	seedPath string
}

// NewPackingHandler creates a new packing handler. seedPath points at the
// YAML checklist template shipped in configs/.
func NewPackingHandler(packing *services.PackingService, seedPath string) *PackingHandler {
	return &PackingHandler{packing: packing, seedPath: seedPath}
}

// List returns packing items, optionally filtered by ?region=
// GET /api/packing
func (h *PackingHandler) List(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	items, err := h.packing.List(c.Context(), userID, c.Query("region"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch packing items",
		})
	}
	if items == nil {
		items = []models.PackingItem{}
	}
	return c.JSON(items)
}

// Create adds a packing item
// POST /api/packing
func (h *PackingHandler) Create(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req models.CreatePackingItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid packing item data",
		})
	}

	item, err := h.packing.Create(c.Context(), userID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Toggle flips an item's packed flag
// POST /api/packing/:id/toggle
func (h *PackingHandler) Toggle(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	item, err := h.packing.Toggle(c.Context(), userID, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(item)
}

// Delete removes a packing item
// DELETE /api/packing/:id
func (h *PackingHandler) Delete(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.packing.Delete(c.Context(), userID, c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Seed loads the checklist template into the user's list
// POST /api/packing/seed
func (h *PackingHandler) Seed(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	inserted, err := h.packing.SeedFromFile(c.Context(), userID, h.seedPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to seed packing list",
		})
	}
	return c.JSON(fiber.Map{"inserted": inserted})
}
