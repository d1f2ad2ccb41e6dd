package handlers

import (
	"tripmate/internal/models"
	"tripmate/internal/services"

	"github.com/gofiber/fiber/v2"
)

// JournalHandler handles journal endpoints
type JournalHandler struct {
	journal *services.JournalService
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journal *services.JournalService) *JournalHandler {
	return &JournalHandler{journal: journal}
}

// List returns the user's journal entries, newest first
// GET /api/journal
func (h *JournalHandler) List(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	entries, err := h.journal.List(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch journal entries",
		})
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	return c.JSON(entries)
}

// Create adds a journal entry
// POST /api/journal
func (h *JournalHandler) Create(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req models.CreateJournalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid journal entry data",
		})
	}

	entry, err := h.journal.Create(c.Context(), userID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// HTML returns one entry's body rendered as HTML
// GET /api/journal/:id/html
func (h *JournalHandler) HTML(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	html, err := h.journal.RenderHTML(c.Context(), userID, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Journal entry not found",
		})
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(html)
}
