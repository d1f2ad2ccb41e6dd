package handlers

import (
	"tripmate/internal/models"
	"tripmate/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PersonHandler handles contact endpoints
type PersonHandler struct {
	people *services.PersonService
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(people *services.PersonService) *PersonHandler {
	return &PersonHandler{people: people}
}

// List returns the user's contacts, or a search when ?q= is given
// GET /api/people
func (h *PersonHandler) List(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var people []models.Person
	var err error
	if q := c.Query("q"); q != "" {
		people, err = h.people.Search(c.Context(), userID, q)
	} else {
		people, err = h.people.List(c.Context(), userID)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch people",
		})
	}
	if people == nil {
		people = []models.Person{}
	}
	return c.JSON(people)
}

// Create adds a contact
// POST /api/people
func (h *PersonHandler) Create(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req models.CreatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid person data",
		})
	}

	person, err := h.people.Create(c.Context(), userID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(person)
}
