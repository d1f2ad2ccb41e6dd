package handlers

import (
	"fmt"
	"time"

	"tripmate/internal/models"
	"tripmate/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ExpenseHandler handles expense endpoints
type ExpenseHandler struct {
	expenses *services.ExpenseService
	stats    *services.StatsService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenses *services.ExpenseService, stats *services.StatsService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses, stats: stats}
}

// List returns the user's expenses, optionally filtered by ?date=YYYY-MM-DD
// GET /api/expenses
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	expenses, err := h.expenses.List(c.Context(), userID, c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch expenses",
		})
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	return c.JSON(expenses)
}

// Create logs an expense
// POST /api/expenses
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req models.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid expense data",
		})
	}

	expense, err := h.expenses.Create(c.Context(), userID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.stats.Invalidate(c.Context(), userID)
	return c.Status(fiber.StatusCreated).JSON(expense)
}

// Export downloads all expenses as a spreadsheet
// GET /api/expenses/export
func (h *ExpenseHandler) Export(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	data, err := h.expenses.ExportXLSX(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export expenses",
		})
	}

	filename := fmt.Sprintf("expenses-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
