package handlers

import (
	"strings"

	"tripmate/internal/assistant"
	"tripmate/internal/logging"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CommandHandler exposes the natural-language command console
type CommandHandler struct {
	executor *assistant.Executor
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(executor *assistant.Executor) *CommandHandler {
	return &CommandHandler{executor: executor}
}

// Command runs one free-text command through the pipeline
// POST /api/command
func (h *CommandHandler) Command(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req struct {
		Command string `json:"command"`
	}
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Command) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "command is required",
		})
	}

	logger := logging.WithRequest(uuid.New().String(), userID)
	logger.Info("command received", "length", len(req.Command))

	result := h.executor.ExecuteAndRespond(c.Context(), userID, req.Command)
	logger.Info("command finished", "success", result.Success)
	return c.JSON(result)
}

// Query runs one free-text query through the pipeline
// POST /api/query
func (h *CommandHandler) Query(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req struct {
		Query string `json:"query"`
	}
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "query is required",
		})
	}

	logger := logging.WithRequest(uuid.New().String(), userID)
	logger.Info("query received", "length", len(req.Query))

	result := h.executor.ExecuteQuery(c.Context(), userID, req.Query)
	logger.Info("query finished", "entity", result.Intent.Entity)
	return c.JSON(result)
}
