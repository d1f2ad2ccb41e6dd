package handlers

import (
	"context"
	"log"
	"time"

	"tripmate/internal/assistant"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// ConsoleWebSocketHandler runs the command console over a WebSocket so the
// client can stream commands and queries without re-posting per message
type ConsoleWebSocketHandler struct {
	executor *assistant.Executor
}

// NewConsoleWebSocketHandler creates a new console WebSocket handler
func NewConsoleWebSocketHandler(executor *assistant.Executor) *ConsoleWebSocketHandler {
	return &ConsoleWebSocketHandler{executor: executor}
}

// consoleMessage is one inbound console frame
type consoleMessage struct {
	Type string `json:"type"` // "command" | "query" | "ping"
	Text string `json:"text"`
}

// HandleConnection handles one console WebSocket connection
func (h *ConsoleWebSocketHandler) HandleConnection(c *websocket.Conn) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		log.Printf("❌ Console connection rejected: no authenticated user")
		c.WriteJSON(fiber.Map{
			"type":  "error",
			"error": "Authentication required",
		})
		c.Close()
		return
	}

	log.Printf("🖥️ [CONSOLE] Connected: user=%s", userID)

	// Hung connections are detected via read deadline, reset on every
	// read and pong
	const readTimeout = 90 * time.Second
	c.SetReadDeadline(time.Now().Add(readTimeout))
	c.SetPongHandler(func(string) error {
		c.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	for {
		var msg consoleMessage
		if err := c.ReadJSON(&msg); err != nil {
			log.Printf("🖥️ [CONSOLE] Disconnected: user=%s (%v)", userID, err)
			return
		}
		c.SetReadDeadline(time.Now().Add(readTimeout))

		switch msg.Type {
		case "ping":
			c.WriteJSON(fiber.Map{"type": "pong"})

		case "command":
			result := h.executor.ExecuteAndRespond(context.Background(), userID, msg.Text)
			c.WriteJSON(fiber.Map{
				"type":   "command_result",
				"result": result,
			})

		case "query":
			result := h.executor.ExecuteQuery(context.Background(), userID, msg.Text)
			c.WriteJSON(fiber.Map{
				"type":   "query_result",
				"result": result,
			})

		default:
			c.WriteJSON(fiber.Map{
				"type":  "error",
				"error": "Unknown message type",
			})
		}
	}
}
