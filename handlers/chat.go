// handlers/chat.go - Chat assistant endpoints
package handlers

import (
	"context"
	"log"
	"strings"
	"time"

	"clubhub/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type ChatHandler struct {
	bot *services.Chatbot
}

func NewChatHandler(bot *services.Chatbot) *ChatHandler {
	return &ChatHandler{bot: bot}
}

type chatMessageRequest struct {
	Message string `json:"message"`
}

// SendMessage runs one assistant exchange
// POST /api/chat/message
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	if h.bot == nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Chat service not initialized",
		})
	}

	var req chatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Message cannot be empty",
		})
	}

	if !h.bot.Available() {
		// Unavailable still carries a displayable response so the widget
		// can show something friendly.
		return c.Status(503).JSON(fiber.Map{
			"success":   false,
			"error":     "Assistant is unavailable",
			"response":  services.UnavailableReply,
			"timestamp": time.Now().Unix(),
		})
	}

	response := h.bot.Reply(c.Context(), message)

	return c.JSON(fiber.Map{
		"success":     true,
		"response":    response,
		"suggestions": h.bot.Suggestions(),
		"timestamp":   time.Now().Unix(),
	})
}

// ClearHistory resets the conversation
// POST /api/chat/clear
func (h *ChatHandler) ClearHistory(c *fiber.Ctx) error {
	if h.bot == nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Chat service not initialized",
		})
	}

	h.bot.ClearHistory()
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Conversation history cleared",
	})
}

// Suggestions returns the current quick-reply prompts
// GET /api/chat/suggestions
func (h *ChatHandler) Suggestions(c *fiber.Ctx) error {
	if h.bot == nil {
		return c.JSON(fiber.Map{
			"success":     true,
			"suggestions": []string{},
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"suggestions": h.bot.Suggestions(),
	})
}

// Websocket frames for /ws/chat. Fragments stream as they arrive; the final
// "done" frame carries the authoritative full response (the blocking
// fallback may have replaced a broken stream, so clients must render from
// "done", not from accumulated fragments).
type chatSocketFrame struct {
	Type        string   `json:"type"` // "delta", "done", "error"
	Content     string   `json:"content,omitempty"`
	Response    string   `json:"response,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Timestamp   int64    `json:"timestamp,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// ChatSocket serves the streaming chat transport
// GET /ws/chat
func (h *ChatHandler) ChatSocket(conn *websocket.Conn) {
	defer conn.Close()

	for {
		var req chatMessageRequest
		if err := conn.ReadJSON(&req); err != nil {
			return // client went away
		}

		message := strings.TrimSpace(req.Message)
		if message == "" {
			if err := conn.WriteJSON(chatSocketFrame{Type: "error", Error: "Message cannot be empty"}); err != nil {
				return
			}
			continue
		}

		if h.bot == nil || !h.bot.Available() {
			if err := conn.WriteJSON(chatSocketFrame{
				Type:      "done",
				Response:  services.UnavailableReply,
				Timestamp: time.Now().Unix(),
			}); err != nil {
				return
			}
			continue
		}

		response := h.bot.ReplyStream(context.Background(), message, func(delta string) {
			if err := conn.WriteJSON(chatSocketFrame{Type: "delta", Content: delta}); err != nil {
				log.Printf("⚠️  Chat socket: failed to forward fragment: %v", err)
			}
		})

		if err := conn.WriteJSON(chatSocketFrame{
			Type:        "done",
			Response:    response,
			Suggestions: h.bot.Suggestions(),
			Timestamp:   time.Now().Unix(),
		}); err != nil {
			return
		}
	}
}
