// handlers/events.go - Public event listing
package handlers

import (
	"clubhub/services"

	"github.com/gofiber/fiber/v2"
)

type EventHandler struct {
	events *services.EventService
}

func NewEventHandler(events *services.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// ListEvents returns all events, newest first
// GET /api/events
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.events.ListEvents()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load events",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"events":  events,
	})
}
