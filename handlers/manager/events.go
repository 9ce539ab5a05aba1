// handlers/manager/events.go - Event CRUD
package manager

import (
	"clubhub/services"

	"github.com/gofiber/fiber/v2"
)

// CreateEvent creates a new event
// POST /api/manager/events
func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	var input services.EventInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if input.Title == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Event title is required",
		})
	}

	event, err := h.events.CreateEvent(input)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Event created successfully",
		"event":   event,
	})
}

// UpdateEvent updates an existing event
// PUT /api/manager/events/:id
func (h *Handler) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid event ID",
		})
	}

	var input services.EventInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if input.Title == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Event title is required",
		})
	}

	event, err := h.events.UpdateEvent(eventID, input)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Event updated successfully",
		"event":   event,
	})
}

// DeleteEvent deletes an event
// DELETE /api/manager/events/:id
func (h *Handler) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid event ID",
		})
	}

	if err := h.events.DeleteEvent(eventID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Event deleted successfully",
	})
}
