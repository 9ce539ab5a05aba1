// handlers/manager/dashboard.go - Back-office overview
package manager

import (
	"github.com/gofiber/fiber/v2"
)

// Dashboard returns catalogue totals for the manager overview
// GET /api/manager/dashboard
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	clubs, err := h.clubs.ListClubs()
	if err != nil {
		return serviceError(c, err)
	}
	events, err := h.events.ListEvents()
	if err != nil {
		return serviceError(c, err)
	}

	totalMembers := 0
	recruiting := 0
	for _, club := range clubs {
		totalMembers += club.MembersCount
		if club.IsRecruiting {
			recruiting++
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats": fiber.Map{
			"total_clubs":      len(clubs),
			"total_members":    totalMembers,
			"total_events":     len(events),
			"recruiting_clubs": recruiting,
		},
		"clubs":  clubs,
		"events": events,
	})
}
