// handlers/clubs.go - Public catalogue reads
package handlers

import (
	"errors"
	"strconv"

	"clubhub/services"

	"github.com/gofiber/fiber/v2"
)

type ClubHandler struct {
	clubs *services.ClubService
}

func NewClubHandler(clubs *services.ClubService) *ClubHandler {
	return &ClubHandler{clubs: clubs}
}

// ListClubs returns the full club catalogue
// GET /api/clubs
func (h *ClubHandler) ListClubs(c *fiber.Ctx) error {
	clubs, err := h.clubs.ListClubs()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load clubs",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"clubs":   clubs,
	})
}

// GetClub returns one club with its members
// GET /api/clubs/:id
func (h *ClubHandler) GetClub(c *fiber.Ctx) error {
	clubID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid club ID",
		})
	}

	club, err := h.clubs.GetClub(uint(clubID))
	if errors.Is(err, services.ErrClubNotFound) {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Club not found",
		})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load club",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"club":    club,
	})
}
