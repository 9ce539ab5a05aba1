// handlers/manager/clubs.go - Club and member CRUD
package manager

import (
	"strconv"

	"clubhub/services"

	"github.com/gofiber/fiber/v2"
)

// CreateClub creates a new club
// POST /api/manager/clubs
func (h *Handler) CreateClub(c *fiber.Ctx) error {
	var input services.ClubInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if input.Name == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Club name is required",
		})
	}

	club, err := h.clubs.CreateClub(input)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Club created successfully",
		"club":    club,
	})
}

// UpdateClub updates an existing club
// PUT /api/manager/clubs/:id
func (h *Handler) UpdateClub(c *fiber.Ctx) error {
	clubID, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid club ID",
		})
	}

	var input services.ClubInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if input.Name == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Club name is required",
		})
	}

	club, err := h.clubs.UpdateClub(clubID, input)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Club updated successfully",
		"club":    club,
	})
}

// DeleteClub deletes a club and its members
// DELETE /api/manager/clubs/:id
func (h *Handler) DeleteClub(c *fiber.Ctx) error {
	clubID, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid club ID",
		})
	}

	if err := h.clubs.DeleteClub(clubID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Club deleted successfully",
	})
}

type memberRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// AddMember adds a member to a club
// POST /api/manager/clubs/:id/members
func (h *Handler) AddMember(c *fiber.Ctx) error {
	clubID, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid club ID",
		})
	}

	var req memberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.Name == "" || req.Role == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Member name and role are required",
		})
	}

	member, err := h.clubs.AddMember(clubID, req.Name, req.Role)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Member added successfully",
		"member":  member,
	})
}

// UpdateMember updates a member's name or role
// PUT /api/manager/members/:id
func (h *Handler) UpdateMember(c *fiber.Ctx) error {
	memberID, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid member ID",
		})
	}

	var req memberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	member, err := h.clubs.UpdateMember(memberID, req.Name, req.Role)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Member updated successfully",
		"member":  member,
	})
}

// RemoveMember deletes a single member
// DELETE /api/manager/members/:id
func (h *Handler) RemoveMember(c *fiber.Ctx) error {
	memberID, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid member ID",
		})
	}

	if err := h.clubs.RemoveMember(memberID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Member removed successfully",
	})
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
