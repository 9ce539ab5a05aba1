// handlers/manager - Manager back-office for the catalogue.
// Everything in this package sits behind ManagerAuthMiddleware.
package manager

import (
	"errors"

	"clubhub/services"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	clubs  *services.ClubService
	events *services.EventService
}

func NewHandler(clubs *services.ClubService, events *services.EventService) *Handler {
	return &Handler{clubs: clubs, events: events}
}

// serviceError translates a service failure into a status + envelope. The
// handlers in this package own that translation; services only return
// sentinel errors.
func serviceError(c *fiber.Ctx, err error) error {
	status := 500
	switch {
	case errors.Is(err, services.ErrClubNotFound),
		errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrEventNotFound):
		status = 404
	case errors.Is(err, services.ErrDuplicateClubName):
		status = 409
	case errors.Is(err, services.ErrInvalidSizeClass):
		status = 400
	}

	message := err.Error()
	if status == 500 {
		message = "Internal server error"
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
