package handler

import (
	"github.com/gofiber/fiber/v2"

	"backend-checkin/internal/models"
)

// CurrentUser returns the default poll worker. There is no login in
// the demo; every screen operates as this account.
func (h *Handler) CurrentUser(c *fiber.Ctx) error {
	user, ok := h.store.GetUserByUsername("pollworker")
	if !ok {
		return notFound(c, "User not found")
	}
	return c.JSON(models.ToUserResponse(user))
}
