package handler

import "github.com/gofiber/fiber/v2"

// Connection status backs the UI's offline-mode toggle. Nothing is
// stored; the toggle endpoint just echoes the requested state.

func (h *Handler) GetConnectionStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"connected": true})
}

func (h *Handler) ToggleConnectionStatus(c *fiber.Ctx) error {
	var req struct {
		Connected bool `json:"connected"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	return c.JSON(fiber.Map{"connected": req.Connected})
}
