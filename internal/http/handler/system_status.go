package handler

import "github.com/gofiber/fiber/v2"

func (h *Handler) GetSystemStatuses(c *fiber.Ctx) error {
	return c.JSON(h.store.GetAllSystemStatuses())
}

func (h *Handler) UpdateSystemStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid system status id")
	}

	var req struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	switch req.Status {
	case "operational", "degraded", "down":
	default:
		return badRequest(c, "status must be operational, degraded or down")
	}

	status, err := h.store.UpdateSystemStatus(id, req.Status, req.Notes)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(status)
}
