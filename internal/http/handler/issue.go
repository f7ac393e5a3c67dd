package handler

import (
	"github.com/gofiber/fiber/v2"

	"backend-checkin/internal/models"
)

func (h *Handler) GetIssues(c *fiber.Ctx) error {
	return c.JSON(h.store.GetAllIssues())
}

func (h *Handler) CreateIssue(c *fiber.Ctx) error {
	var req models.InsertIssue
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Type == "" {
		return badRequest(c, "type is required")
	}

	issue := h.store.CreateIssue(req)
	return c.Status(fiber.StatusCreated).JSON(issue)
}

func (h *Handler) ResolveIssue(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid issue id")
	}

	var req struct {
		UserID int `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.UserID == 0 {
		return badRequest(c, "userId is required")
	}

	issue, err := h.store.ResolveIssue(id, req.UserID)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(issue)
}
