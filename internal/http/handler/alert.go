package handler

import (
	"github.com/gofiber/fiber/v2"

	"backend-checkin/internal/models"
)

func (h *Handler) GetAlerts(c *fiber.Ctx) error {
	return c.JSON(h.store.GetAllAlerts())
}

func (h *Handler) CreateAlert(c *fiber.Ctx) error {
	var req models.InsertAlert
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Type == "" || req.Title == "" || req.Message == "" {
		return badRequest(c, "type, title and message are required")
	}

	alert := h.store.CreateAlert(req)
	return c.Status(fiber.StatusCreated).JSON(alert)
}

func (h *Handler) GetMessages(c *fiber.Ctx) error {
	return c.JSON(h.store.GetAllMessages())
}

func (h *Handler) CreateMessage(c *fiber.Ctx) error {
	var req models.InsertMessage
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Sender == "" || req.Message == "" {
		return badRequest(c, "sender and message are required")
	}

	message := h.store.CreateMessage(req)
	return c.Status(fiber.StatusCreated).JSON(message)
}
