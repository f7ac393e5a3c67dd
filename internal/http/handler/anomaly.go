package handler

import (
	"github.com/gofiber/fiber/v2"

	"backend-checkin/internal/models"
)

func (h *Handler) GetAnomalies(c *fiber.Ctx) error {
	return c.JSON(h.store.GetAllAnomalies())
}

func (h *Handler) CreateAnomaly(c *fiber.Ctx) error {
	var req models.InsertAnomaly
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Type == "" || req.Description == "" {
		return badRequest(c, "type and description are required")
	}
	switch req.Severity {
	case "", "low", "medium", "high":
	default:
		return badRequest(c, "severity must be low, medium or high")
	}

	anomaly := h.store.CreateAnomaly(req)
	return c.Status(fiber.StatusCreated).JSON(anomaly)
}

func (h *Handler) ResolveAnomaly(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid anomaly id")
	}

	var req struct {
		UserID     int    `json:"userId"`
		Resolution string `json:"resolution"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.UserID == 0 || req.Resolution == "" {
		return badRequest(c, "userId and resolution are required")
	}

	anomaly, err := h.store.ResolveAnomaly(id, req.UserID, req.Resolution)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(anomaly)
}
