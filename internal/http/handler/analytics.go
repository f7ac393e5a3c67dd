package handler

import (
	"github.com/gofiber/fiber/v2"

	"backend-checkin/internal/models"
)

func (h *Handler) GetPredictiveAnalytics(c *fiber.Ctx) error {
	return c.JSON(h.store.GetAllPredictiveAnalytics())
}

func (h *Handler) CreatePredictiveAnalytic(c *fiber.Ctx) error {
	var req models.InsertPredictiveAnalytic
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.HourOfDay < 0 || req.HourOfDay > 23 {
		return badRequest(c, "hourOfDay must be 0-23")
	}
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return badRequest(c, "dayOfWeek must be 0-6")
	}

	analytic := h.store.CreatePredictiveAnalytic(req)
	return c.Status(fiber.StatusCreated).JSON(analytic)
}

func (h *Handler) UpdatePredictiveAnalyticActuals(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid analytic id")
	}

	var req struct {
		ActualVoterVolume int `json:"actualVoterVolume"`
		ActualWaitTime    int `json:"actualWaitTime"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	analytic, err := h.store.UpdatePredictiveAnalyticWithActual(id, req.ActualVoterVolume, req.ActualWaitTime)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(analytic)
}

func (h *Handler) GetPredictionForTimeSlot(c *fiber.Ctx) error {
	hourOfDay := c.QueryInt("hourOfDay", -1)
	dayOfWeek := c.QueryInt("dayOfWeek", -1)
	if hourOfDay < 0 || dayOfWeek < 0 {
		return badRequest(c, "hourOfDay and dayOfWeek query parameters are required")
	}

	analytic, ok := h.store.GetPredictionForTimeSlot(hourOfDay, dayOfWeek)
	if !ok {
		return notFound(c, "No prediction found for the specified time slot")
	}
	return c.JSON(analytic)
}
