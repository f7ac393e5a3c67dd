package handler

import (
	"github.com/gofiber/fiber/v2"

	"backend-checkin/internal/models"
)

// GetStations lists stations joined with their operator, password
// stripped.
func (h *Handler) GetStations(c *fiber.Ctx) error {
	stations := h.store.GetAllStations()

	out := make([]models.StationWithOperator, 0, len(stations))
	for _, station := range stations {
		entry := models.StationWithOperator{Station: station}
		if station.OperatorID != nil {
			if operator, ok := h.store.GetUser(*station.OperatorID); ok {
				resp := models.ToUserResponse(operator)
				entry.Operator = &resp
			}
		}
		out = append(out, entry)
	}
	return c.JSON(out)
}

func (h *Handler) UpdateStationStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid station id")
	}

	var req struct {
		Status     string `json:"status"`
		OperatorID *int   `json:"operatorId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Status != "active" && req.Status != "inactive" {
		return badRequest(c, "status must be active or inactive")
	}

	station, err := h.store.UpdateStationStatus(id, req.Status, req.OperatorID)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(station)
}
