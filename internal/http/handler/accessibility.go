package handler

import (
	"github.com/gofiber/fiber/v2"

	"backend-checkin/internal/models"
)

func (h *Handler) GetAccessibilityByVoter(c *fiber.Ctx) error {
	voterID, err := c.ParamsInt("voterId")
	if err != nil {
		return badRequest(c, "Invalid voter id")
	}

	pref, ok := h.store.GetAccessibilityPreferenceByVoterID(voterID)
	if !ok {
		return notFound(c, "No accessibility preferences found for this voter")
	}
	return c.JSON(pref)
}

func (h *Handler) CreateAccessibilityPreference(c *fiber.Ctx) error {
	var req models.InsertAccessibilityPreference
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.VoterID == 0 {
		return badRequest(c, "voterId is required")
	}

	pref := h.store.CreateAccessibilityPreference(req)
	return c.Status(fiber.StatusCreated).JSON(pref)
}

// UpdateAccessibilityPreference applies a partial update; absent
// fields keep their stored values.
func (h *Handler) UpdateAccessibilityPreference(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid preference id")
	}

	var req models.UpdateAccessibilityPreference
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	pref, err := h.store.UpdateAccessibilityPreference(id, req)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(pref)
}
