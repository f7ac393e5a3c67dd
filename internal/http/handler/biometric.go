package handler

import (
	"github.com/gofiber/fiber/v2"

	"backend-checkin/internal/models"
)

func (h *Handler) GetBiometricByVoter(c *fiber.Ctx) error {
	voterID, err := c.ParamsInt("voterId")
	if err != nil {
		return badRequest(c, "Invalid voter id")
	}

	biometric, ok := h.store.GetBiometricByVoterID(voterID)
	if !ok {
		return notFound(c, "No biometric data found for this voter")
	}
	return c.JSON(biometric)
}

func (h *Handler) CreateBiometric(c *fiber.Ctx) error {
	var req models.InsertBiometric
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.VoterID == 0 {
		return badRequest(c, "voterId is required")
	}
	if req.Type != "fingerprint" && req.Type != "facial_recognition" {
		return badRequest(c, "type must be fingerprint or facial_recognition")
	}

	biometric := h.store.CreateBiometric(req)
	return c.Status(fiber.StatusCreated).JSON(biometric)
}

// VerifyBiometric records a successful match. The scanner is
// simulated, so verification is attributed to the demo operator.
func (h *Handler) VerifyBiometric(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid biometric id")
	}

	biometric, err := h.store.VerifyBiometric(id, demoOperatorID)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(biometric)
}
