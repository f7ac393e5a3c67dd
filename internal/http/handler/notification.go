package handler

import (
	"github.com/gofiber/fiber/v2"

	"backend-checkin/internal/metrics"
	"backend-checkin/internal/models"
)

func (h *Handler) GetMobileNotificationByVoter(c *fiber.Ctx) error {
	voterID, err := c.ParamsInt("voterId")
	if err != nil {
		return badRequest(c, "Invalid voter id")
	}

	notification, ok := h.store.GetMobileNotificationByVoterID(voterID)
	if !ok {
		return notFound(c, "No notification settings found for this voter")
	}
	return c.JSON(notification)
}

func (h *Handler) CreateMobileNotification(c *fiber.Ctx) error {
	var req models.InsertMobileNotification
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.VoterID == 0 {
		return badRequest(c, "voterId is required")
	}
	if req.PhoneNumber == "" && req.Email == "" {
		return badRequest(c, "phoneNumber or email is required")
	}

	notification := h.store.CreateMobileNotification(req)
	return c.Status(fiber.StatusCreated).JSON(notification)
}

func (h *Handler) VerifyMobileNotification(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid notification id")
	}

	var req struct {
		VerificationCode string `json:"verificationCode"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.VerificationCode == "" {
		return badRequest(c, "verificationCode is required")
	}

	notification, err := h.store.VerifyMobileNotification(id, req.VerificationCode)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(notification)
}

// SendNotification simulates delivery; no SMS or email leaves the
// process.
func (h *Handler) SendNotification(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid notification id")
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Message == "" {
		return badRequest(c, "message is required")
	}

	if err := h.store.SendNotification(id, req.Message); err != nil {
		return storeError(c, err)
	}

	metrics.NotificationsSentTotal.Inc()
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Notification sent successfully",
	})
}
