package handler

import (
	"github.com/gofiber/fiber/v2"

	"backend-checkin/internal/metrics"
)

// GetVoterByVoterID looks up a voter by their external registration
// id (the number on the voter card), not the internal record id.
func (h *Handler) GetVoterByVoterID(c *fiber.Ctx) error {
	voter, ok := h.store.GetVoterByVoterID(c.Params("voterId"))
	if !ok {
		return notFound(c, "Voter not found")
	}
	return c.JSON(voter)
}

// CheckInVoter marks the voter checked in, then bumps the default
// station's processed counter. The two mutations are separate store
// calls; each serializes on the store mutex.
func (h *Handler) CheckInVoter(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid voter id")
	}

	voter, err := h.store.CheckInVoter(id, demoOperatorID)
	if err != nil {
		return storeError(c, err)
	}

	if station, ok := h.store.GetStation(1); ok {
		h.store.IncrementStationVotersProcessed(station.ID)
	}

	metrics.CheckInsTotal.Inc()
	h.hub.Broadcast()

	return c.JSON(fiber.Map{
		"success":     true,
		"voter":       voter,
		"checkInTime": voter.CheckedInAt.Format("3:04:05 PM"),
	})
}
