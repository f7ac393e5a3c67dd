package handler

import (
	"github.com/gofiber/fiber/v2"

	"backend-checkin/internal/metrics"
	"backend-checkin/internal/models"
)

// GetQueue lists every queue entry joined with its voter record.
func (h *Handler) GetQueue(c *fiber.Ctx) error {
	items := h.store.GetAllQueueItems()

	out := make([]models.QueueItemWithVoter, 0, len(items))
	for _, item := range items {
		entry := models.QueueItemWithVoter{QueueItem: item}
		if voter, ok := h.store.GetVoter(item.VoterID); ok {
			entry.Voter = &voter
		}
		out = append(out, entry)
	}
	return c.JSON(out)
}

func (h *Handler) GetQueueStats(c *fiber.Ctx) error {
	return c.JSON(h.store.GetQueueStats())
}

func (h *Handler) CreateQueueItem(c *fiber.Ctx) error {
	var req models.InsertQueueItem
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.VoterID == 0 || req.Number == 0 {
		return badRequest(c, "voterId and number are required")
	}

	item := h.store.CreateQueueItem(req)

	metrics.QueueEntriesTotal.Inc()
	metrics.QueueWaiting.Set(float64(h.store.GetQueueStats().Waiting))
	h.hub.Broadcast()

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *Handler) UpdateQueueItemStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid queue item id")
	}

	var req struct {
		Status string `json:"status"`
		UserID *int   `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Status == "" {
		return badRequest(c, "status is required")
	}

	item, err := h.store.UpdateQueueItemStatus(id, req.Status, req.UserID)
	if err != nil {
		return storeError(c, err)
	}

	metrics.QueueWaiting.Set(float64(h.store.GetQueueStats().Waiting))
	h.hub.Broadcast()

	return c.JSON(item)
}
