// Package handler maps the REST surface onto store operations. Each
// resource lives in its own file; every handler validates its payload,
// calls the store, and translates typed store errors into status codes
// with a JSON {"message"} body.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"backend-checkin/internal/realtime"
	"backend-checkin/internal/store"
)

type Handler struct {
	store *store.Store
	hub   *realtime.Hub
}

func New(s *store.Store, hub *realtime.Hub) *Handler {
	return &Handler{store: s, hub: hub}
}

// demoOperatorID is the default poll worker. The demo UI has no login,
// so operator attribution is fixed to the seeded poll worker account.
const demoOperatorID = 2

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": msg})
}

// storeError maps store sentinels onto HTTP statuses: missing id 404,
// code mismatch and unverified sends 400, anything else 500.
func storeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, store.ErrInvalidCode), errors.Is(err, store.ErrNotVerified):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{"message": err.Error()})
}
