package handler

import (
	"github.com/gofiber/fiber/v2"

	"backend-checkin/internal/models"
)

func (h *Handler) GetBlockchainTransactions(c *fiber.Ctx) error {
	return c.JSON(h.store.GetAllBlockchainTransactions())
}

func (h *Handler) GetVoterBlockchainTransactions(c *fiber.Ctx) error {
	voterID, err := c.ParamsInt("voterId")
	if err != nil {
		return badRequest(c, "Invalid voter id")
	}
	return c.JSON(h.store.GetVoterTransactions(voterID))
}

func (h *Handler) GetBlockchainTransactionByHash(c *fiber.Ctx) error {
	tx, ok := h.store.GetBlockchainTransactionByHash(c.Params("hash"))
	if !ok {
		return notFound(c, "Transaction not found")
	}
	return c.JSON(tx)
}

func (h *Handler) CreateBlockchainTransaction(c *fiber.Ctx) error {
	var req models.InsertBlockchainTransaction
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.TransactionType == "" || req.TransactionHash == "" {
		return badRequest(c, "transactionType and transactionHash are required")
	}

	tx := h.store.CreateBlockchainTransaction(req)
	return c.Status(fiber.StatusCreated).JSON(tx)
}

func (h *Handler) VerifyBlockchainTransaction(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid transaction id")
	}

	tx, err := h.store.VerifyBlockchainTransaction(id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(tx)
}
