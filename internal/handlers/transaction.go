package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/R0PPER/Paymento/internal/repositories"
	"github.com/R0PPER/Paymento/internal/services/history"
	"github.com/R0PPER/Paymento/internal/utils/response"
)

type TransactionHandler struct {
	history *history.Service
}

func NewTransactionHandler(historySvc *history.Service) *TransactionHandler {
	return &TransactionHandler{history: historySvc}
}

// GetTransactions refreshes and returns the ordered transaction history.
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	txs, err := h.history.Refresh(c.Context())
	if err != nil {
		log.Printf("Transaction history error: %v", err)
		return response.ServerError(c, "Failed to retrieve transactions")
	}
	return response.Success(c, "Transactions retrieved", txs)
}

// ClearTransactions deletes every record. A partial failure names the
// surviving records instead of reporting an empty ledger.
func (h *TransactionHandler) ClearTransactions(c *fiber.Ctx) error {
	err := h.history.Clear(c.Context())

	var partial *repositories.PartialDeleteError
	if errors.As(err, &partial) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":      "Some transactions could not be deleted",
			"failed_ids": partial.Failed,
			"total":      partial.Total,
		})
	}
	if err != nil {
		return response.ServerError(c, "Failed to clear transactions")
	}

	return response.Success(c, "All transactions deleted", nil)
}

// DeleteTransaction removes a single record by ID.
func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "Transaction ID is required")
	}

	if err := h.history.Remove(c.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		return response.ServerError(c, "Failed to delete transaction")
	}

	return response.Success(c, "Transaction deleted", nil)
}
