package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/R0PPER/Paymento/internal/models"
	"github.com/R0PPER/Paymento/internal/services/gateway"
	"github.com/R0PPER/Paymento/internal/services/session"
	"github.com/R0PPER/Paymento/internal/utils/response"
)

type PaymentHandler struct {
	session *session.Service
}

func NewPaymentHandler(sessionSvc *session.Service) *PaymentHandler {
	return &PaymentHandler{session: sessionSvc}
}

// SubmitDetails handles the first capture phase: card number, expiry and CVV.
func (h *PaymentHandler) SubmitDetails(c *fiber.Ctx) error {
	var input struct {
		CardNumber string `json:"card_number"`
		ExpiryDate string `json:"expiry_date"`
		CVV        string `json:"cvv"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	err := h.session.SubmitDetails(c.Context(), models.PaymentInput{
		CardNumber: input.CardNumber,
		ExpiryDate: input.ExpiryDate,
		CVV:        input.CVV,
	})
	if err != nil {
		if errors.Is(err, session.ErrSubmissionInFlight) {
			return response.Conflict(c, err.Error())
		}
		return response.BadRequest(c, err.Error())
	}

	return response.Success(c, "Awaiting amount confirmation", fiber.Map{
		"status": h.session.Status(),
	})
}

// ConfirmAmount handles the second capture phase and submits the payment.
func (h *PaymentHandler) ConfirmAmount(c *fiber.Ctx) error {
	var input struct {
		Amount string `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	err := h.session.SubmitAmount(c.Context(), input.Amount)
	switch {
	case errors.Is(err, session.ErrSubmissionInFlight):
		return response.Conflict(c, err.Error())
	case errors.Is(err, session.ErrNotAwaitingAmount),
		errors.Is(err, session.ErrInvalidAmount),
		errors.Is(err, gateway.ErrInvalidPayment):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, gateway.ErrAppendFailed):
		return response.Error(c, fiber.StatusBadGateway, err.Error())
	case err != nil:
		return response.ServerError(c, err.Error())
	}

	return response.Success(c, "Payment successful", fiber.Map{
		"status": h.session.Status(),
	})
}

// CancelAmount closes the amount prompt and returns the session to idle.
func (h *PaymentHandler) CancelAmount(c *fiber.Ctx) error {
	h.session.CancelAmount()
	return response.Success(c, "Payment cancelled", fiber.Map{
		"status": h.session.Status(),
	})
}

// DismissError acknowledges a surfaced error.
func (h *PaymentHandler) DismissError(c *fiber.Ctx) error {
	h.session.DismissError()
	return response.Success(c, "Error dismissed", fiber.Map{
		"status": h.session.Status(),
	})
}

// GetSession reports the current lifecycle state.
func (h *PaymentHandler) GetSession(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": h.session.Status(),
	})
}
