package handlers

import "github.com/gofiber/fiber/v2"

// SetupRoutes wires the payment capture API.
func SetupRoutes(app *fiber.App, payment *PaymentHandler, transaction *TransactionHandler) {
	// health check at the root
	app.Get("/health", HealthCheck)

	api := app.Group("/api")

	// Two-phase capture flow
	api.Post("/payments", payment.SubmitDetails)
	api.Post("/payments/confirm", payment.ConfirmAmount)
	api.Post("/payments/cancel", payment.CancelAmount)
	api.Post("/payments/dismiss", payment.DismissError)
	api.Get("/session", payment.GetSession)

	// Transaction history
	api.Get("/transactions", transaction.GetTransactions)
	api.Delete("/transactions", transaction.ClearTransactions)
	api.Delete("/transactions/:id", transaction.DeleteTransaction)
}
