// Package main is the entry point for the payment capture API.
// It initializes the ledger store, wires the core services and starts the
// HTTP server.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/R0PPER/Paymento/internal/config"
	"github.com/R0PPER/Paymento/internal/handlers"
	"github.com/R0PPER/Paymento/internal/models"
	"github.com/R0PPER/Paymento/internal/repositories"
	"github.com/R0PPER/Paymento/internal/services/gateway"
	"github.com/R0PPER/Paymento/internal/services/history"
	"github.com/R0PPER/Paymento/internal/services/session"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	ledger, err := newLedger()
	if err != nil {
		log.Fatalf("Failed to initialize ledger store: %v", err)
	}
	log.Println("✅ Ledger store ready")

	historySvc := history.NewService(ledger)
	views := &logViews{}
	historySvc.Attach(views, views, views)

	gatewaySvc := gateway.NewService(ledger)
	sessionSvc := session.NewService(gatewaySvc, historySvc, &logPresenter{}, session.Config{
		ConfirmationDelay: config.GetDurationEnv("CONFIRMATION_DELAY", session.DefaultConfirmationDelay),
	})

	// Warm the history cache; a failed initial load degrades to an empty
	// view and the API stays up.
	if _, err := historySvc.Refresh(context.Background()); err != nil {
		log.Printf("⚠️ Initial history load failed: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,DELETE",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	handlers.SetupRoutes(app,
		handlers.NewPaymentHandler(sessionSvc),
		handlers.NewTransactionHandler(historySvc),
	)

	port := config.GetEnv("PORT", "8080")
	log.Printf("Starting server on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

// newLedger picks the store backend from the environment.
func newLedger() (repositories.LedgerStore, error) {
	switch backend := config.GetEnv("LEDGER_BACKEND", "postgres"); backend {
	case "redis":
		client := repositories.NewRedisClient(
			config.GetEnv("REDIS_ADDR", "localhost:6379"),
			config.GetEnv("REDIS_PASSWORD", ""),
			config.GetIntEnv("REDIS_DB", 0),
		)
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("redis connection failed: %w", err)
		}
		return repositories.NewRedisLedger(client), nil
	case "postgres":
		dsn := config.GetEnv("DATABASE_URL",
			"host=localhost user=postgres password=postgres dbname=paymento port=5432 sslmode=disable")
		return repositories.NewGormLedger(dsn)
	default:
		return nil, fmt.Errorf("unknown ledger backend %q", backend)
	}
}

// logPresenter reports session lifecycle events to the server log.
type logPresenter struct{}

func (logPresenter) PhaseChanged(status models.SessionStatus) {
	log.Printf("session phase: %s", status)
}

func (logPresenter) HistoryUpdated(transactions []models.Transaction) {
	log.Printf("history updated: %d transactions", len(transactions))
}

func (logPresenter) Failed(reason string) {
	log.Printf("payment failed: %s", reason)
}

// logViews is the server-side stand-in for the browser history views.
type logViews struct{}

func (logViews) RenderSpinner() {
	log.Println("loading transactions...")
}

func (logViews) RenderError(message string) {
	log.Printf("history view error: %s", message)
}

func (logViews) RenderList(transactions []models.Transaction) {
	log.Printf("history view: %d transactions", len(transactions))
}
