package main

import (
	"log"
	"runtime"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"backend-checkin/internal/config"
	"backend-checkin/internal/http/handler"
	"backend-checkin/internal/realtime"
	"backend-checkin/internal/store"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	app := fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
	})

	config.LoadEnv()

	st := store.New()
	if err := st.Seed(); err != nil {
		log.Fatal("seed failed:", err)
	}

	hub := realtime.NewHub(st)
	h := handler.New(st, hub)

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Voter check-in API running",
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Live queue feed for the dashboard screens
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/queue", websocket.New(hub.Serve))

	// Users
	app.Get("/api/users/current", h.CurrentUser)

	// Voters
	app.Get("/api/voters/:voterId", h.GetVoterByVoterID)
	app.Post("/api/voters/:id/check-in", h.CheckInVoter)

	// Queue
	app.Get("/api/queue", h.GetQueue)
	app.Get("/api/queue/stats", h.GetQueueStats)
	app.Post("/api/queue", h.CreateQueueItem)
	app.Put("/api/queue/:id/status", h.UpdateQueueItemStatus)

	// Stations
	app.Get("/api/stations", h.GetStations)
	app.Put("/api/stations/:id/status", h.UpdateStationStatus)

	// Issues
	app.Get("/api/issues", h.GetIssues)
	app.Post("/api/issues", h.CreateIssue)
	app.Put("/api/issues/:id/resolve", h.ResolveIssue)

	// System status
	app.Get("/api/system-status", h.GetSystemStatuses)
	app.Put("/api/system-status/:id", h.UpdateSystemStatus)

	// Alerts & messages
	app.Get("/api/alerts", h.GetAlerts)
	app.Post("/api/alerts", h.CreateAlert)
	app.Get("/api/messages", h.GetMessages)
	app.Post("/api/messages", h.CreateMessage)

	// Stats
	app.Get("/api/stats", h.GetStats)
	app.Get("/api/stats/summary", h.GetStatsSummary)

	// Biometrics
	app.Get("/api/biometrics/voter/:voterId", h.GetBiometricByVoter)
	app.Post("/api/biometrics", h.CreateBiometric)
	app.Put("/api/biometrics/:id/verify", h.VerifyBiometric)

	// Accessibility
	app.Get("/api/accessibility/voter/:voterId", h.GetAccessibilityByVoter)
	app.Post("/api/accessibility", h.CreateAccessibilityPreference)
	app.Put("/api/accessibility/:id", h.UpdateAccessibilityPreference)

	// Mobile notifications
	app.Get("/api/mobile-notifications/voter/:voterId", h.GetMobileNotificationByVoter)
	app.Post("/api/mobile-notifications", h.CreateMobileNotification)
	app.Post("/api/mobile-notifications/:id/verify", h.VerifyMobileNotification)
	app.Post("/api/mobile-notifications/:id/send", h.SendNotification)

	// Anomalies
	app.Get("/api/anomalies", h.GetAnomalies)
	app.Post("/api/anomalies", h.CreateAnomaly)
	app.Put("/api/anomalies/:id/resolve", h.ResolveAnomaly)

	// Predictive analytics
	app.Get("/api/predictive-analytics", h.GetPredictiveAnalytics)
	app.Get("/api/predictive-analytics/time-slot", h.GetPredictionForTimeSlot)
	app.Post("/api/predictive-analytics", h.CreatePredictiveAnalytic)
	app.Put("/api/predictive-analytics/:id/update-actuals", h.UpdatePredictiveAnalyticActuals)

	// Blockchain transactions
	app.Get("/api/blockchain-transactions", h.GetBlockchainTransactions)
	app.Get("/api/blockchain-transactions/voter/:voterId", h.GetVoterBlockchainTransactions)
	app.Get("/api/blockchain-transactions/hash/:hash", h.GetBlockchainTransactionByHash)
	app.Post("/api/blockchain-transactions", h.CreateBlockchainTransaction)
	app.Put("/api/blockchain-transactions/:id/verify", h.VerifyBlockchainTransaction)

	// Connection status (offline mode toggle)
	app.Get("/api/connection-status", h.GetConnectionStatus)
	app.Post("/api/connection-status/toggle", h.ToggleConnectionStatus)

	addr := config.GetEnv("APP_HOST", "0.0.0.0") + ":" + config.GetEnv("APP_PORT", "5000")
	log.Println("Server running on", addr)
	log.Fatal(app.Listen(addr))
}
