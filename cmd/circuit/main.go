package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"circuit-board/internal/circuit/events"
	"circuit-board/internal/circuit/handlers"
	"circuit-board/internal/circuit/service"
	"circuit-board/internal/common/config"
	common "circuit-board/internal/common/handlers"
	"circuit-board/internal/common/middleware"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Circuit Board Service
// ============================================================

func main() {
	cfg := config.Load()

	boards := service.NewBoardManager(cfg.CellSize)
	stream := events.NewStream()
	defer stream.Shutdown()

	boardHandler := handlers.NewBoardHandler(boards, stream)
	pageHandler := handlers.NewPageHandler(cfg.EventsURL)
	healthHandler := common.NewHealthHandler(boards)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Circuit Board",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS(cfg.CORSOrigins))

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", healthHandler.LivenessProbe)
	app.Get("/health/ready", healthHandler.ReadinessProbe)
	app.Get("/health/startup", healthHandler.StartupProbe)

	// ============================================================
	// Page & Docs
	// ============================================================

	app.Get("/", pageHandler.Index)
	app.Get("/docs", common.SwaggerUI)
	app.Get("/docs/openapi.yaml", common.SwaggerSpec(cfg.DocsPath))

	// ============================================================
	// Board Routes
	// ============================================================

	api := app.Group("/api/v1")

	api.Post("/boards", boardHandler.Create)
	api.Get("/boards/:id", boardHandler.Get)
	api.Delete("/boards/:id", boardHandler.Delete)
	api.Post("/boards/:id/drag-start", boardHandler.DragStart)
	api.Post("/boards/:id/drag-stop", boardHandler.DragStop)
	api.Get("/boards/:id/svg", boardHandler.SVG)

	// ============================================================
	// Event Stream
	// ============================================================

	eventsServer := events.NewServer(fmt.Sprintf(":%s", cfg.EventsPort), stream)
	defer eventsServer.Close()
	go func() {
		log.Printf("Starting event stream on %s", eventsServer.Addr)
		if err := eventsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Event stream stopped: %v", err)
		}
	}()

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Circuit Board on %s (env: %s, cell: %dpx)", addr, cfg.Environment, cfg.CellSize)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
