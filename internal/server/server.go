package server

import (
	"log"

	"collegeplan-be/internal/bootstrap"
	"collegeplan-be/internal/config"
	"collegeplan-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, matches the per-file upload cap
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	// Uploaded attachments are served straight from disk.
	app.Static("/uploads", cfg.App.UploadDir)

	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	api := app.Group("/api")

	sessionMW := serverutils.SessionMiddleware(c.SessionStore, cfg.App.SessionCookieName)

	c.AuthController.RegisterRoutes(api, sessionMW)
	c.UserController.RegisterRoutes(api, sessionMW)

	c.CollegeController.RegisterRoutes(api, sessionMW)
	c.AdvisorController.RegisterRoutes(api, sessionMW)
	c.ChatController.RegisterRoutes(api, sessionMW)
	c.RecommendationController.RegisterRoutes(api, sessionMW)
	c.FeedbackController.RegisterRoutes(api, sessionMW)
	c.UploadController.RegisterRoutes(api, sessionMW)

	// Share-link endpoints are token-gated, not session-gated.
	c.SharedController.RegisterRoutes(api)

	c.NotificationHandler.RegisterRoutes(api, sessionMW)
}
