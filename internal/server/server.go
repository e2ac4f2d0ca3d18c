package server

import (
	"log"
	"strings"

	"docintel-be/internal/bootstrap"
	"docintel-be/internal/config"
	"docintel-be/internal/pkg/logger"
	"docintel-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container, log logger.ILogger) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:             4 * 1024 * 1024, // 4MB, uploads carry metadata only
		DisableStartupMessage: cfg.IsProduction(),
	})

	// Middleware
	// Credentials cannot be combined with a wildcard origin.
	origins := strings.TrimSpace(cfg.App.CorsAllowedOrigins)
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: origins != "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	if cfg.App.TracingEnabled {
		app.Use(otelfiber.Middleware())
	}

	if container.Metrics != nil {
		app.Use(container.Metrics.Middleware())
		app.Get("/metrics", container.Metrics.Handler())
	}

	app.Use(serverutils.ErrorHandlerMiddleware(log))

	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse("ok", nil))
	})

	// Routes
	registerRoutes(app, container)

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

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)

	c.DocumentController.RegisterRoutes(api)
	c.FolderController.RegisterRoutes(api)
	c.ChatbotController.RegisterRoutes(api)
	c.ApprovalController.RegisterRoutes(api)
	c.WorkspaceController.RegisterRoutes(api)

	c.WebSocketHub.RegisterRoutes(api, c.AuthMiddleware)
}
