package server

import (
	"fmt"
	"log"

	"sample-be/internal/bootstrap"
	"sample-be/internal/config"
	"sample-be/internal/constant"
	"sample-be/internal/pkg/serverutils"

	"github.com/goccy/go-json"
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
	// Initialize Fiber App
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: serverutils.NewErrorHandler(cfg.App.Name, container.Logger),
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-Id",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: fmt.Sprintf("Location, Link, %s, %s, X-%s-alert, X-%s-error, X-%s-params",
			constant.HeaderTotalCount, constant.HeaderRequestId, cfg.App.Name, cfg.App.Name, cfg.App.Name),
	}))

	// OpenTelemetry tracing middleware (no-op unless a tracer provider is set)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.RequestIdMiddleware)

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
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.ParentEntityController.RegisterRoutes(api)
	c.ChildEntityController.RegisterRoutes(api)
}
