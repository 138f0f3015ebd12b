package server

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"alfredoptarigan/cv-enhancer/internal/config"
	"alfredoptarigan/cv-enhancer/internal/handlers"
	"alfredoptarigan/cv-enhancer/internal/models"
	"alfredoptarigan/cv-enhancer/internal/services"
)

// New builds the Fiber app with middleware, static front-end and API routes.
func New(cfg *config.Config, enhancer services.EnhancerService, pdfParser services.PDFParserService) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "CV Enhancer API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		// leave room for multipart framing around an upload of MaxFileSize
		BodyLimit:    int(cfg.Upload.MaxFileSize) + 1<<20,
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(corsConfig()))

	enhanceHandler := handlers.NewEnhanceHandler(enhancer)
	extractHandler := handlers.NewExtractHandler(pdfParser, cfg.Upload.MaxFileSize)

	// Front-end
	app.Static("/static", filepath.Join(cfg.Static.Dir, "static"))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.Static.Dir, "index.html"))
	})

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	app.Post("/enhance-cv", enhanceHandler.HandleEnhance)
	app.Post("/extract-cv", extractHandler.HandleExtract)

	return app
}

// corsConfig allows every origin, method and header with credentials. Fiber refuses a
// literal "*" together with credentials, so the request origin is reflected instead.
func corsConfig() cors.Config {
	return cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowCredentials: true,
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Detail: err.Error(),
	})
}
