package api

import (
	"errors"
	"os"

	"jobboard-bff/docs"
	"jobboard-bff/internal/api/handlers"
	"jobboard-bff/internal/dto"
	"jobboard-bff/pkg/auth"
	"jobboard-bff/pkg/config"
	"jobboard-bff/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// multipart framing allowance on top of the upload limit
const bodyOverhead = 1 << 20

// Handlers groups the route handlers. Resume and ScrapingConfig are nil when
// the features they need are not configured; their routes are then not mounted.
type Handlers struct {
	Extract        *handlers.ExtractHandler
	Scoring        *handlers.ScoringHandler
	Resume         *handlers.ResumeHandler
	ScrapingConfig *handlers.ScrapingConfigHandler
	Health         *handlers.HealthHandler
}

func SetupRouter(
	cfg *config.Config,
	h Handlers,
	verifier *auth.TokenVerifier,
	roles middleware.RoleLookup,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "jobboard-bff",
		BodyLimit:    int(cfg.Upload.MaxSize) + bodyOverhead,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				appLogger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(dto.NewError(err.Error(), ""))
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", h.Health.Health)

	if err := os.MkdirAll(cfg.Upload.Dir, 0755); err != nil {
		appLogger.Warn("Failed to create upload directory", zap.String("dir", cfg.Upload.Dir), zap.Error(err))
	}
	app.Static("/uploads", cfg.Upload.Dir)

	api := app.Group("/api", middleware.AuthMiddleware(verifier, appLogger))

	api.Post("/extract-docx-text", h.Extract.ExtractText)
	api.Post("/ats-score", h.Scoring.ATSScore)
	api.Post("/ats-score/batch", h.Scoring.BatchATSScore)
	api.Post("/flask/parse-resume", h.Scoring.ParseResume)

	if h.Resume != nil {
		api.Post("/generate-resume", h.Resume.GenerateResume)
	} else {
		appLogger.Warn("Resume generation disabled: database or GigaChat not configured")
	}

	if h.ScrapingConfig != nil && roles != nil {
		admin := api.Group("/admin", middleware.RequireAdmin(roles, appLogger))
		configs := admin.Group("/scraping-config")
		configs.Get("", h.ScrapingConfig.List)
		configs.Post("", h.ScrapingConfig.Create)
		configs.Get("/:id", h.ScrapingConfig.Get)
		configs.Put("/:id", h.ScrapingConfig.Update)
		configs.Delete("/:id", h.ScrapingConfig.Delete)
	} else {
		appLogger.Warn("Admin scraping config routes disabled: database not configured")
	}

	return app
}
