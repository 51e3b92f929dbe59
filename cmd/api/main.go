package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sukhraj1322/short-video-platform/internal/config"
	"github.com/sukhraj1322/short-video-platform/internal/handler"
	"github.com/sukhraj1322/short-video-platform/internal/logger"
	"github.com/sukhraj1322/short-video-platform/internal/middleware"
	"github.com/sukhraj1322/short-video-platform/internal/repository"
	"github.com/sukhraj1322/short-video-platform/internal/service"
	"github.com/sukhraj1322/short-video-platform/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		zlog.Fatal("open database", zap.String("path", cfg.DatabasePath), zap.Error(err))
	}
	defer db.Close()

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, cfg, zlog)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    int(cfg.MaxUploadBytes),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	mode := "local fallback"
	if services.Ingest.Remote() {
		mode = "remote media host"
	}
	zlog.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("database", cfg.DatabasePath),
		zap.String("ingest_mode", mode),
	)

	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("listen", zap.Error(err))
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/signup", h.Auth.Signup)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Get("/session", h.Auth.Session)

	// Browsing and playback stay public; everything that writes under a
	// user identity goes through the session check.
	videos := v1.Group("/videos")
	videos.Get("/", h.Video.Feed)
	videos.Get("/search", h.Video.Search)
	videos.Get("/:videoId", h.Video.Get)
	videos.Get("/:videoId/stream", h.Video.Stream)
	videos.Post("/:videoId/view", h.Video.RecordView)

	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Post("/auth/logout", h.Auth.Logout)
	protected.Get("/auth/me", h.Auth.Me)

	protected.Post("/videos", h.Video.Upload)
	protected.Delete("/videos/:videoId", h.Video.Delete)
	protected.Post("/videos/:videoId/like", h.Video.ToggleLike)
	protected.Post("/videos/:videoId/comments", h.Video.PostComment)

	protected.Get("/users/me/stats", h.User.Stats)
	protected.Get("/users/:username/videos", h.User.Videos)

	protected.Get("/logs", h.Activity.List)
	protected.Delete("/logs", h.Activity.Clear)
	protected.Get("/logs/report", h.Activity.Report)

	protected.Get("/settings/:key", h.Settings.Get)
	protected.Put("/settings/:key", h.Settings.Set)
}
