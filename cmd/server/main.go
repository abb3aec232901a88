package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/printflow/api/internal/client"
	"github.com/printflow/api/internal/config"
	"github.com/printflow/api/internal/handler"
	"github.com/printflow/api/internal/middleware"
	"github.com/printflow/api/internal/service"
	"github.com/printflow/api/internal/store"
	"github.com/printflow/api/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis not available: %v", err)
	}

	// Initialize Asynq client
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer asynqClient.Close()

	// Initialize validator
	validate := validator.New()

	// Initialize store and AI client
	st := store.NewRedisStore(redisClient)
	aiClient := client.NewAIClient(&cfg.AI)

	// One mutex serializes every read-modify-write cycle so concurrent
	// requests cannot overwrite each other's collection snapshots.
	var writeMu sync.Mutex

	// Initialize services
	jobService := service.NewJobService(st, &writeMu)
	customerService := service.NewCustomerService(st)
	userService := service.NewUserService(st, &writeMu)
	analyticsService := service.NewAnalyticsService(st)
	backupService := service.NewBackupService(st, &writeMu)
	reportService := service.NewReportService(st, redisClient, asynqClient)

	// Seed default accounts on a fresh store
	if err := userService.Seed(ctx); err != nil {
		log.Printf("Warning: failed to seed users: %v", err)
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret, cfg.JWT.Expiration)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService, authMiddleware, validate)
	jobHandler := handler.NewJobHandler(jobService, validate)
	customerHandler := handler.NewCustomerHandler(customerService)
	userHandler := handler.NewUserHandler(userService, validate)
	dashboardHandler := handler.NewDashboardHandler(analyticsService)
	backupHandler := handler.NewBackupHandler(backupService)
	reportHandler := handler.NewReportHandler(reportService)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    20 * 1024 * 1024, // 20MB, backup uploads
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Login is the only unauthenticated route
	app.Post("/api/auth/login", authHandler.Login)

	// API routes
	api := app.Group("/api", authMiddleware.Authenticate())

	// Job routes
	jobs := api.Group("/jobs")
	jobs.Get("/", jobHandler.List)
	jobs.Post("/", jobHandler.Create)
	jobs.Post("/:id/advance", jobHandler.Advance)
	jobs.Delete("/:id", jobHandler.Delete)

	// Customer routes
	api.Get("/customers", customerHandler.List)

	// Dashboard route
	api.Get("/dashboard", dashboardHandler.Get)

	// User admin routes
	users := api.Group("/users", authMiddleware.RequireAdmin())
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Patch("/:id/active", userHandler.SetActive)

	// Backup routes
	backup := api.Group("/backup")
	backup.Get("/export", backupHandler.Export)
	backup.Post("/import", authMiddleware.RequireAdmin(), backupHandler.Import)

	// Report routes
	report := api.Group("/report")
	report.Post("/", rateLimiter.ReportLimit(cfg.RateLimit.ReportPerHour), reportHandler.Request)
	report.Get("/:id", reportHandler.Get)

	// Start Asynq worker server
	go startWorkerServer(cfg, reportService, aiClient)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	addr := ":" + cfg.Server.Port
	log.Printf("Server starting on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func startWorkerServer(cfg *config.Config, reportService *service.ReportService, aiClient *client.AIClient) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"reports": 1,
			},
		},
	)

	reportWorker := worker.NewReportWorker(reportService, aiClient)

	mux := asynq.NewServeMux()
	mux.HandleFunc(service.TaskTypeReport, reportWorker.ProcessTask)

	if err := srv.Run(mux); err != nil {
		log.Printf("Asynq worker error: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "SERVICE_ERROR",
			"message": message,
		},
	})
}
