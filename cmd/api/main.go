package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fireforge/internal/adapter"
	"fireforge/internal/adapter/mail"
	"fireforge/internal/adapter/sheets"
	"fireforge/internal/cache"
	"fireforge/internal/config"
	"fireforge/internal/database"
	"fireforge/internal/domain"
	"fireforge/internal/handler"
	"fireforge/internal/logger"
	"fireforge/internal/middleware"
	"fireforge/internal/repository"
	"fireforge/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize repositories
	leadRepository := repository.NewSQLXLeadRepository(db)
	quizResultRepository := repository.NewSQLXQuizResultRepository(db)
	blogRepository := repository.NewSQLXBlogPostRepository(db)
	clientRepository := repository.NewSQLXClientRepository(db)

	// Initialize Redis client and cache adapter
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize mail adapter
	mailer, err := mail.NewResendMailer(cfg.Mail.ResendAPIKey)
	if err != nil {
		appLogger.Fatal("Failed to create mailer", zap.Error(err))
	}

	// The spreadsheet mirror is optional; leave it nil when unconfigured.
	var leadBackup domain.LeadBackup
	if cfg.Backup.ScriptURL != "" {
		leadBackup = sheets.NewAppsScriptBackup(cfg.Backup.ScriptURL, cfg.Backup.Timeout)
		appLogger.Info("Lead backup mirror enabled")
	}

	// Initialize services
	leadService := service.NewLeadService(leadRepository, mailer, leadBackup, cfg, appLogger)
	quizService := service.NewQuizService(quizResultRepository, mailer, cfg, appLogger)
	blogService := service.NewBlogService(blogRepository, cacheAdapter, cfg.Cache.ContentTTL, appLogger)
	portfolioService := service.NewPortfolioService(clientRepository, cacheAdapter, cfg.Cache.ContentTTL, appLogger)
	dashboardService := service.NewDashboardService(blogRepository, clientRepository, leadRepository, quizResultRepository, cacheAdapter, cfg.Cache.DashboardTTL, appLogger)

	authService, err := service.NewAuthService(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	// Initialize handlers
	leadHandler := handler.NewLeadHandler(leadService)
	quizHandler := handler.NewQuizHandler(quizService)
	blogHandler := handler.NewBlogHandler(blogService)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	authHandler := handler.NewAuthHandler(authService, cfg)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	// Public routes
	apiGroup.Get("/quiz/questions", quizHandler.GetCatalog)
	apiGroup.Post("/quiz/submissions", quizHandler.SubmitQuiz)
	apiGroup.Post("/leads", leadHandler.SubmitLead)
	apiGroup.Get("/posts", blogHandler.ListPublishedPosts)
	apiGroup.Get("/posts/:slug", blogHandler.GetPublishedPost)
	apiGroup.Get("/clients", portfolioHandler.ListClients)

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	// Admin routes (all protected)
	adminGroup := apiGroup.Group("/admin", middleware.Protected(authService))
	adminGroup.Get("/dashboard", dashboardHandler.GetDashboard)
	adminGroup.Get("/leads", leadHandler.ListLeads)
	adminGroup.Patch("/leads/:id/status", leadHandler.UpdateLeadStatus)
	adminGroup.Get("/quiz-results", quizHandler.ListQuizResults)
	adminGroup.Patch("/quiz-results/:id/status", quizHandler.UpdateQuizResultStatus)
	adminGroup.Get("/posts", blogHandler.ListAllPosts)
	adminGroup.Post("/posts", blogHandler.CreatePost)
	adminGroup.Put("/posts/:id", blogHandler.UpdatePost)
	adminGroup.Delete("/posts/:id", blogHandler.DeletePost)
	adminGroup.Patch("/posts/:id/publish", blogHandler.SetPublished)
	adminGroup.Post("/clients", portfolioHandler.CreateClient)
	adminGroup.Put("/clients/:id", portfolioHandler.UpdateClient)
	adminGroup.Delete("/clients/:id", portfolioHandler.DeleteClient)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
