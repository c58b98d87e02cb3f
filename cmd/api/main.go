package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"hireready/internal/adapter"
	"hireready/internal/adapter/activity"
	"hireready/internal/adapter/model"
	"hireready/internal/adapter/quizgen"
	"hireready/internal/cache"
	"hireready/internal/config"
	"hireready/internal/database"
	"hireready/internal/handler"
	"hireready/internal/logger"
	"hireready/internal/middleware"
	"hireready/internal/repository"
	"hireready/internal/service"
	"hireready/internal/validation"

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
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize repositories
	attemptRepository := repository.NewSQLXAttemptRepository(db)
	evaluationRepository := repository.NewSQLXEvaluationRepository(db)

	// Initialize Redis client and cache adapter
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize predictive models
	readinessModel, err := model.NewWeightsModelFromFile(cfg.Model.WeightsPath)
	if err != nil {
		appLogger.Fatal("Failed to load readiness model weights", zap.Error(err))
	}
	roleModel := model.NewRoleWeightsModel()
	appLogger.Info("Readiness model loaded", zap.String("weights_path", cfg.Model.WeightsPath))

	// Initialize activity fetchers
	githubClient := activity.NewGitHubClient(cfg.GitHub.Token)
	leetcodeClient := activity.NewLeetCodeClient()

	// Initialize quiz generator
	quizGenerator, err := quizgen.NewOpenAIQuizGenerator(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL, cfg.LLM.Timeout)
	if err != nil {
		appLogger.Fatal("Failed to create quiz generator", zap.Error(err))
	}
	appLogger.Info("Quiz generator initialized", zap.String("model", cfg.LLM.Model))

	// Initialize services
	evaluationService := service.NewEvaluationService(
		readinessModel,
		roleModel,
		githubClient,
		leetcodeClient,
		cacheAdapter,
		evaluationRepository,
		cfg.Evaluation.CacheTTL,
	)
	matchService := service.NewMatchService()
	quizService := service.NewQuizService(quizGenerator, attemptRepository)

	// Initialize handlers
	validator := validation.NewValidator()
	evaluationHandler := handler.NewEvaluationHandler(evaluationService, validator)
	matchHandler := handler.NewMatchHandler(matchService, validator)
	quizHandler := handler.NewQuizHandler(quizService, validator)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	apiGroup.Post("/evaluate", evaluationHandler.Evaluate)
	apiGroup.Post("/match/shortlist", matchHandler.Shortlist)

	quizGroup := apiGroup.Group("/quiz")
	quizGroup.Post("/attempts", quizHandler.StartQuiz)
	quizGroup.Get("/attempts/:id", quizHandler.GetAttempt)
	quizGroup.Post("/attempts/:id/answers", quizHandler.RecordAnswer)
	quizGroup.Post("/attempts/:id/submit", quizHandler.SubmitQuiz)

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := cacheAdapter.Ping(c.UserContext()); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "cache unavailable")
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

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
