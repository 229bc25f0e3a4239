// @title QuizForge API
// @version 1.0
// @description Turns study documents into summaries, quizzes and flashcards.
// @contact.name API Support
// @license.name MIT
// @host localhost:8000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizforge/internal/adapter/document"
	"quizforge/internal/adapter/llm"
	"quizforge/internal/config"
	"quizforge/internal/handler"
	"quizforge/internal/logger"
	"quizforge/internal/middleware"
	"quizforge/internal/service"

	_ "quizforge/cmd/api/docs"

	"github.com/gofiber/swagger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

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

	// LLM client
	llmClient, err := llm.NewClient(llm.Options{
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Model:     cfg.LLM.Model,
		Providers: cfg.LLM.Providers,
	}, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		appLogger.Fatal("Failed to create upload directory", zap.String("dir", cfg.Upload.Dir), zap.Error(err))
	}

	// Initialize services
	studyService := service.NewStudyService(llmClient, appLogger)
	documentService := service.NewDocumentService(document.NewExtractor(appLogger), appLogger)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler()
	documentHandler := handler.NewDocumentHandler(documentService, cfg.Upload.Dir)
	studyHandler := handler.NewStudyHandler(studyService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "QuizForge API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Upload.BodyLimit(),
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.Metrics())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.CORSOrigins, AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	if cfg.Metrics.Enabled {
		app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Health)

	app.Post("/upload-pdf", documentHandler.UploadPDF)
	app.Post("/generate-summary", studyHandler.GenerateSummary)
	app.Post("/generate-quiz", studyHandler.GenerateQuiz)
	app.Post("/generate-flashcards", studyHandler.GenerateFlashcards)
	app.Post("/check-answers", studyHandler.CheckAnswers)
	app.Post("/extract-topics", studyHandler.ExtractTopics)
	app.Post("/generate-study-set", studyHandler.GenerateStudySet)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
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
