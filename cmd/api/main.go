package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

// multipart framing on top of the file itself
const bodyOverhead = 1 << 20

func main() {
	cfg := config.Load()
	logger.Init(cfg.Log)
	if !cfg.EnvFileLoaded {
		logger.Debug().Msg("No .env file found, using environment and defaults")
	}
	logger.Info().Str("env", cfg.Server.Env).Msg("Config loaded")

	vocab := services.DefaultVocabulary()
	if cfg.Scoring.VocabularyPath != "" {
		loaded, err := services.LoadVocabulary(cfg.Scoring.VocabularyPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.Scoring.VocabularyPath).Msg("Failed to load vocabulary")
		}
		vocab = loaded
		logger.Info().Str("path", cfg.Scoring.VocabularyPath).Msg("Vocabulary loaded")
	}

	mode, err := services.ParseMatchMode(cfg.Scoring.MatchMode)
	if err != nil {
		logger.Warn().Err(err).Msg("Falling back to substring matching")
	}

	analyzer := services.NewAnalyzerService(vocab, mode)
	uploadService := services.NewUploadService(cfg.Upload.MaxFileSize)
	parser := services.NewDocumentParserService()
	logger.Info().Str("match_mode", string(mode)).Int("skills", len(vocab.Skills)).Msg("Services initialized")

	var analysisRepo repositories.AnalysisRepository
	var resultHandler *handlers.ResultHandler
	if cfg.Database.Enabled {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to initialize database")
		}
		analysisRepo = repositories.NewAnalysisRepository(db)
		resultHandler = handlers.NewResultHandler(analysisRepo)
		logger.Info().Msg("Analysis history enabled")
	}

	analyzeHandler := handlers.NewAnalyzeHandler(uploadService, parser, analyzer, analysisRepo)

	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize) + bodyOverhead,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handlers.RegisterRoutes(app, analyzeHandler, resultHandler)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info().Msg("Shutting down server")
		if err := app.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("Server forced to shutdown")
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("Server starting")

	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
