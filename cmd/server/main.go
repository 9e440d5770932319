package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/careercompassai/backend/internal/config"
	"github.com/careercompassai/backend/internal/domain/fiber/handler"
	"github.com/careercompassai/backend/internal/repository"
	"github.com/careercompassai/backend/internal/service"
	"github.com/careercompassai/backend/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		// Analysis requests hold the connection open for the whole pipeline.
		ReadTimeout:  1 * time.Minute,
		WriteTimeout: 5 * time.Minute,
		BodyLimit:    25 * 1024 * 1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	geminiConfig := config.LoadGeminiConfig()
	githubConfig := config.LoadGithubConfig()
	pipelineConfig := config.LoadPipelineConfig()

	gemini, err := service.NewGeminiService(ctx, geminiConfig, pipelineConfig)
	if err != nil {
		log.Fatal(err)
	}
	github := service.NewGithubService(githubConfig)
	taskRepo := repository.NewPortfolioTaskRepository()

	analysisUC := usecase.NewAnalysisUsecase(gemini, github, pipelineConfig, geminiConfig.Model)
	interviewUC := usecase.NewInterviewUsecase(gemini, pipelineConfig, geminiConfig.Model)
	portfolioUC := usecase.NewPortfolioUsecase(gemini, taskRepo, pipelineConfig, geminiConfig.Model)

	handler.NewAnalyzeHandler(analysisUC).RegisterRoutes(app)
	handler.NewInterviewHandler(interviewUC).RegisterRoutes(app)
	handler.NewPortfolioHandler(portfolioUC).RegisterRoutes(app)

	log.Println("Server running on", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}
