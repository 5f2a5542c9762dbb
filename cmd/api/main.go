package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/fornolabs/pizza-contest-api/internal/config"
	"github.com/fornolabs/pizza-contest-api/internal/database"
	"github.com/fornolabs/pizza-contest-api/internal/handler"
	"github.com/fornolabs/pizza-contest-api/internal/middleware"
	"github.com/fornolabs/pizza-contest-api/internal/models"
	"github.com/fornolabs/pizza-contest-api/internal/repository"
	"github.com/fornolabs/pizza-contest-api/internal/router"
	"github.com/fornolabs/pizza-contest-api/internal/service"
	cloud "github.com/fornolabs/pizza-contest-api/pkg/cloudinary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Profile{}, &models.Pizza{}, &models.Vote{}, &models.AuditLog{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	uploader, err := cloud.New(cloud.Config{
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
		Folder:    cfg.CloudinaryUploadFolder,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create cloudinary client: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	profileRepo := repository.NewProfileRepository(db)
	pizzaRepo := repository.NewPizzaRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	auditService := service.NewAuditService(auditRepo, logger)
	voteService := service.NewVoteService(voteRepo, pizzaRepo, validate, redisClient, auditService, logger)
	leaderboardService := service.NewLeaderboardService(pizzaRepo, voteRepo, profileRepo, redisClient, cfg.LeaderboardCacheTTL, logger)
	completionService := service.NewCompletionService(pizzaRepo, voteRepo, profileRepo, logger)
	pizzaService := service.NewPizzaService(pizzaRepo, validate, uploader, redisClient, auditService, logger)
	seedService := service.NewSeedService(profileRepo, pizzaRepo, cfg.SeedEnabled, cfg.SeedToken, logger)

	voteHandler := handler.NewVoteHandler(voteService, logger)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService, logger)
	completionHandler := handler.NewCompletionHandler(completionService, logger)
	pizzaHandler := handler.NewPizzaHandler(pizzaService, logger)
	auditHandler := handler.NewAuditHandler(auditService, logger)
	seedHandler := handler.NewSeedHandler(seedService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		VoteHandler:        voteHandler,
		LeaderboardHandler: leaderboardHandler,
		PizzaHandler:       pizzaHandler,
		CompletionHandler:  completionHandler,
		AuditHandler:       auditHandler,
		SeedHandler:        seedHandler,
		JWTMiddleware:      middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
