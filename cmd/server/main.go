package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Optional .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/wildlens/wildlens-api/internal/config"   // Internal config loader
	"github.com/wildlens/wildlens-api/internal/database" // Postgres connection
	"github.com/wildlens/wildlens-api/internal/handler"
	"github.com/wildlens/wildlens-api/internal/middleware"
	"github.com/wildlens/wildlens-api/internal/queue"
	"github.com/wildlens/wildlens-api/internal/repository"
	"github.com/wildlens/wildlens-api/internal/router" // Internal router setup
	"github.com/wildlens/wildlens-api/internal/view"
)

func main() {
	// Load .env if present; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	// Repositories
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	cameras := repository.NewCameraRepo(db)
	favorites := repository.NewFavoriteRepo(db)
	subs := repository.NewSubscriptionRepo(db)
	txs := repository.NewTransactionRepo(db)
	alerts := repository.NewAlertRepo(db)
	stats := repository.NewStatsRepo(db)

	// Handlers
	authHandler := handler.NewAuthHandler(cfg, users, tokens)
	publicHandler := handler.NewPublicHandler(cameras, alerts)
	viewerHandler := handler.NewViewerHandler(favorites, subs, txs)
	creatorHandler := handler.NewCreatorHandler(cameras, view.DefaultRevenueModel)
	adminHandler := handler.NewAdminHandler(stats, cameras)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, users, cfg.JWTSecret)
	router.RegisterPublic(e, publicHandler, config.LoadCacheConfig(), rdb)
	router.RegisterAccount(e, viewerHandler, users, cfg.JWTSecret)
	router.RegisterCreator(e, creatorHandler, users, cfg.JWTSecret)
	router.RegisterAdmin(e, adminHandler, users, cfg.JWTSecret)

	// Background consumer logging moderation decisions.
	go func() {
		if err := queue.StartReviewConsumer(); err != nil {
			log.Printf("review consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
