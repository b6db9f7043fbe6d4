package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tvshow-catalog/internal/auth"
	"github.com/iliyamo/tvshow-catalog/internal/catalog"
	"github.com/iliyamo/tvshow-catalog/internal/config"
	"github.com/iliyamo/tvshow-catalog/internal/database"
	"github.com/iliyamo/tvshow-catalog/internal/handler"
	"github.com/iliyamo/tvshow-catalog/internal/middleware"
	"github.com/iliyamo/tvshow-catalog/internal/queue"
	"github.com/iliyamo/tvshow-catalog/internal/repository"
	"github.com/iliyamo/tvshow-catalog/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Redis is optional: without it the cache and rate limiter degrade
	// to pass-through.
	rdb := config.NewRedisClient()

	// Background consumer for review.posted events. A missing broker is
	// logged, not fatal.
	go func() {
		if err := queue.StartReviewConsumer(); err != nil {
			log.Printf("review consumer stopped: %v", err)
		}
	}()

	users := repository.NewUserRepo(db)
	genres := repository.NewGenreRepo(db)
	series := repository.NewSeriesRepo(db)
	reviews := repository.NewReviewRepo(db)

	sessions := auth.NewManager(users, auth.Config{
		JWTSecret:        cfg.JWTSecret,
		Issuer:           cfg.JWTIssuer,
		Audience:         cfg.JWTAudience,
		AccessTTLSec:     cfg.AccessTTLSec,
		RefreshTTLDays:   cfg.RefreshTTLDays,
		BcryptCost:       cfg.BcryptCost,
		UserRoleSecret:   cfg.UserRoleSecret,
		PosterRoleSecret: cfg.PosterRoleSecret,
		AdminRoleSecret:  cfg.AdminRoleSecret,
	})
	catalogSvc := catalog.NewService(genres, series, reviews, users)

	e := echo.New()
	router.RegisterRoutes(e)

	var limiter echo.MiddlewareFunc
	if rl := config.LoadRateLimitConfig(); rl.Enabled {
		limiter = middleware.RateLimit(rl, rdb)
	}
	var cache echo.MiddlewareFunc
	if cc := config.LoadCacheConfig(); cc.Enabled {
		cache = middleware.ResponseCache(cc, rdb)
	}

	router.RegisterAuth(e, handler.NewAuthHandler(sessions), cfg.JWTSecret, limiter)
	router.RegisterCatalog(e, handler.NewCatalogHandler(catalogSvc), cfg.JWTSecret, cache)
	router.RegisterUsers(e, handler.NewUserHandler(sessions), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
