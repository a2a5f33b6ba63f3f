package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"auction-admin/internal/config"
	"auction-admin/internal/database"
	"auction-admin/internal/handler"
	"auction-admin/internal/middleware"
	"auction-admin/internal/repository"
	"auction-admin/internal/server"
	"auction-admin/internal/service"
	"auction-admin/internal/session"
	"auction-admin/pkg/logger"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	auctionRepo := repository.NewAuctionRepository(db)
	itemRepo := repository.NewItemRepository(db)
	bidRepo := repository.NewBidRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	dashboardService := service.NewDashboardService(userRepo, itemRepo, auctionRepo, bidRepo, categoryRepo)

	// Bootstrap the default admin account on first startup
	if err := authService.EnsureDefaultAdmin(); err != nil {
		log.Fatalf("Failed to ensure default admin: %v", err)
	}

	sessions := session.NewManager(cfg.SessionSecret, cfg.IsProduction())

	// Optional Redis-backed login rate limiter
	var loginLimiter gin.HandlerFunc
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Invalid REDIS_URL: %v", err)
		}
		limiter := middleware.NewLoginRateLimiter(redis.NewClient(opts), sessions, middleware.LoginRateLimiterConfig{
			MaxAttempts: cfg.RateLimitMaxRequests,
			Window:      cfg.RateLimitWindow,
		})
		loginLimiter = limiter.Middleware()
	}

	// Initialize handlers
	handlers := server.Handlers{
		Auth:       handler.NewAuthHandler(authService, sessions),
		Dashboard:  handler.NewDashboardHandler(dashboardService, sessions),
		Users:      handler.NewUserHandler(userRepo, sessions),
		Auctions:   handler.NewAuctionHandler(auctionRepo, categoryRepo, sessions),
		Items:      handler.NewItemHandler(itemRepo, auctionRepo, sessions),
		Categories: handler.NewCategoryHandler(categoryRepo, sessions),
		Bids:       handler.NewBidHandler(bidRepo, sessions),
	}

	router := server.SetupRouter(sessions, handlers, loginLimiter, cfg.IsProduction())

	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
