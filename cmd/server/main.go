package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"restrohub/internal/config"
	"restrohub/internal/handlers"
	"restrohub/internal/middleware"
	"restrohub/internal/repositories/mongodb"
	"restrohub/internal/services"
	"restrohub/pkg/cache"
	"restrohub/pkg/database"
	"restrohub/pkg/logger"
	"restrohub/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
		Colors: !config.IsProduction(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Connect to MongoDB
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	appLogger.WithField("database", cfg.Database.Database).Info("Connected to MongoDB")

	// Redis is optional; the service runs uncached without it
	var restaurantCache mongodb.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			appLogger.WithError(err).Warn("Redis unavailable, continuing without cache")
		} else {
			restaurantCache = redisCache
			defer redisCache.Close()
			appLogger.Info("Connected to Redis")
		}
	}

	// Initialize repositories
	restaurantRepo := mongodb.NewRestaurantRepository(db.Database, restaurantCache)
	userRepo := mongodb.NewUserRepository(db.Database)

	// Initialize services
	restaurantService := services.NewRestaurantService(restaurantRepo, appLogger)
	reviewService := services.NewReviewService(restaurantRepo, userRepo, appLogger)
	menuService := services.NewMenuService(restaurantRepo, appLogger)

	// Initialize handlers
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	menuHandler := handlers.NewMenuHandler(menuService)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// API routes
	routes.SetupRestaurantRoutes(router, restaurantHandler, menuHandler, reviewHandler)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Infof("Starting server on port %d", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Forced shutdown: %v", err)
	}
}
