package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ProLedger/project_ledger_app/internal/core/services"
	"github.com/ProLedger/project_ledger_app/internal/handlers"
	"github.com/ProLedger/project_ledger_app/internal/middleware"
	"github.com/ProLedger/project_ledger_app/internal/platform/config"
	"github.com/ProLedger/project_ledger_app/internal/repositories/gateway"
	"github.com/ProLedger/project_ledger_app/internal/repositories/localcache"
	"github.com/ProLedger/project_ledger_app/internal/utils"
)

// @title Project Ledger Backend API
// @version 1.0
// @description Multi-tenant project bookkeeping backend.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Persistence gateway client, with a Redis-backed fallback for reads
	// when the gateway is unreachable.
	gatewayClient := gateway.NewClient(cfg.GatewayBaseURL, cfg.GatewayTimeout)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()
	cacheStore := localcache.NewStore(rdb)
	store := localcache.NewFallbackStore(gatewayClient, cacheStore, logger)

	repos := gateway.NewRepositoryProvider(store)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	// Periodic cache refresh keeps the fallback copy warm.
	syncer := localcache.NewSyncer(gatewayClient, cacheStore, logger)
	if err := syncer.Start(cfg.SyncCronSpec); err != nil {
		logger.Error("Failed to start cache sync", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer syncer.Stop()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(middleware.PosthogMiddleware(posthogClient))
	r.Use(corsMiddleware(cfg))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.FrontendBaseURL != "" {
		corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	} else {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	return cors.New(corsConfig)
}
