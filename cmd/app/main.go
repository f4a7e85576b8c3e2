package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hereisnaman/api.gitfa.me/docs"
	"github.com/hereisnaman/api.gitfa.me/internal/common/config"
	"github.com/hereisnaman/api.gitfa.me/internal/common/logger"
	"github.com/hereisnaman/api.gitfa.me/internal/common/middleware"
	userhttp "github.com/hereisnaman/api.gitfa.me/internal/features/githubuser/delivery/http"
	userredis "github.com/hereisnaman/api.gitfa.me/internal/features/githubuser/repository/redis"
	userservice "github.com/hereisnaman/api.gitfa.me/internal/features/githubuser/service"
	"github.com/hereisnaman/api.gitfa.me/internal/platform/github"
	redisplatform "github.com/hereisnaman/api.gitfa.me/internal/platform/redis"
)

// @title           gitfa.me API
// @version         1.0
// @description     GitHub user profile and repository statistics, cached with a 24h freshness policy.

// @host      localhost:4000
// @BasePath  /

// @tag.name users
// @tag.description GitHub user statistics

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load: %v\n", err)
		os.Exit(1)
	}

	logger.Init("gitfame-api", cfg.Debug)
	logger.Info().
		Bool("debug", cfg.Debug).
		Int("port", cfg.Server.Port).
		Msg("Starting gitfa.me API")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := redisplatform.Open(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()
	logger.Info().Str("addr", cfg.RedisAddr()).Msg("Redis connection established")

	githubClient := github.NewGraphQLClient(cfg.GitHub.Token, cfg.GitHub.Endpoint, cfg.GitHub.PageSize)

	userRepository := userredis.NewUserRepository(redisClient, cfg.Cache.TTL)
	userSvc := userservice.NewUserService(userRepository, githubClient, cfg.Cache.TTL)
	userHandler := userhttp.NewUserHandler(userSvc)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin, "http://localhost:3000"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Origin", "Accept"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	userHandler.RegisterRoutes(router)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "gitfame-api",
		})
	})
	router.GET("/ready", func(c *gin.Context) {
		readyCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := redisClient.HealthCheck(readyCtx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unready",
				"error":  "redis unavailable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
