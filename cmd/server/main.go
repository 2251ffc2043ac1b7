package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/samScriptt/novapress/internal/ai"
	"github.com/samScriptt/novapress/internal/auth"
	"github.com/samScriptt/novapress/internal/config"
	"github.com/samScriptt/novapress/internal/handler"
	"github.com/samScriptt/novapress/internal/images"
	"github.com/samScriptt/novapress/internal/infrastructure/database"
	"github.com/samScriptt/novapress/internal/logger"
	"github.com/samScriptt/novapress/internal/metrics"
	"github.com/samScriptt/novapress/internal/middleware"
	"github.com/samScriptt/novapress/internal/newsclient"
	"github.com/samScriptt/novapress/internal/objectstore"
	"github.com/samScriptt/novapress/internal/repository"
	"github.com/samScriptt/novapress/internal/service"
	"github.com/samScriptt/novapress/internal/social"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	postRepo := repository.NewPostgresPostRepository(pool)
	profileRepo := repository.NewPostgresProfileRepository(pool)
	engagementRepo := repository.NewPostgresEngagementRepository(pool)
	feedbackRepo := repository.NewPostgresFeedbackRepository(pool)
	accessLogRepo := repository.NewPostgresAccessLogRepository(pool)

	// Initialize outbound clients
	newsClient := newsclient.NewClient(newsclient.Config{
		BaseURL:         cfg.NewsAPIURL,
		APIKey:          cfg.NewsAPIKey,
		PageSize:        cfg.NewsPageSize,
		ExcludedDomains: cfg.NewsExcludedDomains,
		Timeout:         cfg.NewsRequestTimeout,
	})
	rewriter := ai.NewRewriter(ai.Config{
		BaseURL: cfg.GeminiAPIURL,
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: cfg.GeminiTimeout,
	})
	storageClient := objectstore.NewClient(objectstore.Config{
		BaseURL:    cfg.StorageURL,
		ServiceKey: cfg.StorageServiceKey,
		Bucket:     cfg.StorageBucket,
		Timeout:    cfg.StorageTimeout,
	})
	rehoster := images.NewRehoster(storageClient, cfg.StorageTimeout, logger.Default())
	twitterClient := social.NewClient(social.Config{
		BaseURL:     cfg.TwitterAPIURL,
		BearerToken: cfg.TwitterBearerToken,
		Timeout:     cfg.TwitterTimeout,
	}, logger.Default())
	authClient := auth.NewClient(auth.Config{
		BaseURL: cfg.AuthURL,
		AnonKey: cfg.AuthAnonKey,
		Timeout: cfg.AuthTimeout,
	})

	// Initialize services
	ingestService := service.NewIngestService(
		postRepo,
		newsClient,
		rewriter,
		rehoster,
		twitterClient,
		cfg.SiteURL,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)
	accessService := service.NewAccessService(profileRepo)
	postService := service.NewPostService(postRepo, engagementRepo, accessLogRepo, accessService)
	feedbackService := service.NewFeedbackService(feedbackRepo)
	adminService := service.NewAdminService(postRepo, profileRepo, feedbackRepo, accessLogRepo)

	// Initialize handlers
	cronHandler := handler.NewCronHandler(ingestService, cfg.CronSecret)
	postHandler := handler.NewPostHandler(postService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	adminHandler := handler.NewAdminHandler(adminService)
	webhookHandler := handler.NewStripeWebhookHandler(profileRepo, cfg.StripeWebhookSecret)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Auth(authClient))
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Scheduler and payment provider callbacks
	router.GET("/api/cron/ingest", cronHandler.Ingest)
	router.POST("/api/webhooks/stripe", webhookHandler.Handle)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.GET("", postHandler.List)
			posts.GET("/:id", postHandler.Get)
			posts.GET("/:id/comments", postHandler.ListComments)
			posts.POST("/:id/comments", middleware.RequireUser(), postHandler.CreateComment)
			posts.POST("/:id/vote", middleware.RequireUser(), postHandler.Vote)
		}

		feedback := v1.Group("/feedback")
		{
			feedback.POST("", middleware.RequireUser(), feedbackHandler.Submit)
			feedback.GET("/status", middleware.RequireUser(), feedbackHandler.Status)
		}

		admin := v1.Group("/admin", middleware.RequireAdmin(cfg.AdminToken))
		{
			admin.GET("/metrics", adminHandler.Metrics)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
