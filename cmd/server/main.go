package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/roksva123/go-productivity-backend/internal/api/handlers"
	"github.com/roksva123/go-productivity-backend/internal/api/middleware"
	"github.com/roksva123/go-productivity-backend/internal/config"
	"github.com/roksva123/go-productivity-backend/internal/repository"
	"github.com/roksva123/go-productivity-backend/internal/service"
)

func main() {

	// LOAD ENV
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)
	ctx := context.Background()

	// INIT DB
	repo, err := repository.NewPostgresRepo(ctx, cfg.DSN())
	if err != nil {
		logger.Error("database unreachable", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer repo.Close()

	// MIGRATIONS
	if err := repo.RunMigrations(ctx); err != nil {
		logger.Error("migration error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// SERVICES
	httpClient := service.NewRetryableClient(service.HTTPConfig{
		Timeout:    cfg.HTTPTimeout,
		MaxRetries: cfg.HTTPMaxRetries,
		RetryDelay: cfg.HTTPRetryDelay,
	}, logger.With(slog.String("component", "http")))

	authService := service.NewAuthService(repo, cfg.JWTSecret)
	if err := authService.SeedAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Warn("failed seeding admin", slog.String("error", err.Error()))
	} else {
		logger.Info("admin seeded", slog.String("username", cfg.AdminUsername))
	}

	clickService := service.NewClickUpService(cfg.ClickUpAPIURL, cfg.ClickUpToken, httpClient)
	wrikeService := service.NewWrikeService(cfg.WrikeAPIURL, cfg.WrikeToken, httpClient)
	syncService := service.NewTaskSyncService(clickService, repo, cfg.ClickUpListID, cfg.ClickUpDoneStatus,
		logger.With(slog.String("component", "task_sync")))

	// The watched Wrike user is resolved once; without it every webhook event is skipped.
	currentUserID := ""
	if cfg.WrikeToken != "" {
		userCtx, cancel := context.WithTimeout(ctx, cfg.HTTPTimeout)
		currentUserID, err = wrikeService.GetCurrentUserID(userCtx)
		cancel()
		if err != nil {
			logger.Warn("wrike current user unavailable, webhooks will be ignored", slog.String("error", err.Error()))
			currentUserID = ""
		}
	} else {
		logger.Warn("WRIKE_TOKEN not set, webhooks will be ignored")
	}
	router := service.NewWebhookRouter(wrikeService, syncService, currentUserID,
		logger.With(slog.String("component", "webhook_router")))

	var meals service.MealPlanner
	if cfg.GrocyURL != "" {
		meals = service.NewGrocyService(cfg.GrocyURL, cfg.GrocyAPIKey, httpClient)
	}
	dashboardService := service.NewDashboardService(clickService, meals)

	// HANDLERS
	authHandler := handlers.NewAuthHandler(authService, logger)
	if cfg.WrikeHookSecret == "" {
		logger.Warn("WRIKE_HOOK_SECRET not set, webhook deliveries are not authenticated")
	}
	webhookHandler := handlers.NewWebhookHandler(router, cfg.WrikeHookSecret, logger)
	clickupHandler := handlers.NewClickUpHandler(clickService, cfg.ClickUpListID, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, cfg.ClickUpListID, logger)

	// ROUTER
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !containsWildcard(cfg.CORSOrigins),
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// AUTH ROUTES
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// WEBHOOK ROUTES
	api.POST("/webhooks/wrike", webhookHandler.Receive)

	// PROTECTED ROUTES
	protected := api.Group("", middleware.JWTAuth(cfg.JWTSecret))
	{
		protected.GET("/tasks", clickupHandler.ListTasks)
		protected.GET("/tasks/stats", clickupHandler.Stats)
		protected.GET("/dashboard", dashboardHandler.Get)
		if meals != nil {
			protected.GET("/meals", handlers.NewMealHandler(meals, logger).GetMealPlan)
		}
	}

	// START SERVER
	logger.Info("server running", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// gin-contrib/cors refuses credentials together with a "*" origin.
func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
