package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/benjp009/affiliate-tracker/internal/config"
	"github.com/benjp009/affiliate-tracker/internal/dashboard"
	"github.com/benjp009/affiliate-tracker/internal/handler"
	"github.com/benjp009/affiliate-tracker/internal/middleware"
	"github.com/benjp009/affiliate-tracker/internal/repository"
	"github.com/benjp009/affiliate-tracker/internal/service"
)

func main() {
	// Загрузка конфига
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Подключение к БД (postgres)
	db, err := repository.NewPostgresDB(cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("Connected to PostgreSQL")

	// Накат схемы
	if err := db.Migrate(context.Background()); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Подключение к Redis
	redis, err := repository.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redis.Close()
	logger.Info("Connected to Redis")

	// Инициализация репозиториев
	partnerRepo := repository.NewPartnerRepository(db)
	linkRepo := repository.NewLinkRepository(db)
	cacheRepo := repository.NewCacheRepository(redis)
	clickRepo := repository.NewClickRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Инициализация сервисов
	partnerService := service.NewPartnerService(partnerRepo)
	linkService := service.NewLinkService(linkRepo, cacheRepo, logger)
	transactionService := service.NewTransactionService(transactionRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, partnerRepo, transactionRepo)

	// Инициализация процессора кликов (Worker Pool)
	clickProcessor := service.NewClickProcessor(clickRepo, logger)
	clickProcessor.Start()
	defer clickProcessor.Stop()

	// Инициализация middleware
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
		CleanupInterval:   time.Minute,
	})

	var apiKeyMiddleware gin.HandlerFunc
	if len(cfg.Auth.APIKeys) > 0 {
		apiKeyMiddleware = middleware.RequireAPIKey(cfg.Auth.APIKeys)
		logger.Info("API key authentication enabled", zap.Int("keys_count", len(cfg.Auth.APIKeys)))
	}

	// Дашборд ходит в собственный API по HTTP, как внешний клиент
	apiClient := dashboard.NewAPIClient(cfg.App.BaseURL+"/api", cfg.Auth.DashboardAPIKey, logger)
	dash := dashboard.NewHandler(apiClient, logger)

	// Настройка роутера
	router := handler.NewRouter(
		partnerService,
		linkService,
		transactionService,
		analyticsService,
		clickProcessor,
		rateLimiter,
		apiKeyMiddleware,
		dash,
		logger,
	)

	// Запуск сервера
	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Запуск в горутине
	go func() {
		logger.Info("Server starting", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
