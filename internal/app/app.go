package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"contest_backend/internal/auth"
	"contest_backend/internal/config"
	"contest_backend/internal/handlers"
	"contest_backend/internal/imageprocessor"
	"contest_backend/internal/logger"
	"contest_backend/internal/metrics"
	"contest_backend/internal/middleware"
	"contest_backend/internal/openapi"
	"contest_backend/internal/repositories"
	"contest_backend/internal/routes"
	"contest_backend/internal/services"
	"contest_backend/internal/services/dto"
	"contest_backend/internal/storage"
	"contest_backend/internal/validator"
	"contest_backend/internal/workers"
	"contest_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func Run() {
	if err := config.LoadConfig(); err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	Configure(cfg)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	db, err := OpenDatabase(cfg)
	if err != nil {
		logger.Fatal("Database initialization failed", "error", err)
	}
	logger.Info("Database connected")

	ginRouter, worker, err := SetupRouter(cfg, db)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker.Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              address,
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "address", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	worker.Wait()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("Server stopped")
}

// Configure применяет глобальные настройки пакетов (JWT, лимиты пагинации, режим ошибок)
func Configure(cfg *config.Config) {
	dev := cfg.Server.Env == "development"
	apperrors.SetDebug(dev)
	auth.Configure(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)
	dto.ConfigureLimits(cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit)
	if !dev {
		gin.SetMode(gin.ReleaseMode)
	}
}

// SetupRouter собирает все слои приложения. Воркер возвращается незапущенным:
// его жизненным циклом управляет вызывающий.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, *workers.MediaWorker, error) {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	appMetrics := metrics.New()

	// 1. Воркер обработки медиа
	worker := workers.NewMediaWorker(
		db,
		repositories.NewMediaRepository(),
		storageInstance,
		imageprocessor.NewProcessor(cfg.Upload.ImageQuality),
		cfg.Upload.QueueSize,
		workers.WithMetrics(appMetrics),
	)

	// 2. Сервисы и хэндлеры
	serviceContainer := services.NewServiceContainer(services.Dependencies{
		Storage:      storageInstance,
		MediaQueue:   worker,
		VoteRecorder: appMetrics,
		Upload: services.UploadConfig{
			MaxSize:      cfg.Upload.MaxSize,
			AllowedTypes: cfg.Upload.AllowedTypes,
		},
	})
	appHandlers := handlers.NewAppHandlers(serviceContainer)

	// 3. Gin
	ginRouter := initializeGinRouter(cfg, db, appMetrics)

	// 4. Маршруты API и документация
	registry := openapi.NewRegistry(validator.New(), openapi.Info{
		Title:       "Contest API",
		Description: "Contests, awards, participations, votes, media and notifications.",
		Version:     "1.0",
		BasePath:    "/",
	})
	routes.RegisterRoutes(ginRouter, appHandlers, registry)

	docHandler, err := registry.Handler()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build openapi document: %w", err)
	}
	ginRouter.GET("/openapi.json", docHandler)
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	ginRouter.GET("/metrics", gin.WrapH(appMetrics.Handler()))

	if local, ok := storageInstance.(*storage.LocalStorage); ok && strings.HasPrefix(cfg.Storage.BaseURL, "/") {
		ginRouter.Static(cfg.Storage.BaseURL, local.Root())
	}

	return ginRouter, worker, nil
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.MetricsMiddleware(m))
	router.Use(middleware.DBMiddleware(db))
	return router
}
