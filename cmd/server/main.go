package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/imammufiid/bnyu-admin/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/imammufiid/bnyu-admin/internal/auth"
	"github.com/imammufiid/bnyu-admin/internal/cache"
	"github.com/imammufiid/bnyu-admin/internal/config"
	"github.com/imammufiid/bnyu-admin/internal/db"
	"github.com/imammufiid/bnyu-admin/internal/handler"
	"github.com/imammufiid/bnyu-admin/internal/logger"
	"github.com/imammufiid/bnyu-admin/internal/model"
	"github.com/imammufiid/bnyu-admin/internal/repository"
	"github.com/imammufiid/bnyu-admin/internal/router"
	"github.com/imammufiid/bnyu-admin/internal/service"
)

// @title bnyu Admin API
// @version 1.0
// @description Admin dashboard API for the bnyu hydration reminder app.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zlog.Sync()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		zlog.Fatal("database init", zap.Error(err))
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		zlog.Info("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.Feedback{},
			&model.Reminder{},
			&model.PointsRecord{},
			&model.User{},
			&model.Admin{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				zlog.Warn("failed to drop table (may not exist)", zap.Error(err))
			}
		}
		zlog.Info("tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Admin{},
		&model.User{},
		&model.PointsRecord{},
		&model.Reminder{},
		&model.Feedback{},
	); err != nil {
		zlog.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		zlog.Warn("redis unreachable, sessions will not persist", zap.Error(err))
	}

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	pointsRepo := repository.NewPointsRepository(gormDB)
	reminderRepo := repository.NewReminderRepository(gormDB)
	feedbackRepo := repository.NewFeedbackRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(adminRepo, jwtService, sessionStore)
	statsService := service.NewStatsService(userRepo, pointsRepo, reminderRepo, cacheClient)
	userService := service.NewUserService(userRepo, pointsRepo, reminderRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo, userRepo)
	seedService := service.NewSeedService(userRepo, pointsRepo, reminderRepo, feedbackRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	statsHandler := handler.NewStatsHandler(statsService)
	userHandler := handler.NewUserHandler(userService, statsService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	seedHandler := handler.NewSeedHandler(seedService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		statsHandler,
		userHandler,
		feedbackHandler,
		seedHandler,
	)

	addr := ":" + cfg.ServerPort
	zlog.Info("starting server", zap.String("addr", addr))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		zlog.Fatal("server start", zap.Error(err))
	}
}
