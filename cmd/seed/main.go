package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/imammufiid/bnyu-admin/internal/config"
	"github.com/imammufiid/bnyu-admin/internal/db"
	"github.com/imammufiid/bnyu-admin/internal/logger"
	"github.com/imammufiid/bnyu-admin/internal/model"
	"github.com/imammufiid/bnyu-admin/internal/repository"
	"github.com/imammufiid/bnyu-admin/internal/service"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("starting seed script")

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		zlog.Fatal("connect database", zap.Error(err))
	}

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.PointsRecord{},
		&model.Reminder{},
		&model.Feedback{},
	); err != nil {
		zlog.Fatal("run migrations", zap.Error(err))
	}

	seedService := service.NewSeedService(
		repository.NewUserRepository(gormDB),
		repository.NewPointsRepository(gormDB),
		repository.NewReminderRepository(gormDB),
		repository.NewFeedbackRepository(gormDB),
	)

	summary, err := seedService.SeedDemo(context.Background())
	if err != nil {
		zlog.Fatal("seed demo data", zap.Error(err))
	}

	zlog.Info("seed completed",
		zap.Int("users", summary.Users),
		zap.Int("points", summary.Points),
		zap.Int("reminders", summary.Reminders),
		zap.Int("feedback", summary.Feedback),
	)
}
