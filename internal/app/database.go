package app

import (
	"fmt"
	"time"

	"contest_backend/internal/config"
	"contest_backend/internal/logger"
	"contest_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDatabase открывает пул по настройкам database.* и при необходимости
// выполняет AutoMigrate для всех моделей.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	slow := time.Duration(cfg.Database.SlowQueryMs) * time.Millisecond
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.NewGormLogger(cfg.Server.Env, slow),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Database.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}
	if cfg.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database unavailable: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(models.All()...); err != nil {
			return nil, fmt.Errorf("auto-migrate failed: %w", err)
		}
		logger.Info("Database schema migrated")
	}
	return db, nil
}
