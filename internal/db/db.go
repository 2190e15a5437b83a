package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-calendar/internal/config"
	"github.com/BruksfildServices01/salon-calendar/internal/models"
	"github.com/BruksfildServices01/salon-calendar/internal/timezone"
)

func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.Env == config.EnvProduction {
		level = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Salon{},
		&models.Employee{},
		&models.Service{},
		&models.Customer{},
		&models.Booking{},
		&models.WorkingHour{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	res := db.Exec(`
        UPDATE salons
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, timezone.DefaultTimezone)
	if res.Error != nil {
		log.Warn("failed to backfill salon timezones", zap.Error(res.Error))
	} else if res.RowsAffected > 0 {
		log.Info("backfilled salon timezones", zap.Int64("rows", res.RowsAffected))
	}

	return db, nil
}
